package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/clambin/nefit-monitor/pkg/pubsub"
)

type Poller interface {
	Subscribe() <-chan Update
	Unsubscribe(ch <-chan Update)
	Refresh()
}

type Thermostat interface {
	Update(ctx context.Context) error
	State() (thermostat.State, error)
}

var _ Poller = &ThermostatPoller{}

// ThermostatPoller polls the thermostat at a fixed interval and publishes the resulting state to all subscribers.
// It is the only reader of the thermostat's state, so a pending set point override is consumed by exactly one update.
type ThermostatPoller struct {
	Thermostat Thermostat
	*pubsub.Publisher[Update]
	interval time.Duration
	logger   *slog.Logger
	refresh  chan struct{}
	last     *Update
}

func New(t Thermostat, interval time.Duration, logger *slog.Logger) *ThermostatPoller {
	return &ThermostatPoller{
		Thermostat: t,
		Publisher:  pubsub.New[Update](logger.With(slog.String("component", "publisher"))),
		interval:   interval,
		logger:     logger,
		refresh:    make(chan struct{}, 1),
	}
}

func (p *ThermostatPoller) Run(ctx context.Context) error {
	p.logger.Debug("started", slog.Duration("interval", p.interval))
	defer p.logger.Debug("stopped")

	timer := time.NewTicker(p.interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		case <-p.refresh:
		}

		if err := p.poll(ctx); err != nil {
			p.logger.Error("failed to get thermostat status", slog.Any("err", err))
			p.publishStale()
		}
	}
}

// Refresh requests an immediate poll. Requests made while a poll is pending are merged.
func (p *ThermostatPoller) Refresh() {
	select {
	case p.refresh <- struct{}{}:
	default:
	}
}

func (p *ThermostatPoller) poll(ctx context.Context) error {
	start := time.Now()
	if err := p.Thermostat.Update(ctx); err != nil {
		return err
	}
	state, err := p.Thermostat.State()
	if err != nil {
		return err
	}
	update := Update{State: state}
	p.last = &update
	p.Publisher.Publish(update)
	p.logger.Debug("poll completed", slog.Duration("duration", time.Since(start)), slog.Any("update", update))
	return nil
}

// publishStale republishes the last update after a failed poll, with the number of consecutive failures.
// Nothing is published until the first poll succeeds.
func (p *ThermostatPoller) publishStale() {
	if p.last == nil {
		return
	}
	stale := *p.last
	stale.ErrorCount++
	p.last = &stale
	p.Publisher.Publish(stale)
}
