// Package controller executes commands against the thermostat and keeps a journal of what happened to it.
package controller

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/clambin/nefit-monitor/internal/eventlog"
	"github.com/clambin/nefit-monitor/internal/poller"
	"github.com/clambin/nefit-monitor/internal/thermostat"
)

type Thermostat interface {
	SetTemperature(ctx context.Context, temperature float64) error
	SetMode(ctx context.Context, mode thermostat.Mode) error
}

type EventStore interface {
	Append(ctx context.Context, event eventlog.Event) error
}

// A Controller serialises the commands sent to the thermostat. Each command is journaled and, once executed,
// the poller is asked to refresh, so subscribers see the new state as soon as possible.
//
// Controller also follows the poller's updates and journals any change in the thermostat's mode or boiler state.
// These are reported to the Notifier. Events may be nil, in which case nothing is journaled.
type Controller struct {
	Thermostat Thermostat
	Poller     poller.Poller
	Events     EventStore
	Notifier   Notifier
	logger     *slog.Logger
	lock       sync.Mutex
	last       *poller.Update
}

func New(t Thermostat, p poller.Poller, events EventStore, n Notifier, logger *slog.Logger) *Controller {
	if n == nil {
		n = Notifiers{}
	}
	return &Controller{
		Thermostat: t,
		Poller:     p,
		Events:     events,
		Notifier:   n,
		logger:     logger,
	}
}

// SetTemperature sets the thermostat's target temperature.
func (c *Controller) SetTemperature(ctx context.Context, temperature float64) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	err := c.Thermostat.SetTemperature(ctx, temperature)
	if err != nil {
		c.record(ctx, eventlog.Event{
			Type:     eventlog.TypeError,
			Message:  err.Error(),
			Metadata: map[string]any{"command": eventlog.TypeSetTemperature, "temperature": temperature},
		})
		return err
	}

	c.record(ctx, eventlog.Event{
		Type:     eventlog.TypeSetTemperature,
		Message:  fmt.Sprintf("target temperature set to %.1fºC", temperature),
		Metadata: map[string]any{"temperature": temperature},
	})
	c.Poller.Refresh()
	return nil
}

// SetMode switches the thermostat to the requested operating mode.
func (c *Controller) SetMode(ctx context.Context, mode thermostat.Mode) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	err := c.Thermostat.SetMode(ctx, mode)
	if err != nil {
		c.record(ctx, eventlog.Event{
			Type:     eventlog.TypeError,
			Message:  err.Error(),
			Metadata: map[string]any{"command": eventlog.TypeSetMode, "mode": string(mode)},
		})
		return err
	}

	c.record(ctx, eventlog.Event{
		Type:     eventlog.TypeSetMode,
		Message:  "mode set to " + string(mode),
		Metadata: map[string]any{"mode": string(mode)},
	})
	c.Poller.Refresh()
	return nil
}

// Refresh asks the poller to poll the thermostat immediately.
func (c *Controller) Refresh() {
	c.Poller.Refresh()
}

// Run follows the poller's updates and journals any change of mode or boiler state.
func (c *Controller) Run(ctx context.Context) error {
	ch := c.Poller.Subscribe()
	defer c.Poller.Unsubscribe(ch)

	c.logger.Debug("controller starting")
	defer c.logger.Debug("controller stopping")

	for {
		select {
		case <-ctx.Done():
			return nil
		case update := <-ch:
			c.processUpdate(ctx, update)
		}
	}
}

func (c *Controller) processUpdate(ctx context.Context, update poller.Update) {
	last := c.last
	c.last = &update
	if last == nil {
		return
	}

	for _, event := range changes(*last, update) {
		c.record(ctx, event)
		c.Notifier.Notify(event)
	}
}

// changes returns the events describing the difference between two consecutive updates.
func changes(from, to poller.Update) []eventlog.Event {
	var events []eventlog.Event
	if from.Mode != to.Mode {
		events = append(events, eventlog.Event{
			Type:     eventlog.TypeModeChange,
			Message:  fmt.Sprintf("mode changed from %s to %s", from.Mode, to.Mode),
			Metadata: map[string]any{"from": string(from.Mode), "to": string(to.Mode)},
		})
	}
	if fromBoiler, toBoiler := from.BoilerIndicator(), to.BoilerIndicator(); fromBoiler != toBoiler {
		events = append(events, eventlog.Event{
			Type:     eventlog.TypeBoilerChange,
			Message:  fmt.Sprintf("boiler changed from %s to %s", fromBoiler, toBoiler),
			Metadata: map[string]any{"from": fromBoiler, "to": toBoiler},
		})
	}
	return events
}

// record journals the event. A failure to journal doesn't fail the command that caused it.
func (c *Controller) record(ctx context.Context, event eventlog.Event) {
	c.logger.Info(event.Message, "type", event.Type)
	if c.Events == nil {
		return
	}
	if err := c.Events.Append(ctx, event); err != nil {
		c.logger.Error("failed to record event", "type", event.Type, "err", err)
	}
}
