package poller

import (
	"log/slog"

	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/clambin/nefit-monitor/pkg/nefit"
)

// Update is the thermostat state published after each successful poll.
type Update struct {
	thermostat.State
}

// BoilerIndicator returns what the boiler is currently heating: central heating, hot water or nothing ("off").
func (u Update) BoilerIndicator() string {
	if indicator, ok := u.Attributes.String(thermostat.AttrBoilerIndicator); ok {
		return indicator
	}
	return u.Status.BoilerIndicator
}

// Heating returns true if the boiler is heating the central heating circuit.
func (u Update) Heating() bool {
	return u.BoilerIndicator() == nefit.BoilerCentralHeating
}

func (u Update) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("mode", string(u.Mode)),
		slog.Float64("current", u.CurrentTemperature),
		slog.Float64("target", u.TargetTemperature),
		slog.String("boiler", u.BoilerIndicator()),
	)
}
