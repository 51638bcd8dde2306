package collector

import (
	"embed"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/clambin/nefit-monitor/internal/poller"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/*
var testdataFS embed.FS

func MustUpdate() poller.Update {
	f, err := testdataFS.Open("testdata/update.json")
	if err != nil {
		panic(err)
	}
	var update poller.Update
	if err = json.NewDecoder(f).Decode(&update); err != nil {
		panic(err)
	}
	return update
}

func TestCollector(t *testing.T) {
	c := New(nil, slog.New(slog.DiscardHandler))

	c.Set(MustUpdate())

	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(`
# HELP nefit_boiler_indicator Boiler activity. Always 1. Label indicator specifies the activity
# TYPE nefit_boiler_indicator gauge
nefit_boiler_indicator{indicator="central heating",name="living room"} 1

# HELP nefit_boiler_pressure_bar Central heating system pressure in bar
# TYPE nefit_boiler_pressure_bar gauge
nefit_boiler_pressure_bar{name="living room"} 1.8

# HELP nefit_boiler_supply_temperature_celsius Supply temperature of the central heating circuit in degrees celsius
# TYPE nefit_boiler_supply_temperature_celsius gauge
nefit_boiler_supply_temperature_celsius{name="living room"} 45

# HELP nefit_consecutive_poll_errors Number of consecutive failed polls
# TYPE nefit_consecutive_poll_errors gauge
nefit_consecutive_poll_errors{name="living room"} 0

# HELP nefit_gas_usage_year_total Gas usage for the current year
# TYPE nefit_gas_usage_year_total gauge
nefit_gas_usage_year_total{name="living room",unit="m3"} 1234.5

# HELP nefit_mode Operating mode. Always 1. Label mode specifies the mode
# TYPE nefit_mode gauge
nefit_mode{mode="auto",name="living room"} 1

# HELP nefit_outdoor_temperature_celsius Outdoor temperature in degrees celsius
# TYPE nefit_outdoor_temperature_celsius gauge
nefit_outdoor_temperature_celsius{name="living room"} 8.5

# HELP nefit_target_temperature_celsius Target room temperature in degrees celsius
# TYPE nefit_target_temperature_celsius gauge
nefit_target_temperature_celsius{name="living room"} 20

# HELP nefit_temperature_celsius Current room temperature in degrees celsius
# TYPE nefit_temperature_celsius gauge
nefit_temperature_celsius{name="living room"} 19.5
`)))
}

func TestCollector_NoUpdate(t *testing.T) {
	c := New(nil, slog.New(slog.DiscardHandler))
	assert.Zero(t, testutil.CollectAndCount(c))
}

func TestCollector_PartialUpdate(t *testing.T) {
	c := New(nil, slog.New(slog.DiscardHandler))
	c.Set(poller.Update{State: thermostat.State{Name: "foo", CurrentTemperature: 18, TargetTemperature: 19, ErrorCount: 2}})

	assert.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(`
# HELP nefit_consecutive_poll_errors Number of consecutive failed polls
# TYPE nefit_consecutive_poll_errors gauge
nefit_consecutive_poll_errors{name="foo"} 2

# HELP nefit_target_temperature_celsius Target room temperature in degrees celsius
# TYPE nefit_target_temperature_celsius gauge
nefit_target_temperature_celsius{name="foo"} 19

# HELP nefit_temperature_celsius Current room temperature in degrees celsius
# TYPE nefit_temperature_celsius gauge
nefit_temperature_celsius{name="foo"} 18
`)))
}
