package poller

import (
	"testing"

	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/clambin/nefit-monitor/pkg/nefit"
	"github.com/stretchr/testify/assert"
)

func TestUpdate_BoilerIndicator(t *testing.T) {
	tests := []struct {
		name        string
		update      Update
		wantBoiler  string
		wantHeating bool
	}{
		{
			name: "attribute",
			update: Update{State: thermostat.State{
				Attributes: thermostat.Attributes{thermostat.AttrBoilerIndicator: nefit.BoilerCentralHeating},
				Status:     nefit.Status{BoilerIndicator: nefit.BoilerOff},
			}},
			wantBoiler:  nefit.BoilerCentralHeating,
			wantHeating: true,
		},
		{
			name:        "status",
			update:      Update{State: thermostat.State{Status: nefit.Status{BoilerIndicator: nefit.BoilerHotWater}}},
			wantBoiler:  nefit.BoilerHotWater,
			wantHeating: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantBoiler, tt.update.BoilerIndicator())
			assert.Equal(t, tt.wantHeating, tt.update.Heating())
		})
	}
}

func TestUpdate_LogValue(t *testing.T) {
	u := Update{State: thermostat.State{
		Mode:               thermostat.ModeAuto,
		CurrentTemperature: 19.5,
		TargetTemperature:  20,
		Status:             nefit.Status{BoilerIndicator: nefit.BoilerOff},
	}}
	assert.Equal(t, "[mode=auto current=19.5 target=20 boiler=off]", u.LogValue().String())
}
