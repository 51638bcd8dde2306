package status

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/clambin/nefit-monitor/internal/cmd/status/mocks"
	"github.com/clambin/nefit-monitor/internal/thermostat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

var discardLogger = slog.New(slog.DiscardHandler)

var testState = thermostat.State{
	Name:               "living room",
	CurrentTemperature: 19.5,
	TargetTemperature:  20,
	Mode:               thermostat.ModeAuto,
	OperationModes:     thermostat.OperationModes(),
	Attributes:         thermostat.Attributes{thermostat.AttrBoilerIndicator: "off"},
}

func TestShow(t *testing.T) {
	tests := []struct {
		name   string
		format string
		decode func([]byte, any) error
	}{
		{name: "yaml", format: "yaml", decode: yaml.Unmarshal},
		{name: "json", format: "json", decode: json.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			th := mocks.NewThermostat(t)
			th.EXPECT().Connect(mock.Anything).Return(nil).Once()
			th.EXPECT().Update(mock.Anything).Return(nil).Once()
			th.EXPECT().State().Return(testState, nil).Once()
			th.EXPECT().Close(mock.Anything).Return(nil).Once()

			var out bytes.Buffer
			require.NoError(t, show(t.Context(), &out, th, tt.format, discardLogger))

			var got map[string]any
			require.NoError(t, tt.decode(out.Bytes(), &got))
			assert.Equal(t, "living room", got["name"])
			assert.Equal(t, "auto", got["mode"])
			assert.Equal(t, 19.5, got["current_temperature"])
			assert.Len(t, got["operation_modes"], 3)
		})
	}
}

func TestShow_Failures(t *testing.T) {
	t.Run("invalid format", func(t *testing.T) {
		th := mocks.NewThermostat(t)
		assert.Error(t, show(t.Context(), &bytes.Buffer{}, th, "xml", discardLogger))
	})

	t.Run("connect", func(t *testing.T) {
		th := mocks.NewThermostat(t)
		th.EXPECT().Connect(mock.Anything).Return(errors.New("401 Unauthorized")).Once()
		assert.ErrorContains(t, show(t.Context(), &bytes.Buffer{}, th, "yaml", discardLogger), "nefit: 401 Unauthorized")
	})

	t.Run("update", func(t *testing.T) {
		th := mocks.NewThermostat(t)
		th.EXPECT().Connect(mock.Anything).Return(nil).Once()
		th.EXPECT().Update(mock.Anything).Return(errors.New("status: 502 Bad Gateway")).Once()
		th.EXPECT().Close(mock.Anything).Return(errors.New("not connected")).Once()
		assert.ErrorContains(t, show(t.Context(), &bytes.Buffer{}, th, "yaml", discardLogger), "update: status: 502 Bad Gateway")
	})
}
