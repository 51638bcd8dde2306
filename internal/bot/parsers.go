package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/clambin/nefit-monitor/internal/thermostat"
)

func parseTemperature(args ...string) (float64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("missing parameter\nUsage: temperature <temperature>")
	}
	temperature, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "ºC"), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid target temperature: %q", args[0])
	}
	return temperature, nil
}

func parseMode(args ...string) (thermostat.Mode, error) {
	if len(args) != 1 {
		return thermostat.ModeUnknown, fmt.Errorf("missing parameter\nUsage: mode [auto|manual|holiday]")
	}
	return thermostat.ParseMode(args[0])
}
