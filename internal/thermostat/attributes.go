package thermostat

import (
	"log/slog"
	"maps"
	"slices"
)

// Attribute names exposed in Attributes.
const (
	AttrConnectionState        = "connection_state"
	AttrBoilerIndicator        = "boiler_indicator"
	AttrControl                = "control"
	AttrActiveProgram          = "active_program"
	AttrSystemPressure         = "system_pressure"
	AttrSupplyTemperature      = "supply_temperature"
	AttrOutdoorTemperature     = "outdoor_temperature"
	AttrDisplayCode            = "display_code"
	AttrCauseCode              = "cause_code"
	AttrHotWaterActive         = "hot_water_active"
	AttrHolidayMode            = "holiday_mode"
	AttrYearTotal              = "year_total"
	AttrYearTotalUnitOfMeasure = "year_total_unit_of_measure"
)

// Attributes are the device specific state attributes.
type Attributes map[string]any

// Float returns the named attribute as a float64.
func (a Attributes) Float(name string) (float64, bool) {
	f, ok := a[name].(float64)
	return f, ok
}

// String returns the named attribute as a string.
func (a Attributes) String(name string) (string, bool) {
	s, ok := a[name].(string)
	return s, ok
}

// Bool returns the named attribute as a bool.
func (a Attributes) Bool(name string) (bool, bool) {
	b, ok := a[name].(bool)
	return b, ok
}

func (a Attributes) clone() Attributes {
	if a == nil {
		return nil
	}
	return maps.Clone(a)
}

func (a Attributes) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(a))
	for _, name := range slices.Sorted(maps.Keys(a)) {
		attrs = append(attrs, slog.Any(name, a[name]))
	}
	return slog.GroupValue(attrs...)
}
