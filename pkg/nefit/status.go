package nefit

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Resource paths in the thermostat's resource tree.
const (
	UIStatusPath                  = "/ecus/rrc/uiStatus"
	YearTotalPath                 = "/ecus/rrc/recordings/yearTotal"
	ActiveProgramPath             = "/ecus/rrc/userprogram/activeprogram"
	DisplayCodePath               = "/system/appliance/displaycode"
	CauseCodePath                 = "/system/appliance/causecode"
	SystemPressurePath            = "/system/appliance/systemPressure"
	OutdoorTemperaturePath        = "/system/sensors/temperatures/outdoor_t1"
	SupplyTemperaturePath         = "/heatingCircuits/hc1/actualSupplyTemperature"
	UserModePath                  = "/heatingCircuits/hc1/usermode"
	ManualRoomTemperaturePath     = "/heatingCircuits/hc1/temperatureRoomManual"
	ManualOverrideStatusPath      = "/heatingCircuits/hc1/manualTempOverride/status"
	ManualOverrideTemperaturePath = "/heatingCircuits/hc1/manualTempOverride/temperature"
	HolidayActivatedPath          = "/heatingCircuits/hc1/holidayMode/activated"
	HolidayStartPath              = "/heatingCircuits/hc1/holidayMode/start"
	HolidayEndPath                = "/heatingCircuits/hc1/holidayMode/end"
	HolidayTemperaturePath        = "/heatingCircuits/hc1/holidayMode/temperature"
)

// User modes, as reported in Status.UserMode and written to UserModePath.
const (
	UserModeManual = "manual"
	UserModeClock  = "clock"
)

// Boiler indicators, as reported in Status.BoilerIndicator.
const (
	BoilerCentralHeating = "central heating"
	BoilerHotWater       = "hot water"
	BoilerOff            = "off"
)

// Value is a single resource in the thermostat's resource tree.
type Value struct {
	ID            string `json:"id,omitempty"`
	Type          string `json:"type,omitempty"`
	Value         any    `json:"value"`
	UnitOfMeasure string `json:"unitOfMeasure,omitempty"`
}

// String returns the value as a string.
func (v Value) String() string {
	switch value := v.Value.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	default:
		return fmt.Sprint(value)
	}
}

// Float returns the value as a float64. Numbers are sometimes returned as strings, so both are accepted.
func (v Value) Float() (float64, error) {
	switch value := v.Value.(type) {
	case float64:
		return value, nil
	case json.Number:
		return value.Float64()
	case string:
		return strconv.ParseFloat(strings.TrimSpace(value), 64)
	default:
		return 0, fmt.Errorf("%s: not a number: %v", v.ID, v.Value)
	}
}

// Status is the thermostat's UI status.
type Status struct {
	UserMode                  string  `json:"user mode" yaml:"user mode"`
	ClockProgram              string  `json:"clock program" yaml:"clock program"`
	InHouseStatus             string  `json:"in house status" yaml:"in house status"`
	InHouseTemperature        float64 `json:"in house temp" yaml:"in house temp"`
	HotWaterActive            bool    `json:"hot water active" yaml:"hot water active"`
	BoilerIndicator           string  `json:"boiler indicator" yaml:"boiler indicator"`
	Control                   string  `json:"control" yaml:"control"`
	TempOverrideDuration      float64 `json:"temp override duration" yaml:"temp override duration"`
	CurrentSwitchPoint        int     `json:"current switchpoint" yaml:"current switchpoint"`
	PowerSaveActive           bool    `json:"ps active" yaml:"ps active"`
	FireplaceActive           bool    `json:"fp active" yaml:"fp active"`
	TempOverride              bool    `json:"temp override" yaml:"temp override"`
	HolidayMode               bool    `json:"holiday mode" yaml:"holiday mode"`
	BoilerBlock               bool    `json:"boiler block" yaml:"boiler block"`
	BoilerLock                bool    `json:"boiler lock" yaml:"boiler lock"`
	BoilerMaintenance         bool    `json:"boiler maintenance" yaml:"boiler maintenance"`
	TempSetpoint              float64 `json:"temp setpoint" yaml:"temp setpoint"`
	TempOverrideTempSetpoint  float64 `json:"temp override temp setpoint" yaml:"temp override temp setpoint"`
	TempManualSetpoint        float64 `json:"temp manual setpoint" yaml:"temp manual setpoint"`
	HomeEnergyDetectorEnabled bool    `json:"hed enabled" yaml:"hed enabled"`
	HomeEnergyDetectorAtHome  bool    `json:"hed device at home" yaml:"hed device at home"`
}

// uiStatus is the raw uiStatus resource. The backend abbreviates all keys and sends all values as strings.
type uiStatus struct {
	UMD    string `json:"UMD"`
	CPM    string `json:"CPM"`
	IHS    string `json:"IHS"`
	IHT    string `json:"IHT"`
	DHW    string `json:"DHW"`
	BAI    string `json:"BAI"`
	CTR    string `json:"CTR"`
	TOD    string `json:"TOD"`
	CSP    string `json:"CSP"`
	ESI    string `json:"ESI"`
	FPA    string `json:"FPA"`
	TOR    string `json:"TOR"`
	HMD    string `json:"HMD"`
	BBE    string `json:"BBE"`
	BLE    string `json:"BLE"`
	BMR    string `json:"BMR"`
	TSP    string `json:"TSP"`
	TOT    string `json:"TOT"`
	MMT    string `json:"MMT"`
	HEDEN  string `json:"HED_EN"`
	HEDDEV string `json:"HED_DEV"`
}

var boilerIndicators = map[string]string{
	"CH": BoilerCentralHeating,
	"HW": BoilerHotWater,
	"No": BoilerOff,
}

func (s uiStatus) decode() (Status, error) {
	var d decoder
	status := Status{
		UserMode:                  s.UMD,
		ClockProgram:              s.CPM,
		InHouseStatus:             s.IHS,
		InHouseTemperature:        d.float("IHT", s.IHT),
		HotWaterActive:            s.DHW == "on",
		BoilerIndicator:           s.BAI,
		Control:                   s.CTR,
		TempOverrideDuration:      d.float("TOD", s.TOD),
		CurrentSwitchPoint:        d.int("CSP", s.CSP),
		PowerSaveActive:           s.ESI == "on",
		FireplaceActive:           s.FPA == "on",
		TempOverride:              s.TOR == "on",
		HolidayMode:               s.HMD == "on",
		BoilerBlock:               s.BBE == "true",
		BoilerLock:                s.BLE == "true",
		BoilerMaintenance:         s.BMR == "true",
		TempSetpoint:              d.float("TSP", s.TSP),
		TempOverrideTempSetpoint:  d.float("TOT", s.TOT),
		TempManualSetpoint:        d.float("MMT", s.MMT),
		HomeEnergyDetectorEnabled: s.HEDEN == "true",
		HomeEnergyDetectorAtHome:  s.HEDDEV == "true",
	}
	if indicator, ok := boilerIndicators[s.BAI]; ok {
		status.BoilerIndicator = indicator
	}
	return status, d.err
}

// decoder parses numeric uiStatus fields, remembering the first error. Empty fields decode as zero.
type decoder struct {
	err error
}

func (d *decoder) float(key, value string) float64 {
	if value == "" || d.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		d.err = fmt.Errorf("uiStatus: %s: %w", key, err)
	}
	return f
}

func (d *decoder) int(key, value string) int {
	if value == "" || d.err != nil {
		return 0
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		d.err = fmt.Errorf("uiStatus: %s: %w", key, err)
	}
	return i
}

// DisplayCode is the code shown on the boiler's display.
type DisplayCode struct {
	Code        string `json:"code" yaml:"code"`
	Cause       string `json:"cause" yaml:"cause"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

var displayCodeDescriptions = map[string]string{
	"-H":  "central heating active",
	"=H":  "hot water active",
	"0C":  "system starting",
	"0L":  "system starting",
	"0U":  "system starting",
	"0E":  "system waiting",
	"0H":  "system standby",
	"0A":  "system waiting (boiler cannot transfer heat to central heating)",
	"0Y":  "system waiting (boiler cannot transfer heat to central heating)",
	"2E":  "boiler water pressure too low",
	"H07": "boiler water pressure too low",
	"2F":  "sensors measured abnormal temperature",
	"2L":  "sensors measured abnormal temperature",
	"2P":  "sensors measured abnormal temperature",
	"2U":  "sensors measured abnormal temperature",
	"4F":  "sensors measured abnormal temperature",
	"4L":  "sensors measured abnormal temperature",
	"6A":  "burner doesn't ignite",
	"6C":  "burner doesn't ignite",
	"rE":  "system restarting",
}
