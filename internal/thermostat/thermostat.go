package thermostat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/clambin/nefit-monitor/pkg/nefit"
)

// Session is the vendor session used by the Thermostat. nefit.Client implements it.
type Session interface {
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	GetStatus(ctx context.Context) (nefit.Status, error)
	GetYearTotal(ctx context.Context) (nefit.Value, error)
	GetDisplayCode(ctx context.Context) (nefit.DisplayCode, error)
	Get(ctx context.Context, path string) (nefit.Value, error)
	Put(ctx context.Context, path string, value any) error
	SetTemperature(ctx context.Context, temperature float64) error
}

// Configuration holds the thermostat's static settings.
type Configuration struct {
	Name               string
	HolidayTemperature float64
	HolidayDuration    int // days
}

// Thermostat adapts a Session to a climate device: it keeps the last polled state, masks the backend's propagation
// delay after a set point is written and drives the manual / auto / holiday modes.
type Thermostat struct {
	session     Session
	cfg         Configuration
	logger      *slog.Logger
	lock        sync.Mutex
	status      nefit.Status
	yearTotal   nefit.Value
	attributes  Attributes
	updated     time.Time
	holiday     bool
	// holidaySent is set while the backend hasn't yet reported a holiday transition written by SetMode.
	holidaySent bool
	override    pending[float64]
	errorCount  int
	initialized bool
}

// New returns a Thermostat for the provided session.
func New(session Session, cfg Configuration, logger *slog.Logger) *Thermostat {
	return &Thermostat{
		session: session,
		cfg:     cfg,
		logger:  logger,
	}
}

// Connect sets up the vendor session.
func (t *Thermostat) Connect(ctx context.Context) error {
	t.logger.Debug("connecting", "name", t.cfg.Name)
	return t.session.Connect(ctx)
}

// Close tears down the vendor session.
func (t *Thermostat) Close(ctx context.Context) error {
	t.logger.Debug("shutting down")
	return t.session.Disconnect(ctx)
}

// Update polls the thermostat. The snapshot & attributes are only replaced if all reads succeed.
// On failure, the previous snapshot is kept and the error counter is incremented.
func (t *Thermostat) Update(ctx context.Context) error {
	t.lock.Lock()
	defer t.lock.Unlock()

	status, yearTotal, attributes, err := t.poll(ctx)
	if err != nil {
		t.errorCount++
		return err
	}

	t.status = status
	t.yearTotal = yearTotal
	t.attributes = attributes
	t.syncHoliday(status.HolidayMode)
	t.updated = time.Now()
	t.errorCount = 0
	t.initialized = true
	t.logger.Debug("update finished", "status", status, "yearTotal", yearTotal.String())
	return nil
}

// syncHoliday picks up holidays started or ended outside of SetMode. After SetMode, the backend's holiday flag is
// ignored until it reports the same state.
func (t *Thermostat) syncHoliday(backend bool) {
	if t.holidaySent {
		if backend != t.holiday {
			return
		}
		t.holidaySent = false
	}
	t.holiday = backend
}

func (t *Thermostat) poll(ctx context.Context) (nefit.Status, nefit.Value, Attributes, error) {
	status, err := t.session.GetStatus(ctx)
	if err != nil {
		return nefit.Status{}, nefit.Value{}, nil, fmt.Errorf("status: %w", err)
	}
	yearTotal, err := t.session.GetYearTotal(ctx)
	if err != nil {
		return nefit.Status{}, nefit.Value{}, nil, fmt.Errorf("year total: %w", err)
	}

	attributes := Attributes{
		AttrConnectionState:        "connected",
		AttrBoilerIndicator:        status.BoilerIndicator,
		AttrControl:                status.Control,
		AttrHotWaterActive:         status.HotWaterActive,
		AttrHolidayMode:            status.HolidayMode,
		AttrYearTotalUnitOfMeasure: yearTotal.UnitOfMeasure,
	}
	if attributes[AttrYearTotal], err = yearTotal.Float(); err != nil {
		return nefit.Status{}, nefit.Value{}, nil, fmt.Errorf("year total: %w", err)
	}

	for _, read := range []struct {
		attribute string
		path      string
	}{
		{attribute: AttrSystemPressure, path: nefit.SystemPressurePath},
		{attribute: AttrSupplyTemperature, path: nefit.SupplyTemperaturePath},
		{attribute: AttrOutdoorTemperature, path: nefit.OutdoorTemperaturePath},
	} {
		value, err := t.session.Get(ctx, read.path)
		if err == nil {
			attributes[read.attribute], err = value.Float()
		}
		if err != nil {
			return nefit.Status{}, nefit.Value{}, nil, fmt.Errorf("%s: %w", read.attribute, err)
		}
	}

	program, err := t.session.Get(ctx, nefit.ActiveProgramPath)
	if err != nil {
		return nefit.Status{}, nefit.Value{}, nil, fmt.Errorf("%s: %w", AttrActiveProgram, err)
	}
	attributes[AttrActiveProgram] = program.String()

	displayCode, err := t.session.GetDisplayCode(ctx)
	if err != nil {
		return nefit.Status{}, nefit.Value{}, nil, fmt.Errorf("%s: %w", AttrDisplayCode, err)
	}
	attributes[AttrDisplayCode] = displayCode.Code
	attributes[AttrCauseCode] = displayCode.Cause

	return status, yearTotal, attributes, nil
}

// State is a point-in-time view of the thermostat.
type State struct {
	Name               string       `json:"name" yaml:"name"`
	Updated            time.Time    `json:"updated" yaml:"updated"`
	CurrentTemperature float64      `json:"current_temperature" yaml:"current_temperature"`
	TargetTemperature  float64      `json:"target_temperature" yaml:"target_temperature"`
	Mode               Mode         `json:"mode" yaml:"mode"`
	OperationModes     []Mode       `json:"operation_modes" yaml:"operation_modes"`
	Attributes         Attributes   `json:"attributes" yaml:"attributes"`
	Status             nefit.Status `json:"status" yaml:"status"`
	ErrorCount         int          `json:"error_count" yaml:"error_count"`
}

// ErrNotUpdated is returned by State if the thermostat hasn't been polled successfully yet.
var ErrNotUpdated = errors.New("no update yet")

// State returns the thermostat's current state. Reading the state reads the target temperature,
// so it consumes any pending set point override.
func (t *Thermostat) State() (State, error) {
	t.lock.Lock()
	defer t.lock.Unlock()

	if !t.initialized {
		return State{}, ErrNotUpdated
	}

	return State{
		Name:               t.cfg.Name,
		Updated:            t.updated,
		CurrentTemperature: t.status.InHouseTemperature,
		TargetTemperature:  t.targetTemperature(),
		Mode:               t.mode(),
		OperationModes:     OperationModes(),
		Attributes:         t.attributes.clone(),
		Status:             t.status,
		ErrorCount:         t.errorCount,
	}, nil
}

// Name returns the thermostat's name.
func (t *Thermostat) Name() string {
	return t.cfg.Name
}

// CurrentTemperature returns the room temperature from the last successful poll.
func (t *Thermostat) CurrentTemperature() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.status.InHouseTemperature
}

// Attributes returns the device specific attributes from the last successful poll.
func (t *Thermostat) Attributes() Attributes {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.attributes.clone()
}

// ErrorCount returns the number of consecutive failed polls.
func (t *Thermostat) ErrorCount() int {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.errorCount
}
