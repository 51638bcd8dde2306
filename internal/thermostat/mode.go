package thermostat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/clambin/go-common/set"
	"github.com/clambin/nefit-monitor/pkg/nefit"
)

// Mode is the thermostat's operating mode.
type Mode string

const (
	ModeUnknown Mode = ""
	ModeAuto    Mode = "auto"
	ModeManual  Mode = "manual"
	ModeHoliday Mode = "holiday"
)

var validModes = set.New(ModeAuto, ModeManual, ModeHoliday)

// ErrInvalidMode is returned for an unsupported operating mode.
var ErrInvalidMode = errors.New("invalid mode")

// ParseMode converts a string to a Mode.
func ParseMode(s string) (Mode, error) {
	mode := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !validModes.Contains(mode) {
		return ModeUnknown, fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
	return mode, nil
}

// OperationModes returns the supported operating modes.
func OperationModes() []Mode {
	return []Mode{ModeAuto, ModeManual, ModeHoliday}
}

// DateFormat is the layout of the holiday mode's start & end dates.
const DateFormat = "2006-01-02T15:04:05"

// Mode returns the current operating mode.
func (t *Thermostat) Mode() Mode {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.mode()
}

func (t *Thermostat) mode() Mode {
	if t.holiday {
		return ModeHoliday
	}
	switch t.status.UserMode {
	case nefit.UserModeManual:
		return ModeManual
	case nefit.UserModeClock:
		return ModeAuto
	default:
		return ModeUnknown
	}
}

// SetMode switches the thermostat to the requested operating mode. A mode switch may take several writes to
// the backend. These are not atomic: if one fails, the writes up to that point remain in effect.
func (t *Thermostat) SetMode(ctx context.Context, mode Mode) error {
	if !validModes.Contains(mode) {
		return fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.logger.Debug("setting mode", "mode", mode, "current", t.mode())

	if mode == ModeHoliday {
		return t.startHoliday(ctx)
	}

	if t.holiday {
		if err := t.session.Put(ctx, nefit.HolidayActivatedPath, "off"); err != nil {
			return fmt.Errorf("holiday mode: %w", err)
		}
		t.holiday = false
		t.holidaySent = true
	}

	userMode := nefit.UserModeClock
	if mode == ModeManual {
		userMode = nefit.UserModeManual
	}
	if err := t.session.Put(ctx, nefit.UserModePath, userMode); err != nil {
		return fmt.Errorf("user mode: %w", err)
	}
	return nil
}

func (t *Thermostat) startHoliday(ctx context.Context) error {
	if t.status.UserMode == nefit.UserModeManual {
		if err := t.session.Put(ctx, nefit.UserModePath, nefit.UserModeClock); err != nil {
			return fmt.Errorf("user mode: %w", err)
		}
	}

	start, err := t.session.Get(ctx, nefit.HolidayStartPath)
	if err != nil {
		return fmt.Errorf("holiday start: %w", err)
	}
	_, end, err := holidayWindow(start.String(), t.cfg.HolidayDuration)
	if err != nil {
		return fmt.Errorf("holiday start: %w", err)
	}

	for _, write := range []struct {
		path  string
		value any
	}{
		{path: nefit.HolidayActivatedPath, value: "on"},
		{path: nefit.HolidayTemperaturePath, value: t.cfg.HolidayTemperature},
		{path: nefit.HolidayEndPath, value: end.Format(DateFormat)},
	} {
		if err = t.session.Put(ctx, write.path, write.value); err != nil {
			return fmt.Errorf("holiday mode: %w", err)
		}
	}

	t.holiday = true
	t.holidaySent = true
	t.override.Set(t.cfg.HolidayTemperature)
	t.logger.Info("holiday mode started", "end", end.Format(DateFormat), "temperature", t.cfg.HolidayTemperature)
	return nil
}

// holidayWindow parses the holiday's start date and returns the end date, the given number of days later.
func holidayWindow(startDate string, days int) (time.Time, time.Time, error) {
	start, err := time.Parse(DateFormat, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, days), nil
}
