package thermostat

import (
	"context"
	"errors"
	"fmt"
	"math"
)

// Supported set point range, in degrees Celsius.
const (
	MinTemperature = 5.0
	MaxTemperature = 30.0
)

// ErrInvalidTemperature is returned when a set point is outside [MinTemperature, MaxTemperature].
var ErrInvalidTemperature = errors.New("invalid temperature")

// pending holds a value that is read at most once.
type pending[T any] struct {
	value T
	set   bool
}

func (p *pending[T]) Set(value T) {
	p.value = value
	p.set = true
}

// Take returns the pending value and clears it.
func (p *pending[T]) Take() (T, bool) {
	value, ok := p.value, p.set
	var zero T
	p.value, p.set = zero, false
	return value, ok
}

// SetTemperature sets a new target temperature. As the backend takes a while to report the new set point,
// the next read of the target temperature returns the requested temperature, rather than the polled one.
func (t *Thermostat) SetTemperature(ctx context.Context, temperature float64) error {
	if math.IsNaN(temperature) || temperature < MinTemperature || temperature > MaxTemperature {
		return fmt.Errorf("%w: %.1f (must be between %.0f and %.0f)", ErrInvalidTemperature, temperature, MinTemperature, MaxTemperature)
	}

	t.lock.Lock()
	defer t.lock.Unlock()

	t.logger.Debug("setting temperature", "temperature", temperature)
	if err := t.session.SetTemperature(ctx, temperature); err != nil {
		return fmt.Errorf("set temperature: %w", err)
	}
	t.override.Set(temperature)
	return nil
}

// TargetTemperature returns the target temperature. If a set point was just written, that value is returned once.
func (t *Thermostat) TargetTemperature() float64 {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.targetTemperature()
}

func (t *Thermostat) targetTemperature() float64 {
	if temperature, ok := t.override.Take(); ok {
		return temperature
	}
	return t.status.TempSetpoint
}
