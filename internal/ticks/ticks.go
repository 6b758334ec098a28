// Package ticks computes human-legible tick positions for numeric and time axes.
//
// Linear axes round a raw spacing to 1, 2, 2.5, 5 or 10 times a power of ten.
// Time axes first pick a calendar unit for the spacing, round the count of units
// against the unit's allowed multiples and then walk the calendar from a floored
// anchor, so ticks land on midnights, month starts and year starts even when
// months differ in length or a daylight saving shift moves local midnight.
package ticks

import (
	"time"
)

// ComputeTimeTicks returns ticks roughly approxInterval apart covering [min, max].
// Values are milliseconds since the Unix epoch divided by the time factor.
func ComputeTimeTicks(approxInterval, min, max float64, opts ...Option) (TickSequence, error) {
	c := newConfig(opts)
	if !positive(approxInterval) {
		return TickSequence{}, &InvalidIntervalError{Name: "interval", Value: approxInterval}
	}
	if err := checkRange(min, max); err != nil {
		return TickSequence{}, err
	}
	if !positive(c.timeFactor) {
		return TickSequence{}, &InvalidIntervalError{Name: "time factor", Value: c.timeFactor}
	}
	if err := checkCalendarRange(min, max, c.timeFactor); err != nil {
		return TickSequence{}, err
	}
	if err := ValidateUnits(c.units); err != nil {
		return TickSequence{}, err
	}

	sel := SelectUnit(approxInterval, c.units, NewDurations(c.timeFactor))
	return generate(c, sel.Unit, sel.Multitude(approxInterval), min, max), nil
}

// NiceDuration rounds approx to the nominal length of the tick spacing a time
// axis would use for it. Month and year spacings use their nominal durations.
func NiceDuration(approx time.Duration, opts ...Option) (time.Duration, error) {
	c := newConfig(opts)
	raw := float64(approx) / float64(time.Millisecond)
	if !positive(raw) {
		return 0, &InvalidIntervalError{Name: "interval", Value: raw}
	}
	if err := ValidateUnits(c.units); err != nil {
		return 0, err
	}
	sel := SelectUnit(raw, c.units, NewDurations(1))
	ms := sel.Multitude(raw) * sel.Duration
	return time.Duration(ms * float64(time.Millisecond)), nil
}
