package ticks

import (
	"fmt"
	"strings"
)

// Unit is a calendar unit a time axis can be divided into.
type Unit int

const (
	Millisecond Unit = iota
	Second
	Minute
	Hour
	Day
	Week
	Month
	Year
)

const numUnits = int(Year) + 1

var unitNames = [numUnits]string{
	Millisecond: "millisecond",
	Second:      "second",
	Minute:      "minute",
	Hour:        "hour",
	Day:         "day",
	Week:        "week",
	Month:       "month",
	Year:        "year",
}

func (u Unit) String() string {
	if u < Millisecond || u > Year {
		return "Unknown"
	}
	return unitNames[u]
}

// ParseUnit parses a unit name such as "hour" or "week".
func ParseUnit(s string) (Unit, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for u, name := range unitNames {
		if s == name {
			return Unit(u), nil
		}
	}
	return 0, fmt.Errorf("unknown time unit %q", s)
}

func (u Unit) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

func (u *Unit) UnmarshalText(text []byte) error {
	parsed, err := ParseUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}

// Layout returns the time.Format layout used for tick labels of this unit.
func (u Unit) Layout() string {
	switch u {
	case Millisecond:
		return "15:04:05.000"
	case Second:
		return "15:04:05"
	case Minute, Hour:
		return "15:04"
	case Day, Week:
		return "2 Jan"
	case Month:
		return "Jan 2006"
	default:
		return "2006"
	}
}

// TimeUnit is one row of a unit table.
type TimeUnit struct {
	Unit Unit `json:"unit" yaml:"unit"`

	// Multiples lists the allowed counts of Unit between ticks, ascending.
	// Nil means decimal normalization (1, 2, 5, 10 times a power of ten).
	Multiples []float64 `json:"multiples" yaml:"multiples"`
}

// DefaultUnits returns a fresh copy of the standard millisecond to year table.
func DefaultUnits() []TimeUnit {
	return []TimeUnit{
		{Unit: Millisecond, Multiples: []float64{1, 2, 5, 10, 20, 25, 50, 100, 200, 500}},
		{Unit: Second, Multiples: []float64{1, 2, 5, 10, 15, 30}},
		{Unit: Minute, Multiples: []float64{1, 2, 5, 10, 15, 30}},
		{Unit: Hour, Multiples: []float64{1, 2, 3, 4, 6, 8, 12}},
		{Unit: Day, Multiples: []float64{1, 2}},
		{Unit: Week, Multiples: []float64{1, 2}},
		{Unit: Month, Multiples: []float64{1, 2, 3, 4, 6}},
		{Unit: Year, Multiples: nil},
	}
}

// Durations holds the nominal duration of every unit in axis value units.
// Month and Year are approximations used only to compare intervals.
type Durations [numUnits]float64

const (
	msSecond = 1000.0
	msMinute = 60 * msSecond
	msHour   = 60 * msMinute
	msDay    = 24 * msHour
	msWeek   = 7 * msDay
	msMonth  = 30 * msDay
	msYear   = 31556952000.0 // 365.2425 days
)

// NewDurations returns the duration table for axes whose values are milliseconds
// divided by timeFactor.
func NewDurations(timeFactor float64) Durations {
	if timeFactor == 0 {
		timeFactor = 1
	}
	return Durations{
		Millisecond: 1 / timeFactor,
		Second:      msSecond / timeFactor,
		Minute:      msMinute / timeFactor,
		Hour:        msHour / timeFactor,
		Day:         msDay / timeFactor,
		Week:        msWeek / timeFactor,
		Month:       msMonth / timeFactor,
		Year:        msYear / timeFactor,
	}
}

// Of returns the nominal duration of u.
func (d Durations) Of(u Unit) float64 {
	return d[u]
}

// ValidateUnits checks that units ascend in duration, that every row but the last
// has multiples and that the table ends with Year.
func ValidateUnits(units []TimeUnit) error {
	if len(units) == 0 {
		return fmt.Errorf("%w: no units", ErrInvalidUnitTable)
	}
	for i, u := range units {
		if u.Unit < Millisecond || u.Unit > Year {
			return fmt.Errorf("%w: unknown unit %d", ErrInvalidUnitTable, int(u.Unit))
		}
		if i > 0 && u.Unit <= units[i-1].Unit {
			return fmt.Errorf("%w: %s follows %s", ErrInvalidUnitTable, u.Unit, units[i-1].Unit)
		}
		if u.Multiples != nil {
			if err := validateMultiples(u.Multiples); err != nil {
				return fmt.Errorf("%w: %s: %v", ErrInvalidUnitTable, u.Unit, err)
			}
		} else if i < len(units)-1 {
			return fmt.Errorf("%w: %s has no multiples", ErrInvalidUnitTable, u.Unit)
		}
	}
	if last := units[len(units)-1].Unit; last != Year {
		return fmt.Errorf("%w: table ends with %s", ErrInvalidUnitTable, last)
	}
	return nil
}
