package ticks

import (
	"math"
	"time"
)

// maxCalendarMs bounds the instants a time axis may span, 100 million days either
// side of the epoch.
const maxCalendarMs = 8.64e15

// TickSequence is an ascending list of tick positions in axis value units.
type TickSequence struct {
	Positions []float64 `json:"positions" yaml:"positions"`
	Unit      TimeUnit  `json:"unit" yaml:"unit"`
	Multitude float64   `json:"multitude" yaml:"multitude"`

	location   *time.Location
	timeFactor float64
}

// Len returns the number of ticks.
func (s TickSequence) Len() int {
	return len(s.Positions)
}

// Location returns the zone the sequence was computed in.
func (s TickSequence) Location() *time.Location {
	if s.location == nil {
		return time.UTC
	}
	return s.location
}

// Times converts the positions to instants in the zone the sequence was built in.
func (s TickSequence) Times() []time.Time {
	loc := s.Location()
	factor := s.timeFactor
	if factor == 0 {
		factor = 1
	}
	out := make([]time.Time, len(s.Positions))
	for i, p := range s.Positions {
		out[i] = fromValue(p, factor, loc)
	}
	return out
}

// Labels formats every tick with the layout of the sequence's unit.
func (s TickSequence) Labels() []string {
	layout := s.Unit.Unit.Layout()
	times := s.Times()
	out := make([]string, len(times))
	for i, t := range times {
		out[i] = t.Format(layout)
	}
	return out
}

// fields is a calendar reading of an instant, without sub-second precision.
type fields struct {
	year   int
	month  time.Month
	day    int
	hour   int
	minute int
	second int
}

func fieldsOf(t time.Time) fields {
	return fields{
		year:   t.Year(),
		month:  t.Month(),
		day:    t.Day(),
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
	}
}

func (f fields) in(loc *time.Location) time.Time {
	return time.Date(f.year, f.month, f.day, f.hour, f.minute, f.second, 0, loc)
}

// floorTo rounds v down to a multiple of m.
func floorTo(v int, m float64) int {
	return int(m * math.Floor(float64(v)/m))
}

// anchor floors t to the boundary ticks of unit and multitude start from. Fields
// finer than unit are reset, the field of unit is floored to a multiple of
// multitude and coarser fields are kept. Weeks are then moved back to startOfWeek.
func anchor(t time.Time, unit Unit, multitude float64, startOfWeek time.Weekday) time.Time {
	f := fieldsOf(t)

	if unit >= Second {
		if unit >= Minute {
			f.second = 0
		} else {
			f.second = floorTo(f.second, multitude)
		}
	}
	if unit >= Minute {
		if unit >= Hour {
			f.minute = 0
		} else {
			f.minute = floorTo(f.minute, multitude)
		}
	}
	if unit >= Hour {
		if unit >= Day {
			f.hour = 0
		} else {
			f.hour = floorTo(f.hour, multitude)
		}
	}
	if unit >= Day {
		if unit >= Month {
			f.day = 1
		} else {
			f.day = floorTo(f.day, multitude)
		}
	}
	if unit >= Month {
		if unit >= Year {
			f.month = time.January
		} else {
			f.month = time.Month(floorTo(int(f.month)-1, multitude) + 1)
		}
	}
	if unit >= Year {
		f.year = floorTo(f.year, multitude)
	}

	a := f.in(t.Location())
	if unit == Week {
		back := (int(a.Weekday()) - int(startOfWeek) + 7) % 7
		f = fieldsOf(a)
		f.day -= back
		a = f.in(t.Location())
	}
	return a
}

// Generate floors min to a boundary of unit and walks forward in steps of
// multitude units until a tick at or past max has been added.
func Generate(unit Unit, multitude, min, max float64, opts ...Option) (TickSequence, error) {
	c := newConfig(opts)
	if err := checkRange(min, max); err != nil {
		return TickSequence{}, err
	}
	if !positive(multitude) {
		return TickSequence{}, &InvalidIntervalError{Name: "multitude", Value: multitude}
	}
	if !positive(c.timeFactor) {
		return TickSequence{}, &InvalidIntervalError{Name: "time factor", Value: c.timeFactor}
	}
	if err := checkCalendarRange(min, max, c.timeFactor); err != nil {
		return TickSequence{}, err
	}
	if unit < Millisecond || unit > Year {
		return TickSequence{}, ErrInvalidUnitTable
	}
	return generate(c, TimeUnit{Unit: unit}, multitude, min, max), nil
}

func generate(c config, unit TimeUnit, multitude, min, max float64) TickSequence {
	var (
		durations = NewDurations(c.timeFactor)
		loc       = c.location
		start     = anchor(fromValue(min, c.timeFactor, loc), unit.Unit, multitude, c.startOfWeek)
		f         = fieldsOf(start)
		step      = calendarStep(multitude)
		positions []float64
	)

	value := toValue(start, c.timeFactor)
	for i := 1; value < max; i++ {
		positions = append(positions, value)

		switch {
		case unit.Unit == Year:
			value = toValue(time.Date(f.year+i*step, time.January, 1, 0, 0, 0, 0, loc), c.timeFactor)
		case unit.Unit == Month:
			value = toValue(time.Date(f.year, f.month+time.Month(i*step), 1, 0, 0, 0, 0, loc), c.timeFactor)
		case !c.utc && unit.Unit == Day:
			value = toValue(time.Date(f.year, f.month, f.day+i*step, 0, 0, 0, 0, loc), c.timeFactor)
		case !c.utc && unit.Unit == Week:
			value = toValue(time.Date(f.year, f.month, f.day+i*step*7, 0, 0, 0, 0, loc), c.timeFactor)
		default:
			value += multitude * durations.Of(unit.Unit)
		}
	}
	positions = append(positions, value)

	return TickSequence{
		Positions:  positions,
		Unit:       unit,
		Multitude:  multitude,
		location:   loc,
		timeFactor: c.timeFactor,
	}
}

// calendarStep is the whole number of calendar units one tick spans.
func calendarStep(multitude float64) int {
	step := int(math.Round(multitude))
	if step < 1 {
		return 1
	}
	return step
}

func checkRange(min, max float64) error {
	if !finite(min) || !finite(max) || max <= min {
		return &InvalidRangeError{Min: min, Max: max}
	}
	return nil
}

// checkCalendarRange rejects ranges outside ±maxCalendarMs once scaled to milliseconds.
func checkCalendarRange(min, max, factor float64) error {
	if math.Abs(min*factor) > maxCalendarMs || math.Abs(max*factor) > maxCalendarMs {
		return &InvalidRangeError{Min: min, Max: max}
	}
	return nil
}

func toValue(t time.Time, factor float64) float64 {
	ms := float64(t.Unix())*msSecond + float64(t.Nanosecond())/float64(time.Millisecond)
	return ms / factor
}

func fromValue(v, factor float64, loc *time.Location) time.Time {
	ms := v * factor
	sec := math.Floor(ms / msSecond)
	nsec := math.Round((ms - sec*msSecond) * float64(time.Millisecond))
	return time.Unix(int64(sec), int64(nsec)).In(loc)
}
