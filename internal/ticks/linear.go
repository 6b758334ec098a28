package ticks

import "math"

// LinearSequence holds evenly spaced ticks of a numeric axis.
type LinearSequence struct {
	Positions []float64 `json:"positions" yaml:"positions"`
	Interval  float64   `json:"interval" yaml:"interval"`
}

// LinearTicks normalizes approxInterval against its power of ten and returns the
// multiples of the result from the last one at or below min to the first one at
// or above max. opts.Magnitude is ignored.
func LinearTicks(approxInterval, min, max float64, opts NormalizeOptions) (LinearSequence, error) {
	if !positive(approxInterval) {
		return LinearSequence{}, &InvalidIntervalError{Name: "interval", Value: approxInterval}
	}
	if err := checkRange(min, max); err != nil {
		return LinearSequence{}, err
	}
	if opts.Multiples != nil {
		if err := validateMultiples(opts.Multiples); err != nil {
			return LinearSequence{}, err
		}
	}

	interval := correctFloat(normalize(approxInterval, opts.Multiples, Magnitude(approxInterval), !opts.NoDecimals))
	var (
		first = correctFloat(math.Floor(min/interval) * interval)
		last  = correctFloat(math.Ceil(max/interval) * interval)
		n     = int(math.Round((last-first)/interval)) + 1
	)
	positions := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		positions = append(positions, correctFloat(first+float64(i)*interval))
	}
	return LinearSequence{Positions: positions, Interval: interval}, nil
}

// ApproxInterval splits [min, max] into count equal parts.
func ApproxInterval(min, max float64, count int) float64 {
	if count < 1 {
		count = 1
	}
	return (max - min) / float64(count)
}
