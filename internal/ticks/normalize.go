package ticks

import (
	"math"
	"strconv"
)

// decimalMultiples is the default table for linear axes.
var decimalMultiples = []float64{1, 2, 2.5, 5, 10}

// integerMultiples replaces decimalMultiples when decimals are not allowed.
var integerMultiples = []float64{1, 2, 5, 10}

// NormalizeOptions controls NormalizeInterval.
type NormalizeOptions struct {
	// Multiples is the ordered table of acceptable multiples. A nil table selects
	// 1, 2, 2.5, 5 and 10; a non-nil empty table is an error.
	Multiples []float64

	// Magnitude scales the table. Zero means 1.
	Magnitude float64

	// NoDecimals suppresses 2.5 at magnitude 1 and forces integer results at
	// magnitudes of 0.1 and below. It only applies to the default table.
	NoDecimals bool
}

// NormalizeInterval rounds interval to the nearest multiple of the table scaled by
// the magnitude.
func NormalizeInterval(interval float64, opts NormalizeOptions) (float64, error) {
	if !positive(interval) {
		return 0, &InvalidIntervalError{Name: "interval", Value: interval}
	}
	magnitude := opts.Magnitude
	if magnitude == 0 {
		magnitude = 1
	}
	if !positive(magnitude) {
		return 0, &InvalidIntervalError{Name: "magnitude", Value: magnitude}
	}
	if opts.Multiples != nil {
		if err := validateMultiples(opts.Multiples); err != nil {
			return 0, err
		}
	}
	return normalize(interval, opts.Multiples, magnitude, !opts.NoDecimals), nil
}

// normalize picks the first multiple whose midpoint with its successor is not
// below interval/magnitude. The last multiple is the backstop.
func normalize(interval float64, multiples []float64, magnitude float64, allowDecimals bool) float64 {
	normalized := interval / magnitude

	if multiples == nil {
		multiples = decimalMultiples
		if !allowDecimals {
			if magnitude == 1 {
				multiples = integerMultiples
			} else if magnitude <= 0.1 {
				multiples = []float64{1 / magnitude}
			}
		}
	}
	if len(multiples) == 0 {
		return interval
	}

	selected := multiples[len(multiples)-1]
	for i, m := range multiples {
		next := m
		if i+1 < len(multiples) {
			next = multiples[i+1]
		}
		if normalized <= (m+next)/2 {
			selected = m
			break
		}
	}
	return selected * magnitude
}

// Magnitude returns the power of ten at or below x.
func Magnitude(x float64) float64 {
	return math.Pow(10, math.Floor(math.Log10(x)))
}

// correctFloat strips binary rounding noise by keeping 14 significant digits.
func correctFloat(v float64) float64 {
	f, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 14, 64), 64)
	if err != nil {
		return v
	}
	return f
}

func validateMultiples(multiples []float64) error {
	if len(multiples) == 0 {
		return ErrEmptyMultiples
	}
	for _, m := range multiples {
		if !positive(m) {
			return ErrEmptyMultiples
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
