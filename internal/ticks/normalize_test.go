package ticks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var hourMultiples = []float64{1, 2, 3, 4, 6, 8, 12}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name          string
		interval      float64
		multiples     []float64
		magnitude     float64
		allowDecimals bool
		want          float64
	}{
		{"midpoint between 2.5 and 5", 3, nil, 1, true, 2.5},
		{"exactly on midpoint keeps lower", 5, hourMultiples, 1, true, 4},
		{"small value picks first", 0.2, nil, 1, true, 1},
		{"large value hits backstop", 50, nil, 1, true, 10},
		{"scaled by magnitude", 30, nil, 10, true, 25},
		{"no decimals at magnitude one", 3, nil, 1, false, 2},
		{"no decimals upper range", 7, nil, 1, false, 5},
		{"no decimals small magnitude forces integer", 0.03, nil, 0.01, false, 1},
		{"no decimals leaves other magnitudes alone", 30, nil, 10, false, 25},
		{"single element", 100, []float64{3}, 1, true, 3},
		{"single element below", 0.1, []float64{3}, 1, true, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := normalize(tt.interval, tt.multiples, tt.magnitude, tt.allowDecimals)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	tables := map[string][]float64{
		"default": nil,
		"hours":   hourMultiples,
		"ms":      DefaultUnits()[0].Multiples,
	}
	for name, multiples := range tables {
		for _, magnitude := range []float64{1, 1000} {
			for _, x := range []float64{0.3, 1, 1.7, 3, 4.4, 7, 9, 12, 40, 333} {
				once := normalize(x*magnitude, multiples, magnitude, true)
				twice := normalize(once, multiples, magnitude, true)
				assert.Equal(t, once, twice, "%s table, magnitude %v, x %v", name, magnitude, x)
			}
		}
	}
}

func TestNormalizeRespectsMultiples(t *testing.T) {
	for _, x := range []float64{0.1, 0.9, 1.5, 2.6, 5, 5.01, 7.5, 9.9, 11, 100} {
		got := normalize(x*1000, hourMultiples, 1000, true) / 1000
		assert.Contains(t, hourMultiples, got, "x = %v", x)
	}
}

func TestNormalizeSuppressesDecimals(t *testing.T) {
	for x := 0.1; x < 20; x += 0.05 {
		got := normalize(x, nil, 1, false)
		assert.NotEqual(t, 2.5, got, "normalize(%v) without decimals", x)
	}
}

func TestNormalizeInterval(t *testing.T) {
	t.Run("defaults magnitude to one", func(t *testing.T) {
		got, err := NormalizeInterval(3, NormalizeOptions{})
		require.NoError(t, err)
		assert.Equal(t, 2.5, got)
	})

	t.Run("explicit multiples", func(t *testing.T) {
		got, err := NormalizeInterval(5, NormalizeOptions{Multiples: hourMultiples})
		require.NoError(t, err)
		assert.Equal(t, 4.0, got)
	})

	t.Run("empty multiples are rejected", func(t *testing.T) {
		_, err := NormalizeInterval(5, NormalizeOptions{Multiples: []float64{}})
		assert.ErrorIs(t, err, ErrEmptyMultiples)
	})

	t.Run("non-positive multiple is rejected", func(t *testing.T) {
		_, err := NormalizeInterval(5, NormalizeOptions{Multiples: []float64{1, 0}})
		assert.ErrorIs(t, err, ErrEmptyMultiples)
	})

	invalid := []struct {
		name     string
		interval float64
		opts     NormalizeOptions
	}{
		{"zero interval", 0, NormalizeOptions{}},
		{"negative interval", -1, NormalizeOptions{}},
		{"NaN interval", math.NaN(), NormalizeOptions{}},
		{"infinite interval", math.Inf(1), NormalizeOptions{}},
		{"negative magnitude", 1, NormalizeOptions{Magnitude: -10}},
	}
	for _, tt := range invalid {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NormalizeInterval(tt.interval, tt.opts)
			var ie *InvalidIntervalError
			assert.ErrorAs(t, err, &ie)
		})
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		x    float64
		want float64
	}{
		{1, 1},
		{9.99, 1},
		{10, 10},
		{23, 10},
		{0.3, 0.1},
		{4500, 1000},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, Magnitude(tt.x), 1e-12, "Magnitude(%v)", tt.x)
	}
}
