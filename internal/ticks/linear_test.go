package ticks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearTicks(t *testing.T) {
	tests := []struct {
		name         string
		approx       float64
		min, max     float64
		opts         NormalizeOptions
		wantInterval float64
		want         []float64
	}{
		{
			name:   "tens",
			approx: 23, min: 0, max: 100,
			wantInterval: 25,
			want:         []float64{0, 25, 50, 75, 100},
		},
		{
			name:   "decimals",
			approx: 0.3, min: 0.05, max: 1.02,
			wantInterval: 0.25,
			want:         []float64{0, 0.25, 0.5, 0.75, 1, 1.25},
		},
		{
			name:   "decimals suppressed",
			approx: 0.3, min: 0, max: 1.5,
			opts:         NormalizeOptions{NoDecimals: true},
			wantInterval: 1,
			want:         []float64{0, 1, 2},
		},
		{
			name:   "negative range",
			approx: 20, min: -35, max: 42,
			wantInterval: 20,
			want:         []float64{-40, -20, 0, 20, 40, 60},
		},
		{
			name:   "tenths without noise",
			approx: 0.1, min: 0, max: 0.3,
			wantInterval: 0.1,
			want:         []float64{0, 0.1, 0.2, 0.3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := LinearTicks(tt.approx, tt.min, tt.max, tt.opts)
			require.NoError(t, err)
			assert.Equal(t, tt.wantInterval, seq.Interval)
			assert.Equal(t, tt.want, seq.Positions)
		})
	}
}

func TestLinearTicksErrors(t *testing.T) {
	_, err := LinearTicks(0, 0, 1, NormalizeOptions{})
	var ie *InvalidIntervalError
	assert.ErrorAs(t, err, &ie)

	_, err = LinearTicks(1, 1, 0, NormalizeOptions{})
	var re *InvalidRangeError
	assert.ErrorAs(t, err, &re)

	_, err = LinearTicks(1, 0, 10, NormalizeOptions{Multiples: []float64{}})
	assert.ErrorIs(t, err, ErrEmptyMultiples)
}

func TestApproxInterval(t *testing.T) {
	assert.Equal(t, 25.0, ApproxInterval(0, 100, 4))
	assert.Equal(t, 100.0, ApproxInterval(0, 100, 0))
}
