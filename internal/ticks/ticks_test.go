package ticks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeTimeTicks(t *testing.T) {
	t.Run("one day interval on a week", func(t *testing.T) {
		min := time.Date(2024, time.February, 26, 7, 30, 0, 0, time.UTC)
		max := min.Add(7 * 24 * time.Hour)
		seq, err := ComputeTimeTicks(msDay, ms(min), ms(max), WithUTC(true))
		require.NoError(t, err)

		assert.Equal(t, Day, seq.Unit.Unit)
		assert.Equal(t, 1.0, seq.Multitude)
		assert.Equal(t, "26 Feb", seq.Labels()[0])
		assert.Equal(t, "29 Feb", seq.Labels()[3])
	})

	t.Run("short year spacing is tagged", func(t *testing.T) {
		min := time.Date(2001, time.March, 1, 0, 0, 0, 0, time.UTC)
		max := time.Date(2012, time.March, 1, 0, 0, 0, 0, time.UTC)
		seq, err := ComputeTimeTicks(3*msYear, ms(min), ms(max), WithUTC(true))
		require.NoError(t, err)

		assert.Equal(t, Year, seq.Unit.Unit)
		assert.Equal(t, []float64{1, 2, 5}, seq.Unit.Multiples)
		assert.Equal(t, 2.0, seq.Multitude)
		assert.Equal(t, "2000", seq.Labels()[0])
	})

	t.Run("values in seconds", func(t *testing.T) {
		min := float64(time.Date(2024, time.June, 1, 10, 20, 0, 0, time.UTC).Unix())
		seq, err := ComputeTimeTicks(3600, min, min+6*3600, WithUTC(true), WithTimeFactor(1000))
		require.NoError(t, err)

		assert.Equal(t, Hour, seq.Unit.Unit)
		for i, p := range seq.Positions {
			assert.Zero(t, int64(p)%3600, "position %d = %v", i, p)
		}
		assert.Equal(t, 10, seq.Times()[0].Hour())
	})

	t.Run("invalid unit table", func(t *testing.T) {
		_, err := ComputeTimeTicks(msDay, 0, msWeek, WithUnits([]TimeUnit{{Unit: Day, Multiples: []float64{1}}}))
		assert.ErrorIs(t, err, ErrInvalidUnitTable)
	})

	t.Run("invalid interval", func(t *testing.T) {
		_, err := ComputeTimeTicks(0, 0, msWeek)
		var ie *InvalidIntervalError
		assert.ErrorAs(t, err, &ie)
	})

	t.Run("invalid range", func(t *testing.T) {
		_, err := ComputeTimeTicks(msDay, msWeek, 0)
		var re *InvalidRangeError
		assert.ErrorAs(t, err, &re)
	})

	t.Run("range past the calendar fails fast", func(t *testing.T) {
		done := make(chan error, 1)
		go func() {
			_, err := ComputeTimeTicks(1e21, 1e22, 1.5e22, WithUTC(true))
			done <- err
		}()
		select {
		case err := <-done:
			var re *InvalidRangeError
			assert.ErrorAs(t, err, &re)
		case <-time.After(5 * time.Second):
			t.Fatal("ComputeTimeTicks() did not return")
		}
	})
}

func TestComputeTimeTicksOrderingAndCoverage(t *testing.T) {
	start := time.Date(2023, time.October, 28, 17, 43, 12, 0, time.UTC)
	spans := []time.Duration{
		1500 * time.Millisecond,
		90 * time.Second,
		47 * time.Minute,
		19 * time.Hour,
		9 * 24 * time.Hour,
		70 * 24 * time.Hour,
		800 * 24 * time.Hour,
		30 * 365 * 24 * time.Hour,
	}

	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	for _, utc := range []bool{true, false} {
		for _, span := range spans {
			for _, count := range []int{3, 7, 12} {
				min := ms(start)
				max := ms(start.Add(span))
				approx := (max - min) / float64(count)

				seq, err := ComputeTimeTicks(approx, min, max, WithUTC(utc), WithLocation(loc))
				require.NoError(t, err, "span %v count %d", span, count)
				require.NotEmpty(t, seq.Positions)

				assert.LessOrEqual(t, seq.Positions[0], min, "span %v count %d", span, count)
				assert.GreaterOrEqual(t, seq.Positions[seq.Len()-1], max, "span %v count %d", span, count)
				for i := 1; i < seq.Len(); i++ {
					assert.Greater(t, seq.Positions[i], seq.Positions[i-1], "span %v count %d tick %d", span, count, i)
				}
			}
		}
	}
}

func TestNiceDuration(t *testing.T) {
	tests := []struct {
		approx time.Duration
		want   time.Duration
	}{
		{300 * time.Millisecond, 200 * time.Millisecond},
		{50 * time.Second, time.Minute},
		{7 * time.Minute, 5 * time.Minute},
		{90 * time.Minute, time.Hour},
		{5 * time.Hour, 4 * time.Hour},
		{7 * time.Hour, 6 * time.Hour},
		{30 * time.Hour, 24 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.approx.String(), func(t *testing.T) {
			got, err := NiceDuration(tt.approx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := NiceDuration(0)
	assert.Error(t, err)
}
