package charts

import (
	"fmt"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/akasprzok/niceticks/internal/ticks"
)

// Gap is the wall-clock span between two consecutive ticks.
type Gap struct {
	From     string
	Duration time.Duration
}

// Irregular reports whether a day or week gap is not a whole number of days,
// which happens when a local-time step crosses a daylight saving change. Month
// and year gaps vary in length anyway and are never irregular.
func (g Gap) Irregular(unit ticks.Unit) bool {
	if unit != ticks.Day && unit != ticks.Week {
		return false
	}
	return g.Duration%(24*time.Hour) != 0
}

// Gaps lists the spans between consecutive ticks of seq.
func Gaps(seq ticks.TickSequence) []Gap {
	times := seq.Times()
	labels := seq.Labels()
	if len(times) < 2 {
		return nil
	}
	gaps := make([]Gap, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		gaps = append(gaps, Gap{From: labels[i-1], Duration: times[i].Sub(times[i-1])})
	}
	return gaps
}

// GapChart draws one horizontal bar per gap, in hours for day-or-longer units and
// in the gap's own scale otherwise. Irregular gaps use IrregularColor.
func GapChart(seq ticks.TickSequence, width int) string {
	gaps := Gaps(seq)
	if len(gaps) == 0 {
		return ""
	}

	unit := seq.Unit.Unit
	barData := make([]barchart.BarData, 0, len(gaps))
	for _, g := range gaps {
		style := UnitStyle(unit)
		if g.Irregular(unit) {
			style = irregularStyle
		}
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%s)", g.From, g.Duration),
			Values: []barchart.BarValue{
				{Name: g.From, Value: gapValue(g.Duration, unit), Style: style},
			},
		})
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}

func gapValue(d time.Duration, unit ticks.Unit) float64 {
	switch {
	case unit >= ticks.Day:
		return d.Hours()
	case unit >= ticks.Minute:
		return d.Minutes()
	case unit == ticks.Second:
		return d.Seconds()
	default:
		return float64(d) / float64(time.Millisecond)
	}
}
