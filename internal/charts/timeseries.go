package charts

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/common/model"
)

// LegendEntry is one series of a rendered timeseries chart.
type LegendEntry struct {
	Metric     string
	ColorIndex int
}

// Timeseries is a rendered range-query chart.
type Timeseries struct {
	Chart  string
	Ruler  string
	Legend []LegendEntry

	// Ticks are the time axis ticks; Values the value axis ticks.
	Ticks  ticks.TickSequence
	Values ticks.LinearSequence
}

// TimeseriesSplit renders matrix width columns wide. The time axis is labelled with
// ticks from ticks.ComputeTimeTicks and the value axis is widened to nice bounds.
func TimeseriesSplit(matrix model.Matrix, width int, opts ...ticks.Option) (Timeseries, error) {
	var out Timeseries
	for i, stream := range matrix {
		out.Legend = append(out.Legend, LegendEntry{Metric: stream.Metric.String(), ColorIndex: i})
	}

	minT, maxT, minY, maxY, ok := bounds(matrix)
	if !ok {
		return out, nil
	}
	if maxT <= minT {
		maxT = minT + model.Time(time.Minute/time.Millisecond)
	}

	labelCount := width / LabelSpacing
	if labelCount < 2 {
		labelCount = 2
	}
	seq, err := ticks.ComputeTimeTicks(ticks.ApproxInterval(float64(minT), float64(maxT), labelCount), float64(minT), float64(maxT), opts...)
	if err != nil {
		return out, fmt.Errorf("computing time ticks: %w", err)
	}
	out.Ticks = seq

	if maxY <= minY {
		minY, maxY = minY-1, maxY+1
	}
	values, err := ticks.LinearTicks(ticks.ApproxInterval(minY, maxY, YTickCount), minY, maxY, ticks.NormalizeOptions{})
	if err != nil {
		return out, fmt.Errorf("computing value ticks: %w", err)
	}
	out.Values = values

	height := width / ChartHeightRatio
	if height < MinChartHeight {
		height = MinChartHeight
	}

	var (
		loc    = seq.Location()
		layout = seq.Unit.Unit.Layout()
		lowY   = values.Positions[0]
		highY  = values.Positions[len(values.Positions)-1]
	)
	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = func(_ int, v float64) string {
		return time.Unix(int64(v), 0).In(loc).Format(layout)
	}
	lc.YLabelFormatter = func(_ int, v float64) string {
		return humanize.SIWithDigits(v, 1, "")
	}
	lc.SetTimeRange(minT.Time(), maxT.Time())
	lc.SetViewTimeRange(minT.Time(), maxT.Time())
	lc.SetYRange(lowY, highY)     // set expected Y values (values can be less or greater than what is displayed)
	lc.SetViewYRange(lowY, highY) // setting display Y values will fail unless set expected Y values first
	lc.SetLineStyle(runes.ThinLineStyle)

	for i, stream := range matrix {
		name := stream.Metric.String()
		lc.SetDataSetStyle(name, SeriesStyle(i))
		for _, sample := range stream.Values {
			lc.PushDataSet(name, timeserieslinechart.TimePoint{
				Time:  sample.Timestamp.Time(),
				Value: float64(sample.Value),
			})
		}
	}
	lc.DrawBrailleAll()

	out.Chart = lc.View()
	out.Ruler = Ruler(seq.Positions, seq.Labels(), float64(minT), float64(maxT), width)
	return out, nil
}

// RenderLegend lists the series in their chart colors.
func RenderLegend(legend []LegendEntry) string {
	var b strings.Builder
	for i, entry := range legend {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(SeriesStyle(entry.ColorIndex).Render(fmt.Sprintf("%c %s", runes.FullBlock, entry.Metric)))
	}
	return b.String()
}

func bounds(matrix model.Matrix) (minT, maxT model.Time, minY, maxY float64, ok bool) {
	minY, maxY = math.MaxFloat64, -math.MaxFloat64
	for _, stream := range matrix {
		for _, sample := range stream.Values {
			v := float64(sample.Value)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if !ok || sample.Timestamp < minT {
				minT = sample.Timestamp
			}
			if !ok || sample.Timestamp > maxT {
				maxT = sample.Timestamp
			}
			minY = math.Min(minY, v)
			maxY = math.Max(maxY, v)
			ok = true
		}
	}
	return minT, maxT, minY, maxY, ok
}
