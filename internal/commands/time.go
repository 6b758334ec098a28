package commands

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/akasprzok/niceticks/internal/charts"
	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/sirupsen/logrus"
)

// instantLayouts are tried in order after plain numbers.
var instantLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

type TimeCmd struct {
	From      string        `arg:"" name:"from" help:"Start: RFC3339, 2006-01-02 or an axis value (unix milliseconds by default)."`
	To        string        `arg:"" name:"to" help:"End, in the same formats as from."`
	Ticks     int           `name:"ticks" short:"n" help:"Approximate number of intervals." default:"6"`
	Interval  time.Duration `name:"interval" short:"i" help:"Approximate interval, overrides --ticks."`
	Unit      string        `name:"unit" help:"Skip unit selection and step by this unit."`
	Multitude float64       `name:"multitude" help:"Units per tick when --unit is set." default:"1"`
	Width     int           `name:"width" short:"w" help:"Graph width, 0 for the terminal width."`
	Output    string        `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml,graph"`
}

// timeTicksResult is the structured form of a time tick sequence.
type timeTicksResult struct {
	Unit      string    `json:"unit" yaml:"unit"`
	Multitude float64   `json:"multitude" yaml:"multitude"`
	Positions []float64 `json:"positions" yaml:"positions"`
	Labels    []string  `json:"labels" yaml:"labels"`
	Times     []string  `json:"times" yaml:"times"`
}

func (c *TimeCmd) Run(ctx *Context) error {
	factor := ctx.TimeFactor
	if factor == 0 {
		factor = 1
	}
	min, err := parseInstant(c.From, ctx.location(), factor)
	if err != nil {
		return fmt.Errorf("parsing from: %w", err)
	}
	max, err := parseInstant(c.To, ctx.location(), factor)
	if err != nil {
		return fmt.Errorf("parsing to: %w", err)
	}

	seq, err := c.sequence(ctx, min, max, factor)
	if err != nil {
		return err
	}
	ctx.Logger.WithFields(logrus.Fields{
		"unit":      seq.Unit.Unit,
		"multitude": seq.Multitude,
		"ticks":     seq.Len(),
	}).Debug("computed time ticks")

	switch c.Output {
	case "graph":
		charts.NewNtCharts(ctx.Out, c.Width).PrintTicks(seq, min, max)
		return nil
	case "table":
		_, err = fmt.Fprintln(ctx.Out, renderTable([]string{"#", "Time", "Label", "Gap"}, tickRows(seq)))
		return err
	default:
		return writeStructured(ctx.Out, c.Output, newTimeTicksResult(seq))
	}
}

func (c *TimeCmd) sequence(ctx *Context, min, max, factor float64) (ticks.TickSequence, error) {
	if c.Unit != "" {
		unit, err := ticks.ParseUnit(c.Unit)
		if err != nil {
			return ticks.TickSequence{}, err
		}
		seq, err := ticks.Generate(unit, c.Multitude, min, max, ctx.TickOptions()...)
		if err != nil {
			return ticks.TickSequence{}, fmt.Errorf("generating %s ticks: %w", unit, err)
		}
		return seq, nil
	}

	approx := ticks.ApproxInterval(min, max, c.Ticks)
	if c.Interval > 0 {
		approx = float64(c.Interval) / float64(time.Millisecond) / factor
	}
	seq, err := ticks.ComputeTimeTicks(approx, min, max, ctx.TickOptions()...)
	if err != nil {
		return ticks.TickSequence{}, fmt.Errorf("computing time ticks: %w", err)
	}
	return seq, nil
}

func newTimeTicksResult(seq ticks.TickSequence) timeTicksResult {
	times := seq.Times()
	formatted := make([]string, len(times))
	for i, t := range times {
		formatted[i] = t.Format(time.RFC3339Nano)
	}
	return timeTicksResult{
		Unit:      seq.Unit.Unit.String(),
		Multitude: seq.Multitude,
		Positions: seq.Positions,
		Labels:    seq.Labels(),
		Times:     formatted,
	}
}

func tickRows(seq ticks.TickSequence) [][]string {
	times := seq.Times()
	labels := seq.Labels()
	rows := make([][]string, 0, len(times))
	for i, t := range times {
		gap := ""
		if i > 0 {
			gap = t.Sub(times[i-1]).String()
		}
		rows = append(rows, []string{strconv.Itoa(i), t.Format(time.RFC3339), labels[i], gap})
	}
	return rows
}

// parseInstant reads s as an axis value or as a time in loc, returning the axis
// value for the given time factor.
func parseInstant(s string, loc *time.Location, factor float64) (float64, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	for _, layout := range instantLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return float64(t.UnixMilli()) / factor, nil
		}
	}
	return 0, fmt.Errorf("unrecognized time %q", s)
}
