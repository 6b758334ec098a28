package commands

import (
	"fmt"
	"strconv"

	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

type LinearCmd struct {
	Min        float64 `arg:"" name:"min" help:"Axis minimum."`
	Max        float64 `arg:"" name:"max" help:"Axis maximum."`
	Ticks      int     `name:"ticks" short:"n" help:"Approximate number of intervals." default:"5"`
	Interval   float64 `name:"interval" short:"i" help:"Approximate interval, overrides --ticks."`
	NoDecimals bool    `name:"no-decimals" help:"Avoid decimal intervals."`
	Output     string  `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (l *LinearCmd) Run(ctx *Context) error {
	approx := l.Interval
	if approx == 0 {
		approx = ticks.ApproxInterval(l.Min, l.Max, l.Ticks)
	}
	seq, err := ticks.LinearTicks(approx, l.Min, l.Max, ticks.NormalizeOptions{NoDecimals: l.NoDecimals})
	if err != nil {
		return fmt.Errorf("computing linear ticks: %w", err)
	}
	ctx.Logger.WithFields(logrus.Fields{
		"approx":   approx,
		"interval": seq.Interval,
		"ticks":    len(seq.Positions),
	}).Debug("computed linear ticks")

	if l.Output != "table" {
		return writeStructured(ctx.Out, l.Output, seq)
	}
	rows := make([][]string, 0, len(seq.Positions))
	for i, p := range seq.Positions {
		rows = append(rows, []string{
			strconv.Itoa(i),
			strconv.FormatFloat(p, 'g', -1, 64),
			humanize.SI(p, ""),
		})
	}
	_, err = fmt.Fprintln(ctx.Out, renderTable([]string{"#", "Value", "SI"}, rows))
	return err
}
