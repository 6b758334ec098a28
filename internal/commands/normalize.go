package commands

import (
	"fmt"
	"strconv"

	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/sirupsen/logrus"
)

type NormalizeCmd struct {
	Interval   float64   `arg:"" name:"interval" help:"Raw interval to normalize."`
	Multiples  []float64 `name:"multiples" help:"Allowed multiples, ascending." sep:","`
	Magnitude  float64   `name:"magnitude" help:"Magnitude the multiples are scaled by."`
	NoDecimals bool      `name:"no-decimals" help:"Avoid decimal intervals."`
}

func (n *NormalizeCmd) Run(ctx *Context) error {
	got, err := ticks.NormalizeInterval(n.Interval, ticks.NormalizeOptions{
		Multiples:  n.Multiples,
		Magnitude:  n.Magnitude,
		NoDecimals: n.NoDecimals,
	})
	if err != nil {
		return fmt.Errorf("normalizing %g: %w", n.Interval, err)
	}
	ctx.Logger.WithFields(logrus.Fields{
		"interval":   n.Interval,
		"normalized": got,
	}).Debug("normalized interval")
	_, err = fmt.Fprintln(ctx.Out, strconv.FormatFloat(got, 'g', -1, 64))
	return err
}
