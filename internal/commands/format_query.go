package commands

import (
	"fmt"

	"github.com/akasprzok/niceticks/internal/prometheus"
)

type FormatQueryCmd struct {
	Query string `arg:"" name:"query" help:"Query to format." required:"true"`
}

func (f *FormatQueryCmd) Run(ctx *Context) error {
	if err := prometheus.ValidateQuery(f.Query); err != nil {
		ctx.Logger.WithError(err).Warn("query does not parse, printing it unchanged")
	}
	_, err := fmt.Fprintln(ctx.Out, prometheus.FormatQuery(f.Query))
	return err
}
