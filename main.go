package main

import (
	"github.com/akasprzok/niceticks/internal/commands"
	"github.com/alecthomas/kong"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("niceticks"),
		kong.Description("Human-legible tick positions for numeric and calendar time axes."),
		kong.UsageOnError(),
	)
	appCtx, err := cli.NewContext()
	ctx.FatalIfErrorf(err)
	// Call the Run() method of the selected parsed command.
	ctx.FatalIfErrorf(ctx.Run(appCtx))
}
