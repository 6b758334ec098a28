package commands

const (
	// ChartWidthPadding is the horizontal padding subtracted from terminal width for chart rendering.
	ChartWidthPadding = 6

	// TimeLabelCount is the number of time labels json and yaml range output is ticked for.
	TimeLabelCount = 6

	// ExploreTableRows is the page size of the explore tick table.
	ExploreTableRows = 12

	// ZoomFactor scales the explore range per zoom step.
	ZoomFactor = 2

	// PanFraction is the share of the explore range moved per pan step.
	PanFraction = 0.25
)
