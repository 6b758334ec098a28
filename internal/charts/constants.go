package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for timeseries chart height.
	MinChartHeight = 8

	// LabelSpacing is the number of columns reserved per time tick label.
	LabelSpacing = 12

	// DefaultWidth is used when the terminal width cannot be detected.
	DefaultWidth = 80

	// YTickCount is the approximate number of value ticks on a timeseries chart.
	YTickCount = 4
)
