package charts

import (
	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/charmbracelet/lipgloss"
)

// SeriesPalette is Paul Tol's qualitative color palette, designed for colorblind accessibility.
// See: https://personal.sron.nl/~pault/
var SeriesPalette = []string{
	"#4477AA", // Blue
	"#EE6677", // Rose
	"#228833", // Green
	"#CCBB44", // Olive/Yellow
	"#66CCEE", // Cyan
	"#AA3377", // Purple
	"#BBBBBB", // Grey
	"#EE8866", // Orange
	"#44BB99", // Teal
	"#FFAABB", // Pink
}

// AxisColor is the color used for axis lines and tick marks.
var AxisColor = lipgloss.Color("#CCBB44")

// LabelColor is the color used for tick labels.
var LabelColor = lipgloss.Color("#66CCEE")

// IrregularColor marks day and week gaps that are not whole days, i.e. daylight saving shifts.
var IrregularColor = lipgloss.Color("#EE6677")

var (
	axisStyle      = lipgloss.NewStyle().Foreground(AxisColor)
	labelStyle     = lipgloss.NewStyle().Foreground(LabelColor)
	irregularStyle = lipgloss.NewStyle().Foreground(IrregularColor)
)

// SeriesColor returns the color for a given series index, cycling through the palette.
func SeriesColor(index int) lipgloss.Color {
	return lipgloss.Color(SeriesPalette[index%len(SeriesPalette)])
}

// SeriesStyle returns a lipgloss style with the foreground color for the given series index.
func SeriesStyle(index int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeriesColor(index))
}

// UnitStyle colors a time unit, finer units toward the start of the palette.
func UnitStyle(u ticks.Unit) lipgloss.Style {
	return SeriesStyle(int(u)).Bold(true)
}
