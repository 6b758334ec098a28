package charts

import (
	"fmt"
	"io"
	"os"

	"github.com/akasprzok/niceticks/internal/ticks"
	"golang.org/x/term"
)

// Charter prints graphical views of tick sequences.
type Charter interface {
	PrintTicks(seq ticks.TickSequence, min, max float64)
}

type ntCharts struct {
	out   io.Writer
	width int
}

// NewNtCharts returns a Charter writing to out at the given width. A width of zero
// uses the terminal width.
func NewNtCharts(out io.Writer, width int) Charter {
	if width <= 0 {
		width = TerminalWidth()
	}
	return &ntCharts{out: out, width: width}
}

func (c *ntCharts) PrintTicks(seq ticks.TickSequence, min, max float64) {
	fmt.Fprintln(c.out, UnitStyle(seq.Unit.Unit).Render(fmt.Sprintf("%g %s", seq.Multitude, seq.Unit.Unit)))
	fmt.Fprintln(c.out, Ruler(seq.Positions, seq.Labels(), min, max, c.width))
	if gaps := GapChart(seq, c.width); gaps != "" {
		fmt.Fprintln(c.out)
		fmt.Fprintln(c.out, gaps)
	}
}

// TerminalWidth returns the width of the terminal on stdout, or DefaultWidth.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}
