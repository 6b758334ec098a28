package charts

import (
	"math"
	"strings"
	"unicode/utf8"
)

const (
	rulerLine = '─'
	rulerMark = '┬'
)

// Column maps v in [min, max] onto one of width columns.
func Column(v, min, max float64, width int) int {
	if width <= 1 || max <= min {
		return 0
	}
	return int(math.Round((v - min) / (max - min) * float64(width-1)))
}

// Ruler draws an axis of width columns with a mark at every position inside
// [min, max] and the matching label centered below it. A label that would touch
// the previous one is left out; its mark stays.
func Ruler(positions []float64, labels []string, min, max float64, width int) string {
	if width <= 0 {
		return ""
	}

	line := []rune(strings.Repeat(string(rulerLine), width))
	text := []rune(strings.Repeat(" ", width))
	free := 0
	for i, p := range positions {
		if p < min || p > max {
			continue
		}
		col := Column(p, min, max, width)
		line[col] = rulerMark

		if i >= len(labels) {
			continue
		}
		label := []rune(labels[i])
		n := utf8.RuneCountInString(labels[i])
		start := col - n/2
		if start < 0 {
			start = 0
		}
		if start+n > width {
			start = width - n
		}
		if start < free || start < 0 {
			continue
		}
		copy(text[start:], label)
		free = start + n + 1
	}

	return axisStyle.Render(string(line)) + "\n" + labelStyle.Render(strings.TrimRight(string(text), " "))
}
