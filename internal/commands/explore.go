package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/akasprzok/niceticks/internal/charts"
	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"
	"github.com/sirupsen/logrus"
)

// rangeSeparator splits the from and to parts of an edited range.
const rangeSeparator = ".."

type ExploreCmd struct {
	From  string `name:"from" help:"Initial start, defaults to a week before now."`
	To    string `name:"to" help:"Initial end, defaults to now."`
	Ticks int    `name:"ticks" short:"n" help:"Approximate number of intervals." default:"6"`
}

func (e *ExploreCmd) Run(ctx *Context) error {
	factor := ctx.TimeFactor
	if factor == 0 {
		factor = 1
	}
	now := time.Now()
	min := float64(now.Add(-7*24*time.Hour).UnixMilli()) / factor
	max := float64(now.UnixMilli()) / factor

	var err error
	if e.From != "" {
		if min, err = parseInstant(e.From, ctx.location(), factor); err != nil {
			return fmt.Errorf("parsing from: %w", err)
		}
	}
	if e.To != "" {
		if max, err = parseInstant(e.To, ctx.location(), factor); err != nil {
			return fmt.Errorf("parsing to: %w", err)
		}
	}

	p := tea.NewProgram(NewExploreModel(ctx, min, max, e.Ticks), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

// ExploreModel pages through the ticks of a movable time range.
type ExploreModel struct {
	settings Context
	count    int
	min, max float64

	seq   ticks.TickSequence
	err   error
	table teatable.Model
	input textinput.Model
	width int
}

func NewExploreModel(ctx *Context, min, max float64, count int) ExploreModel {
	input := textinput.New()
	input.Placeholder = "2024-03-09" + rangeSeparator + "2024-03-12"
	input.CharLimit = 80

	m := ExploreModel{
		settings: *ctx,
		count:    count,
		min:      min,
		max:      max,
		input:    input,
		width:    charts.DefaultWidth,
	}
	if m.settings.TimeFactor == 0 {
		m.settings.TimeFactor = 1
	}
	return m.recompute()
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width - ChartWidthPadding
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.input.Focused() {
			return m.handleInputKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m ExploreModel) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.input.Blur()
		min, max, err := m.parseRange(m.input.Value())
		if err != nil {
			m.err = err
			return m, nil
		}
		m.min, m.max = min, max
		return m.recompute(), nil
	case "esc":
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m ExploreModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	span := m.max - m.min
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "left", "h":
		m.min, m.max = m.min-span*PanFraction, m.max-span*PanFraction
	case "right", "l":
		m.min, m.max = m.min+span*PanFraction, m.max+span*PanFraction
	case "+", "=":
		if span/ZoomFactor < 1 {
			return m, nil
		}
		m.min, m.max = m.zoom(span / ZoomFactor)
	case "-", "_":
		m.min, m.max = m.zoom(span * ZoomFactor)
	case "u":
		m.settings.UTC = !m.settings.UTC
	case "w":
		m.settings.WeekStart = (m.settings.WeekStart + 1) % 7
	case "/":
		m.input.SetValue("")
		m.input.Focus()
		return m, textinput.Blink
	default:
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m.recompute(), nil
}

func (m ExploreModel) zoom(span float64) (float64, float64) {
	center := (m.min + m.max) / 2
	return center - span/2, center + span/2
}

func (m ExploreModel) parseRange(s string) (float64, float64, error) {
	from, to, ok := strings.Cut(s, rangeSeparator)
	if !ok {
		return 0, 0, fmt.Errorf("range %q has no %q", s, rangeSeparator)
	}
	min, err := parseInstant(from, m.settings.location(), m.settings.TimeFactor)
	if err != nil {
		return 0, 0, err
	}
	max, err := parseInstant(to, m.settings.location(), m.settings.TimeFactor)
	if err != nil {
		return 0, 0, err
	}
	return min, max, nil
}

func (m ExploreModel) recompute() ExploreModel {
	seq, err := ticks.ComputeTimeTicks(ticks.ApproxInterval(m.min, m.max, m.count), m.min, m.max, m.settings.TickOptions()...)
	m.err = err
	if err != nil {
		return m
	}
	m.seq = seq
	if m.settings.Logger != nil {
		m.settings.Logger.WithFields(logrus.Fields{
			"unit":      seq.Unit.Unit,
			"multitude": seq.Multitude,
			"ticks":     seq.Len(),
			"utc":       m.settings.UTC,
		}).Debug("explore ticks")
	}

	gaps := charts.Gaps(seq)
	irregular := lipgloss.NewStyle().Foreground(charts.IrregularColor)
	rows := make([]teatable.Row, 0, len(seq.Positions))
	for i, r := range tickRows(seq) {
		var gap any = r[3]
		if i > 0 && gaps[i-1].Irregular(seq.Unit.Unit) {
			gap = teatable.NewStyledCell(r[3], irregular)
		}
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"index": r[0],
			"time":  r[1],
			"label": r[2],
			"gap":   gap,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("index", "#", 4),
		teatable.NewColumn("time", "Time", 27),
		teatable.NewColumn("label", "Label", 14),
		teatable.NewColumn("gap", "Gap", 16),
	}
	m.table = teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(ExploreTableRows).
		WithFooterVisibility(true).
		Focused(true)
	return m
}

func (m ExploreModel) View() string {
	var s strings.Builder

	zone := m.settings.location().String()
	s.WriteString(fmt.Sprintf("%s  zone %s, weeks start %s\n",
		charts.UnitStyle(m.seq.Unit.Unit).Render(fmt.Sprintf("every %g %s", m.seq.Multitude, m.seq.Unit.Unit)),
		zone, m.settings.WeekStart))

	if m.err != nil {
		s.WriteString(ErrorStyle.Render("Error: ") + m.err.Error() + "\n")
	}

	s.WriteString(m.table.View())
	s.WriteString("\n\n")
	s.WriteString(charts.Ruler(m.seq.Positions, m.seq.Labels(), m.min, m.max, m.width))
	s.WriteString("\n\n")

	if m.input.Focused() {
		s.WriteString(m.input.View() + "\n")
	}
	s.WriteString(HelpStyle.Render("←/→ pan, +/- zoom, u toggle UTC, w week start, / edit range, q quit"))
	return s.String()
}
