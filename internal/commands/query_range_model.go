package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akasprzok/niceticks/internal/charts"
	"github.com/akasprzok/niceticks/internal/prometheus"
	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
	"github.com/sirupsen/logrus"
)

type queryRangeState int

const (
	stateRangeLoading queryRangeState = iota
	stateRangeSuccess
	stateRangeError
)

type queryRangeResultMsg struct {
	matrix   model.Matrix
	warnings v1.Warnings
	r        v1.Range
	err      error
}

type QueryRangeModel struct {
	promClient prometheus.Client
	query      string
	timeRange  time.Duration
	points     int
	timeout    time.Duration
	output     string
	opts       []ticks.Option
	logger     *logrus.Logger
	now        func() time.Time

	state      queryRangeState
	spinner    spinner.Model
	queryRange v1.Range
	matrix     model.Matrix
	warnings   v1.Warnings
	err        error
	width      int
	timeseries charts.Timeseries
	quitting   bool
}

func NewQueryRangeModel(client prometheus.Client, query string, timeRange time.Duration, points int, output string, ctx *Context) QueryRangeModel {
	return QueryRangeModel{
		promClient: client,
		query:      query,
		timeRange:  timeRange,
		points:     points,
		timeout:    ctx.Timeout,
		output:     output,
		opts:       promTickOptions(ctx),
		logger:     ctx.Logger,
		now:        time.Now,
		state:      stateRangeLoading,
		spinner:    NewLoadingSpinner(),
	}
}

func (m QueryRangeModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.executeQueryRange(),
	)
}

func (m QueryRangeModel) executeQueryRange() tea.Cmd {
	return func() tea.Msg {
		r, err := prometheus.RangeFor(m.now(), m.timeRange, m.points, m.opts...)
		if err != nil {
			return queryRangeResultMsg{err: err}
		}
		m.logger.WithFields(logrus.Fields{
			"query": m.query,
			"start": r.Start,
			"end":   r.End,
			"step":  r.Step,
		}).Debug("running range query")

		ctx, cancel := context.WithTimeout(context.Background(), m.timeout)
		defer cancel()
		matrix, warnings, err := m.promClient.QueryRange(ctx, m.query, r)
		if err != nil {
			err = fmt.Errorf("querying range: %w", err)
		}
		return queryRangeResultMsg{
			matrix:   matrix,
			warnings: warnings,
			r:        r,
			err:      err,
		}
	}
}

func (m QueryRangeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleRangeKeyMsg(msg)
	case queryRangeResultMsg:
		return m.handleRangeQueryResult(msg)
	case spinner.TickMsg:
		return m.handleRangeSpinnerTick(msg)
	}

	return m, nil
}

func (m QueryRangeModel) handleRangeKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" || msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m QueryRangeModel) handleRangeQueryResult(msg queryRangeResultMsg) (tea.Model, tea.Cmd) {
	m.matrix = msg.matrix
	m.warnings = msg.warnings
	m.queryRange = msg.r
	m.err = msg.err

	if m.err != nil {
		m.state = stateRangeError
		return m, tea.Quit
	}

	m.state = stateRangeSuccess
	if m.output != "graph" {
		return m, tea.Quit
	}

	width := m.width
	if width <= 0 {
		width = charts.TerminalWidth()
	}
	ts, err := charts.TimeseriesSplit(m.matrix, width-ChartWidthPadding, m.opts...)
	if err != nil {
		m.err = err
		m.state = stateRangeError
		return m, tea.Quit
	}
	m.timeseries = ts
	return m, nil
}

func (m QueryRangeModel) handleRangeSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.state == stateRangeLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m QueryRangeModel) View() string {
	var s strings.Builder

	switch m.state {
	case stateRangeLoading:
		s.WriteString(fmt.Sprintf("\n%s Executing range query: %s (range: %s)\n\n", m.spinner.View(), m.query, m.timeRange))

	case stateRangeError:
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render("Error: ") + m.err.Error() + "\n")

	case stateRangeSuccess:
		if len(m.warnings) > 0 {
			s.WriteString("\n")
			s.WriteString(WarningStyle.Render("Warnings:\n"))
			for _, w := range m.warnings {
				s.WriteString(WarningStyle.Render(fmt.Sprintf("  • %s\n", w)))
			}
			s.WriteString("\n")
		}

		switch m.output {
		case "graph":
			s.WriteString("\n")
			s.WriteString(m.graphView())
			if !m.quitting {
				s.WriteString("\n\n")
				s.WriteString(HelpStyle.Render("Press q or ctrl+c to quit") + "\n")
			} else {
				s.WriteString("\n")
			}
		default:
			s.WriteString(m.structuredView())
		}
	}

	return s.String()
}

func (m QueryRangeModel) graphView() string {
	if len(m.matrix) == 0 {
		return "No Data"
	}
	header := fmt.Sprintf("step %s, ticks every %g %s", m.queryRange.Step, m.timeseries.Ticks.Multitude, m.timeseries.Ticks.Unit.Unit)
	chart := BoxStyle.Render(m.timeseries.Chart + "\n" + m.timeseries.Ruler)
	legend := BoxStyle.MarginTop(1).Render("Legend:\n" + charts.RenderLegend(m.timeseries.Legend))
	return lipgloss.JoinVertical(lipgloss.Left, HelpStyle.Render(header), chart, legend)
}

func (m QueryRangeModel) structuredView() string {
	seq, err := rangeTicks(m.queryRange, TimeLabelCount, m.opts)
	if err != nil {
		m.logger.WithError(err).Warn("no time ticks for range")
	}
	var b strings.Builder
	if err := writeStructured(&b, m.output, formatMatrix(m.matrix, m.warnings, m.queryRange, seq, m.err)); err != nil {
		return ErrorStyle.Render(err.Error()) + "\n"
	}
	return b.String()
}
