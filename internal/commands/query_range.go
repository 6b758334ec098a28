package commands

import (
	"fmt"
	"time"

	"github.com/akasprzok/niceticks/internal/prometheus"
	"github.com/akasprzok/niceticks/internal/ticks"
	tea "github.com/charmbracelet/bubbletea"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

type QueryRangeCmd struct {
	PrometheusURL string        `help:"URL of the Prometheus endpoint." env:"NICETICKS_PROMETHEUS_URL" name:"prometheus-url"`
	Query         string        `arg:"" name:"query" help:"Query to run." required:"true"`
	Range         time.Duration `name:"range" short:"r" help:"Range to query." default:"1h"`
	Points        int           `name:"points" help:"Approximate number of samples per series." default:"120"`
	Output        string        `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`
}

func (q *QueryRangeCmd) Run(ctx *Context) error {
	if err := prometheus.ValidateQuery(q.Query); err != nil {
		return err
	}
	client, err := prometheus.NewClient(q.PrometheusURL)
	if err != nil {
		return err
	}

	queryRangeModel := NewQueryRangeModel(client, q.Query, q.Range, q.Points, q.Output, ctx)

	p := tea.NewProgram(queryRangeModel, tea.WithOutput(ctx.Out))
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Extract the final model to check for errors
	if qrm, ok := finalModel.(QueryRangeModel); ok {
		if qrm.err != nil {
			return qrm.err
		}
	}

	return nil
}

// promTickOptions are the context's tick options for millisecond timestamps.
func promTickOptions(ctx *Context) []ticks.Option {
	return append(ctx.TickOptions(), ticks.WithTimeFactor(1))
}

// rangeTicks computes the time axis ticks a chart of r would carry.
func rangeTicks(r v1.Range, labels int, opts []ticks.Option) (ticks.TickSequence, error) {
	min := float64(r.Start.UnixMilli())
	max := float64(r.End.UnixMilli())
	return ticks.ComputeTimeTicks(ticks.ApproxInterval(min, max, labels), min, max, opts...)
}

func formatMatrix(matrix model.Matrix, warnings v1.Warnings, r v1.Range, seq ticks.TickSequence, err error) map[string]any {
	data := make([]map[string]any, 0)
	for _, sample := range matrix {
		values := make([]map[string]any, 0)
		for _, value := range sample.Values {
			values = append(values, map[string]any{
				"timestamp": value.Timestamp.Unix(),
				"value":     value.Value,
			})
		}
		data = append(data, map[string]any{
			"metric": sample.Metric,
			"values": values,
		})
	}

	out := map[string]any{
		"data":     data,
		"warnings": warnings,
		"step":     r.Step.String(),
		"ticks":    newTimeTicksResult(seq),
		"error":    nil,
	}
	if err != nil {
		out["error"] = fmt.Sprint(err)
	}
	return out
}
