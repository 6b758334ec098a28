package prometheus

import (
	"context"
	"fmt"
	"time"

	"github.com/akasprzok/niceticks/internal/ticks"
	"github.com/prometheus/client_golang/api"
	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"

	"github.com/prometheus/prometheus/promql/parser"
)

type prometheusClient struct {
	v1api v1.API
}

// Client runs range queries against a Prometheus server.
type Client interface {
	QueryRange(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error)
}

func NewClient(url string) (Client, error) {
	if url == "" {
		return nil, fmt.Errorf("creating prometheus client: empty address")
	}
	client, err := api.NewClient(api.Config{
		Address: url,
	})
	if err != nil {
		return nil, fmt.Errorf("creating prometheus client: %w", err)
	}
	v1api := v1.NewAPI(client)
	return &prometheusClient{v1api: v1api}, nil
}

func (c *prometheusClient) QueryRange(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error) {
	var matrix model.Matrix
	result, warnings, err := c.v1api.QueryRange(ctx, query, r)
	if err != nil {
		return matrix, warnings, err
	}

	switch result.Type() {
	case model.ValMatrix:
		m := result.(model.Matrix)
		return m, warnings, nil
	case model.ValNone, model.ValScalar, model.ValVector, model.ValString:
		return matrix, warnings, fmt.Errorf("unexpected result type: %s", result.Type())
	default:
		return matrix, warnings, fmt.Errorf("unknown result type: %s", result.Type())
	}
}

// RangeFor returns the query range ending at end that spans rng with about
// points samples, using the nearest time axis spacing as the step. opts select the
// unit table the spacing comes from.
func RangeFor(end time.Time, rng time.Duration, points int, opts ...ticks.Option) (v1.Range, error) {
	if points < 1 {
		points = 1
	}
	step, err := ticks.NiceDuration(rng/time.Duration(points), opts...)
	if err != nil {
		return v1.Range{}, fmt.Errorf("choosing step for %s: %w", rng, err)
	}
	// Prometheus rejects sub-second steps for most queries.
	if step < time.Second {
		step = time.Second
	}
	end = end.Truncate(step)
	return v1.Range{
		Start: end.Add(-rng),
		End:   end,
		Step:  step,
	}, nil
}

// ValidateQuery parses query as PromQL.
func ValidateQuery(query string) error {
	if _, err := parser.ParseExpr(query); err != nil {
		return fmt.Errorf("parsing query: %w", err)
	}
	return nil
}

func FormatQuery(query string) string {
	ast, err := parser.ParseExpr(query)
	if err != nil {
		return query
	}
	return ast.Pretty(0)
}
