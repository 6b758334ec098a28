package prometheus

import (
	"context"

	v1 "github.com/prometheus/client_golang/api/prometheus/v1"
	"github.com/prometheus/common/model"
)

// MockClient is a mock implementation of the Client interface for testing.
type MockClient struct {
	QueryRangeFunc func(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error)

	// Ranges records every range passed to QueryRange.
	Ranges []v1.Range
}

func (m *MockClient) QueryRange(ctx context.Context, query string, r v1.Range) (model.Matrix, v1.Warnings, error) {
	m.Ranges = append(m.Ranges, r)
	if m.QueryRangeFunc != nil {
		return m.QueryRangeFunc(ctx, query, r)
	}
	return nil, nil, nil
}
