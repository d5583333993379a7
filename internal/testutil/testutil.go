package testutil

import (
	"context"

	"pifrelay/internal/fetcher"
)

// MockFetcher is a mock implementation of the Fetcher interface for testing
type MockFetcher struct {
	FetchFunc    func(ctx context.Context) ([]fetcher.Row, error)
	FetchRawFunc func(ctx context.Context) (*fetcher.RawResult, error)
	SourceFunc   func() string
}

// Fetch implements the Fetcher interface
func (m *MockFetcher) Fetch(ctx context.Context) ([]fetcher.Row, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	return nil, nil
}

// FetchRaw implements the Fetcher interface
func (m *MockFetcher) FetchRaw(ctx context.Context) (*fetcher.RawResult, error) {
	if m.FetchRawFunc != nil {
		return m.FetchRawFunc(ctx)
	}
	return &fetcher.RawResult{}, nil
}

// Source implements the Fetcher interface
func (m *MockFetcher) Source() string {
	if m.SourceFunc != nil {
		return m.SourceFunc()
	}
	return "mock"
}

// NewMockFetcher creates a simple mock fetcher with predefined rows and error
func NewMockFetcher(rows []fetcher.Row, err error) fetcher.Fetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context) ([]fetcher.Row, error) {
			return rows, err
		},
	}
}
