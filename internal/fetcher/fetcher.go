package fetcher

import "context"

// Fetcher is the interface the HTTP layer depends on for upstream data.
// Fetch returns rows already remapped into the relay column order;
// FetchRaw returns the upstream rows untouched for diagnostics.
type Fetcher interface {
	// Fetch retrieves the current dataset and normalizes every row into
	// the relay shape. Returns an error if the fetch operation fails.
	Fetch(ctx context.Context) ([]Row, error)

	// FetchRaw retrieves the upstream envelope without reshaping it.
	FetchRaw(ctx context.Context) (*RawResult, error)

	// Source identifies where the data came from, e.g. "google-sheets".
	Source() string
}
