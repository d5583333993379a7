package fetcher

import (
	"time"

	"resty.dev/v3"
)

// defaultTimeout bounds every upstream call. A single slow spreadsheet
// read must not hold a relay request open indefinitely.
const defaultTimeout = 20 * time.Second

// NewHTTPClient creates an HTTP client for the upstream provider.
// No retry policy: a failed upstream call fails the whole request
// immediately and callers handle their own retry/backoff.
func NewHTTPClient(baseURL string) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")
}
