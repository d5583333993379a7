package sheets

import (
	"context"
	"encoding/json"
	"log/slog"

	"resty.dev/v3"

	"pifrelay/internal/fetcher"
)

// action selects the PIF dataset in the spreadsheet web app.
const action = "getPifData"

// envelope is the upstream wrapper. Data stays raw so that a missing
// field, an empty array, and a non-array value remain distinguishable
// after decoding.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// PIFFetcher fetches PIF rows from the spreadsheet-backed web app
type PIFFetcher struct {
	client *resty.Client
}

// NewPIFFetcher creates a fetcher against the given upstream base URL
func NewPIFFetcher(baseURL string) *PIFFetcher {
	return &PIFFetcher{
		client: fetcher.NewHTTPClient(baseURL),
	}
}

// Source identifies the upstream provider
func (f *PIFFetcher) Source() string {
	return "google-sheets"
}

// get issues the upstream GET shared by both fetch operations
func (f *PIFFetcher) get(ctx context.Context) (*resty.Response, error) {
	resp, err := f.client.R().
		SetContext(ctx).
		SetQueryParam("action", action).
		Get("")

	if err != nil {
		return nil, fetcher.NewNetworkError(err)
	}

	return resp, nil
}

// Fetch retrieves the current dataset and remaps every row into the
// relay column order
func (f *PIFFetcher) Fetch(ctx context.Context) ([]fetcher.Row, error) {
	resp, err := f.get(ctx)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fetcher.NewUpstreamHTTPError(resp.StatusCode(), "")
	}

	var env envelope
	if err := json.Unmarshal(resp.Bytes(), &env); err != nil {
		return nil, fetcher.NewFormatError("invalid JSON from upstream: " + err.Error())
	}

	if env.Success == nil || !*env.Success {
		msg := env.Error
		if msg == "" {
			msg = "upstream reported failure"
		}
		return nil, fetcher.NewFormatError(msg)
	}

	rows, ok := decodeRows(env.Data)
	if !ok {
		return nil, fetcher.NewFormatError("invalid data format from upstream: expected an array of rows")
	}

	out := make([]fetcher.Row, len(rows))
	for i, r := range rows {
		out[i] = remapRow(r)
	}

	if len(rows) > 0 {
		slog.Debug("remapped upstream rows",
			"count", len(rows),
			"raw_sample", rows[0],
			"relay_sample", out[0])
	}

	return out, nil
}

// FetchRaw retrieves the upstream envelope without reshaping it.
// Field-shape oddities are tolerated: an absent success flag stays nil
// and a non-array data value degrades to zero rows.
func (f *PIFFetcher) FetchRaw(ctx context.Context) (*fetcher.RawResult, error) {
	resp, err := f.get(ctx)
	if err != nil {
		return nil, err
	}

	if !resp.IsSuccess() {
		return nil, fetcher.NewUpstreamHTTPError(resp.StatusCode(), "")
	}

	var env envelope
	if err := json.Unmarshal(resp.Bytes(), &env); err != nil {
		return nil, fetcher.NewFormatError("invalid JSON from upstream: " + err.Error())
	}

	result := &fetcher.RawResult{Success: env.Success}
	if rows, ok := decodeRows(env.Data); ok {
		result.Rows = rows
	}

	return result, nil
}

// decodeRows reports whether raw holds an array of rows and decodes it.
// Absent (nil or JSON null) and non-array values both come back not-ok.
func decodeRows(raw json.RawMessage) ([]fetcher.Row, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, false
	}

	var rows []fetcher.Row
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false
	}

	return rows, true
}
