package fetcher

import "errors"

// Row is one spreadsheet row: a short ordered sequence of opaque
// string/number cells, positionally typed by convention.
type Row []any

// RawResult is the outcome of a diagnostic fetch. Success mirrors the
// upstream flag and stays nil when the upstream envelope omitted it,
// keeping "absent" distinct from "false". Rows are upstream rows with
// no reordering applied.
type RawResult struct {
	Success *bool
	Rows    []Row
}

// Message extracts the human-readable message for a route boundary.
// Typed upstream errors expose their bare message so upstream-supplied
// text (e.g. a quota notice) passes through verbatim; anything else
// falls back to Error().
func Message(err error) string {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Message
	}
	return err.Error()
}
