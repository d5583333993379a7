package server

import (
	"net/http"

	"pifrelay/internal/fetcher"
)

// rawSampleSize caps the sample slice in the diagnostic response
const rawSampleSize = 5

// handleFetchPIFRaw handles GET /fetch-pif-raw requests. It returns
// the upstream data unmodified for inspection: no column reordering,
// no envelope validation beyond a safe decode. The success field
// mirrors the upstream flag and serializes as null when upstream
// omitted it.
func (s *Server) handleFetchPIFRaw(w http.ResponseWriter, r *http.Request) {
	s.log.Info("fetching raw pif data", "source", s.fetcher.Source())

	raw, err := s.fetcher.FetchRaw(r.Context())
	if err != nil {
		s.log.Error("raw pif fetch failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success": false,
			"error":   fetcher.Message(err),
		})
		return
	}

	rows := raw.Rows
	if rows == nil {
		rows = []fetcher.Row{}
	}

	sample := rows
	if len(sample) > rawSampleSize {
		sample = sample[:rawSampleSize]
	}

	s.log.Info("raw pif fetch succeeded", "count", len(rows))

	writeJSON(w, http.StatusOK, map[string]any{
		"success":  raw.Success,
		"count":    len(rows),
		"sample":   sample,
		"fullData": rows,
	})
}
