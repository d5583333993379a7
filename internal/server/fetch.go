package server

import (
	"net/http"
	"time"

	"pifrelay/internal/fetcher"
)

// handleFetchPIF handles GET /fetch-pif requests: one upstream call,
// rows remapped into the relay column order, elapsed timing on both
// the success and the failure path.
func (s *Server) handleFetchPIF(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	s.log.Info("fetching pif data", "source", s.fetcher.Source())

	rows, err := s.fetcher.Fetch(r.Context())
	elapsed := elapsedSince(start)

	if err != nil {
		s.log.Error("pif fetch failed", "error", err, "elapsed", elapsed)
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"success":   false,
			"error":     fetcher.Message(err),
			"timestamp": nowISO(),
			"elapsed":   elapsed,
		})
		return
	}

	if rows == nil {
		rows = []fetcher.Row{}
	}

	logFields := []any{"count", len(rows), "elapsed", elapsed}
	if len(rows) > 0 {
		logFields = append(logFields, "sample", rows[0])
	}
	s.log.Info("pif fetch succeeded", logFields...)

	writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"data":      rows,
		"count":     len(rows),
		"source":    s.fetcher.Source(),
		"timestamp": nowISO(),
		"elapsed":   elapsed,
	})
}
