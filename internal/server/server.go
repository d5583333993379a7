// Package server wires the relay's HTTP routes: health reporting,
// the normalizing PIF fetch, the raw diagnostic fetch and Prometheus
// metrics.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pifrelay/internal/fetcher"
)

const (
	serviceName        = "pif-data-relay"
	serviceDescription = "relays PIF rows from the spreadsheet-backed data source"
)

// Server holds the route handlers and their shared dependencies
type Server struct {
	fetcher fetcher.Fetcher
	log     *slog.Logger
}

// New creates a server backed by the given fetcher
func New(f fetcher.Fetcher, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		fetcher: f,
		log:     log,
	}
}

// Register attaches all HTTP routes to mux
func (s *Server) Register(mux *http.ServeMux) {
	mux.HandleFunc("/", withCORS(withMetrics("root", s.handleRoot)))
	mux.HandleFunc("/health", withCORS(withMetrics("health", s.handleHealth)))
	mux.HandleFunc("/fetch-pif", withCORS(withMetrics("fetch_pif", s.handleFetchPIF)))
	mux.HandleFunc("/fetch-pif-raw", withCORS(withMetrics("fetch_pif_raw", s.handleFetchPIFRaw)))
	mux.Handle("/metrics", promhttp.Handler())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// nowISO returns the current time as an ISO-8601 / RFC 3339 UTC string
func nowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// elapsedSince formats wall-clock time since start as e.g. "123ms"
func elapsedSince(start time.Time) string {
	return fmt.Sprintf("%dms", time.Since(start).Milliseconds())
}
