package server

import "net/http"

// handleRoot handles GET / requests. It reports service status and the
// available endpoints without touching the upstream provider.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// "/" is the catch-all pattern; anything but the root path is unknown
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	s.log.Info("root status requested")

	writeJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"service":     serviceName,
		"description": serviceDescription,
		"timestamp":   nowISO(),
		"endpoints": map[string]string{
			"/":              "GET",
			"/health":        "GET",
			"/fetch-pif":     "GET",
			"/fetch-pif-raw": "GET",
			"/metrics":       "GET",
		},
	})
}

// handleHealth handles GET /health requests. Always 200; never calls
// upstream.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.log.Info("health check")

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   serviceName,
		"timestamp": nowISO(),
	})
}
