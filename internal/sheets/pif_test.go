package sheets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"pifrelay/internal/fetcher"
)

func TestNewPIFFetcher(t *testing.T) {
	f := NewPIFFetcher("http://localhost")

	if f == nil {
		t.Fatal("NewPIFFetcher() returned nil")
	}
	if f.client == nil {
		t.Error("client is nil")
	}
	if got := f.Source(); got != "google-sheets" {
		t.Errorf("Source() = %q, want %q", got, "google-sheets")
	}
}

func TestPIFFetcher_Fetch_Success(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("action"); got != "getPifData" {
			t.Errorf("action = %q, want getPifData", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"success": true,
			"data": [
				["x", "SYM", "Name", "4.5"],
				["y", "OTR", "Other", "3.0", "extra"]
			]
		}`))
	})

	server := httptest.NewServer(handler)
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	rows, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() returned unexpected error: %v", err)
	}

	want := []fetcher.Row{
		{"x", "Name", "SYM", "4.5", "4.5"},
		{"y", "Other", "OTR", "3.0", "3.0"},
	}
	if !reflect.DeepEqual(rows, want) {
		t.Errorf("Fetch() = %v, want %v", rows, want)
	}
}

func TestPIFFetcher_Fetch_EmptyData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": []}`))
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	rows, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() returned unexpected error: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("Fetch() returned %d rows, want 0", len(rows))
	}
}

func TestPIFFetcher_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	_, err := f.Fetch(context.Background())
	if err == nil {
		t.Fatal("Fetch() expected error, got nil")
	}

	var ue *fetcher.UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("Fetch() error = %T, want *fetcher.UpstreamError", err)
	}
	if ue.Type != fetcher.ErrorTypeUpstreamHTTP {
		t.Errorf("error type = %q, want %q", ue.Type, fetcher.ErrorTypeUpstreamHTTP)
	}
	if ue.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("StatusCode = %d, want %d", ue.StatusCode, http.StatusServiceUnavailable)
	}
	if !strings.Contains(err.Error(), "503") {
		t.Errorf("error %q does not mention the upstream status 503", err.Error())
	}
}

func TestPIFFetcher_Fetch_UpstreamFailureFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error": "quota exceeded"}`))
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	_, err := f.Fetch(context.Background())
	if err == nil {
		t.Fatal("Fetch() expected error, got nil")
	}

	// Upstream-supplied text must pass through verbatim
	if got := fetcher.Message(err); got != "quota exceeded" {
		t.Errorf("Message(err) = %q, want %q", got, "quota exceeded")
	}

	var ue *fetcher.UpstreamError
	if !errors.As(err, &ue) || ue.Type != fetcher.ErrorTypeFormat {
		t.Errorf("Fetch() error = %v, want a format error", err)
	}
}

func TestPIFFetcher_Fetch_FailureWithoutMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false}`))
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	_, err := f.Fetch(context.Background())
	if err == nil {
		t.Fatal("Fetch() expected error, got nil")
	}
	if got := fetcher.Message(err); got != "upstream reported failure" {
		t.Errorf("Message(err) = %q, want the generic failure message", got)
	}
}

func TestPIFFetcher_Fetch_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"data is a string", `{"success": true, "data": "not-an-array"}`},
		{"data is an object", `{"success": true, "data": {"a": 1}}`},
		{"data missing", `{"success": true}`},
		{"data null", `{"success": true, "data": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			f := NewPIFFetcher(server.URL)

			_, err := f.Fetch(context.Background())
			if err == nil {
				t.Fatal("Fetch() expected error, got nil")
			}

			var ue *fetcher.UpstreamError
			if !errors.As(err, &ue) || ue.Type != fetcher.ErrorTypeFormat {
				t.Errorf("Fetch() error = %v, want a format error", err)
			}
		})
	}
}

func TestPIFFetcher_Fetch_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	_, err := f.Fetch(context.Background())
	if err == nil {
		t.Fatal("Fetch() expected error, got nil")
	}

	var ue *fetcher.UpstreamError
	if !errors.As(err, &ue) || ue.Type != fetcher.ErrorTypeFormat {
		t.Errorf("Fetch() error = %v, want a format error", err)
	}
}

func TestPIFFetcher_Fetch_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // Closed before use: connection refused

	f := NewPIFFetcher(server.URL)

	_, err := f.Fetch(context.Background())
	if err == nil {
		t.Fatal("Fetch() expected error, got nil")
	}

	var ue *fetcher.UpstreamError
	if !errors.As(err, &ue) || ue.Type != fetcher.ErrorTypeNetwork {
		t.Errorf("Fetch() error = %v, want a network error", err)
	}
}

func TestPIFFetcher_Fetch_ContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.Fetch(ctx)
	if err == nil {
		t.Error("Fetch() expected error for cancelled context, got nil")
	}
}

func TestPIFFetcher_FetchRaw_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("action"); got != "getPifData" {
			t.Errorf("action = %q, want getPifData", got)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"success": true,
			"data": [["x", "SYM", "Name", "4.5"]]
		}`))
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	raw, err := f.FetchRaw(context.Background())
	if err != nil {
		t.Fatalf("FetchRaw() returned unexpected error: %v", err)
	}

	if raw.Success == nil || !*raw.Success {
		t.Errorf("Success = %v, want true", raw.Success)
	}

	// No column reordering on the diagnostic path
	want := []fetcher.Row{{"x", "SYM", "Name", "4.5"}}
	if !reflect.DeepEqual(raw.Rows, want) {
		t.Errorf("Rows = %v, want %v", raw.Rows, want)
	}
}

func TestPIFFetcher_FetchRaw_AbsentSuccessFlag(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": [["a"]]}`))
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	raw, err := f.FetchRaw(context.Background())
	if err != nil {
		t.Fatalf("FetchRaw() returned unexpected error: %v", err)
	}
	if raw.Success != nil {
		t.Errorf("Success = %v, want nil for an absent upstream flag", *raw.Success)
	}
	if len(raw.Rows) != 1 {
		t.Errorf("Rows has %d entries, want 1", len(raw.Rows))
	}
}

func TestPIFFetcher_FetchRaw_NonArrayData(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true, "data": "not-an-array"}`))
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	// Shape oddities do not fail the diagnostic fetch
	raw, err := f.FetchRaw(context.Background())
	if err != nil {
		t.Fatalf("FetchRaw() returned unexpected error: %v", err)
	}
	if len(raw.Rows) != 0 {
		t.Errorf("Rows has %d entries, want 0", len(raw.Rows))
	}
}

func TestPIFFetcher_FetchRaw_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	f := NewPIFFetcher(server.URL)

	_, err := f.FetchRaw(context.Background())
	if err == nil {
		t.Fatal("FetchRaw() expected error, got nil")
	}

	var ue *fetcher.UpstreamError
	if !errors.As(err, &ue) || ue.StatusCode != http.StatusBadGateway {
		t.Errorf("FetchRaw() error = %v, want an upstream HTTP error with status 502", err)
	}
}
