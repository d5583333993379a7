package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pifrelay_http_requests_total",
		Help: "HTTP requests served, by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pifrelay_http_request_duration_seconds",
		Help:    "HTTP request latency, by endpoint, method and status code.",
		Buckets: prometheus.DefBuckets,
	}, []string{"endpoint", "method", "status"})
)
