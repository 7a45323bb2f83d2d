package middleware

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yarnstash_http_requests_total",
		Help: "HTTP requests by route and status code",
	}, []string{"route", "code"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "yarnstash_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route"})
)

func observeRequest(route string, status int, elapsed time.Duration) {
	httpRequestsTotal.WithLabelValues(route, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}
