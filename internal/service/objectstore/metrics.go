package objectstore

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	operationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "yarnstash_objectstore_operations_total",
		Help: "Object store calls by operation and outcome",
	}, []string{"op", "status"})

	operationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "yarnstash_objectstore_operation_duration_seconds",
		Help:    "Object store call duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12), // 10ms to ~40s
	}, []string{"op"})
)

func observe(op string, started time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	operationsTotal.WithLabelValues(op, status).Inc()
	operationDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}
