// Package metrics provides the news business and store Prometheus metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Business metrics track news operations
var (
	// NewsOperationsTotal counts service operations by outcome.
	// Labels: operation (create, list, get, slider, category, update, delete),
	// result (success, invalid, not_found, error)
	NewsOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_operations_total",
			Help: "Total number of news operations by result",
		},
		[]string{"operation", "result"},
	)

	// NewsTotal tracks the article count last seen by a listing.
	NewsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_total",
			Help: "Total number of news articles in the store",
		},
	)

	// NewsImageBytes measures uploaded image size before encoding.
	NewsImageBytes = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "news_image_size_bytes",
			Help:    "Uploaded news image size in bytes",
			Buckets: prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB .. 16MiB
		},
	)
)

// Store metrics track persistence latency
var (
	// StoreOperationDuration measures store call duration.
	StoreOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_store_operation_duration_seconds",
			Help:    "News store operation duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"operation"},
	)
)
