package pagination

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestsTotal counts listing requests.
	// Labels: status (HTTP status code), page_range (1-10, 11-50, 51-100, 100+)
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_pagination_requests_total",
			Help: "Total number of paginated news listing requests",
		},
		[]string{"status", "page_range"},
	)

	// DurationSeconds tracks listing duration by layer.
	DurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "news_pagination_duration_seconds",
			Help:    "Paginated listing duration distribution",
			Buckets: []float64{0.01, 0.05, 0.1, 0.2, 0.5, 1.0, 2.0},
		},
		[]string{"operation"},
	)

	// ErrorsTotal counts listing failures.
	// Labels: type (validation, store)
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "news_pagination_errors_total",
			Help: "Total number of paginated listing errors",
		},
		[]string{"type"},
	)
)

func RecordRequest(statusCode int, pageNo int) {
	RequestsTotal.WithLabelValues(strconv.Itoa(statusCode), pageRangeBucket(pageNo)).Inc()
}

func RecordDuration(operation string, seconds float64) {
	DurationSeconds.WithLabelValues(operation).Observe(seconds)
}

func RecordError(errorType string) {
	ErrorsTotal.WithLabelValues(errorType).Inc()
}

func pageRangeBucket(pageNo int) string {
	switch {
	case pageNo <= 10:
		return "1-10"
	case pageNo <= 50:
		return "11-50"
	case pageNo <= 100:
		return "51-100"
	default:
		return "100+"
	}
}
