package metrics

import "time"

// Operation results used as the result label.
const (
	ResultSuccess  = "success"
	ResultInvalid  = "invalid"
	ResultNotFound = "not_found"
	ResultError    = "error"
)

// RecordNewsOperation counts one service operation with its outcome.
func RecordNewsOperation(operation, result string) {
	NewsOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateNewsTotal sets the article count gauge.
func UpdateNewsTotal(count int64) {
	NewsTotal.Set(float64(count))
}

// RecordImageSize records the decoded size of an uploaded image.
func RecordImageSize(bytes int) {
	NewsImageBytes.Observe(float64(bytes))
}

// RecordStoreOperation records the duration of a store call, e.g. "list" or "count".
func RecordStoreOperation(operation string, duration time.Duration) {
	StoreOperationDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
