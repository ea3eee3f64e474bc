package pagination

import (
	"log/slog"
	"time"
)

// LogResponse logs a completed listing with its page window and timing.
func LogResponse(logger *slog.Logger, params Params, returned int, total int64, totalPages int, duration time.Duration, statusCode int) {
	logger.Info("paginated response",
		slog.Int("page_no", params.PageNo),
		slog.Int("page_limit", params.PageLimit),
		slog.Int("returned_count", returned),
		slog.Int64("total_count", total),
		slog.Int("total_pages", totalPages),
		slog.Int64("duration_ms", duration.Milliseconds()),
		slog.Int("status", statusCode))
}

// LogError logs a rejected or failed listing.
func LogError(logger *slog.Logger, params Params, err error, errorType string) {
	logger.Warn("pagination error",
		slog.Int("page_no", params.PageNo),
		slog.Int("page_limit", params.PageLimit),
		slog.String("error", err.Error()),
		slog.String("error_type", errorType))
}
