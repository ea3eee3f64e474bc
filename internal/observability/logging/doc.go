// Package logging builds the service's slog loggers.
//
// Loggers write JSON. The level comes from LOG_LEVEL (debug, info, warn,
// error; default info). Request-scoped loggers carry the request_id
// attribute set by the requestid middleware:
//
//	logger := logging.WithRequestID(r.Context(), base)
//	logger.Info("news created", slog.String("id", id))
package logging
