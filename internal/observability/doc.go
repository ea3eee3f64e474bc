// Package observability groups the logging, metrics and tracing
// subpackages used by the news service.
//
//   - logging: slog JSON logger with request-scoped fields
//   - metrics: Prometheus business counters for news operations
//   - tracing: OpenTelemetry provider setup and HTTP span middleware
package observability
