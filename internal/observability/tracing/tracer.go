package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "news-portal"

// Tracer returns the service tracer. It follows whatever provider Setup
// (or a test) installs globally.
func Tracer() trace.Tracer {
	return otel.Tracer(instrumentationName)
}
