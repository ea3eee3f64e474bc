// Package tracing wires OpenTelemetry into the HTTP server: a tracer
// provider with optional OTLP/HTTP export and a middleware that opens a
// server span per request.
//
//	shutdown, err := tracing.Setup(ctx, tracing.Config{ServiceName: "news-portal", SampleRatio: 1})
//	defer shutdown(context.Background())
//	handler = tracing.Middleware(handler)
package tracing
