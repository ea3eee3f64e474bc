// Package metrics provides Prometheus metrics for the news service.
//
// HTTP request metrics live next to the middleware in handler/http; this
// package holds what the use case layer records:
//   - news operation outcomes and the article count gauge
//   - uploaded image sizes
//   - store call latency
//
// All metrics are registered with the Prometheus default registry and
// exposed via the /metrics endpoint.
//
// Example usage:
//
//	start := time.Now()
//	n, err := repo.Count(ctx)
//	metrics.RecordStoreOperation("count", time.Since(start))
//	if err == nil {
//	    metrics.UpdateNewsTotal(n)
//	}
package metrics
