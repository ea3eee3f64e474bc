// Package resilience holds fault tolerance wrappers for the news store.
//
// The circuitbreaker subpackage fails fast once the store keeps erroring,
// instead of letting every request queue on a dead backend. Nothing in this
// tree retries: each request issues at most one store call.
//
// Usage Example:
//
//	repo := circuitbreaker.NewArticleRepository(mongoRepo, circuitbreaker.StoreConfig())
//	article, err := repo.Get(ctx, id) // gobreaker.ErrOpenState while open
package resilience
