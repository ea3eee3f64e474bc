// Package article provides the news use cases: create, paginated list,
// lookups by id, slider flag and category, partial update and delete.
package article

import "errors"

// Sentinel errors for article use case operations. Callers classify with
// errors.Is; anything not wrapping one of these is an internal failure.
var (
	// ErrInvalidPage indicates pageNo or pageLimit is out of range. No store
	// access happens before it is returned.
	ErrInvalidPage = errors.New("invalid page number")

	// ErrValidation indicates the input, or the record produced by merging an
	// update, was rejected by validation or by the store.
	ErrValidation = errors.New("invalid news data")

	// ErrNotFound indicates no article matched, including malformed ids and
	// empty slider or category collections.
	ErrNotFound = errors.New("news not found")
)
