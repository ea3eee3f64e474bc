// Package repository declares the persistence contracts used by the use case layer.
package repository

import (
	"context"

	"news-portal/internal/domain/entity"
)

// ArticleRepository is the persistence store for news articles.
//
// Read methods return articles with Category expanded to {id, name}; a
// dangling reference leaves Category nil. Lookups by an id that does not
// exist, or that the store cannot parse, return (nil, nil).
type ArticleRepository interface {
	// Create inserts a new article and returns the stored record with its
	// assigned ID. A nil record with a nil error means the store accepted the
	// call but produced nothing.
	Create(ctx context.Context, article *entity.Article) (*entity.Article, error)

	Get(ctx context.Context, id string) (*entity.Article, error)

	// List returns up to limit articles ordered by AddedAt DESC, ID DESC,
	// skipping the first skip records.
	List(ctx context.Context, skip, limit int) ([]*entity.Article, error)

	// Count returns the total number of articles, unfiltered.
	Count(ctx context.Context) (int64, error)

	// ListSlider returns every article flagged for the slider, in store order.
	ListSlider(ctx context.Context) ([]*entity.Article, error)

	// ListByCategory returns every article referencing categoryID, in store order.
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.Article, error)

	// Update writes the non-nil fields of patch onto the article with id in
	// a single store operation. Fields absent from the patch keep whatever
	// value the store holds at write time. Returns the post-update record,
	// or nil if no article matched.
	Update(ctx context.Context, id string, patch entity.ArticlePatch) (*entity.Article, error)

	// Delete removes the article and returns its last known state,
	// or nil if no article matched.
	Delete(ctx context.Context, id string) (*entity.Article, error)

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
