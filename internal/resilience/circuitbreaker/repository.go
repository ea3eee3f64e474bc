package circuitbreaker

import (
	"context"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// ArticleRepository guards every store call with a circuit breaker.
// Ping bypasses the breaker so health checks observe the real store.
type ArticleRepository struct {
	next repository.ArticleRepository
	cb   *CircuitBreaker
}

var _ repository.ArticleRepository = (*ArticleRepository)(nil)

func NewArticleRepository(next repository.ArticleRepository, cfg Config) *ArticleRepository {
	return &ArticleRepository{next: next, cb: New(cfg)}
}

// Breaker exposes the underlying breaker for health reporting.
func (r *ArticleRepository) Breaker() *CircuitBreaker { return r.cb }

func (r *ArticleRepository) Create(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	return call(r.cb, func() (*entity.Article, error) { return r.next.Create(ctx, article) })
}

func (r *ArticleRepository) Get(ctx context.Context, id string) (*entity.Article, error) {
	return call(r.cb, func() (*entity.Article, error) { return r.next.Get(ctx, id) })
}

func (r *ArticleRepository) List(ctx context.Context, skip, limit int) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.next.List(ctx, skip, limit) })
}

func (r *ArticleRepository) Count(ctx context.Context) (int64, error) {
	return call(r.cb, func() (int64, error) { return r.next.Count(ctx) })
}

func (r *ArticleRepository) ListSlider(ctx context.Context) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.next.ListSlider(ctx) })
}

func (r *ArticleRepository) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Article, error) {
	return call(r.cb, func() ([]*entity.Article, error) { return r.next.ListByCategory(ctx, categoryID) })
}

func (r *ArticleRepository) Update(ctx context.Context, id string, patch entity.ArticlePatch) (*entity.Article, error) {
	return call(r.cb, func() (*entity.Article, error) { return r.next.Update(ctx, id, patch) })
}

func (r *ArticleRepository) Delete(ctx context.Context, id string) (*entity.Article, error) {
	return call(r.cb, func() (*entity.Article, error) { return r.next.Delete(ctx, id) })
}

func (r *ArticleRepository) Ping(ctx context.Context) error {
	return r.next.Ping(ctx)
}
