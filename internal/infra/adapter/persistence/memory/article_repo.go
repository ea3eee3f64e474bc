// Package memory provides an in-process implementation of the article store.
// It backs local development (STORE_DRIVER=memory) and the use case and
// handler tests.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// ArticleRepo keeps articles and categories in maps guarded by a RWMutex.
// Records are copied on the way in and on the way out.
type ArticleRepo struct {
	mu         sync.RWMutex
	articles   map[string]*entity.Article
	order      []string // insertion order, the "natural" store order
	categories map[string]entity.Category
	newID      func() string
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

// NewArticleRepo creates an empty store that assigns UUID identifiers.
func NewArticleRepo() *ArticleRepo {
	return &ArticleRepo{
		articles:   make(map[string]*entity.Article),
		categories: make(map[string]entity.Category),
		newID:      uuid.NewString,
	}
}

// WithIDGenerator replaces the identifier generator. Tests use it to get
// predictable IDs.
func (r *ArticleRepo) WithIDGenerator(gen func() string) *ArticleRepo {
	r.newID = gen
	return r
}

// PutCategory adds or replaces a category record.
func (r *ArticleRepo) PutCategory(c entity.Category) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID] = c
}

func (r *ArticleRepo) Create(_ context.Context, article *entity.Article) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := article.Clone()
	stored.ID = r.newID()
	stored.Category = nil
	r.articles[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return r.expand(stored), nil
}

func (r *ArticleRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	return r.expand(a), nil
}

func (r *ArticleRepo) List(_ context.Context, skip, limit int) ([]*entity.Article, error) {
	if skip < 0 || limit < 0 {
		return nil, fmt.Errorf("List: negative window skip=%d limit=%d", skip, limit)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.Article, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.articles[id])
	}
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].AddedAt.Equal(all[j].AddedAt) {
			return all[i].AddedAt.After(all[j].AddedAt)
		}
		return all[i].ID > all[j].ID
	})

	if skip >= len(all) {
		return []*entity.Article{}, nil
	}
	end := len(all)
	if limit < end-skip {
		end = skip + limit
	}

	out := make([]*entity.Article, 0, end-skip)
	for _, a := range all[skip:end] {
		out = append(out, r.expand(a))
	}
	return out, nil
}

func (r *ArticleRepo) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.articles)), nil
}

func (r *ArticleRepo) ListSlider(_ context.Context) ([]*entity.Article, error) {
	return r.filter(func(a *entity.Article) bool { return a.AddToSlider }), nil
}

func (r *ArticleRepo) ListByCategory(_ context.Context, categoryID string) ([]*entity.Article, error) {
	return r.filter(func(a *entity.Article) bool { return a.CategoryID == categoryID }), nil
}

func (r *ArticleRepo) Update(_ context.Context, id string, patch entity.ArticlePatch) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		cur.Title = *patch.Title
	}
	if patch.Content != nil {
		cur.Content = *patch.Content
	}
	if patch.Author != nil {
		cur.Author = *patch.Author
	}
	if patch.CategoryID != nil {
		cur.CategoryID = *patch.CategoryID
	}
	if patch.AddToSlider != nil {
		cur.AddToSlider = *patch.AddToSlider
	}

	return r.expand(cur), nil
}

func (r *ArticleRepo) Delete(_ context.Context, id string) (*entity.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, nil
	}
	out := r.expand(a)
	delete(r.articles, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return out, nil
}

func (r *ArticleRepo) Ping(context.Context) error { return nil }

func (r *ArticleRepo) filter(keep func(*entity.Article) bool) []*entity.Article {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Article, 0)
	for _, id := range r.order {
		if a := r.articles[id]; keep(a) {
			out = append(out, r.expand(a))
		}
	}
	return out
}

// expand returns a copy of a with its category reference resolved.
// Callers must hold r.mu.
func (r *ArticleRepo) expand(a *entity.Article) *entity.Article {
	out := a.Clone()
	out.Category = nil
	if c, ok := r.categories[a.CategoryID]; ok {
		out.Category = &entity.Category{ID: c.ID, Name: c.Name}
	}
	return out
}
