package circuitbreaker_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-portal/internal/domain/entity"
	"news-portal/internal/infra/adapter/persistence/memory"
	"news-portal/internal/resilience/circuitbreaker"
)

// flakyRepo fails every call with err while err is set.
type flakyRepo struct {
	*memory.ArticleRepo
	err   error
	calls int
}

func (f *flakyRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.ArticleRepo.Get(ctx, id)
}

func (f *flakyRepo) Ping(context.Context) error { return f.err }

func fastConfig() circuitbreaker.Config {
	return circuitbreaker.Config{
		Name:             "repo-test",
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          time.Minute,
		FailureThreshold: 1.0,
		MinRequests:      2,
	}
}

func TestArticleRepository_PassesThrough(t *testing.T) {
	ctx := context.Background()
	inner := memory.NewArticleRepo()
	repo := circuitbreaker.NewArticleRepository(inner, fastConfig())

	created, err := repo.Create(ctx, &entity.Article{Title: "t", Content: "c", Author: "a", CategoryID: "c1"})
	require.NoError(t, err)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	page, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	author := "b"
	updated, err := repo.Update(ctx, created.ID, entity.ArticlePatch{Author: &author})
	require.NoError(t, err)
	assert.Equal(t, "b", updated.Author)
	assert.Equal(t, "t", updated.Title)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
}

func TestArticleRepository_FailsFastWhenOpen(t *testing.T) {
	ctx := context.Background()
	storeErr := errors.New("server selection timeout")
	inner := &flakyRepo{ArticleRepo: memory.NewArticleRepo(), err: storeErr}
	repo := circuitbreaker.NewArticleRepository(inner, fastConfig())

	for i := 0; i < 2; i++ {
		_, err := repo.Get(ctx, "x")
		assert.ErrorIs(t, err, storeErr)
	}
	assert.True(t, repo.Breaker().IsOpen())

	_, err := repo.Get(ctx, "x")
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 2, inner.calls, "open breaker must not reach the store")

	// health checks still see the real store
	assert.ErrorIs(t, repo.Ping(ctx), storeErr)
}
