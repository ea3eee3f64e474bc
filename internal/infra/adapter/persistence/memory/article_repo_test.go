package memory_test

import (
	"context"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-portal/internal/domain/entity"
	"news-portal/internal/infra/adapter/persistence/memory"
)

func seqIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%02d", n)
	}
}

func newArticle(title, category string, slider bool, at time.Time) *entity.Article {
	return &entity.Article{
		Title:       title,
		Content:     "body of " + title,
		Author:      "desk",
		CategoryID:  category,
		AddToSlider: slider,
		NewsImage:   "data:image/png;base64,AAAA",
		AddedAt:     at,
	}
}

func TestArticleRepo_CreateGet(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo().WithIDGenerator(seqIDs())
	repo.PutCategory(entity.Category{ID: "c1", Name: "Politics"})

	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	created, err := repo.Create(ctx, newArticle("a", "c1", true, at))
	require.NoError(t, err)
	assert.Equal(t, "id-01", created.ID)
	require.NotNil(t, created.Category)
	assert.Equal(t, "Politics", created.Category.Name)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestArticleRepo_DanglingCategory(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()

	created, err := repo.Create(ctx, newArticle("a", "ghost", false, time.Now()))
	require.NoError(t, err)
	assert.Nil(t, created.Category)
	assert.Equal(t, "ghost", created.CategoryID)
}

func TestArticleRepo_ListOrderingAndPaging(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo().WithIDGenerator(seqIDs())

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		_, err := repo.Create(ctx, newArticle(fmt.Sprintf("n%d", i), "c", false, base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}
	// same timestamp as n4: ties fall back to ID DESC
	_, err := repo.Create(ctx, newArticle("tie", "c", false, base.Add(4*time.Hour)))
	require.NoError(t, err)

	page, err := repo.List(ctx, 0, 3)
	require.NoError(t, err)
	require.Len(t, page, 3)
	assert.Equal(t, []string{"tie", "n4", "n3"}, titles(page))

	page, err = repo.List(ctx, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, []string{"n2", "n1", "n0"}, titles(page))

	page, err = repo.List(ctx, 30, 3)
	require.NoError(t, err)
	assert.Empty(t, page)

	again, err := repo.List(ctx, 0, 6)
	require.NoError(t, err)
	first, err := repo.List(ctx, 0, 6)
	require.NoError(t, err)
	assert.Equal(t, titles(first), titles(again))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(6), n)
}

func TestArticleRepo_Filters(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()
	now := time.Now()

	_, _ = repo.Create(ctx, newArticle("a", "c1", true, now))
	_, _ = repo.Create(ctx, newArticle("b", "c2", false, now))
	_, _ = repo.Create(ctx, newArticle("c", "c1", false, now))

	slider, err := repo.ListSlider(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, titles(slider))

	byCat, err := repo.ListByCategory(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, titles(byCat))

	none, err := repo.ListByCategory(ctx, "c9")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestArticleRepo_UpdateKeepsAddedAt(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()
	at := time.Date(2024, 12, 24, 0, 0, 0, 0, time.UTC)

	created, err := repo.Create(ctx, newArticle("old", "c1", false, at))
	require.NoError(t, err)

	title := "new"
	updated, err := repo.Update(ctx, created.ID, entity.ArticlePatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, at, updated.AddedAt)
	assert.Equal(t, created.Author, updated.Author)
	assert.Equal(t, created.NewsImage, updated.NewsImage)

	missing, err := repo.Update(ctx, "missing", entity.ArticlePatch{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestArticleRepo_UpdateDisjointPatchesBothLand(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()

	created, err := repo.Create(ctx, newArticle("old", "c1", false, time.Now()))
	require.NoError(t, err)

	title, author := "new title", "new author"
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := repo.Update(ctx, created.ID, entity.ArticlePatch{Title: &title})
		assert.NoError(t, err)
	}()
	go func() {
		defer wg.Done()
		_, err := repo.Update(ctx, created.ID, entity.ArticlePatch{Author: &author})
		assert.NoError(t, err)
	}()
	wg.Wait()

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
	assert.Equal(t, author, got.Author)
}

func TestArticleRepo_ListOutOfRangeWindow(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()
	_, err := repo.Create(ctx, newArticle("a", "c1", false, time.Now()))
	require.NoError(t, err)

	page, err := repo.List(ctx, math.MaxInt, 2)
	require.NoError(t, err)
	assert.Empty(t, page)

	page, err = repo.List(ctx, 0, math.MaxInt)
	require.NoError(t, err)
	assert.Len(t, page, 1)

	_, err = repo.List(ctx, -4, 2)
	assert.Error(t, err)
}

func TestArticleRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()

	created, err := repo.Create(ctx, newArticle("gone", "c1", true, time.Now()))
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	again, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, again)

	slider, err := repo.ListSlider(ctx)
	require.NoError(t, err)
	assert.Empty(t, slider)
}

func TestArticleRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewArticleRepo()

	in := newArticle("orig", "c1", false, time.Now())
	created, err := repo.Create(ctx, in)
	require.NoError(t, err)

	in.Title = "mutated input"
	created.Title = "mutated output"

	got, err := repo.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "orig", got.Title)
}

func titles(as []*entity.Article) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.Title)
	}
	return out
}
