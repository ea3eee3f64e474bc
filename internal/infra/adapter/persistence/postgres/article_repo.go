// Package postgres provides the PostgreSQL implementation of the article store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// selectColumns reads a news row aliased n joined to categories aliased c.
const selectColumns = `n.id, n.title, n.content, n.author, n.category_id,
       n.add_to_slider, n.news_image, n.added_at, c.id, c.category_name`

type ArticleRepo struct {
	db    *sql.DB
	newID func() string
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

func NewArticleRepo(db *sql.DB) *ArticleRepo {
	return &ArticleRepo{db: db, newID: uuid.NewString}
}

// WithIDGenerator replaces the identifier generator.
func (repo *ArticleRepo) WithIDGenerator(gen func() string) *ArticleRepo {
	repo.newID = gen
	return repo
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var (
		a       entity.Article
		catID   sql.NullString
		catName sql.NullString
	)
	if err := row.Scan(&a.ID, &a.Title, &a.Content, &a.Author, &a.CategoryID,
		&a.AddToSlider, &a.NewsImage, &a.AddedAt, &catID, &catName); err != nil {
		return nil, err
	}
	if catID.Valid {
		a.Category = &entity.Category{ID: catID.String, Name: catName.String}
	}
	return &a, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	const query = `
WITH n AS (
    INSERT INTO news (id, title, content, author, category_id, add_to_slider, news_image, added_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING *
)
SELECT ` + selectColumns + `
FROM n
LEFT JOIN categories c ON c.id = n.category_id`

	row := repo.db.QueryRowContext(ctx, query,
		repo.newID(), article.Title, article.Content, article.Author, article.CategoryID,
		article.AddToSlider, article.NewsImage, article.AddedAt)
	out, err := scanArticle(row)
	if err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT ` + selectColumns + `
FROM news n
LEFT JOIN categories c ON c.id = n.category_id
WHERE n.id = $1
LIMIT 1`

	out, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) List(ctx context.Context, skip, limit int) ([]*entity.Article, error) {
	const query = `
SELECT ` + selectColumns + `
FROM news n
LEFT JOIN categories c ON c.id = n.category_id
ORDER BY n.added_at DESC, n.id DESC
LIMIT $1 OFFSET $2`

	out, err := repo.query(ctx, limit, query, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM news`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) ListSlider(ctx context.Context) ([]*entity.Article, error) {
	const query = `
SELECT ` + selectColumns + `
FROM news n
LEFT JOIN categories c ON c.id = n.category_id
WHERE n.add_to_slider = TRUE`

	out, err := repo.query(ctx, 0, query)
	if err != nil {
		return nil, fmt.Errorf("ListSlider: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Article, error) {
	const query = `
SELECT ` + selectColumns + `
FROM news n
LEFT JOIN categories c ON c.id = n.category_id
WHERE n.category_id = $1`

	out, err := repo.query(ctx, 0, query, categoryID)
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	return out, nil
}

// Update applies the patch in one statement. A NULL parameter keeps the
// column's current value.
func (repo *ArticleRepo) Update(ctx context.Context, id string, patch entity.ArticlePatch) (*entity.Article, error) {
	if patch.IsEmpty() {
		return repo.Get(ctx, id)
	}

	const query = `
WITH n AS (
    UPDATE news
    SET title = COALESCE($2, title),
        content = COALESCE($3, content),
        author = COALESCE($4, author),
        category_id = COALESCE($5, category_id),
        add_to_slider = COALESCE($6, add_to_slider)
    WHERE id = $1
    RETURNING *
)
SELECT ` + selectColumns + `
FROM n
LEFT JOIN categories c ON c.id = n.category_id`

	row := repo.db.QueryRowContext(ctx, query, id,
		nullString(patch.Title), nullString(patch.Content), nullString(patch.Author),
		nullString(patch.CategoryID), nullBool(patch.AddToSlider))
	out, err := scanArticle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return out, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullBool(b *bool) sql.NullBool {
	if b == nil {
		return sql.NullBool{}
	}
	return sql.NullBool{Bool: *b, Valid: true}
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
WITH n AS (
    DELETE FROM news WHERE id = $1
    RETURNING *
)
SELECT ` + selectColumns + `
FROM n
LEFT JOIN categories c ON c.id = n.category_id`

	out, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Delete: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) Ping(ctx context.Context) error {
	return repo.db.PingContext(ctx)
}

func (repo *ArticleRepo) query(ctx context.Context, sizeHint int, query string, args ...any) ([]*entity.Article, error) {
	rows, err := repo.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, sizeHint)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("Scan: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}
