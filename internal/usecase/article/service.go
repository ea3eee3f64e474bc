package article

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"news-portal/internal/common/pagination"
	"news-portal/internal/domain/entity"
	"news-portal/internal/infra/imageenc"
	"news-portal/internal/observability/metrics"
	"news-portal/internal/repository"
)

// ImageEncoder turns an uploaded image into base64 text.
type ImageEncoder interface {
	EncodeImage(r io.Reader) (imageenc.Image, error)
}

// ContentSanitizer cleans article bodies before they are stored.
type ContentSanitizer interface {
	Sanitize(s string) string
}

// ImageUpload is the raw newsImage part of a create request.
type ImageUpload struct {
	Reader io.Reader
	// MIMEType is the type declared by the client. Empty means use the
	// detected image format.
	MIMEType string
}

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title       string
	Content     string
	Author      string
	Category    string
	AddToSlider bool
	Image       ImageUpload
}

// UpdateInput represents the input parameters for updating an existing article.
// Fields with nil values will not be updated.
type UpdateInput struct {
	ID          string
	Title       *string
	Content     *string
	Author      *string
	Category    *string
	AddToSlider *bool
}

// ListResult is one page of articles plus the unfiltered total.
type ListResult struct {
	Articles   []*entity.Article
	Count      int
	TotalCount int64
	TotalPages int
}

// Service provides news management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo       repository.ArticleRepository
	Images     ImageEncoder
	Sanitizer  ContentSanitizer // optional
	Pagination pagination.Config
	Now        func() time.Time // defaults to time.Now
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Create encodes the uploaded image, assembles the data URI and stores a
// new article stamped with the current time.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Article, error) {
	if in.Image.Reader == nil {
		metrics.RecordNewsOperation("create", metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: %w", ErrValidation,
			&entity.ValidationError{Field: "newsImage", Message: "is required"})
	}
	if s.Images == nil {
		metrics.RecordNewsOperation("create", metrics.ResultError)
		return nil, errors.New("create news: no image encoder configured")
	}

	img, err := s.Images.EncodeImage(in.Image.Reader)
	if err != nil {
		if errors.Is(err, imageenc.ErrNotImage) || errors.Is(err, imageenc.ErrTooLarge) {
			metrics.RecordNewsOperation("create", metrics.ResultInvalid)
			return nil, fmt.Errorf("%w: %w", ErrValidation,
				&entity.ValidationError{Field: "newsImage", Message: err.Error()})
		}
		metrics.RecordNewsOperation("create", metrics.ResultError)
		return nil, fmt.Errorf("encode image: %w", err)
	}
	// base64 expands 3 bytes into 4
	metrics.RecordImageSize(len(img.Base64) / 4 * 3)

	mime := in.Image.MIMEType
	if mime == "" {
		mime = img.MIMEType()
	}

	article := &entity.Article{
		Title:       in.Title,
		Content:     s.sanitize(in.Content),
		Author:      in.Author,
		CategoryID:  in.Category,
		AddToSlider: in.AddToSlider,
		NewsImage:   entity.DataURI(mime, img.Base64),
		AddedAt:     s.now(),
	}
	if err := article.Validate(); err != nil {
		metrics.RecordNewsOperation("create", metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	start := time.Now()
	created, err := s.Repo.Create(ctx, article)
	metrics.RecordStoreOperation("create", time.Since(start))
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			metrics.RecordNewsOperation("create", metrics.ResultInvalid)
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		metrics.RecordNewsOperation("create", metrics.ResultError)
		return nil, fmt.Errorf("create news: %w", err)
	}
	if created == nil {
		metrics.RecordNewsOperation("create", metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: record not added", ErrValidation)
	}

	metrics.RecordNewsOperation("create", metrics.ResultSuccess)
	return created, nil
}

// List returns one page ordered newest first together with the total
// article count. The page fetch and the count run concurrently; the first
// failure cancels the other.
func (s *Service) List(ctx context.Context, params pagination.Params) (*ListResult, error) {
	if err := params.Validate(s.Pagination); err != nil {
		metrics.RecordNewsOperation("list", metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: %w", ErrInvalidPage, err)
	}
	skip := pagination.CalculateSkip(params.PageNo, params.PageLimit)

	var (
		page  []*entity.Article
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		start := time.Now()
		defer func() { metrics.RecordStoreOperation("list", time.Since(start)) }()

		var err error
		page, err = s.Repo.List(gctx, skip, params.PageLimit)
		if err != nil {
			return fmt.Errorf("list news: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		start := time.Now()
		defer func() { metrics.RecordStoreOperation("count", time.Since(start)) }()

		var err error
		total, err = s.Repo.Count(gctx)
		if err != nil {
			return fmt.Errorf("count news: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		metrics.RecordNewsOperation("list", metrics.ResultError)
		return nil, err
	}

	if page == nil {
		page = []*entity.Article{}
	}
	metrics.UpdateNewsTotal(total)
	metrics.RecordNewsOperation("list", metrics.ResultSuccess)
	return &ListResult{
		Articles:   page,
		Count:      len(page),
		TotalCount: total,
		TotalPages: pagination.CalculateTotalPages(total, params.PageLimit),
	}, nil
}

// GetByID returns the article with id. Ids the store cannot parse are
// reported as ErrNotFound, same as missing ones.
func (s *Service) GetByID(ctx context.Context, id string) (*entity.Article, error) {
	start := time.Now()
	article, err := s.Repo.Get(ctx, id)
	metrics.RecordStoreOperation("get", time.Since(start))
	if err != nil {
		metrics.RecordNewsOperation("get", metrics.ResultError)
		return nil, fmt.Errorf("get news: %w", err)
	}
	if article == nil {
		metrics.RecordNewsOperation("get", metrics.ResultNotFound)
		return nil, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	metrics.RecordNewsOperation("get", metrics.ResultSuccess)
	return article, nil
}

// GetSlider returns every article flagged for the slider.
func (s *Service) GetSlider(ctx context.Context) ([]*entity.Article, error) {
	start := time.Now()
	articles, err := s.Repo.ListSlider(ctx)
	metrics.RecordStoreOperation("slider", time.Since(start))
	if err != nil {
		metrics.RecordNewsOperation("slider", metrics.ResultError)
		return nil, fmt.Errorf("list slider news: %w", err)
	}
	articles, err = RequireNonEmpty(articles)
	if err != nil {
		metrics.RecordNewsOperation("slider", metrics.ResultNotFound)
		return nil, err
	}
	metrics.RecordNewsOperation("slider", metrics.ResultSuccess)
	return articles, nil
}

// GetByCategory returns every article referencing categoryID.
func (s *Service) GetByCategory(ctx context.Context, categoryID string) ([]*entity.Article, error) {
	start := time.Now()
	articles, err := s.Repo.ListByCategory(ctx, categoryID)
	metrics.RecordStoreOperation("category", time.Since(start))
	if err != nil {
		metrics.RecordNewsOperation("category", metrics.ResultError)
		return nil, fmt.Errorf("list news by category: %w", err)
	}
	articles, err = RequireNonEmpty(articles)
	if err != nil {
		metrics.RecordNewsOperation("category", metrics.ResultNotFound)
		return nil, fmt.Errorf("%w: category %q", err, categoryID)
	}
	metrics.RecordNewsOperation("category", metrics.ResultSuccess)
	return articles, nil
}

// Update writes the supplied fields onto the stored article in one store
// call. Fields left nil keep the value the store holds at write time.
// ID, AddedAt and the image are never changed.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Article, error) {
	patch := entity.ArticlePatch{
		Title:       in.Title,
		Author:      in.Author,
		CategoryID:  in.Category,
		AddToSlider: in.AddToSlider,
	}
	if in.Content != nil {
		content := s.sanitize(*in.Content)
		patch.Content = &content
	}

	if err := patch.Validate(); err != nil {
		metrics.RecordNewsOperation("update", metrics.ResultInvalid)
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	start := time.Now()
	var (
		updated *entity.Article
		err     error
	)
	if patch.IsEmpty() {
		updated, err = s.Repo.Get(ctx, in.ID)
	} else {
		updated, err = s.Repo.Update(ctx, in.ID, patch)
	}
	metrics.RecordStoreOperation("update", time.Since(start))
	if err != nil {
		if errors.Is(err, entity.ErrValidationFailed) {
			metrics.RecordNewsOperation("update", metrics.ResultInvalid)
			return nil, fmt.Errorf("%w: %w", ErrValidation, err)
		}
		metrics.RecordNewsOperation("update", metrics.ResultError)
		return nil, fmt.Errorf("update news: %w", err)
	}
	if updated == nil {
		metrics.RecordNewsOperation("update", metrics.ResultNotFound)
		return nil, fmt.Errorf("%w: id %q", ErrNotFound, in.ID)
	}

	metrics.RecordNewsOperation("update", metrics.ResultSuccess)
	return updated, nil
}

// Delete removes the article and returns its last known state.
func (s *Service) Delete(ctx context.Context, id string) (*entity.Article, error) {
	start := time.Now()
	deleted, err := s.Repo.Delete(ctx, id)
	metrics.RecordStoreOperation("delete", time.Since(start))
	if err != nil {
		metrics.RecordNewsOperation("delete", metrics.ResultError)
		return nil, fmt.Errorf("delete news: %w", err)
	}
	if deleted == nil {
		metrics.RecordNewsOperation("delete", metrics.ResultNotFound)
		return nil, fmt.Errorf("%w: id %q", ErrNotFound, id)
	}
	metrics.RecordNewsOperation("delete", metrics.ResultSuccess)
	return deleted, nil
}

func (s *Service) sanitize(content string) string {
	if s.Sanitizer == nil {
		return content
	}
	return s.Sanitizer.Sanitize(content)
}
