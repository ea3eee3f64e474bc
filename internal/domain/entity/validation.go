package entity

import (
	"fmt"
	"strings"

	"news-portal/internal/utils/text"
)

// Length limits, counted in runes.
const (
	maxTitleLength  = 512
	maxAuthorLength = 256
)

// dataURIPrefix is the required prefix of a stored news image.
const dataURIPrefix = "data:"

// Validate checks the field constraints of a complete article record.
func (a *Article) Validate() error {
	if err := validateTitle(a.Title); err != nil {
		return err
	}
	if err := validateContent(a.Content); err != nil {
		return err
	}
	if err := validateAuthor(a.Author); err != nil {
		return err
	}
	if err := validateCategory(a.CategoryID); err != nil {
		return err
	}
	return ValidateDataURI(a.NewsImage)
}

// Validate applies the article field rules to the supplied fields only.
func (p ArticlePatch) Validate() error {
	if p.Title != nil {
		if err := validateTitle(*p.Title); err != nil {
			return err
		}
	}
	if p.Content != nil {
		if err := validateContent(*p.Content); err != nil {
			return err
		}
	}
	if p.Author != nil {
		if err := validateAuthor(*p.Author); err != nil {
			return err
		}
	}
	if p.CategoryID != nil {
		if err := validateCategory(*p.CategoryID); err != nil {
			return err
		}
	}
	return nil
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if text.CountRunes(title) > maxTitleLength {
		return &ValidationError{
			Field:   "title",
			Message: fmt.Sprintf("must not exceed %d characters", maxTitleLength),
		}
	}
	return nil
}

func validateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return &ValidationError{Field: "content", Message: "is required"}
	}
	return nil
}

func validateAuthor(author string) error {
	if strings.TrimSpace(author) == "" {
		return &ValidationError{Field: "author", Message: "is required"}
	}
	if text.CountRunes(author) > maxAuthorLength {
		return &ValidationError{
			Field:   "author",
			Message: fmt.Sprintf("must not exceed %d characters", maxAuthorLength),
		}
	}
	return nil
}

func validateCategory(categoryID string) error {
	if strings.TrimSpace(categoryID) == "" {
		return &ValidationError{Field: "category", Message: "is required"}
	}
	return nil
}

// ValidateDataURI checks that s looks like data:<mime>;base64,<payload>.
// The payload itself is not decoded.
func ValidateDataURI(s string) error {
	if !strings.HasPrefix(s, dataURIPrefix) {
		return &ValidationError{Field: "newsImage", Message: "must be a data URI"}
	}
	header, payload, ok := strings.Cut(strings.TrimPrefix(s, dataURIPrefix), ",")
	if !ok || payload == "" {
		return &ValidationError{Field: "newsImage", Message: "must carry an encoded payload"}
	}
	mime, enc, ok := strings.Cut(header, ";")
	if !ok || enc != "base64" || !strings.Contains(mime, "/") {
		return &ValidationError{Field: "newsImage", Message: "must be a base64 data URI with a MIME type"}
	}
	return nil
}

// DataURI assembles the inline representation stored in Article.NewsImage.
func DataURI(mimeType, encoded string) string {
	return dataURIPrefix + mimeType + ";base64," + encoded
}
