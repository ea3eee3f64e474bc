// Package entity defines the core domain entities and validation logic for the application.
// It contains the news Article and the Category it references, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a news article entity in the system.
// CategoryID is the stored reference; Category is filled in by the store on read
// and stays nil when the reference points at a missing category.
type Article struct {
	ID          string
	Title       string
	Content     string
	Author      string
	CategoryID  string
	Category    *Category
	AddToSlider bool
	NewsImage   string
	AddedAt     time.Time
}

// Category is the referenced category record. Only the fields exposed on
// expansion are modeled.
type Category struct {
	ID   string
	Name string
}

// ArticlePatch carries the fields of a partial update. A nil field is left
// untouched by the store.
type ArticlePatch struct {
	Title       *string
	Content     *string
	Author      *string
	CategoryID  *string
	AddToSlider *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Author == nil &&
		p.CategoryID == nil && p.AddToSlider == nil
}

// Clone returns a deep copy of the article.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	c := *a
	if a.Category != nil {
		cat := *a.Category
		c.Category = &cat
	}
	return &c
}
