// Package article provides the HTTP handlers of the news API.
// Every response uses the respond.Envelope format and every success is
// reported with status 201.
package article

import (
	"time"

	"news-portal/internal/domain/entity"
)

// DTO is the JSON shape of a news article.
type DTO struct {
	ID          string       `json:"_id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Author      string       `json:"author"`
	Category    *CategoryDTO `json:"category"`
	AddToSlider bool         `json:"addToSlider"`
	NewsImage   string       `json:"newsImage"`
	AddedAt     time.Time    `json:"addedAt"`
}

// CategoryDTO is the expanded category reference. A dangling reference is
// rendered as null.
type CategoryDTO struct {
	ID   string `json:"_id"`
	Name string `json:"category_name"`
}

func toDTO(a *entity.Article) DTO {
	out := DTO{
		ID:          a.ID,
		Title:       a.Title,
		Content:     a.Content,
		Author:      a.Author,
		AddToSlider: a.AddToSlider,
		NewsImage:   a.NewsImage,
		AddedAt:     a.AddedAt.UTC(),
	}
	if a.Category != nil {
		out.Category = &CategoryDTO{ID: a.Category.ID, Name: a.Category.Name}
	}
	return out
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}
