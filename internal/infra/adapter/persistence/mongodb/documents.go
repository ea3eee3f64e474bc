package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"news-portal/internal/domain/entity"
)

const (
	newsCollection     = "news"
	categoryCollection = "categories"
)

// newsDoc is the stored shape of an article. The bson keys are the
// persisted document keys and must not be renamed.
type newsDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Content     string             `bson:"content"`
	Author      string             `bson:"author"`
	Category    primitive.ObjectID `bson:"category,omitempty"`
	AddToSlider bool               `bson:"addToSlider"`
	NewsImage   string             `bson:"newsImage"`
	AddedAt     time.Time          `bson:"addedAt"`
}

type categoryDoc struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"category_name"`
}

func (d *newsDoc) toEntity() *entity.Article {
	a := &entity.Article{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Content:     d.Content,
		Author:      d.Author,
		AddToSlider: d.AddToSlider,
		NewsImage:   d.NewsImage,
		AddedAt:     d.AddedAt,
	}
	if !d.Category.IsZero() {
		a.CategoryID = d.Category.Hex()
	}
	return a
}
