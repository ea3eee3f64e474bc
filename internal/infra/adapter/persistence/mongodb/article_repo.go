// Package mongodb provides the MongoDB implementation of the article store.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"news-portal/internal/domain/entity"
	"news-portal/internal/repository"
)

// documentValidationFailure is the server error code for a write rejected
// by a collection's JSON schema validator.
const documentValidationFailure = 121

type ArticleRepo struct {
	news       *mongo.Collection
	categories *mongo.Collection
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)

func NewArticleRepo(db *mongo.Database) *ArticleRepo {
	return &ArticleRepo{
		news:       db.Collection(newsCollection),
		categories: db.Collection(categoryCollection),
	}
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) (*entity.Article, error) {
	catID, err := primitive.ObjectIDFromHex(article.CategoryID)
	if err != nil {
		return nil, fmt.Errorf("Create: category %q: %w", article.CategoryID, entity.ErrValidationFailed)
	}

	doc := newsDoc{
		ID:          primitive.NewObjectID(),
		Title:       article.Title,
		Content:     article.Content,
		Author:      article.Author,
		Category:    catID,
		AddToSlider: article.AddToSlider,
		NewsImage:   article.NewsImage,
		// BSON dates carry milliseconds; truncate so the returned record
		// matches what a later read will see.
		AddedAt: article.AddedAt.UTC().Truncate(time.Millisecond),
	}
	if _, err := repo.news.InsertOne(ctx, doc); err != nil {
		if isRejectedWrite(err) {
			return nil, fmt.Errorf("Create: %w: %v", entity.ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("Create: %w", err)
	}

	out := doc.toEntity()
	if err := repo.populate(ctx, out); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc newsDoc
	err = repo.news.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}

	out := doc.toEntity()
	if err := repo.populate(ctx, out); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) List(ctx context.Context, skip, limit int) ([]*entity.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "addedAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	out, err := repo.find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	n, err := repo.news.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return n, nil
}

func (repo *ArticleRepo) ListSlider(ctx context.Context) ([]*entity.Article, error) {
	out, err := repo.find(ctx, bson.M{"addToSlider": true})
	if err != nil {
		return nil, fmt.Errorf("ListSlider: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return []*entity.Article{}, nil
	}
	out, err := repo.find(ctx, bson.M{"category": oid})
	if err != nil {
		return nil, fmt.Errorf("ListByCategory: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, id string, patch entity.ArticlePatch) (*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Content != nil {
		set["content"] = *patch.Content
	}
	if patch.Author != nil {
		set["author"] = *patch.Author
	}
	if patch.CategoryID != nil {
		catID, err := primitive.ObjectIDFromHex(*patch.CategoryID)
		if err != nil {
			return nil, fmt.Errorf("Update: category %q: %w", *patch.CategoryID, entity.ErrValidationFailed)
		}
		set["category"] = catID
	}
	if patch.AddToSlider != nil {
		set["addToSlider"] = *patch.AddToSlider
	}
	if len(set) == 0 {
		return repo.Get(ctx, id)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc newsDoc
	err = repo.news.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		if isRejectedWrite(err) {
			return nil, fmt.Errorf("Update: %w: %v", entity.ErrValidationFailed, err)
		}
		return nil, fmt.Errorf("Update: %w", err)
	}

	out := doc.toEntity()
	if err := repo.populate(ctx, out); err != nil {
		return nil, fmt.Errorf("Update: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) (*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	var doc newsDoc
	err = repo.news.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Delete: %w", err)
	}

	out := doc.toEntity()
	if err := repo.populate(ctx, out); err != nil {
		return nil, fmt.Errorf("Delete: %w", err)
	}
	return out, nil
}

func (repo *ArticleRepo) Ping(ctx context.Context) error {
	return repo.news.Database().Client().Ping(ctx, readpref.Primary())
}

func (repo *ArticleRepo) find(ctx context.Context, filter any, opts ...*options.FindOptions) ([]*entity.Article, error) {
	cur, err := repo.news.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var docs []newsDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	out := make([]*entity.Article, 0, len(docs))
	for i := range docs {
		out = append(out, docs[i].toEntity())
	}
	if err := repo.populate(ctx, out...); err != nil {
		return nil, err
	}
	return out, nil
}

// populate resolves category references with one $in query, projecting
// only _id and category_name.
func (repo *ArticleRepo) populate(ctx context.Context, articles ...*entity.Article) error {
	seen := make(map[primitive.ObjectID]struct{})
	ids := make([]primitive.ObjectID, 0, len(articles))
	for _, a := range articles {
		oid, err := primitive.ObjectIDFromHex(a.CategoryID)
		if err != nil {
			continue
		}
		if _, ok := seen[oid]; ok {
			continue
		}
		seen[oid] = struct{}{}
		ids = append(ids, oid)
	}
	if len(ids) == 0 {
		return nil
	}

	opts := options.Find().SetProjection(bson.M{"_id": 1, "category_name": 1})
	cur, err := repo.categories.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return fmt.Errorf("populate categories: %w", err)
	}
	var cats []categoryDoc
	if err := cur.All(ctx, &cats); err != nil {
		return fmt.Errorf("populate categories: decode: %w", err)
	}

	byID := make(map[string]*entity.Category, len(cats))
	for _, c := range cats {
		byID[c.ID.Hex()] = &entity.Category{ID: c.ID.Hex(), Name: c.Name}
	}
	for _, a := range articles {
		if c, ok := byID[a.CategoryID]; ok {
			cat := *c
			a.Category = &cat
		}
	}
	return nil
}

func isRejectedWrite(err error) bool {
	if mongo.IsDuplicateKeyError(err) {
		return true
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == documentValidationFailure {
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == documentValidationFailure {
		return true
	}
	return false
}
