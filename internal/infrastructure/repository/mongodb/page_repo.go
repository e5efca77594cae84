package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
)

// PageRepository stores the static site pages, one document per page type.
type PageRepository struct {
	collection *mongo.Collection
	uuidGen    contract.IUUIDGenerator
}

var _ contract.IPageRepository = (*PageRepository)(nil)

func NewPageRepository(db *mongo.Database, uuidGen contract.IUUIDGenerator) *PageRepository {
	return &PageRepository{
		collection: db.Collection("pages"),
		uuidGen:    uuidGen,
	}
}

func (r *PageRepository) GetPages(ctx context.Context) ([]*entity.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pages: %w", err)
	}
	defer cursor.Close(ctx)

	var pages []*entity.Page
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *PageRepository) GetPageByType(ctx context.Context, pageType entity.PageType) (*entity.Page, error) {
	var page entity.Page
	err := r.collection.FindOne(ctx, bson.M{"title": pageType}).Decode(&page)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrPageNotFound
		}
		return nil, err
	}
	return &page, nil
}

// UpsertPage creates or replaces the page body for the given type.
func (r *PageRepository) UpsertPage(ctx context.Context, pageType entity.PageType, description string) (*entity.Page, error) {
	now := time.Now().UTC()
	filter := bson.M{"title": pageType}
	update := bson.M{
		"$set": bson.M{
			"description": description,
			"updated_at":  now,
		},
		"$setOnInsert": bson.M{
			"_id":        r.uuidGen.NewUUID(),
			"title":      pageType,
			"created_at": now,
		},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.collection.UpdateOne(ctx, filter, update, opts); err != nil {
		return nil, fmt.Errorf("failed to upsert page: %w", err)
	}
	return r.GetPageByType(ctx, pageType)
}
