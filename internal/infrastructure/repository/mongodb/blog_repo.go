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

type BlogRepository struct {
	collection *mongo.Collection
}

var _ contract.IBlogRepository = (*BlogRepository)(nil)

func NewBlogRepository(db *mongo.Database) *BlogRepository {
	return &BlogRepository{collection: db.Collection("blogs")}
}

// CreateBlog inserts the blog. A featured insert re-counts the author's
// featured blogs inside the same session so two concurrent creations
// cannot both pass the cap check.
func (r *BlogRepository) CreateBlog(ctx context.Context, blog *entity.Blog) error {
	if !blog.IsFeatured {
		_, err := r.collection.InsertOne(ctx, blog)
		return err
	}

	return inTransaction(ctx, r.collection.Database().Client(), func(sc mongo.SessionContext) error {
		count, err := r.countFeatured(sc, blog.AuthorID)
		if err != nil {
			return err
		}
		if count >= entity.MaxFeaturedBlogs {
			return contract.ErrFeaturedLimit
		}
		_, err = r.collection.InsertOne(sc, blog)
		return err
	})
}

func (r *BlogRepository) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	var blog entity.Blog
	err := r.collection.FindOne(ctx, bson.M{"_id": blogID}).Decode(&blog)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepository) GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]*entity.Blog, int64, error) {
	filter := bson.M{}
	if opts.Search != "" {
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": opts.Search, "$options": "i"}},
			bson.M{"content": bson.M{"$regex": opts.Search, "$options": "i"}},
		}
	}
	if len(opts.Tags) > 0 {
		filter["tags"] = bson.M{"$in": opts.Tags}
	}
	if opts.AuthorID != nil {
		filter["author_id"] = *opts.AuthorID
	}
	if opts.Featured != nil {
		filter["is_featured"] = *opts.Featured
	}

	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count blogs: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((opts.Page - 1) * opts.PageSize)).
		SetLimit(int64(opts.PageSize))
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []*entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, 0, err
	}
	return blogs, total, nil
}

// GetRelatedBlogs returns recent blogs sharing at least one tag.
func (r *BlogRepository) GetRelatedBlogs(ctx context.Context, tags []string, excludeID string, limit int) ([]*entity.Blog, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	filter := bson.M{
		"_id":  bson.M{"$ne": excludeID},
		"tags": bson.M{"$in": tags},
	}
	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch related blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []*entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

func (r *BlogRepository) GetFeaturedBlogs(ctx context.Context) ([]*entity.Blog, error) {
	findOpts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"is_featured": true}, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch featured blogs: %w", err)
	}
	defer cursor.Close(ctx)

	var blogs []*entity.Blog
	if err := cursor.All(ctx, &blogs); err != nil {
		return nil, err
	}
	return blogs, nil
}

// UpdateBlog applies the field updates. Turning the featured flag on
// re-checks the author's cap in the same session as the write.
func (r *BlogRepository) UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error {
	featured, featuring := updates["is_featured"].(bool)
	if !featuring || !featured {
		return r.applyUpdate(ctx, blogID, updates)
	}

	return inTransaction(ctx, r.collection.Database().Client(), func(sc mongo.SessionContext) error {
		blog, err := r.GetBlogByID(sc, blogID)
		if err != nil {
			return err
		}
		if !blog.IsFeatured {
			count, err := r.countFeatured(sc, blog.AuthorID)
			if err != nil {
				return err
			}
			if count >= entity.MaxFeaturedBlogs {
				return contract.ErrFeaturedLimit
			}
		}
		return r.applyUpdate(sc, blogID, updates)
	})
}

func (r *BlogRepository) applyUpdate(ctx context.Context, blogID string, updates map[string]interface{}) error {
	fields := bson.M{}
	for k, v := range updates {
		fields[k] = v
	}
	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": blogID}, bson.M{"$set": fields})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) DeleteBlog(ctx context.Context, blogID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": blogID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contract.ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepository) CountFeaturedByAuthor(ctx context.Context, authorID string) (int64, error) {
	return r.countFeatured(ctx, authorID)
}

func (r *BlogRepository) countFeatured(ctx context.Context, authorID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"author_id": authorID, "is_featured": true})
	if err != nil {
		return 0, fmt.Errorf("failed to count featured blogs: %w", err)
	}
	return count, nil
}

// GetPopularTags unwinds the tags arrays and returns the most used ones.
func (r *BlogRepository) GetPopularTags(ctx context.Context, limit int) ([]entity.TagCount, error) {
	return popularTags(ctx, r.collection, limit)
}

func (r *BlogRepository) CountBlogs(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

func (r *BlogRepository) CountBlogsPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error) {
	return countPerDay(ctx, r.collection, since)
}

// popularTags is the shared tag-frequency pipeline.
func popularTags(ctx context.Context, coll *mongo.Collection, limit int) ([]entity.TagCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$tags"}},
		{{Key: "$group", Value: bson.M{"_id": "$tags", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "_id", Value: 1}}}},
		{{Key: "$limit", Value: limit}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate popular tags: %w", err)
	}
	defer cursor.Close(ctx)

	var tags []entity.TagCount
	if err := cursor.All(ctx, &tags); err != nil {
		return nil, err
	}
	return tags, nil
}
