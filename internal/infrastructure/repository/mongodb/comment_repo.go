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

type CommentRepository struct {
	collection *mongo.Collection
}

var _ contract.ICommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *mongo.Database) *CommentRepository {
	return &CommentRepository{collection: db.Collection("comments")}
}

func (r *CommentRepository) CreateComment(ctx context.Context, comment *entity.Comment) error {
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

func (r *CommentRepository) GetCommentByID(ctx context.Context, commentID string) (*entity.Comment, error) {
	var comment entity.Comment
	err := r.collection.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) GetCommentsByBlog(ctx context.Context, blogID string, page, pageSize int) ([]*entity.Comment, int64, error) {
	filter := bson.M{"blog_id": blogID}
	total, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count comments: %w", err)
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := r.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer cursor.Close(ctx)

	var comments []*entity.Comment
	if err := cursor.All(ctx, &comments); err != nil {
		return nil, 0, err
	}
	return comments, total, nil
}

func (r *CommentRepository) UpdateComment(ctx context.Context, commentID, content string) error {
	filter := bson.M{"_id": commentID}
	update := bson.M{"$set": bson.M{"content": content, "updated_at": time.Now().UTC()}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) DeleteComment(ctx context.Context, commentID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contract.ErrCommentNotFound
	}
	return nil
}

// DeleteCommentsByBlog removes every comment under a deleted blog.
func (r *CommentRepository) DeleteCommentsByBlog(ctx context.Context, blogID string) error {
	_, err := r.collection.DeleteMany(ctx, bson.M{"blog_id": blogID})
	return err
}

func (r *CommentRepository) CountComments(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
