package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
)

type RatingRepository struct {
	collection *mongo.Collection
}

var _ contract.IRatingRepository = (*RatingRepository)(nil)

func NewRatingRepository(db *mongo.Database) *RatingRepository {
	return &RatingRepository{collection: db.Collection("group_ratings")}
}

func (r *RatingRepository) GetRating(ctx context.Context, groupID, raterID, rateeID string) (*entity.GroupRating, error) {
	filter := bson.M{"group_id": groupID, "rater_id": raterID, "ratee_id": rateeID}
	var rating entity.GroupRating
	err := r.collection.FindOne(ctx, filter).Decode(&rating)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepository) InsertRating(ctx context.Context, rating *entity.GroupRating) error {
	_, err := r.collection.InsertOne(ctx, rating)
	return err
}

func (r *RatingRepository) DeleteRating(ctx context.Context, ratingID string) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": ratingID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return contract.ErrRatingNotFound
	}
	return nil
}

func (r *RatingRepository) CountRatingsForUser(ctx context.Context, groupID, rateeID string) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"group_id": groupID, "ratee_id": rateeID})
	if err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return count, nil
}
