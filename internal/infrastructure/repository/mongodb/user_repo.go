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

type MongoUserRepository struct {
	collection *mongo.Collection
}

var _ contract.IUserRepository = (*MongoUserRepository)(nil)

func NewMongoUserRepository(collection *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{collection: collection}
}

func (r *MongoUserRepository) CreateUser(ctx context.Context, user *entity.User) error {
	_, err := r.collection.InsertOne(ctx, user)
	return err
}

func (r *MongoUserRepository) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *MongoUserRepository) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates an existing user and returns the updated user
func (r *MongoUserRepository) UpdateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	user.UpdatedAt = time.Now().UTC()
	filter := bson.M{"_id": user.ID}
	update := bson.M{"$set": user}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, err
	}
	if result.MatchedCount == 0 {
		return nil, contract.ErrUserNotFound
	}
	var updatedUser entity.User
	if err := r.collection.FindOne(ctx, filter).Decode(&updatedUser); err != nil {
		return nil, err
	}
	return &updatedUser, nil
}

func (r *MongoUserRepository) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"password_hash": hashedPassword, "updated_at": time.Now().UTC()}}
	count, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if count.MatchedCount == 0 {
		return contract.ErrUserNotFound
	}
	return nil
}

// SetOTP stores the code, or unsets it when otp is nil.
func (r *MongoUserRepository) SetOTP(ctx context.Context, id string, otp *entity.OTP) error {
	filter := bson.M{"_id": id}
	var update bson.M
	if otp == nil {
		update = bson.M{"$unset": bson.M{"otp": ""}}
	} else {
		update = bson.M{"$set": bson.M{"otp": otp}}
	}
	count, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if count.MatchedCount == 0 {
		return contract.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) SetBanned(ctx context.Context, id string, banned bool) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"is_banned": banned, "updated_at": time.Now().UTC()}}
	count, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if count.MatchedCount == 0 {
		return contract.ErrUserNotFound
	}
	return nil
}

func (r *MongoUserRepository) ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error) {
	total, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * pageSize)).
		SetLimit(int64(pageSize))
	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *MongoUserRepository) CountUsers(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}

// CountUsersPerDay buckets signups per calendar day since the given time.
func (r *MongoUserRepository) CountUsersPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error) {
	return countPerDay(ctx, r.collection, since)
}

func (r *MongoUserRepository) CountUsersByRole(ctx context.Context) ([]entity.RoleCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$role", "count": bson.M{"$sum": 1}}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate users by role: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []entity.RoleCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}

// countPerDay is the shared per-day bucketing pipeline over created_at.
func countPerDay(ctx context.Context, coll *mongo.Collection, since time.Time) ([]entity.DayCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"created_at": bson.M{"$gte": since}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"count": bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "_id", Value: 1}}}},
	}
	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate per-day counts: %w", err)
	}
	defer cursor.Close(ctx)

	var counts []entity.DayCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, err
	}
	return counts, nil
}
