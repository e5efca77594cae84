package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
)

type TokenRepository struct {
	collection *mongo.Collection
}

var _ contract.ITokenRepository = (*TokenRepository)(nil)

func NewTokenRepository(collection *mongo.Collection) *TokenRepository {
	return &TokenRepository{collection: collection}
}

func (r *TokenRepository) CreateToken(ctx context.Context, token *entity.Token) error {
	_, err := r.collection.InsertOne(ctx, token)
	return err
}

// GetTokenByUserID returns the newest non-revoked token for the user.
func (r *TokenRepository) GetTokenByUserID(ctx context.Context, userID string) (*entity.Token, error) {
	filter := bson.M{"user_id": userID, "revoke": false}
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var token entity.Token
	err := r.collection.FindOne(ctx, filter, opts).Decode(&token)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

// UpdateToken updates the token hash and expiry.
func (r *TokenRepository) UpdateToken(ctx context.Context, tokenID string, tokenHash string, expiry time.Time) error {
	filter := bson.M{"_id": tokenID}
	update := bson.M{"$set": bson.M{"token_hash": tokenHash, "expires_at": expiry}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrTokenNotFound
	}
	return nil
}

// RevokeToken marks a token as revoked by its ID.
func (r *TokenRepository) RevokeToken(ctx context.Context, id string) error {
	filter := bson.M{"_id": id}
	update := bson.M{"$set": bson.M{"revoke": true}}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrTokenNotFound
	}
	return nil
}

func (r *TokenRepository) RevokeAllTokensForUser(ctx context.Context, userID string, tokenType entity.TokenType) error {
	filter := bson.M{"user_id": userID, "token_type": tokenType}
	update := bson.M{"$set": bson.M{"revoke": true}}
	_, err := r.collection.UpdateMany(ctx, filter, update)
	return err
}
