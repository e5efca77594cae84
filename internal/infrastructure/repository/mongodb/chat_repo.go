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

type ChatRepository struct {
	collection *mongo.Collection
}

var _ contract.IChatRepository = (*ChatRepository)(nil)

func NewChatRepository(db *mongo.Database) *ChatRepository {
	return &ChatRepository{collection: db.Collection("private_chats")}
}

func (r *ChatRepository) CreateChat(ctx context.Context, chat *entity.PrivateChat) error {
	_, err := r.collection.InsertOne(ctx, chat)
	return err
}

func (r *ChatRepository) GetChatByID(ctx context.Context, chatID string) (*entity.PrivateChat, error) {
	var chat entity.PrivateChat
	err := r.collection.FindOne(ctx, bson.M{"_id": chatID}).Decode(&chat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// GetChatByPair looks the chat up for the unordered (a, b) pair.
func (r *ChatRepository) GetChatByPair(ctx context.Context, a, b string) (*entity.PrivateChat, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": a, "receiver_id": b},
		bson.M{"sender_id": b, "receiver_id": a},
	}}
	var chat entity.PrivateChat
	err := r.collection.FindOne(ctx, filter).Decode(&chat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, contract.ErrChatNotFound
		}
		return nil, err
	}
	return &chat, nil
}

// UpdateStatus transitions the chat and appends the decision notice.
func (r *ChatRepository) UpdateStatus(ctx context.Context, chatID string, status entity.ChatStatus, systemMessage entity.Message) error {
	filter := bson.M{"_id": chatID}
	update := bson.M{
		"$set":  bson.M{"status": status, "updated_at": time.Now().UTC()},
		"$push": bson.M{"messages": systemMessage},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrChatNotFound
	}
	return nil
}

// AppendMessage pushes the message and refreshes the cached last_message.
func (r *ChatRepository) AppendMessage(ctx context.Context, chatID string, message entity.Message) error {
	filter := bson.M{"_id": chatID}
	update := bson.M{
		"$push": bson.M{"messages": message},
		"$set": bson.M{
			"last_message": message,
			"updated_at":   time.Now().UTC(),
		},
	}
	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return contract.ErrChatNotFound
	}
	return nil
}

func (r *ChatRepository) GetChatsByUser(ctx context.Context, userID string) ([]*entity.PrivateChat, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"sender_id": userID},
		bson.M{"receiver_id": userID},
	}}
	opts := options.Find().
		SetSort(bson.D{{Key: "updated_at", Value: -1}}).
		SetProjection(bson.M{"messages": 0})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch chats: %w", err)
	}
	defer cursor.Close(ctx)

	var chats []*entity.PrivateChat
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}

func (r *ChatRepository) GetPendingForReceiver(ctx context.Context, receiverID string) ([]*entity.PrivateChat, error) {
	filter := bson.M{"receiver_id": receiverID, "status": entity.ChatStatusPending}
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetProjection(bson.M{"messages": 0})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch pending requests: %w", err)
	}
	defer cursor.Close(ctx)

	var chats []*entity.PrivateChat
	if err := cursor.All(ctx, &chats); err != nil {
		return nil, err
	}
	return chats, nil
}
