package contract

import (
	"context"

	"counselconnect/internal/domain/entity"
)

// IChatRepository manages private chats. A unique index on the normalized
// (sender_id, receiver_id) pair enforces one chat per pair regardless of
// direction.
type IChatRepository interface {
	CreateChat(ctx context.Context, chat *entity.PrivateChat) error
	GetChatByID(ctx context.Context, chatID string) (*entity.PrivateChat, error)
	// GetChatByPair looks the chat up for the unordered (a, b) pair.
	GetChatByPair(ctx context.Context, a, b string) (*entity.PrivateChat, error)
	// UpdateStatus transitions the chat and appends the decision system message.
	UpdateStatus(ctx context.Context, chatID string, status entity.ChatStatus, systemMessage entity.Message) error
	// AppendMessage pushes the message and refreshes the cached last_message.
	AppendMessage(ctx context.Context, chatID string, message entity.Message) error
	GetChatsByUser(ctx context.Context, userID string) ([]*entity.PrivateChat, error)
	GetPendingForReceiver(ctx context.Context, receiverID string) ([]*entity.PrivateChat, error)
}
