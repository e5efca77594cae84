package usecasecontract

import (
	"context"
	"time"

	"counselconnect/internal/domain/entity"
)

// IChatUseCase defines the interface for private chat and messaging operations.
// Messaging is routed by an explicit target: group messages go to a group the
// sender belongs to, private messages to an accepted chat between two users.
type IChatUseCase interface {
	SendFriendRequest(ctx context.Context, senderID, receiverID string) (*entity.PrivateChat, error)
	RespondToFriendRequest(ctx context.Context, userID, chatID string, accept bool) (*entity.PrivateChat, error)
	GetPendingRequests(ctx context.Context, userID string) ([]PendingRequest, error)
	SendMessage(ctx context.Context, senderID string, target entity.ChatTarget, targetID, content string, attachments []string) (*entity.Message, error)
	GetConversation(ctx context.Context, userID string, target entity.ChatTarget, targetID string) (*Conversation, error)
	GetUserChats(ctx context.Context, userID string) ([]ChatSummary, error)
}

// PendingRequest is an incoming friend request awaiting a response.
type PendingRequest struct {
	ChatID    string
	Sender    *entity.User
	CreatedAt time.Time
}

// Conversation is a message history with enough metadata to render a header.
type Conversation struct {
	Target   entity.ChatTarget
	ID       string
	Name     string
	Image    string
	Messages []entity.Message
}

// ChatSummary is one row of a user's chat list, group or private.
type ChatSummary struct {
	Target      entity.ChatTarget
	ID          string
	Name        string
	Image       string
	LastMessage *entity.Message
	UpdatedAt   time.Time
}
