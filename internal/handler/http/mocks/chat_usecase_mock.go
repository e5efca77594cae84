package mocks

import (
	"context"
	"time"

	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

// MockChatUsecase is a hand-written mock of the chat usecase.
type MockChatUsecase struct {
	SendRequestErr  error
	RespondErr      error
	PendingErr      error
	SendMessageErr  error
	ConversationErr error
	UserChatsErr    error

	MockChat    entity.PrivateChat
	MockMessage entity.Message
}

var _ usecasecontract.IChatUseCase = (*MockChatUsecase)(nil)

func NewMockChatUsecase() *MockChatUsecase {
	now := time.Now()
	return &MockChatUsecase{
		MockChat: entity.PrivateChat{
			ID:         "mock-chat-id",
			SenderID:   "mock-user-id",
			ReceiverID: "mock-friend-id",
			Status:     entity.ChatStatusPending,
			CreatedAt:  now,
			UpdatedAt:  now,
		},
		MockMessage: entity.Message{
			ID:        "mock-message-id",
			SenderID:  "mock-user-id",
			Content:   "hello",
			Role:      entity.MessageRoleUser,
			CreatedAt: now,
		},
	}
}

func (m *MockChatUsecase) SendFriendRequest(ctx context.Context, senderID, receiverID string) (*entity.PrivateChat, error) {
	if m.SendRequestErr != nil {
		return nil, m.SendRequestErr
	}
	chat := m.MockChat
	chat.SenderID = senderID
	chat.ReceiverID = receiverID
	return &chat, nil
}

func (m *MockChatUsecase) RespondToFriendRequest(ctx context.Context, userID, chatID string, accept bool) (*entity.PrivateChat, error) {
	if m.RespondErr != nil {
		return nil, m.RespondErr
	}
	chat := m.MockChat
	if accept {
		chat.Status = entity.ChatStatusAccepted
	} else {
		chat.Status = entity.ChatStatusRejected
	}
	return &chat, nil
}

func (m *MockChatUsecase) GetPendingRequests(ctx context.Context, userID string) ([]usecasecontract.PendingRequest, error) {
	if m.PendingErr != nil {
		return nil, m.PendingErr
	}
	sender := entity.User{ID: m.MockChat.SenderID, Name: "Test User"}
	return []usecasecontract.PendingRequest{
		{ChatID: m.MockChat.ID, Sender: &sender, CreatedAt: m.MockChat.CreatedAt},
	}, nil
}

func (m *MockChatUsecase) SendMessage(ctx context.Context, senderID string, target entity.ChatTarget, targetID, content string, attachments []string) (*entity.Message, error) {
	if m.SendMessageErr != nil {
		return nil, m.SendMessageErr
	}
	message := m.MockMessage
	message.SenderID = senderID
	message.Content = content
	message.Attachments = attachments
	return &message, nil
}

func (m *MockChatUsecase) GetConversation(ctx context.Context, userID string, target entity.ChatTarget, targetID string) (*usecasecontract.Conversation, error) {
	if m.ConversationErr != nil {
		return nil, m.ConversationErr
	}
	return &usecasecontract.Conversation{
		Target:   target,
		ID:       targetID,
		Name:     "Test Chat",
		Messages: []entity.Message{m.MockMessage},
	}, nil
}

func (m *MockChatUsecase) GetUserChats(ctx context.Context, userID string) ([]usecasecontract.ChatSummary, error) {
	if m.UserChatsErr != nil {
		return nil, m.UserChatsErr
	}
	message := m.MockMessage
	return []usecasecontract.ChatSummary{
		{
			Target:      entity.ChatTargetPrivate,
			ID:          m.MockChat.ID,
			Name:        "Test Chat",
			LastMessage: &message,
			UpdatedAt:   m.MockChat.UpdatedAt,
		},
	}, nil
}
