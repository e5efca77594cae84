package dto

import (
	"time"

	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

type FriendRequestRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
}

type RespondFriendRequestRequest struct {
	Accept bool `json:"accept"`
}

// SendMessageRequest routes a message by explicit target kind.
type SendMessageRequest struct {
	Target      string   `json:"target" binding:"required,chattarget"`
	TargetID    string   `json:"target_id" binding:"required"`
	Content     string   `json:"content" binding:"omitempty,max=5000"`
	Attachments []string `json:"attachments" binding:"omitempty,max=5,dive,url"`
}

type ChatMessageResponse struct {
	ID          string   `json:"id"`
	SenderID    string   `json:"sender_id,omitempty"`
	Content     string   `json:"content"`
	Attachments []string `json:"attachments,omitempty"`
	Role        string   `json:"role"`
	CreatedAt   string   `json:"created_at"`
}

func ToChatMessageResponse(m entity.Message) ChatMessageResponse {
	return ChatMessageResponse{
		ID:          m.ID,
		SenderID:    m.SenderID,
		Content:     m.Content,
		Attachments: m.Attachments,
		Role:        string(m.Role),
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}

type PrivateChatResponse struct {
	ID         string `json:"id"`
	SenderID   string `json:"sender_id"`
	ReceiverID string `json:"receiver_id"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}

func ToPrivateChatResponse(chat entity.PrivateChat) PrivateChatResponse {
	return PrivateChatResponse{
		ID:         chat.ID,
		SenderID:   chat.SenderID,
		ReceiverID: chat.ReceiverID,
		Status:     string(chat.Status),
		CreatedAt:  chat.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  chat.UpdatedAt.Format(time.RFC3339),
	}
}

type PendingRequestResponse struct {
	ChatID    string       `json:"chat_id"`
	Sender    UserResponse `json:"sender"`
	CreatedAt string       `json:"created_at"`
}

func ToPendingRequestResponses(requests []usecasecontract.PendingRequest) []PendingRequestResponse {
	out := make([]PendingRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, PendingRequestResponse{
			ChatID:    r.ChatID,
			Sender:    ToUserResponse(*r.Sender),
			CreatedAt: r.CreatedAt.Format(time.RFC3339),
		})
	}
	return out
}

type ConversationResponse struct {
	Target   string                `json:"target"`
	ID       string                `json:"id"`
	Name     string                `json:"name"`
	Image    string                `json:"image,omitempty"`
	Messages []ChatMessageResponse `json:"messages"`
}

func ToConversationResponse(conv usecasecontract.Conversation) ConversationResponse {
	messages := make([]ChatMessageResponse, 0, len(conv.Messages))
	for _, m := range conv.Messages {
		messages = append(messages, ToChatMessageResponse(m))
	}
	return ConversationResponse{
		Target:   string(conv.Target),
		ID:       conv.ID,
		Name:     conv.Name,
		Image:    conv.Image,
		Messages: messages,
	}
}

type ChatSummaryResponse struct {
	Target      string               `json:"target"`
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Image       string               `json:"image,omitempty"`
	LastMessage *ChatMessageResponse `json:"last_message,omitempty"`
	UpdatedAt   string               `json:"updated_at"`
}

func ToChatSummaryResponses(summaries []usecasecontract.ChatSummary) []ChatSummaryResponse {
	out := make([]ChatSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		resp := ChatSummaryResponse{
			Target:    string(s.Target),
			ID:        s.ID,
			Name:      s.Name,
			Image:     s.Image,
			UpdatedAt: s.UpdatedAt.Format(time.RFC3339),
		}
		if s.LastMessage != nil {
			m := ToChatMessageResponse(*s.LastMessage)
			resp.LastMessage = &m
		}
		out = append(out, resp)
	}
	return out
}
