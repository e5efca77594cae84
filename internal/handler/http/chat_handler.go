package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"counselconnect/internal/domain/entity"
	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/handler/http/middleware"
	"counselconnect/internal/infrastructure/metrics"
	usecasecontract "counselconnect/internal/usecase/contract"
)

type ChatHandler struct {
	chatUsecase usecasecontract.IChatUseCase
}

func NewChatHandler(chatUsecase usecasecontract.IChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUsecase: chatUsecase,
	}
}

// SendFriendRequest opens a pending private chat with another user.
func (h *ChatHandler) SendFriendRequest(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.FriendRequestRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	chat, err := h.chatUsecase.SendFriendRequest(c.Request.Context(), user.ID, req.ReceiverID)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToPrivateChatResponse(*chat))
}

// RespondFriendRequest accepts or declines a pending request.
func (h *ChatHandler) RespondFriendRequest(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.RespondFriendRequestRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	chat, err := h.chatUsecase.RespondToFriendRequest(c.Request.Context(), user.ID, c.Param("id"), req.Accept)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPrivateChatResponse(*chat))
}

// GetPendingRequests lists requests awaiting the caller's answer.
func (h *ChatHandler) GetPendingRequests(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	requests, err := h.chatUsecase.GetPendingRequests(c.Request.Context(), user.ID)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPendingRequestResponses(requests))
}

// SendMessage delivers a message to a group or an accepted private chat.
func (h *ChatHandler) SendMessage(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.SendMessageRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	message, err := h.chatUsecase.SendMessage(
		c.Request.Context(),
		user.ID,
		entity.ChatTarget(req.Target),
		req.TargetID,
		req.Content,
		req.Attachments,
	)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	metrics.ObserveMessageSent(req.Target)
	SuccessHandler(c, http.StatusCreated, dto.ToChatMessageResponse(*message))
}

// GetConversation returns the message history of one chat.
func (h *ChatHandler) GetConversation(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	target := entity.ChatTarget(c.Query("target"))
	if target != entity.ChatTargetGroup && target != entity.ChatTargetPrivate {
		ErrorHandler(c, http.StatusBadRequest, "target must be group or private")
		return
	}

	conv, err := h.chatUsecase.GetConversation(c.Request.Context(), user.ID, target, c.Param("id"))
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToConversationResponse(*conv))
}

// GetUserChats lists the caller's chats, groups and private together.
func (h *ChatHandler) GetUserChats(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	summaries, err := h.chatUsecase.GetUserChats(c.Request.Context(), user.ID)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToChatSummaryResponses(summaries))
}
