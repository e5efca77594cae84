package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"counselconnect/internal/domain/entity"
	handler "counselconnect/internal/handler/http"
	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/handler/http/mocks"
	"counselconnect/internal/usecase"
)

func setupChatRouter(h *handler.ChatHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	authed := r.Group("", injectUser(user))
	authed.GET("/chats", h.GetUserChats)
	authed.GET("/chats/pending", h.GetPendingRequests)
	authed.POST("/chats/requests", h.SendFriendRequest)
	authed.POST("/chats/requests/:id/respond", h.RespondFriendRequest)
	authed.POST("/chats/messages", h.SendMessage)
	authed.GET("/chats/:id", h.GetConversation)
	return r
}

func TestSendFriendRequest(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/chats/requests", dto.FriendRequestRequest{
		ReceiverID: "mock-friend-id",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"pending"`)
}

func TestSendFriendRequest_Duplicate(t *testing.T) {
	for _, dup := range []error{usecase.ErrRequestPending, usecase.ErrRequestRejected, usecase.ErrAlreadyFriends} {
		mockUsecase := mocks.NewMockChatUsecase()
		mockUsecase.SendRequestErr = dup
		r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

		w := httptest.NewRecorder()
		r.ServeHTTP(w, jsonRequest("POST", "/chats/requests", dto.FriendRequestRequest{
			ReceiverID: "mock-friend-id",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), dup.Error())
	}
}

func TestRespondFriendRequest_Accept(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/chats/requests/mock-chat-id/respond", dto.RespondFriendRequestRequest{
		Accept: true,
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"accepted"`)
}

func TestRespondFriendRequest_NotReceiver(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	mockUsecase.RespondErr = usecase.ErrNotChatReceiver
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/chats/requests/mock-chat-id/respond", dto.RespondFriendRequestRequest{
		Accept: true,
	}))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSendMessage_Group(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/chats/messages", dto.SendMessageRequest{
		Target:   "group",
		TargetID: "mock-group-id",
		Content:  "hello everyone",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "hello everyone")
}

func TestSendMessage_InvalidTarget(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/chats/messages", dto.SendMessageRequest{
		Target:   "broadcast",
		TargetID: "mock-group-id",
		Content:  "hello",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "chattarget")
}

func TestSendMessage_ChatNotAccepted(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	mockUsecase.SendMessageErr = usecase.ErrChatNotAccepted
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/chats/messages", dto.SendMessageRequest{
		Target:   "private",
		TargetID: "mock-chat-id",
		Content:  "hello",
	}))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetConversation(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/chats/mock-chat-id?target=private", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Test Chat")
}

func TestGetConversation_BadTarget(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/chats/mock-chat-id?target=everything", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetUserChats(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/chats", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"target":"private"`)
}

func TestGetPendingRequests(t *testing.T) {
	mockUsecase := mocks.NewMockChatUsecase()
	r := setupChatRouter(handler.NewChatHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/chats/pending", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-chat-id")
}
