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

func setupGroupRouter(h *handler.GroupHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	authed := r.Group("", injectUser(user))
	authed.POST("/groups", h.CreateGroup)
	authed.GET("/groups", h.GetGroups)
	authed.GET("/groups/:id", h.GetGroup)
	authed.POST("/groups/:id/join", h.JoinGroup)
	authed.POST("/groups/:id/leave", h.LeaveGroup)
	authed.POST("/groups/:id/rate", h.RateUser)
	return r
}

func testActor() *entity.User {
	return &entity.User{
		ID:   "mock-user-id",
		Name: "Test User",
		Role: entity.RoleStudent,
	}
}

func TestCreateGroup(t *testing.T) {
	mockUsecase := mocks.NewMockGroupUsecase()
	r := setupGroupRouter(handler.NewGroupHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/groups", dto.CreateGroupRequest{
		Name:        "Exam Prep",
		Description: "Entrance exam discussion",
		Tags:        []string{"exams"},
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Exam Prep")
	assert.Contains(t, w.Body.String(), `"member_count":1`)
}

func TestCreateGroup_NameTooShort(t *testing.T) {
	mockUsecase := mocks.NewMockGroupUsecase()
	r := setupGroupRouter(handler.NewGroupHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/groups", dto.CreateGroupRequest{Name: "ab"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinGroup_AlreadyMember(t *testing.T) {
	mockUsecase := mocks.NewMockGroupUsecase()
	mockUsecase.JoinErr = usecase.ErrAlreadyMember
	r := setupGroupRouter(handler.NewGroupHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/groups/mock-group-id/join", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestJoinGroup_Banned(t *testing.T) {
	mockUsecase := mocks.NewMockGroupUsecase()
	mockUsecase.JoinErr = usecase.ErrGroupBanned
	r := setupGroupRouter(handler.NewGroupHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/groups/mock-group-id/join", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLeaveGroup(t *testing.T) {
	mockUsecase := mocks.NewMockGroupUsecase()
	r := setupGroupRouter(handler.NewGroupHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/groups/mock-group-id/leave", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Left the group")
}

func TestLeaveGroup_NotMember(t *testing.T) {
	mockUsecase := mocks.NewMockGroupUsecase()
	mockUsecase.LeaveErr = usecase.ErrNotMember
	r := setupGroupRouter(handler.NewGroupHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/groups/mock-group-id/leave", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRateUser(t *testing.T) {
	mockUsecase := mocks.NewMockGroupUsecase()
	r := setupGroupRouter(handler.NewGroupHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/groups/mock-group-id/rate", dto.RateUserRequest{
		RateeID: "mock-friend-id",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"rated":true`)
}

func TestRateUser_Self(t *testing.T) {
	mockUsecase := mocks.NewMockGroupUsecase()
	mockUsecase.RateErr = usecase.ErrSelfRating
	r := setupGroupRouter(handler.NewGroupHandler(mockUsecase), testActor())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/groups/mock-group-id/rate", dto.RateUserRequest{
		RateeID: "mock-user-id",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
