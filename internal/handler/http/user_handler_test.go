package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"counselconnect/internal/domain/entity"
	handler "counselconnect/internal/handler/http"
	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/handler/http/mocks"
	"counselconnect/internal/infrastructure/validator"
	"counselconnect/internal/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
	os.Exit(m.Run())
}

// injectUser stands in for the auth middleware in tests.
func injectUser(user *entity.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("userID", user.ID)
		c.Set("userRole", string(user.Role))
		c.Set("user", user)
		c.Next()
	}
}

func jsonRequest(method, path string, payload interface{}) *http.Request {
	body, _ := json.Marshal(payload)
	req, _ := http.NewRequest(method, path, bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func setupUserRouter(h *handler.UserHandler, user *entity.User) *gin.Engine {
	r := gin.New()
	r.POST("/register", h.Register)
	r.POST("/verify-otp", h.VerifyOTP)
	r.POST("/login", h.Login)
	r.POST("/refresh", h.RefreshToken)
	r.GET("/users/:id", h.GetUser)
	if user != nil {
		r.GET("/users/me", injectUser(user), h.GetCurrentUser)
		r.PUT("/users/me", injectUser(user), h.UpdateProfile)
	}
	return r
}

func TestRegister(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/register", dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123",
		Role:     "student",
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "check your email")
}

func TestRegister_EmailTaken(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.RegisterErr = usecase.ErrEmailTaken
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/register", dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123",
	}))

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegister_AdminRoleRejected(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/register", dto.RegisterRequest{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "Password123",
		Role:     "admin",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "userrole")
}

func TestVerifyOTP(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/verify-otp", dto.VerifyOTPRequest{
		Email: "test@example.com",
		Code:  "123456",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"is_verified":true`)
}

func TestVerifyOTP_Expired(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.VerifyOTPErr = usecase.ErrOTPExpired
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/verify-otp", dto.VerifyOTPRequest{
		Email: "test@example.com",
		Code:  "123456",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock_access_token")
	assert.Contains(t, w.Body.String(), "mock_refresh_token")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.LoginErr = usecase.ErrInvalidCredentials
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "wrongpassword",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogin_Banned(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.LoginErr = usecase.ErrAccountBanned
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123",
	}))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogin_Unverified(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.LoginErr = usecase.ErrAccountNotVerified
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/login", dto.LoginRequest{
		Email:    "test@example.com",
		Password: "Password123",
	}))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRefreshToken_Fail(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.RefreshTokenErr = usecase.ErrUnauthorized
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/refresh", dto.RefreshTokenRequest{
		RefreshToken: "stale-token",
	}))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetUser(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/mock-user-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "test@example.com")
}

func TestGetUser_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	mockUsecase.GetByIDErr = usecase.ErrNotFound
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/users/missing-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}

func TestUpdateProfile(t *testing.T) {
	mockUsecase := mocks.NewMockUserUsecase()
	actor := &mockUsecase.MockUser
	r := setupUserRouter(handler.NewUserHandler(mockUsecase), actor)

	name := "Renamed User"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("PUT", "/users/me", dto.UpdateProfileRequest{Name: &name}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Renamed User")
}
