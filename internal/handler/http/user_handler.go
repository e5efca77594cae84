package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"counselconnect/internal/domain/entity"
	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/usecase"
	usecasecontract "counselconnect/internal/usecase/contract"
)

type UserHandler struct {
	userUsecase usecasecontract.IUserUseCase
}

func NewUserHandler(userUsecase usecasecontract.IUserUseCase) *UserHandler {
	return &UserHandler{
		userUsecase: userUsecase,
	}
}

// Register handles user signup and triggers the OTP email.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	_, err := h.userUsecase.Register(c.Request.Context(), req.Name, req.Email, req.Password, entity.UserRole(req.Role))
	if err != nil {
		if errors.Is(err, usecase.ErrEmailTaken) {
			ErrorHandler(c, http.StatusConflict, err.Error())
			return
		}
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return
	}

	MessageHandler(c, http.StatusCreated, "Account created. Please check your email for the verification code.")
}

// VerifyOTP activates an account with the emailed code.
func (h *UserHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.userUsecase.VerifyOTP(c.Request.Context(), req.Email, req.Code)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// ResendOTP re-sends the verification code.
func (h *UserHandler) ResendOTP(c *gin.Context) {
	var req dto.ResendOTPRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.ResendOTP(c.Request.Context(), req.Email); err != nil {
		RespondUsecaseError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Verification code sent.")
}

// Login handles user authentication
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, accessToken, refreshToken, err := h.userUsecase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}

	response := dto.LoginResponse{
		User:         dto.ToUserResponse(*user),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}
	SuccessHandler(c, http.StatusOK, response)
}

// RefreshToken rotates the refresh token pair.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	access, refresh, err := h.userUsecase.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh})
}

// Logout revokes the user's refresh tokens.
func (h *UserHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.userUsecase.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		ErrorHandler(c, http.StatusUnauthorized, err.Error())
		return
	}
	MessageHandler(c, http.StatusOK, "Logged out successfully.")
}

// GetUser handles retrieving user by ID
func (h *UserHandler) GetUser(c *gin.Context) {
	userID := c.Param("id")
	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// GetCurrentUser handles retrieving the current authenticated user
func (h *UserHandler) GetCurrentUser(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	user, err := h.userUsecase.GetUserByID(c.Request.Context(), userID.(string))
	if err != nil {
		ErrorHandler(c, http.StatusNotFound, "User not found")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// UpdateProfile handles updating the caller's profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateProfileRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	updatedUser, err := h.userUsecase.UpdateProfile(c.Request.Context(), userID.(string), req.ToProfileUpdates())
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*updatedUser))
}
