package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/usecase"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// RespondUsecaseError maps usecase sentinel errors onto status codes.
// Unknown errors surface their message with a 500.
func RespondUsecaseError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, usecase.ErrUnauthorized),
		errors.Is(err, usecase.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, usecase.ErrForbidden),
		errors.Is(err, usecase.ErrAccountBanned),
		errors.Is(err, usecase.ErrAccountNotVerified),
		errors.Is(err, usecase.ErrGroupBanned),
		errors.Is(err, usecase.ErrNotMember),
		errors.Is(err, usecase.ErrChatNotAccepted),
		errors.Is(err, usecase.ErrNotChatReceiver):
		status = http.StatusForbidden
	case errors.Is(err, usecase.ErrEmailTaken):
		status = http.StatusConflict
	case errors.Is(err, usecase.ErrOTPInvalid),
		errors.Is(err, usecase.ErrRequestPending),
		errors.Is(err, usecase.ErrRequestRejected),
		errors.Is(err, usecase.ErrAlreadyFriends),
		errors.Is(err, usecase.ErrOTPExpired),
		errors.Is(err, usecase.ErrAlreadyVerified),
		errors.Is(err, usecase.ErrAlreadyMember),
		errors.Is(err, usecase.ErrSelfRating),
		errors.Is(err, usecase.ErrSelfRequest),
		errors.Is(err, usecase.ErrRequestNotPending),
		errors.Is(err, usecase.ErrFeaturedLimit):
		status = http.StatusBadRequest
	}
	ErrorHandler(c, status, err.Error())
}
