package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/handler/http/middleware"
	usecasecontract "counselconnect/internal/usecase/contract"
)

type CommentHandler struct {
	commentUsecase usecasecontract.ICommentUseCase
}

func NewCommentHandler(commentUsecase usecasecontract.ICommentUseCase) *CommentHandler {
	return &CommentHandler{
		commentUsecase: commentUsecase,
	}
}

// CreateComment adds a comment to a blog.
func (h *CommentHandler) CreateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.CreateComment(c.Request.Context(), user.ID, c.Param("id"), req.Content)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToCommentResponse(*comment))
}

// GetComments lists a blog's comments, newest first.
func (h *CommentHandler) GetComments(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	comments, total, err := h.commentUsecase.GetCommentsByBlog(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}

	items := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, dto.ToCommentResponse(*comment))
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedResponse{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// UpdateComment edits the caller's comment.
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateCommentRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	comment, err := h.commentUsecase.UpdateComment(c.Request.Context(), user, c.Param("commentId"), req.Content)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToCommentResponse(*comment))
}

// DeleteComment removes the caller's comment (or any comment for admins).
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.commentUsecase.DeleteComment(c.Request.Context(), user, c.Param("commentId")); err != nil {
		RespondUsecaseError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Comment deleted successfully.")
}
