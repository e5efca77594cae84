package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/handler/http/middleware"
	usecasecontract "counselconnect/internal/usecase/contract"
)

type GroupHandler struct {
	groupUsecase usecasecontract.IGroupUseCase
}

func NewGroupHandler(groupUsecase usecasecontract.IGroupUseCase) *GroupHandler {
	return &GroupHandler{
		groupUsecase: groupUsecase,
	}
}

// CreateGroup creates a group with the caller as its first admin.
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateGroupRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	group, err := h.groupUsecase.CreateGroup(c.Request.Context(), user.ID, req.Name, req.Description, req.Image, req.Tags)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToGroupResponse(*group))
}

// GetGroups lists groups with optional search, tag and membership filters.
func (h *GroupHandler) GetGroups(c *gin.Context) {
	opts := &contract.GroupFilterOptions{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 10),
		Search:   c.Query("search"),
	}
	if tags := c.Query("tags"); tags != "" {
		opts.Tags = strings.Split(tags, ",")
	}
	if c.Query("mine") == "true" {
		if user, ok := middleware.CurrentUser(c); ok {
			opts.MemberID = &user.ID
		}
	}

	groups, total, err := h.groupUsecase.GetGroups(c.Request.Context(), opts)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedResponse{
		Items:    dto.ToGroupResponses(groups),
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	})
}

// GetGroup returns one group by ID.
func (h *GroupHandler) GetGroup(c *gin.Context) {
	group, err := h.groupUsecase.GetGroupByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToGroupResponse(*group))
}

// GetPopularTags returns the most used group tags.
func (h *GroupHandler) GetPopularTags(c *gin.Context) {
	tags, err := h.groupUsecase.GetPopularTags(c.Request.Context())
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToTagCountResponses(tags))
}

// JoinGroup adds the caller to the group.
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	group, err := h.groupUsecase.JoinGroup(c.Request.Context(), user.ID, c.Param("id"))
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToGroupResponse(*group))
}

// LeaveGroup removes the caller from the group.
func (h *GroupHandler) LeaveGroup(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.groupUsecase.LeaveGroup(c.Request.Context(), user.ID, c.Param("id")); err != nil {
		RespondUsecaseError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Left the group.")
}

// RateUser toggles the caller's rating of a fellow group member.
func (h *GroupHandler) RateUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.RateUserRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	result, err := h.groupUsecase.RateUser(c.Request.Context(), user.ID, c.Param("id"), req.RateeID)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToRatingResponse(*result))
}
