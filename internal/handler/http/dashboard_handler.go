package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	"counselconnect/internal/handler/http/dto"
	usecasecontract "counselconnect/internal/usecase/contract"
)

// DashboardHandler serves the admin moderation and analytics endpoints.
type DashboardHandler struct {
	dashboardUsecase usecasecontract.IDashboardUseCase
	blogUsecase      usecasecontract.IBlogUseCase
}

func NewDashboardHandler(dashboardUsecase usecasecontract.IDashboardUseCase, blogUsecase usecasecontract.IBlogUseCase) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		blogUsecase:      blogUsecase,
	}
}

// GetAnalytics returns the aggregate report for the last N days.
func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	days := queryInt(c, "days", 7)
	report, err := h.dashboardUsecase.GetAnalytics(c.Request.Context(), days)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, report)
}

// ListUsers pages through all registered users.
func (h *DashboardHandler) ListUsers(c *gin.Context) {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "page_size", 20)

	users, total, err := h.dashboardUsecase.ListUsers(c.Request.Context(), page, pageSize)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedResponse{
		Items:    dto.ToUserResponses(users),
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ListBlogs pages through all blogs for moderation.
func (h *DashboardHandler) ListBlogs(c *gin.Context) {
	opts := &contract.BlogFilterOptions{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 20),
		Search:   c.Query("search"),
	}
	blogs, total, err := h.blogUsecase.GetBlogs(c.Request.Context(), opts)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.PaginatedResponse{
		Items:    dto.ToBlogResponses(blogs),
		Total:    total,
		Page:     opts.Page,
		PageSize: opts.PageSize,
	})
}

// SetUserBan toggles a user's ban flag.
func (h *DashboardHandler) SetUserBan(c *gin.Context) {
	var req dto.SetBanRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	user, err := h.dashboardUsecase.SetUserBan(c.Request.Context(), c.Param("id"), req.Banned)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToUserResponse(*user))
}

// SetGroupBan toggles a group's ban flag.
func (h *DashboardHandler) SetGroupBan(c *gin.Context) {
	var req dto.SetBanRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	group, err := h.dashboardUsecase.SetGroupBan(c.Request.Context(), c.Param("id"), req.Banned)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToGroupResponse(*group))
}

// GetPages lists the static site pages.
func (h *DashboardHandler) GetPages(c *gin.Context) {
	pages, err := h.dashboardUsecase.GetPages(c.Request.Context())
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPageResponses(pages))
}

// GetPage returns one static page by its type.
func (h *DashboardHandler) GetPage(c *gin.Context) {
	page, err := h.dashboardUsecase.GetPage(c.Request.Context(), entity.PageType(c.Param("type")))
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPageResponse(*page))
}

// UpdatePage creates or replaces a static page body.
func (h *DashboardHandler) UpdatePage(c *gin.Context) {
	var req dto.UpdatePageRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	page, err := h.dashboardUsecase.UpdatePage(c.Request.Context(), entity.PageType(c.Param("type")), req.Description)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToPageResponse(*page))
}
