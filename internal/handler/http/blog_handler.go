package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/handler/http/middleware"
	usecasecontract "counselconnect/internal/usecase/contract"
)

type BlogHandler struct {
	blogUsecase usecasecontract.IBlogUseCase
	aiUsecase   usecasecontract.IAIUseCase
}

func NewBlogHandler(blogUsecase usecasecontract.IBlogUseCase, aiUsecase usecasecontract.IAIUseCase) *BlogHandler {
	return &BlogHandler{
		blogUsecase: blogUsecase,
		aiUsecase:   aiUsecase,
	}
}

// CreateBlog publishes a new blog for the authenticated author.
func (h *BlogHandler) CreateBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.CreateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUsecase.CreateBlog(c.Request.Context(), user.ID, req.Title, req.Content, req.Tags, req.Image, req.IsFeatured)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, dto.ToBlogResponse(*blog))
}

// GetBlogs lists blogs with optional search, tag and author filters.
func (h *BlogHandler) GetBlogs(c *gin.Context) {
	opts := &contract.BlogFilterOptions{
		Page:     queryInt(c, "page", 1),
		PageSize: queryInt(c, "page_size", 10),
		Search:   c.Query("search"),
	}
	if tags := c.Query("tags"); tags != "" {
		opts.Tags = strings.Split(tags, ",")
	}
	if author := c.Query("author_id"); author != "" {
		opts.AuthorID = &author
	}
	if featured := c.Query("featured"); featured != "" {
		val := featured == "true"
		opts.Featured = &val
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

// GetBlog returns one blog by ID.
func (h *BlogHandler) GetBlog(c *gin.Context) {
	blog, err := h.blogUsecase.GetBlogByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(*blog))
}

// GetRelatedBlogs returns recent blogs sharing tags with the given one.
func (h *BlogHandler) GetRelatedBlogs(c *gin.Context) {
	blog, err := h.blogUsecase.GetBlogByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	related, err := h.blogUsecase.GetRelatedBlogs(c.Request.Context(), blog.Tags, blog.ID)
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponses(related))
}

// GetFeaturedBlogs returns the featured selection.
func (h *BlogHandler) GetFeaturedBlogs(c *gin.Context) {
	blogs, err := h.blogUsecase.GetFeaturedBlogs(c.Request.Context())
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponses(blogs))
}

// GetPopularTags returns the most used blog tags.
func (h *BlogHandler) GetPopularTags(c *gin.Context) {
	tags, err := h.blogUsecase.GetPopularTags(c.Request.Context())
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToTagCountResponses(tags))
}

// UpdateBlog edits a blog owned by the caller (or any blog for admins).
func (h *BlogHandler) UpdateBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req dto.UpdateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	blog, err := h.blogUsecase.UpdateBlog(c.Request.Context(), user, c.Param("id"), req.ToBlogUpdates())
	if err != nil {
		RespondUsecaseError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ToBlogResponse(*blog))
}

// DeleteBlog removes a blog owned by the caller (or any blog for admins).
func (h *BlogHandler) DeleteBlog(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.blogUsecase.DeleteBlog(c.Request.Context(), user, c.Param("id")); err != nil {
		RespondUsecaseError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Blog deleted successfully.")
}

// GenerateBlog drafts a blog from a source article with the AI service.
func (h *BlogHandler) GenerateBlog(c *gin.Context) {
	var req dto.GenerateBlogRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	draft, err := h.aiUsecase.GenerateBlogDraft(c.Request.Context(), req.Link, req.Prompt)
	if err != nil {
		ErrorHandler(c, http.StatusBadGateway, err.Error())
		return
	}
	SuccessHandler(c, http.StatusOK, dto.GeneratedBlogResponse{
		Title:   draft.Title,
		Content: draft.Content,
		Tags:    draft.Tags,
	})
}

// queryInt parses an integer query parameter with a fallback.
func queryInt(c *gin.Context, key string, fallback int) int {
	if v, err := strconv.Atoi(c.Query(key)); err == nil {
		return v
	}
	return fallback
}
