package http_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	handler "counselconnect/internal/handler/http"
	"counselconnect/internal/handler/http/dto"
	"counselconnect/internal/handler/http/mocks"
	"counselconnect/internal/usecase"
)

func setupBlogRouter(h *handler.BlogHandler) *gin.Engine {
	r := gin.New()
	r.GET("/blogs", h.GetBlogs)
	r.GET("/blogs/featured", h.GetFeaturedBlogs)
	r.GET("/blogs/tags/popular", h.GetPopularTags)
	r.GET("/blogs/:id", h.GetBlog)
	r.GET("/blogs/:id/related", h.GetRelatedBlogs)

	authed := r.Group("", injectUser(testActor()))
	authed.POST("/blogs", h.CreateBlog)
	authed.POST("/blogs/generate", h.GenerateBlog)
	authed.PUT("/blogs/:id", h.UpdateBlog)
	authed.DELETE("/blogs/:id", h.DeleteBlog)
	return r
}

func TestCreateBlog(t *testing.T) {
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/blogs", dto.CreateBlogRequest{
		Title:   "Choosing a College",
		Content: "A long read about entrance exams.",
		Tags:    []string{"college"},
	}))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Choosing a College")
	assert.Contains(t, w.Body.String(), `"author_id":"mock-user-id"`)
}

func TestCreateBlog_TitleTooShort(t *testing.T) {
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/blogs", dto.CreateBlogRequest{
		Title:   "ab",
		Content: "A long read about entrance exams.",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBlog_FeaturedCap(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	mockUsecase.CreateErr = usecase.ErrFeaturedLimit
	r := setupBlogRouter(handler.NewBlogHandler(mockUsecase, mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/blogs", dto.CreateBlogRequest{
		Title:      "One Too Many",
		Content:    "A long read about entrance exams.",
		IsFeatured: true,
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetBlog(t *testing.T) {
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/mock-blog-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "mock-blog-id")
}

func TestGetBlog_NotFound(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	mockUsecase.GetByIDErr = usecase.ErrNotFound
	r := setupBlogRouter(handler.NewBlogHandler(mockUsecase, mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetBlogs(t *testing.T) {
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs?page=2&page_size=5&tags=college,exams", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total":1`)
	assert.Contains(t, w.Body.String(), `"page":2`)
}

func TestGetRelatedBlogs(t *testing.T) {
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/blogs/mock-blog-id/related", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "related-blog-id")
}

func TestUpdateBlog_Forbidden(t *testing.T) {
	mockUsecase := mocks.NewMockBlogUsecase()
	mockUsecase.UpdateErr = usecase.ErrForbidden
	r := setupBlogRouter(handler.NewBlogHandler(mockUsecase, mocks.NewMockAIUsecase()))

	title := "Edited Title"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("PUT", "/blogs/mock-blog-id", dto.UpdateBlogRequest{Title: &title}))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDeleteBlog(t *testing.T) {
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/blogs/mock-blog-id", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Blog deleted successfully")
}

func TestGenerateBlog(t *testing.T) {
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/blogs/generate", dto.GenerateBlogRequest{
		Link: "https://example.com/article",
	}))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Generated Title")
}

func TestGenerateBlog_ServiceFailure(t *testing.T) {
	mockAI := mocks.NewMockAIUsecase()
	mockAI.GenerateErr = errors.New("failed to generate content: model unavailable")
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mockAI))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/blogs/generate", dto.GenerateBlogRequest{
		Link: "https://example.com/article",
	}))

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestGenerateBlog_BadLink(t *testing.T) {
	r := setupBlogRouter(handler.NewBlogHandler(mocks.NewMockBlogUsecase(), mocks.NewMockAIUsecase()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, jsonRequest("POST", "/blogs/generate", dto.GenerateBlogRequest{
		Link: "not-a-url",
	}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
