package dto

import (
	"time"

	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

type CreateBlogRequest struct {
	Title      string   `json:"title" binding:"required,min=3,max=200"`
	Content    string   `json:"content" binding:"required,min=10"`
	Tags       []string `json:"tags" binding:"omitempty,max=10"`
	Image      string   `json:"image" binding:"omitempty,url"`
	IsFeatured bool     `json:"is_featured"`
}

type UpdateBlogRequest struct {
	Title      *string  `json:"title,omitempty" binding:"omitempty,min=3,max=200"`
	Content    *string  `json:"content,omitempty" binding:"omitempty,min=10"`
	Tags       []string `json:"tags,omitempty" binding:"omitempty,max=10"`
	Image      *string  `json:"image,omitempty" binding:"omitempty,url"`
	IsFeatured *bool    `json:"is_featured,omitempty"`
}

func (r UpdateBlogRequest) ToBlogUpdates() usecasecontract.BlogUpdates {
	return usecasecontract.BlogUpdates{
		Title:      r.Title,
		Content:    r.Content,
		Tags:       r.Tags,
		Image:      r.Image,
		IsFeatured: r.IsFeatured,
	}
}

// GenerateBlogRequest asks for an AI draft based on a source article.
type GenerateBlogRequest struct {
	Link   string `json:"link" binding:"required,url"`
	Prompt string `json:"prompt" binding:"omitempty,max=500"`
}

type BlogResponse struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Tags       []string `json:"tags"`
	Image      string   `json:"image,omitempty"`
	AuthorID   string   `json:"author_id"`
	IsFeatured bool     `json:"is_featured"`
	CreatedAt  string   `json:"created_at"`
	UpdatedAt  string   `json:"updated_at"`
}

func ToBlogResponse(blog entity.Blog) BlogResponse {
	return BlogResponse{
		ID:         blog.ID,
		Title:      blog.Title,
		Content:    blog.Content,
		Tags:       blog.Tags,
		Image:      blog.Image,
		AuthorID:   blog.AuthorID,
		IsFeatured: blog.IsFeatured,
		CreatedAt:  blog.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  blog.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBlogResponses(blogs []*entity.Blog) []BlogResponse {
	out := make([]BlogResponse, 0, len(blogs))
	for _, b := range blogs {
		out = append(out, ToBlogResponse(*b))
	}
	return out
}

// GeneratedBlogResponse is an AI draft ready for the editor.
type GeneratedBlogResponse struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

type CreateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=2000"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	BlogID    string `json:"blog_id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func ToCommentResponse(comment entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		BlogID:    comment.BlogID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt.Format(time.RFC3339),
		UpdatedAt: comment.UpdatedAt.Format(time.RFC3339),
	}
}
