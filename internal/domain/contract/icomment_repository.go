package contract

import (
	"context"

	"counselconnect/internal/domain/entity"
)

// ICommentRepository provides methods for managing blog comments.
type ICommentRepository interface {
	CreateComment(ctx context.Context, comment *entity.Comment) error
	GetCommentByID(ctx context.Context, commentID string) (*entity.Comment, error)
	GetCommentsByBlog(ctx context.Context, blogID string, page, pageSize int) ([]*entity.Comment, int64, error)
	UpdateComment(ctx context.Context, commentID, content string) error
	DeleteComment(ctx context.Context, commentID string) error
	DeleteCommentsByBlog(ctx context.Context, blogID string) error
	CountComments(ctx context.Context) (int64, error)
}
