package usecasecontract

import (
	"context"

	"counselconnect/internal/domain/entity"
)

// ICommentUseCase defines the interface for blog comment operations.
type ICommentUseCase interface {
	CreateComment(ctx context.Context, userID, blogID, content string) (*entity.Comment, error)
	GetCommentsByBlog(ctx context.Context, blogID string, page, pageSize int) ([]*entity.Comment, int64, error)
	UpdateComment(ctx context.Context, actor *entity.User, commentID, content string) (*entity.Comment, error)
	DeleteComment(ctx context.Context, actor *entity.User, commentID string) error
}
