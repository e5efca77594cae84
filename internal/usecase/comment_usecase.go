package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	uc "counselconnect/internal/usecase/contract"
)

// CommentUsecase implements blog comment operations.
type CommentUsecase struct {
	commentRepo contract.ICommentRepository
	blogRepo    contract.IBlogRepository
	uuidGen     contract.IUUIDGenerator
	logger      uc.IAppLogger
}

var _ uc.ICommentUseCase = (*CommentUsecase)(nil)

func NewCommentUsecase(
	commentRepo contract.ICommentRepository,
	blogRepo contract.IBlogRepository,
	uuidGen contract.IUUIDGenerator,
	logger uc.IAppLogger,
) *CommentUsecase {
	return &CommentUsecase{
		commentRepo: commentRepo,
		blogRepo:    blogRepo,
		uuidGen:     uuidGen,
		logger:      logger,
	}
}

func (c *CommentUsecase) CreateComment(ctx context.Context, userID, blogID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment content cannot be empty")
	}
	if _, err := c.blogRepo.GetBlogByID(ctx, blogID); err != nil {
		if errors.Is(err, contract.ErrBlogNotFound) {
			return nil, ErrNotFound
		}
		c.logger.Errorf("create comment: lookup blog %s: %v", blogID, err)
		return nil, errors.New("failed to create comment")
	}

	now := time.Now().UTC()
	comment := &entity.Comment{
		ID:        c.uuidGen.NewUUID(),
		BlogID:    blogID,
		UserID:    userID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.commentRepo.CreateComment(ctx, comment); err != nil {
		c.logger.Errorf("create comment on blog %s: %v", blogID, err)
		return nil, errors.New("failed to create comment")
	}
	return comment, nil
}

func (c *CommentUsecase) GetCommentsByBlog(ctx context.Context, blogID string, page, pageSize int) ([]*entity.Comment, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 50 {
		pageSize = 20
	}
	comments, total, err := c.commentRepo.GetCommentsByBlog(ctx, blogID, page, pageSize)
	if err != nil {
		c.logger.Errorf("list comments of blog %s: %v", blogID, err)
		return nil, 0, errors.New("failed to fetch comments")
	}
	return comments, total, nil
}

// UpdateComment edits a comment. Only its author may edit it.
func (c *CommentUsecase) UpdateComment(ctx context.Context, actor *entity.User, commentID, content string) (*entity.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, errors.New("comment content cannot be empty")
	}
	comment, err := c.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, contract.ErrCommentNotFound) {
			return nil, ErrNotFound
		}
		c.logger.Errorf("update comment: lookup %s: %v", commentID, err)
		return nil, errors.New("failed to update comment")
	}
	if comment.UserID != actor.ID {
		return nil, ErrForbidden
	}
	if err := c.commentRepo.UpdateComment(ctx, commentID, content); err != nil {
		c.logger.Errorf("update comment %s: %v", commentID, err)
		return nil, errors.New("failed to update comment")
	}
	comment.Content = content
	comment.UpdatedAt = time.Now().UTC()
	return comment, nil
}

// DeleteComment removes a comment. Author or admin only.
func (c *CommentUsecase) DeleteComment(ctx context.Context, actor *entity.User, commentID string) error {
	comment, err := c.commentRepo.GetCommentByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, contract.ErrCommentNotFound) {
			return ErrNotFound
		}
		c.logger.Errorf("delete comment: lookup %s: %v", commentID, err)
		return errors.New("failed to delete comment")
	}
	if comment.UserID != actor.ID && actor.Role != entity.RoleAdmin {
		return ErrForbidden
	}
	if err := c.commentRepo.DeleteComment(ctx, commentID); err != nil {
		c.logger.Errorf("delete comment %s: %v", commentID, err)
		return errors.New("failed to delete comment")
	}
	return nil
}
