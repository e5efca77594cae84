package usecasecontract

import (
	"context"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
)

// IBlogUseCase defines the interface for blog content operations.
type IBlogUseCase interface {
	CreateBlog(ctx context.Context, authorID, title, content string, tags []string, image string, featured bool) (*entity.Blog, error)
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)
	GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]*entity.Blog, int64, error)
	GetRelatedBlogs(ctx context.Context, tags []string, excludeID string) ([]*entity.Blog, error)
	GetFeaturedBlogs(ctx context.Context) ([]*entity.Blog, error)
	GetPopularTags(ctx context.Context) ([]entity.TagCount, error)
	UpdateBlog(ctx context.Context, actor *entity.User, blogID string, updates BlogUpdates) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, actor *entity.User, blogID string) error
}

// BlogUpdates carries the optional fields of a blog update request.
type BlogUpdates struct {
	Title      *string
	Content    *string
	Tags       []string
	Image      *string
	IsFeatured *bool
}
