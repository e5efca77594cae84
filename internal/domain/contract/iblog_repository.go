package contract

import (
	"context"
	"time"

	"counselconnect/internal/domain/entity"
)

// IBlogRepository provides methods for managing blog data in the database.
type IBlogRepository interface {
	// CreateBlog inserts the blog. When the featured flag is set, the insert and
	// the per-author featured count check run in one session so concurrent
	// creations cannot overshoot the cap.
	CreateBlog(ctx context.Context, blog *entity.Blog) error
	GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error)
	GetBlogs(ctx context.Context, opts *BlogFilterOptions) ([]*entity.Blog, int64, error)
	GetRelatedBlogs(ctx context.Context, tags []string, excludeID string, limit int) ([]*entity.Blog, error)
	GetFeaturedBlogs(ctx context.Context) ([]*entity.Blog, error)
	// UpdateBlog applies the field updates; a featured-flag change re-checks the
	// cap inside the same session as the write.
	UpdateBlog(ctx context.Context, blogID string, updates map[string]interface{}) error
	DeleteBlog(ctx context.Context, blogID string) error
	CountFeaturedByAuthor(ctx context.Context, authorID string) (int64, error)
	GetPopularTags(ctx context.Context, limit int) ([]entity.TagCount, error)
	CountBlogs(ctx context.Context) (int64, error)
	CountBlogsPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error)
}

// BlogFilterOptions encapsulates filtering and pagination parameters for blog retrieval.
type BlogFilterOptions struct {
	Page     int
	PageSize int
	Search   string
	Tags     []string
	AuthorID *string
	Featured *bool
}
