package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	uc "counselconnect/internal/usecase/contract"
)

const (
	relatedBlogLimit = 4
	popularTagLimit  = 10

	blogListCachePrefix = "blogs:list:"
	featuredCacheKey    = "blogs:featured"
	popularTagsCacheKey = "blogs:tags:popular"
)

// BlogUsecase implements blog publishing with a per-author featured cap
// and a read-through cache on the hot list endpoints.
type BlogUsecase struct {
	blogRepo    contract.IBlogRepository
	commentRepo contract.ICommentRepository
	uuidGen     contract.IUUIDGenerator
	cache       contract.ICache
	logger      uc.IAppLogger
}

var _ uc.IBlogUseCase = (*BlogUsecase)(nil)

func NewBlogUsecase(
	blogRepo contract.IBlogRepository,
	commentRepo contract.ICommentRepository,
	uuidGen contract.IUUIDGenerator,
	cache contract.ICache,
	logger uc.IAppLogger,
) *BlogUsecase {
	return &BlogUsecase{
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
		uuidGen:     uuidGen,
		cache:       cache,
		logger:      logger,
	}
}

func (b *BlogUsecase) CreateBlog(ctx context.Context, authorID, title, content string, tags []string, image string, featured bool) (*entity.Blog, error) {
	now := time.Now().UTC()
	blog := &entity.Blog{
		ID:         b.uuidGen.NewUUID(),
		Title:      strings.TrimSpace(title),
		Content:    content,
		Tags:       normalizeTags(tags),
		Image:      image,
		AuthorID:   authorID,
		IsFeatured: featured,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := b.blogRepo.CreateBlog(ctx, blog); err != nil {
		if errors.Is(err, contract.ErrFeaturedLimit) {
			return nil, ErrFeaturedLimit
		}
		b.logger.Errorf("create blog by %s: %v", authorID, err)
		return nil, errors.New("failed to create blog")
	}
	b.invalidateListCaches(ctx)
	return blog, nil
}

func (b *BlogUsecase) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	blog, err := b.blogRepo.GetBlogByID(ctx, blogID)
	if err != nil {
		if errors.Is(err, contract.ErrBlogNotFound) {
			return nil, ErrNotFound
		}
		b.logger.Errorf("get blog %s: %v", blogID, err)
		return nil, errors.New("failed to fetch blog")
	}
	return blog, nil
}

// GetBlogs serves filtered listings, caching only unfiltered pages since
// search results have too many key shapes to be worth storing.
func (b *BlogUsecase) GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]*entity.Blog, int64, error) {
	if opts == nil {
		opts = &contract.BlogFilterOptions{}
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 || opts.PageSize > 50 {
		opts.PageSize = 10
	}

	cacheable := opts.Search == "" && len(opts.Tags) == 0 && opts.AuthorID == nil && opts.Featured == nil
	cacheKey := fmt.Sprintf("%sp%d:s%d", blogListCachePrefix, opts.Page, opts.PageSize)
	if cacheable {
		if page, ok := b.cachedPage(ctx, cacheKey); ok {
			return page.Blogs, page.Total, nil
		}
	}

	blogs, total, err := b.blogRepo.GetBlogs(ctx, opts)
	if err != nil {
		b.logger.Errorf("list blogs: %v", err)
		return nil, 0, errors.New("failed to fetch blogs")
	}
	if cacheable {
		b.storePage(ctx, cacheKey, blogs, total)
	}
	return blogs, total, nil
}

func (b *BlogUsecase) GetRelatedBlogs(ctx context.Context, tags []string, excludeID string) ([]*entity.Blog, error) {
	blogs, err := b.blogRepo.GetRelatedBlogs(ctx, normalizeTags(tags), excludeID, relatedBlogLimit)
	if err != nil {
		b.logger.Errorf("related blogs for %s: %v", excludeID, err)
		return nil, errors.New("failed to fetch related blogs")
	}
	return blogs, nil
}

func (b *BlogUsecase) GetFeaturedBlogs(ctx context.Context) ([]*entity.Blog, error) {
	if page, ok := b.cachedPage(ctx, featuredCacheKey); ok {
		return page.Blogs, nil
	}
	blogs, err := b.blogRepo.GetFeaturedBlogs(ctx)
	if err != nil {
		b.logger.Errorf("featured blogs: %v", err)
		return nil, errors.New("failed to fetch featured blogs")
	}
	b.storePage(ctx, featuredCacheKey, blogs, int64(len(blogs)))
	return blogs, nil
}

func (b *BlogUsecase) GetPopularTags(ctx context.Context) ([]entity.TagCount, error) {
	if raw, ok, err := b.cache.Get(ctx, popularTagsCacheKey); err == nil && ok {
		var tags []entity.TagCount
		if json.Unmarshal(raw, &tags) == nil {
			return tags, nil
		}
	}
	tags, err := b.blogRepo.GetPopularTags(ctx, popularTagLimit)
	if err != nil {
		b.logger.Errorf("popular blog tags: %v", err)
		return nil, errors.New("failed to fetch popular tags")
	}
	if raw, err := json.Marshal(tags); err == nil {
		if err := b.cache.Set(ctx, popularTagsCacheKey, raw); err != nil {
			b.logger.Warnf("cache popular tags: %v", err)
		}
	}
	return tags, nil
}

// UpdateBlog lets the author or an admin edit a blog. Setting the
// featured flag is subject to the same cap as creation.
func (b *BlogUsecase) UpdateBlog(ctx context.Context, actor *entity.User, blogID string, updates uc.BlogUpdates) (*entity.Blog, error) {
	blog, err := b.GetBlogByID(ctx, blogID)
	if err != nil {
		return nil, err
	}
	if blog.AuthorID != actor.ID && actor.Role != entity.RoleAdmin {
		return nil, ErrForbidden
	}

	fields := map[string]interface{}{"updated_at": time.Now().UTC()}
	if updates.Title != nil {
		fields["title"] = strings.TrimSpace(*updates.Title)
	}
	if updates.Content != nil {
		fields["content"] = *updates.Content
	}
	if updates.Tags != nil {
		fields["tags"] = normalizeTags(updates.Tags)
	}
	if updates.Image != nil {
		fields["image"] = *updates.Image
	}
	if updates.IsFeatured != nil {
		fields["is_featured"] = *updates.IsFeatured
	}

	if err := b.blogRepo.UpdateBlog(ctx, blogID, fields); err != nil {
		if errors.Is(err, contract.ErrFeaturedLimit) {
			return nil, ErrFeaturedLimit
		}
		if errors.Is(err, contract.ErrBlogNotFound) {
			return nil, ErrNotFound
		}
		b.logger.Errorf("update blog %s: %v", blogID, err)
		return nil, errors.New("failed to update blog")
	}
	b.invalidateListCaches(ctx)
	return b.GetBlogByID(ctx, blogID)
}

// DeleteBlog removes a blog and its comments. Author or admin only.
func (b *BlogUsecase) DeleteBlog(ctx context.Context, actor *entity.User, blogID string) error {
	blog, err := b.GetBlogByID(ctx, blogID)
	if err != nil {
		return err
	}
	if blog.AuthorID != actor.ID && actor.Role != entity.RoleAdmin {
		return ErrForbidden
	}
	if err := b.blogRepo.DeleteBlog(ctx, blogID); err != nil {
		b.logger.Errorf("delete blog %s: %v", blogID, err)
		return errors.New("failed to delete blog")
	}
	if err := b.commentRepo.DeleteCommentsByBlog(ctx, blogID); err != nil {
		b.logger.Errorf("delete comments of blog %s: %v", blogID, err)
	}
	b.invalidateListCaches(ctx)
	return nil
}

type cachedBlogPage struct {
	Blogs []*entity.Blog `json:"blogs"`
	Total int64          `json:"total"`
}

func (b *BlogUsecase) cachedPage(ctx context.Context, key string) (*cachedBlogPage, bool) {
	raw, ok, err := b.cache.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var page cachedBlogPage
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, false
	}
	return &page, true
}

func (b *BlogUsecase) storePage(ctx context.Context, key string, blogs []*entity.Blog, total int64) {
	raw, err := json.Marshal(cachedBlogPage{Blogs: blogs, Total: total})
	if err != nil {
		return
	}
	if err := b.cache.Set(ctx, key, raw); err != nil {
		b.logger.Warnf("cache blog page %s: %v", key, err)
	}
}

func (b *BlogUsecase) invalidateListCaches(ctx context.Context) {
	if err := b.cache.InvalidatePrefix(ctx, blogListCachePrefix); err != nil {
		b.logger.Warnf("invalidate blog list cache: %v", err)
	}
	if err := b.cache.Invalidate(ctx, featuredCacheKey, popularTagsCacheKey); err != nil {
		b.logger.Warnf("invalidate blog caches: %v", err)
	}
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
