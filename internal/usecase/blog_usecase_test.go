package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	"counselconnect/internal/usecase"
	usecasecontract "counselconnect/internal/usecase/contract"
)

func newBlogFixture() (*usecase.BlogUsecase, *fakeBlogRepo, *fakeCommentRepo, *fakeCache) {
	blogRepo := newFakeBlogRepo()
	commentRepo := newFakeCommentRepo()
	cache := newFakeCache()
	uc := usecase.NewBlogUsecase(blogRepo, commentRepo, &seqUUID{}, cache, nopLogger{})
	return uc, blogRepo, commentRepo, cache
}

func TestCreateBlog_NormalizesTags(t *testing.T) {
	uc, _, _, _ := newBlogFixture()

	blog, err := uc.CreateBlog(context.Background(), "u-alice", "  My Title  ", "content", []string{"Exams", "exams", "", " College "}, "", false)
	require.NoError(t, err)

	assert.Equal(t, "My Title", blog.Title)
	assert.Equal(t, []string{"exams", "college"}, blog.Tags)
}

func TestCreateBlog_FeaturedCap(t *testing.T) {
	uc, _, _, _ := newBlogFixture()

	for i := 0; i < entity.MaxFeaturedBlogs; i++ {
		_, err := uc.CreateBlog(context.Background(), "u-alice", fmt.Sprintf("Featured %d", i), "content", nil, "", true)
		require.NoError(t, err)
	}

	_, err := uc.CreateBlog(context.Background(), "u-alice", "One Too Many", "content", nil, "", true)
	assert.ErrorIs(t, err, usecase.ErrFeaturedLimit)

	// the cap is per author
	_, err = uc.CreateBlog(context.Background(), "u-bob", "Bob Featured", "content", nil, "", true)
	assert.NoError(t, err)
}

func TestUpdateBlog_FeaturedCap(t *testing.T) {
	uc, _, _, _ := newBlogFixture()
	author := testUser("u-alice", "Alice")

	for i := 0; i < entity.MaxFeaturedBlogs; i++ {
		_, err := uc.CreateBlog(context.Background(), author.ID, fmt.Sprintf("Featured %d", i), "content", nil, "", true)
		require.NoError(t, err)
	}
	plain, err := uc.CreateBlog(context.Background(), author.ID, "Plain", "content", nil, "", false)
	require.NoError(t, err)

	featured := true
	_, err = uc.UpdateBlog(context.Background(), author, plain.ID, usecasecontract.BlogUpdates{IsFeatured: &featured})
	assert.ErrorIs(t, err, usecase.ErrFeaturedLimit)
}

func TestUpdateBlog_AuthorOrAdminOnly(t *testing.T) {
	uc, _, _, _ := newBlogFixture()
	author := testUser("u-alice", "Alice")
	stranger := testUser("u-bob", "Bob")
	admin := &entity.User{ID: "u-admin", Name: "Admin", Role: entity.RoleAdmin}

	blog, err := uc.CreateBlog(context.Background(), author.ID, "Title", "content", nil, "", false)
	require.NoError(t, err)

	title := "Edited"
	_, err = uc.UpdateBlog(context.Background(), stranger, blog.ID, usecasecontract.BlogUpdates{Title: &title})
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	updated, err := uc.UpdateBlog(context.Background(), admin, blog.ID, usecasecontract.BlogUpdates{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Edited", updated.Title)
}

func TestDeleteBlog_CascadesComments(t *testing.T) {
	uc, _, commentRepo, _ := newBlogFixture()
	author := testUser("u-alice", "Alice")

	blog, err := uc.CreateBlog(context.Background(), author.ID, "Title", "content", nil, "", false)
	require.NoError(t, err)

	require.NoError(t, commentRepo.CreateComment(context.Background(), &entity.Comment{
		ID: "c1", BlogID: blog.ID, UserID: "u-bob", Content: "nice",
	}))

	require.NoError(t, uc.DeleteBlog(context.Background(), author, blog.ID))

	_, err = uc.GetBlogByID(context.Background(), blog.ID)
	assert.ErrorIs(t, err, usecase.ErrNotFound)
	n, _ := commentRepo.CountComments(context.Background())
	assert.Equal(t, int64(0), n)
}

func TestGetBlogs_CachesUnfilteredPages(t *testing.T) {
	uc, blogRepo, _, _ := newBlogFixture()

	_, err := uc.CreateBlog(context.Background(), "u-alice", "Title", "content", nil, "", false)
	require.NoError(t, err)

	blogs, total, err := uc.GetBlogs(context.Background(), &contract.BlogFilterOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, blogs, 1)
	assert.Equal(t, int64(1), total)

	// a write that bypasses the usecase is not visible until invalidation
	require.NoError(t, blogRepo.CreateBlog(context.Background(), &entity.Blog{ID: "b2", Title: "Other", AuthorID: "u-bob"}))
	blogs, total, err = uc.GetBlogs(context.Background(), &contract.BlogFilterOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, blogs, 1)
	assert.Equal(t, int64(1), total)

	// creating through the usecase invalidates the cached page
	_, err = uc.CreateBlog(context.Background(), "u-alice", "Third", "content", nil, "", false)
	require.NoError(t, err)
	blogs, _, err = uc.GetBlogs(context.Background(), &contract.BlogFilterOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, blogs, 3)
}

func TestGetBlogs_FilteredPagesSkipCache(t *testing.T) {
	uc, _, _, cache := newBlogFixture()

	_, err := uc.CreateBlog(context.Background(), "u-alice", "Title", "content", nil, "", false)
	require.NoError(t, err)

	_, _, err = uc.GetBlogs(context.Background(), &contract.BlogFilterOptions{Page: 1, PageSize: 10, Search: "title"})
	require.NoError(t, err)
	assert.Empty(t, cache.data)
}
