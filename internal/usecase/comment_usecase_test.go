package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"counselconnect/internal/domain/entity"
	"counselconnect/internal/usecase"
)

func newCommentFixture() (*usecase.CommentUsecase, *fakeBlogRepo, *fakeCommentRepo) {
	blogRepo := newFakeBlogRepo()
	commentRepo := newFakeCommentRepo()
	uc := usecase.NewCommentUsecase(commentRepo, blogRepo, &seqUUID{}, nopLogger{})
	return uc, blogRepo, commentRepo
}

func seedBlog(t *testing.T, blogRepo *fakeBlogRepo) *entity.Blog {
	t.Helper()
	blog := &entity.Blog{ID: "b1", Title: "Title", AuthorID: "u-alice"}
	require.NoError(t, blogRepo.CreateBlog(context.Background(), blog))
	return blog
}

func TestCreateComment(t *testing.T) {
	uc, blogRepo, _ := newCommentFixture()
	blog := seedBlog(t, blogRepo)

	comment, err := uc.CreateComment(context.Background(), "u-bob", blog.ID, "  great write-up  ")
	require.NoError(t, err)
	assert.Equal(t, "great write-up", comment.Content)
	assert.Equal(t, blog.ID, comment.BlogID)
}

func TestCreateComment_BlogMissing(t *testing.T) {
	uc, _, _ := newCommentFixture()

	_, err := uc.CreateComment(context.Background(), "u-bob", "missing", "hi")
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestUpdateComment_AuthorOnly(t *testing.T) {
	uc, blogRepo, _ := newCommentFixture()
	blog := seedBlog(t, blogRepo)

	comment, err := uc.CreateComment(context.Background(), "u-bob", blog.ID, "first take")
	require.NoError(t, err)

	// even an admin cannot edit someone else's words
	admin := &entity.User{ID: "u-admin", Role: entity.RoleAdmin}
	_, err = uc.UpdateComment(context.Background(), admin, comment.ID, "edited")
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	author := testUser("u-bob", "Bob")
	updated, err := uc.UpdateComment(context.Background(), author, comment.ID, "second take")
	require.NoError(t, err)
	assert.Equal(t, "second take", updated.Content)
}

func TestDeleteComment_AuthorOrAdmin(t *testing.T) {
	uc, blogRepo, commentRepo := newCommentFixture()
	blog := seedBlog(t, blogRepo)

	comment, err := uc.CreateComment(context.Background(), "u-bob", blog.ID, "to be removed")
	require.NoError(t, err)

	stranger := testUser("u-carol", "Carol")
	assert.ErrorIs(t, uc.DeleteComment(context.Background(), stranger, comment.ID), usecase.ErrForbidden)

	admin := &entity.User{ID: "u-admin", Role: entity.RoleAdmin}
	require.NoError(t, uc.DeleteComment(context.Background(), admin, comment.ID))

	n, _ := commentRepo.CountComments(context.Background())
	assert.Equal(t, int64(0), n)
}
