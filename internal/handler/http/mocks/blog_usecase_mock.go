package mocks

import (
	"context"
	"time"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

// MockBlogUsecase is a hand-written mock of the blog usecase.
type MockBlogUsecase struct {
	CreateErr      error
	GetByIDErr     error
	ListErr        error
	RelatedErr     error
	FeaturedErr    error
	PopularTagsErr error
	UpdateErr      error
	DeleteErr      error

	MockBlog entity.Blog
}

var _ usecasecontract.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	return &MockBlogUsecase{
		MockBlog: entity.Blog{
			ID:        "mock-blog-id",
			Title:     "Choosing a College",
			Content:   "A long read about entrance exams.",
			Tags:      []string{"college", "exams"},
			AuthorID:  "mock-user-id",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (m *MockBlogUsecase) CreateBlog(ctx context.Context, authorID, title, content string, tags []string, image string, featured bool) (*entity.Blog, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	blog := m.MockBlog
	blog.Title = title
	blog.Content = content
	blog.AuthorID = authorID
	blog.IsFeatured = featured
	return &blog, nil
}

func (m *MockBlogUsecase) GetBlogByID(ctx context.Context, blogID string) (*entity.Blog, error) {
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	return &m.MockBlog, nil
}

func (m *MockBlogUsecase) GetBlogs(ctx context.Context, opts *contract.BlogFilterOptions) ([]*entity.Blog, int64, error) {
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	blog := m.MockBlog
	return []*entity.Blog{&blog}, 1, nil
}

func (m *MockBlogUsecase) GetRelatedBlogs(ctx context.Context, tags []string, excludeID string) ([]*entity.Blog, error) {
	if m.RelatedErr != nil {
		return nil, m.RelatedErr
	}
	blog := m.MockBlog
	blog.ID = "related-blog-id"
	return []*entity.Blog{&blog}, nil
}

func (m *MockBlogUsecase) GetFeaturedBlogs(ctx context.Context) ([]*entity.Blog, error) {
	if m.FeaturedErr != nil {
		return nil, m.FeaturedErr
	}
	blog := m.MockBlog
	blog.IsFeatured = true
	return []*entity.Blog{&blog}, nil
}

func (m *MockBlogUsecase) GetPopularTags(ctx context.Context) ([]entity.TagCount, error) {
	if m.PopularTagsErr != nil {
		return nil, m.PopularTagsErr
	}
	return []entity.TagCount{{Tag: "college", Count: 3}}, nil
}

func (m *MockBlogUsecase) UpdateBlog(ctx context.Context, actor *entity.User, blogID string, updates usecasecontract.BlogUpdates) (*entity.Blog, error) {
	if m.UpdateErr != nil {
		return nil, m.UpdateErr
	}
	blog := m.MockBlog
	if updates.Title != nil {
		blog.Title = *updates.Title
	}
	return &blog, nil
}

func (m *MockBlogUsecase) DeleteBlog(ctx context.Context, actor *entity.User, blogID string) error {
	return m.DeleteErr
}

// MockAIUsecase is a hand-written mock of the AI draft usecase.
type MockAIUsecase struct {
	GenerateErr error
	MockDraft   usecasecontract.GeneratedBlog
}

var _ usecasecontract.IAIUseCase = (*MockAIUsecase)(nil)

func NewMockAIUsecase() *MockAIUsecase {
	return &MockAIUsecase{
		MockDraft: usecasecontract.GeneratedBlog{
			Title:   "Generated Title",
			Content: "Generated content.",
			Tags:    []string{"generated"},
		},
	}
}

func (m *MockAIUsecase) GenerateBlogDraft(ctx context.Context, link, prompt string) (*usecasecontract.GeneratedBlog, error) {
	if m.GenerateErr != nil {
		return nil, m.GenerateErr
	}
	draft := m.MockDraft
	return &draft, nil
}
