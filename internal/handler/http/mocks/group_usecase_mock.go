package mocks

import (
	"context"
	"time"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	usecasecontract "counselconnect/internal/usecase/contract"
)

// MockGroupUsecase is a hand-written mock of the group usecase.
type MockGroupUsecase struct {
	CreateErr      error
	GetByIDErr     error
	ListErr        error
	PopularTagsErr error
	JoinErr        error
	LeaveErr       error
	RateErr        error

	MockGroup  entity.Group
	MockRating usecasecontract.RatingResult
}

var _ usecasecontract.IGroupUseCase = (*MockGroupUsecase)(nil)

func NewMockGroupUsecase() *MockGroupUsecase {
	return &MockGroupUsecase{
		MockGroup: entity.Group{
			ID:        "mock-group-id",
			Name:      "Exam Prep",
			Tags:      []string{"exams"},
			CreatedBy: "mock-user-id",
			Admins:    []string{"mock-user-id"},
			Members:   []string{"mock-user-id"},
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MockRating: usecasecontract.RatingResult{Rated: true, Total: 1},
	}
}

func (m *MockGroupUsecase) CreateGroup(ctx context.Context, creatorID, name, description, image string, tags []string) (*entity.Group, error) {
	if m.CreateErr != nil {
		return nil, m.CreateErr
	}
	group := m.MockGroup
	group.Name = name
	group.Description = description
	group.CreatedBy = creatorID
	return &group, nil
}

func (m *MockGroupUsecase) GetGroupByID(ctx context.Context, groupID string) (*entity.Group, error) {
	if m.GetByIDErr != nil {
		return nil, m.GetByIDErr
	}
	return &m.MockGroup, nil
}

func (m *MockGroupUsecase) GetGroups(ctx context.Context, opts *contract.GroupFilterOptions) ([]*entity.Group, int64, error) {
	if m.ListErr != nil {
		return nil, 0, m.ListErr
	}
	group := m.MockGroup
	return []*entity.Group{&group}, 1, nil
}

func (m *MockGroupUsecase) GetPopularTags(ctx context.Context) ([]entity.TagCount, error) {
	if m.PopularTagsErr != nil {
		return nil, m.PopularTagsErr
	}
	return []entity.TagCount{{Tag: "exams", Count: 2}}, nil
}

func (m *MockGroupUsecase) JoinGroup(ctx context.Context, userID, groupID string) (*entity.Group, error) {
	if m.JoinErr != nil {
		return nil, m.JoinErr
	}
	group := m.MockGroup
	group.Members = append(group.Members, userID)
	return &group, nil
}

func (m *MockGroupUsecase) LeaveGroup(ctx context.Context, userID, groupID string) error {
	return m.LeaveErr
}

func (m *MockGroupUsecase) RateUser(ctx context.Context, raterID, groupID, rateeID string) (*usecasecontract.RatingResult, error) {
	if m.RateErr != nil {
		return nil, m.RateErr
	}
	result := m.MockRating
	return &result, nil
}
