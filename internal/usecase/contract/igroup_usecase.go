package usecasecontract

import (
	"context"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
)

// IGroupUseCase defines the interface for group lifecycle and membership operations.
type IGroupUseCase interface {
	CreateGroup(ctx context.Context, creatorID, name, description, image string, tags []string) (*entity.Group, error)
	GetGroupByID(ctx context.Context, groupID string) (*entity.Group, error)
	GetGroups(ctx context.Context, opts *contract.GroupFilterOptions) ([]*entity.Group, int64, error)
	GetPopularTags(ctx context.Context) ([]entity.TagCount, error)
	JoinGroup(ctx context.Context, userID, groupID string) (*entity.Group, error)
	LeaveGroup(ctx context.Context, userID, groupID string) error
	RateUser(ctx context.Context, raterID, groupID, rateeID string) (*RatingResult, error)
}

// RatingResult reports the outcome of a rating toggle.
type RatingResult struct {
	Rated bool
	Total int64
}
