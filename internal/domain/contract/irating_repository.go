package contract

import (
	"context"

	"counselconnect/internal/domain/entity"
)

// IRatingRepository manages in-group user ratings. A unique index on
// (group_id, rater_id, ratee_id) enforces the one-per-pair invariant.
type IRatingRepository interface {
	GetRating(ctx context.Context, groupID, raterID, rateeID string) (*entity.GroupRating, error)
	InsertRating(ctx context.Context, rating *entity.GroupRating) error
	DeleteRating(ctx context.Context, ratingID string) error
	CountRatingsForUser(ctx context.Context, groupID, rateeID string) (int64, error)
}
