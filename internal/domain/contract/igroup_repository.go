package contract

import (
	"context"
	"time"

	"counselconnect/internal/domain/entity"
)

// IGroupRepository manages groups and their membership rows. The memberships
// collection is the authoritative record; the Group.Admins/Members arrays are
// a materialized cache, so every method that touches both performs its writes
// in a single session.
type IGroupRepository interface {
	// CreateGroupWithCreator inserts the group and the creator's admin
	// membership row as one unit.
	CreateGroupWithCreator(ctx context.Context, group *entity.Group, membership *entity.Membership) error
	GetGroupByID(ctx context.Context, groupID string) (*entity.Group, error)
	GetGroups(ctx context.Context, opts *GroupFilterOptions) ([]*entity.Group, int64, error)
	// AddMember inserts the membership row, adds the user to the members array
	// and appends the join system message, atomically.
	AddMember(ctx context.Context, groupID string, membership *entity.Membership, systemMessage entity.Message) error
	// RemoveMember deletes the user's membership row, pulls the user from the
	// members/admins arrays, optionally promotes promoteUserID to admin (group
	// array + membership row), and appends the given system messages, atomically.
	RemoveMember(ctx context.Context, groupID, userID, promoteUserID string, systemMessages []entity.Message) error
	// DeleteGroupCascade removes the group and every membership row for it.
	DeleteGroupCascade(ctx context.Context, groupID string) error
	AppendMessage(ctx context.Context, groupID string, message entity.Message) error
	GetMembership(ctx context.Context, groupID, userID string) (*entity.Membership, error)
	GetMembershipsByUser(ctx context.Context, userID string) ([]*entity.Membership, error)
	GetMembershipsByGroup(ctx context.Context, groupID string) ([]*entity.Membership, error)
	SetGroupBanned(ctx context.Context, groupID string, banned bool) error
	GetPopularTags(ctx context.Context, limit int) ([]entity.TagCount, error)
	CountGroups(ctx context.Context) (int64, error)
	CountGroupsPerDay(ctx context.Context, since time.Time) ([]entity.DayCount, error)
}

// GroupFilterOptions encapsulates directory search parameters.
type GroupFilterOptions struct {
	Page          int
	PageSize      int
	Search        string
	Tags          []string
	MemberID      *string
	IncludeBanned bool
}
