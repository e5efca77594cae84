package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"counselconnect/internal/domain/contract"
	"counselconnect/internal/domain/entity"
	uc "counselconnect/internal/usecase/contract"
)

// GroupUsecase implements group lifecycle and membership rules. The
// membership invariants (creator is sole admin, admin succession on
// leave, cascade on last member) live here; the repository only
// guarantees that each transition is applied atomically.
type GroupUsecase struct {
	groupRepo  contract.IGroupRepository
	ratingRepo contract.IRatingRepository
	userRepo   contract.IUserRepository
	uuidGen    contract.IUUIDGenerator
	logger     uc.IAppLogger
}

var _ uc.IGroupUseCase = (*GroupUsecase)(nil)

func NewGroupUsecase(
	groupRepo contract.IGroupRepository,
	ratingRepo contract.IRatingRepository,
	userRepo contract.IUserRepository,
	uuidGen contract.IUUIDGenerator,
	logger uc.IAppLogger,
) *GroupUsecase {
	return &GroupUsecase{
		groupRepo:  groupRepo,
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
		uuidGen:    uuidGen,
		logger:     logger,
	}
}

// CreateGroup creates a group with the creator as its only admin and
// member, and seeds the thread with a creation notice.
func (g *GroupUsecase) CreateGroup(ctx context.Context, creatorID, name, description, image string, tags []string) (*entity.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("group name cannot be empty")
	}
	creator, err := g.userRepo.GetUserByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		g.logger.Errorf("create group: lookup creator %s: %v", creatorID, err)
		return nil, errors.New("failed to create group")
	}

	now := time.Now().UTC()
	group := &entity.Group{
		ID:          g.uuidGen.NewUUID(),
		Name:        name,
		Image:       image,
		Description: description,
		Tags:        normalizeTags(tags),
		CreatedBy:   creatorID,
		Admins:      []string{creatorID},
		Members:     []string{creatorID},
		Messages:    []entity.Message{g.systemMessage(fmt.Sprintf("%s created the group", creator.Name), now)},
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	membership := &entity.Membership{
		ID:       g.uuidGen.NewUUID(),
		GroupID:  group.ID,
		UserID:   creatorID,
		Role:     entity.MembershipRoleAdmin,
		JoinedAt: now,
	}
	if err := g.groupRepo.CreateGroupWithCreator(ctx, group, membership); err != nil {
		g.logger.Errorf("create group %q by %s: %v", name, creatorID, err)
		return nil, errors.New("failed to create group")
	}
	return group, nil
}

func (g *GroupUsecase) GetGroupByID(ctx context.Context, groupID string) (*entity.Group, error) {
	group, err := g.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, contract.ErrGroupNotFound) {
			return nil, ErrNotFound
		}
		g.logger.Errorf("get group %s: %v", groupID, err)
		return nil, errors.New("failed to fetch group")
	}
	return group, nil
}

func (g *GroupUsecase) GetGroups(ctx context.Context, opts *contract.GroupFilterOptions) ([]*entity.Group, int64, error) {
	if opts == nil {
		opts = &contract.GroupFilterOptions{}
	}
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.PageSize < 1 || opts.PageSize > 50 {
		opts.PageSize = 10
	}
	opts.Tags = normalizeTags(opts.Tags)
	groups, total, err := g.groupRepo.GetGroups(ctx, opts)
	if err != nil {
		g.logger.Errorf("list groups: %v", err)
		return nil, 0, errors.New("failed to fetch groups")
	}
	return groups, total, nil
}

func (g *GroupUsecase) GetPopularTags(ctx context.Context) ([]entity.TagCount, error) {
	tags, err := g.groupRepo.GetPopularTags(ctx, popularTagLimit)
	if err != nil {
		g.logger.Errorf("popular group tags: %v", err)
		return nil, errors.New("failed to fetch popular tags")
	}
	return tags, nil
}

// JoinGroup adds the user as a plain member and announces the join.
func (g *GroupUsecase) JoinGroup(ctx context.Context, userID, groupID string) (*entity.Group, error) {
	group, err := g.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group.IsBanned {
		return nil, ErrGroupBanned
	}
	if group.HasMember(userID) {
		return nil, ErrAlreadyMember
	}
	user, err := g.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		g.logger.Errorf("join group: lookup user %s: %v", userID, err)
		return nil, errors.New("failed to join group")
	}

	now := time.Now().UTC()
	membership := &entity.Membership{
		ID:       g.uuidGen.NewUUID(),
		GroupID:  groupID,
		UserID:   userID,
		Role:     entity.MembershipRoleMember,
		JoinedAt: now,
	}
	notice := g.systemMessage(fmt.Sprintf("%s joined the group", user.Name), now)
	if err := g.groupRepo.AddMember(ctx, groupID, membership, notice); err != nil {
		g.logger.Errorf("join group %s by %s: %v", groupID, userID, err)
		return nil, errors.New("failed to join group")
	}
	return g.GetGroupByID(ctx, groupID)
}

// LeaveGroup removes the user from the group. The last member takes the
// group with them; a departing sole admin hands the role to the longest
// standing remaining member.
func (g *GroupUsecase) LeaveGroup(ctx context.Context, userID, groupID string) error {
	group, err := g.GetGroupByID(ctx, groupID)
	if err != nil {
		return err
	}
	if !group.HasMember(userID) {
		return ErrNotMember
	}

	if len(group.Members) == 1 {
		if err := g.groupRepo.DeleteGroupCascade(ctx, groupID); err != nil {
			g.logger.Errorf("delete emptied group %s: %v", groupID, err)
			return errors.New("failed to leave group")
		}
		return nil
	}

	user, err := g.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return ErrNotFound
		}
		g.logger.Errorf("leave group: lookup user %s: %v", userID, err)
		return errors.New("failed to leave group")
	}

	now := time.Now().UTC()
	messages := []entity.Message{g.systemMessage(fmt.Sprintf("%s left the group", user.Name), now)}

	promoteUserID := ""
	if group.HasAdmin(userID) && len(group.Admins) == 1 {
		for _, memberID := range group.Members {
			if memberID != userID {
				promoteUserID = memberID
				break
			}
		}
		if promoteUserID != "" {
			promoted, err := g.userRepo.GetUserByID(ctx, promoteUserID)
			if err != nil {
				g.logger.Errorf("leave group: lookup successor %s: %v", promoteUserID, err)
				return errors.New("failed to leave group")
			}
			messages = append(messages, g.systemMessage(fmt.Sprintf("%s is now an admin", promoted.Name), now))
		}
	}

	if err := g.groupRepo.RemoveMember(ctx, groupID, userID, promoteUserID, messages); err != nil {
		g.logger.Errorf("leave group %s by %s: %v", groupID, userID, err)
		return errors.New("failed to leave group")
	}
	return nil
}

// RateUser toggles the rater's endorsement of a fellow member. Rating a
// user who is already rated removes the rating.
func (g *GroupUsecase) RateUser(ctx context.Context, raterID, groupID, rateeID string) (*uc.RatingResult, error) {
	if raterID == rateeID {
		return nil, ErrSelfRating
	}
	group, err := g.GetGroupByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if !group.HasMember(raterID) || !group.HasMember(rateeID) {
		return nil, ErrNotMember
	}

	rated := false
	existing, err := g.ratingRepo.GetRating(ctx, groupID, raterID, rateeID)
	switch {
	case err == nil:
		if err := g.ratingRepo.DeleteRating(ctx, existing.ID); err != nil {
			g.logger.Errorf("remove rating %s: %v", existing.ID, err)
			return nil, errors.New("failed to update rating")
		}
	case errors.Is(err, contract.ErrRatingNotFound):
		rating := &entity.GroupRating{
			ID:        g.uuidGen.NewUUID(),
			GroupID:   groupID,
			RaterID:   raterID,
			RateeID:   rateeID,
			Value:     1,
			CreatedAt: time.Now().UTC(),
		}
		if err := g.ratingRepo.InsertRating(ctx, rating); err != nil {
			g.logger.Errorf("insert rating in group %s: %v", groupID, err)
			return nil, errors.New("failed to update rating")
		}
		rated = true
	default:
		g.logger.Errorf("lookup rating in group %s: %v", groupID, err)
		return nil, errors.New("failed to update rating")
	}

	total, err := g.ratingRepo.CountRatingsForUser(ctx, groupID, rateeID)
	if err != nil {
		g.logger.Errorf("count ratings for %s in group %s: %v", rateeID, groupID, err)
		return nil, errors.New("failed to update rating")
	}
	return &uc.RatingResult{Rated: rated, Total: total}, nil
}

func (g *GroupUsecase) systemMessage(content string, at time.Time) entity.Message {
	return entity.Message{
		ID:        g.uuidGen.NewUUID(),
		Content:   content,
		Role:      entity.MessageRoleSystem,
		CreatedAt: at,
	}
}
