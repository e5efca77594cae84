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
	defaultAnalyticsDays = 7
	maxAnalyticsDays     = 365
	analyticsCachePrefix = "dashboard:analytics:"
)

// DashboardUsecase implements admin moderation, static pages and the
// analytics aggregate. Analytics pull from every repository, so the
// report is cached per window length.
type DashboardUsecase struct {
	userRepo    contract.IUserRepository
	blogRepo    contract.IBlogRepository
	commentRepo contract.ICommentRepository
	groupRepo   contract.IGroupRepository
	pageRepo    contract.IPageRepository
	cache       contract.ICache
	logger      uc.IAppLogger
}

var _ uc.IDashboardUseCase = (*DashboardUsecase)(nil)

func NewDashboardUsecase(
	userRepo contract.IUserRepository,
	blogRepo contract.IBlogRepository,
	commentRepo contract.ICommentRepository,
	groupRepo contract.IGroupRepository,
	pageRepo contract.IPageRepository,
	cache contract.ICache,
	logger uc.IAppLogger,
) *DashboardUsecase {
	return &DashboardUsecase{
		userRepo:    userRepo,
		blogRepo:    blogRepo,
		commentRepo: commentRepo,
		groupRepo:   groupRepo,
		pageRepo:    pageRepo,
		cache:       cache,
		logger:      logger,
	}
}

// GetAnalytics builds the dashboard report over the last N days.
func (d *DashboardUsecase) GetAnalytics(ctx context.Context, days int) (*entity.AnalyticsReport, error) {
	if days < 1 {
		days = defaultAnalyticsDays
	}
	if days > maxAnalyticsDays {
		days = maxAnalyticsDays
	}

	cacheKey := fmt.Sprintf("%s%d", analyticsCachePrefix, days)
	if raw, ok, err := d.cache.Get(ctx, cacheKey); err == nil && ok {
		var report entity.AnalyticsReport
		if json.Unmarshal(raw, &report) == nil {
			return &report, nil
		}
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	report := &entity.AnalyticsReport{Days: days}
	var err error

	if report.TotalUsers, err = d.userRepo.CountUsers(ctx); err != nil {
		return nil, d.analyticsErr("count users", err)
	}
	if report.TotalBlogs, err = d.blogRepo.CountBlogs(ctx); err != nil {
		return nil, d.analyticsErr("count blogs", err)
	}
	if report.TotalGroups, err = d.groupRepo.CountGroups(ctx); err != nil {
		return nil, d.analyticsErr("count groups", err)
	}
	if report.TotalComments, err = d.commentRepo.CountComments(ctx); err != nil {
		return nil, d.analyticsErr("count comments", err)
	}
	if report.SignupsPerDay, err = d.userRepo.CountUsersPerDay(ctx, since); err != nil {
		return nil, d.analyticsErr("signups per day", err)
	}
	if report.BlogsPerDay, err = d.blogRepo.CountBlogsPerDay(ctx, since); err != nil {
		return nil, d.analyticsErr("blogs per day", err)
	}
	if report.GroupsPerDay, err = d.groupRepo.CountGroupsPerDay(ctx, since); err != nil {
		return nil, d.analyticsErr("groups per day", err)
	}
	if report.UsersByRole, err = d.userRepo.CountUsersByRole(ctx); err != nil {
		return nil, d.analyticsErr("users by role", err)
	}

	if raw, err := json.Marshal(report); err == nil {
		if err := d.cache.Set(ctx, cacheKey, raw); err != nil {
			d.logger.Warnf("cache analytics report: %v", err)
		}
	}
	return report, nil
}

func (d *DashboardUsecase) ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	users, total, err := d.userRepo.ListUsers(ctx, page, pageSize)
	if err != nil {
		d.logger.Errorf("list users: %v", err)
		return nil, 0, errors.New("failed to fetch users")
	}
	return users, total, nil
}

// SetUserBan toggles a user's ban flag. Admin accounts cannot be banned.
func (d *DashboardUsecase) SetUserBan(ctx context.Context, userID string, banned bool) (*entity.User, error) {
	user, err := d.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, contract.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		d.logger.Errorf("ban user: lookup %s: %v", userID, err)
		return nil, errors.New("failed to update user")
	}
	if user.Role == entity.RoleAdmin {
		return nil, ErrForbidden
	}
	if err := d.userRepo.SetBanned(ctx, userID, banned); err != nil {
		d.logger.Errorf("ban user %s: %v", userID, err)
		return nil, errors.New("failed to update user")
	}
	user.IsBanned = banned
	return user, nil
}

// SetGroupBan toggles a group's ban flag, hiding it from directories
// and blocking new messages.
func (d *DashboardUsecase) SetGroupBan(ctx context.Context, groupID string, banned bool) (*entity.Group, error) {
	group, err := d.groupRepo.GetGroupByID(ctx, groupID)
	if err != nil {
		if errors.Is(err, contract.ErrGroupNotFound) {
			return nil, ErrNotFound
		}
		d.logger.Errorf("ban group: lookup %s: %v", groupID, err)
		return nil, errors.New("failed to update group")
	}
	if err := d.groupRepo.SetGroupBanned(ctx, groupID, banned); err != nil {
		d.logger.Errorf("ban group %s: %v", groupID, err)
		return nil, errors.New("failed to update group")
	}
	group.IsBanned = banned
	return group, nil
}

func (d *DashboardUsecase) GetPages(ctx context.Context) ([]*entity.Page, error) {
	pages, err := d.pageRepo.GetPages(ctx)
	if err != nil {
		d.logger.Errorf("list pages: %v", err)
		return nil, errors.New("failed to fetch pages")
	}
	return pages, nil
}

func (d *DashboardUsecase) GetPage(ctx context.Context, pageType entity.PageType) (*entity.Page, error) {
	if !pageType.IsValid() {
		return nil, fmt.Errorf("unknown page %q", pageType)
	}
	page, err := d.pageRepo.GetPageByType(ctx, pageType)
	if err != nil {
		if errors.Is(err, contract.ErrPageNotFound) {
			return nil, ErrNotFound
		}
		d.logger.Errorf("get page %s: %v", pageType, err)
		return nil, errors.New("failed to fetch page")
	}
	return page, nil
}

func (d *DashboardUsecase) UpdatePage(ctx context.Context, pageType entity.PageType, description string) (*entity.Page, error) {
	if !pageType.IsValid() {
		return nil, fmt.Errorf("unknown page %q", pageType)
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, errors.New("page description cannot be empty")
	}
	page, err := d.pageRepo.UpsertPage(ctx, pageType, description)
	if err != nil {
		d.logger.Errorf("upsert page %s: %v", pageType, err)
		return nil, errors.New("failed to update page")
	}
	return page, nil
}

func (d *DashboardUsecase) analyticsErr(step string, err error) error {
	d.logger.Errorf("analytics: %s: %v", step, err)
	return errors.New("failed to build analytics report")
}
