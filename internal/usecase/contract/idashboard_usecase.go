package usecasecontract

import (
	"context"

	"counselconnect/internal/domain/entity"
)

// IDashboardUseCase defines the interface for admin moderation and analytics.
type IDashboardUseCase interface {
	GetAnalytics(ctx context.Context, days int) (*entity.AnalyticsReport, error)
	ListUsers(ctx context.Context, page, pageSize int) ([]*entity.User, int64, error)
	SetUserBan(ctx context.Context, userID string, banned bool) (*entity.User, error)
	SetGroupBan(ctx context.Context, groupID string, banned bool) (*entity.Group, error)
	GetPages(ctx context.Context) ([]*entity.Page, error)
	GetPage(ctx context.Context, pageType entity.PageType) (*entity.Page, error)
	UpdatePage(ctx context.Context, pageType entity.PageType, description string) (*entity.Page, error)
}
