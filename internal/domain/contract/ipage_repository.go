package contract

import (
	"context"

	"counselconnect/internal/domain/entity"
)

// IPageRepository manages static page content, unique per page type.
type IPageRepository interface {
	GetPages(ctx context.Context) ([]*entity.Page, error)
	GetPageByType(ctx context.Context, pageType entity.PageType) (*entity.Page, error)
	UpsertPage(ctx context.Context, pageType entity.PageType, description string) (*entity.Page, error)
}
