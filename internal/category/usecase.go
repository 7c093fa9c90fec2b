package category

import (
	"context"

	"menu-bridge/internal/category/dto"
	"menu-bridge/internal/model"
)

type UseCase interface {
	ListCategories(ctx context.Context, lang string) ([]model.Category, error)
	MenuSummary(ctx context.Context, lang string) (*dto.MenuSummary, error)
	SyncCategory(ctx context.Context, c *model.Category) error
}
