package product

import (
	"context"

	"menu-bridge/internal/model"
	"menu-bridge/internal/product/dto"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	CountByCategory(ctx context.Context) (map[int64]int, error)

	// Write path: the catalog sync listener mirrors upstream changes here.
	Upsert(ctx context.Context, product *model.Product) error
	ReplaceOptionGroups(ctx context.Context, productID int64, groups []model.OptionGroup) error
}
