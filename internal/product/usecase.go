package product

import (
	"context"

	"menu-bridge/internal/model"
	"menu-bridge/internal/product/dto"
)

type UseCase interface {
	GetProduct(ctx context.Context, id int64, lang string) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)

	// Quote prices one product against the caller's option selection.
	Quote(ctx context.Context, input *dto.QuoteInput) (*dto.QuoteResult, error)

	// SyncProduct applies one upstream catalog change: upsert, cache
	// invalidation, search reindex.
	SyncProduct(ctx context.Context, p *model.Product) error
}
