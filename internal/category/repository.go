package category

import (
	"context"

	"menu-bridge/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Category, error)
	FindByID(ctx context.Context, id int64) (*model.Category, error)
	Upsert(ctx context.Context, category *model.Category) error
}
