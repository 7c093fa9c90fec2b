package snapshot

import (
	"context"

	"menu-bridge/internal/model"
	"menu-bridge/internal/snapshot/dto"
)

// UseCase manages the per-language menu documents kept in the TTL store.
type UseCase interface {
	// GetMenu returns the language's menu document, materializing and
	// storing it when absent or expired.
	GetMenu(ctx context.Context, lang string) (*model.MenuDocument, error)

	// Reload rebuilds the documents for every supported language.
	Reload(ctx context.Context) (*dto.ReloadResult, error)

	Status(ctx context.Context) ([]model.SnapshotStatus, error)
	Clear(ctx context.Context) (int, error)
}
