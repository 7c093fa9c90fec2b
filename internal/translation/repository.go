package translation

import (
	"context"

	"menu-bridge/internal/model"
)

// Repository loads localized display fields. Translations are keyed per
// entity; see Key for the map key scheme.
type Repository interface {
	FindByLang(ctx context.Context, lang string) (map[string]model.Translation, error)
	Upsert(ctx context.Context, tr *model.Translation) error
}
