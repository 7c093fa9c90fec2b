package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"menu-bridge/internal/model"
	"menu-bridge/internal/translation"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByLang(ctx context.Context, lang string) (map[string]model.Translation, error) {
	var rows []model.Translation
	query := `SELECT entity_type, entity_id, lang, name, description FROM translations WHERE lang = $1`
	if err := r.DB.SelectContext(ctx, &rows, query, lang); err != nil {
		return nil, err
	}

	out := make(map[string]model.Translation, len(rows))
	for _, tr := range rows {
		out[translation.Key(tr.EntityType, tr.EntityID)] = tr
	}
	return out, nil
}

func (r *PGRepository) Upsert(ctx context.Context, tr *model.Translation) error {
	query := `
        INSERT INTO translations (entity_type, entity_id, lang, name, description)
        VALUES (:entity_type, :entity_id, :lang, :name, :description)
        ON CONFLICT (entity_type, entity_id, lang)
        DO UPDATE SET name = EXCLUDED.name, description = EXCLUDED.description
    `
	_, err := r.DB.NamedExecContext(ctx, query, tr)
	return err
}
