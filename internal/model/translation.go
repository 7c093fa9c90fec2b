package model

// Translation is one localized rendition of a catalog entity's display
// fields, keyed by (entity_type, entity_id, lang).
type Translation struct {
	EntityType  string  `db:"entity_type" json:"entity_type"` // product | category | option_group | option_value
	EntityID    int64   `db:"entity_id" json:"entity_id"`
	Lang        string  `db:"lang" json:"lang"`
	Name        string  `db:"name" json:"name"`
	Description *string `db:"description" json:"description"`
}

const (
	EntityProduct     = "product"
	EntityCategory    = "category"
	EntityOptionGroup = "option_group"
	EntityOptionValue = "option_value"
)
