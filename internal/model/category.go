package model

import "time"

type Category struct {
	ID        int64     `db:"id" json:"id"`
	ParentID  *int64    `db:"parent_id" json:"parent_id"` // Nullable
	Name      string    `db:"name" json:"name"`
	ImageURL  *string   `db:"image_url" json:"image_url"`
	SortOrder int       `db:"sort_order" json:"sort_order"`
	IsActive  bool      `db:"is_active" json:"is_active"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`

	ProductCount int `db:"-" json:"product_count,omitempty"` // Filled for menu summary
}
