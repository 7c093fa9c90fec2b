package model

import "time"

// Product mirrors one entry of the upstream POS catalog export. Prices are
// integers in the smallest currency unit; option deltas share the scale.
type Product struct {
	ID               int64     `db:"id" json:"id"`
	CategoryID       *int64    `db:"category_id" json:"category_id"` // Nullable
	Name             string    `db:"name" json:"name"`
	ShortDescription *string   `db:"short_description" json:"short_description"`
	Description      *string   `db:"description" json:"description"`
	Price            int64     `db:"price" json:"price"`
	Currency         string    `db:"currency" json:"currency"`
	ImageURL         *string   `db:"image_url" json:"image_url"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`

	CategoryName string        `db:"-" json:"category_name,omitempty"` // Joined data
	OptionGroups []OptionGroup `db:"-" json:"option_groups"`
}

// OptionGroup is one customization axis of a product ("Size", "Topping").
// DisplayType drives selection semantics: radio is exclusive, check_box
// and select accumulate.
type OptionGroup struct {
	ID          int64  `db:"id" json:"id"`
	ProductID   int64  `db:"product_id" json:"product_id"`
	Name        string `db:"name" json:"name"`
	DisplayType string `db:"display_type" json:"display_type"` // check_box | radio | select
	SortOrder   int    `db:"sort_order" json:"sort_order"`

	Values []OptionValue `db:"-" json:"values"`
}

// OptionValue is one concrete choice within a group. The linked-product
// fields are display provenance copied from upstream; they never feed
// price computation.
type OptionValue struct {
	ID                 int64   `db:"id" json:"id"`
	GroupID            int64   `db:"group_id" json:"group_id"`
	Name               string  `db:"name" json:"name"`
	PriceExtra         int64   `db:"price_extra" json:"price_extra"`
	SortOrder          int     `db:"sort_order" json:"sort_order"`
	LinkedProductID    *int64  `db:"linked_product_id" json:"linked_product_id"`
	LinkedProductName  *string `db:"linked_product_name" json:"linked_product_name"`
	LinkedProductPrice *int64  `db:"linked_product_price" json:"linked_product_price"`
}
