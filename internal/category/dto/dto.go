package dto

import "menu-bridge/internal/model"

// MenuSummary is the categories-with-counts view served by /menu/summary.
type MenuSummary struct {
	Categories      []model.Category `json:"categories"`
	TotalCategories int              `json:"total_categories"`
	TotalProducts   int              `json:"total_products"`
}
