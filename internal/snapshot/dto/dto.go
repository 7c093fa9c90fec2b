package dto

import "time"

// ReloadResult summarizes one full snapshot rebuild.
type ReloadResult struct {
	JobID      string    `json:"job_id"`
	Langs      []string  `json:"langs"`
	Categories int       `json:"categories_count"`
	Products   int       `json:"products_count"`
	UpdatedAt  time.Time `json:"last_updated"`
}
