package model

import "time"

// MenuDocument is the fully materialized per-language menu served to
// storefronts, written to the snapshot store as one document per language.
type MenuDocument struct {
	Lang       string     `json:"lang"`
	LangName   string     `json:"lang_name"`
	Categories []Category `json:"categories"`
	Products   []Product  `json:"products"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// SnapshotStatus describes one language's snapshot freshness.
type SnapshotStatus struct {
	Lang      string     `json:"lang"`
	Present   bool       `json:"present"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
	Stale     bool       `json:"stale"`
}
