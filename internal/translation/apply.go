// Package translation localizes catalog entities using per-language
// overrides stored alongside the catalog. Entities without an override
// keep their upstream (Vietnamese) fields.
package translation

import (
	"fmt"

	"menu-bridge/internal/model"
)

// Key builds the lookup key used by Repository.FindByLang results.
func Key(entityType string, entityID int64) string {
	return fmt.Sprintf("%s:%d", entityType, entityID)
}

// ApplyProduct rewrites the product's display fields in place, including
// its option groups and values. Linked-product provenance fields are
// opaque pass-through data and stay untouched.
func ApplyProduct(p *model.Product, trs map[string]model.Translation) {
	if tr, ok := trs[Key(model.EntityProduct, p.ID)]; ok {
		p.Name = tr.Name
		if tr.Description != nil {
			p.Description = tr.Description
		}
	}
	for gi := range p.OptionGroups {
		g := &p.OptionGroups[gi]
		if tr, ok := trs[Key(model.EntityOptionGroup, g.ID)]; ok {
			g.Name = tr.Name
		}
		for vi := range g.Values {
			v := &g.Values[vi]
			if tr, ok := trs[Key(model.EntityOptionValue, v.ID)]; ok {
				v.Name = tr.Name
			}
		}
	}
}

// ApplyCategory rewrites the category's display name in place.
func ApplyCategory(c *model.Category, trs map[string]model.Translation) {
	if tr, ok := trs[Key(model.EntityCategory, c.ID)]; ok {
		c.Name = tr.Name
	}
}

// LangName returns the human-readable name for a supported language code.
func LangName(code string) string {
	switch code {
	case "vi":
		return "Tiếng Việt"
	case "en":
		return "English"
	case "zh":
		return "中文"
	case "zh-TW":
		return "繁體中文"
	case "th":
		return "ไทย"
	default:
		return code
	}
}
