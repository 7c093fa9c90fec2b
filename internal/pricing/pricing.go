// Package pricing computes totals for customizable products. All operations
// are pure, in-memory transformations over an already fetched catalog
// snapshot; the package performs no I/O.
package pricing

import (
	"errors"
	"fmt"

	"menu-bridge/internal/model"
)

// Mode is the behavioral selection mode of an option group.
type Mode int

const (
	// ModeSingle allows at most one chosen value per group; choosing a new
	// value evicts the previous one.
	ModeSingle Mode = iota
	// ModeMultiple allows any subset of the group's values.
	ModeMultiple
)

// ModeFor maps the upstream display types onto the two behavioral modes:
// radio is exclusive, check_box and select accumulate.
func ModeFor(displayType string) Mode {
	if displayType == "radio" {
		return ModeSingle
	}
	return ModeMultiple
}

// ErrInvalidReference reports an option value that does not belong to the
// product or group it was used against.
var ErrInvalidReference = errors.New("option value does not belong to product")

func invalidReference(groupID, valueID int64) error {
	return fmt.Errorf("%w: group %d, value %d", ErrInvalidReference, groupID, valueID)
}

// ComputeTotal returns the product's base price plus the price deltas of
// every selected value. The result is not floored at zero: a selection of
// negative deltas may price below the base. A nil or empty selection prices
// at exactly the base. No validation is performed; callers must pass values
// sourced from the same product snapshot, or use ComputeTotalStrict.
func ComputeTotal(p *model.Product, sel *Selection) int64 {
	total := p.Price
	if sel == nil {
		return total
	}
	for _, v := range sel.values {
		total += v.PriceExtra
	}
	return total
}

// ComputeTotalStrict is ComputeTotal, but rejects selections containing
// values not present in the product's own option group tree.
func ComputeTotalStrict(p *model.Product, sel *Selection) (int64, error) {
	if sel != nil {
		for _, v := range sel.values {
			if _, _, ok := Lookup(p, v.ID); !ok {
				return 0, invalidReference(v.GroupID, v.ID)
			}
		}
	}
	return ComputeTotal(p, sel), nil
}

// Lookup finds the option value with the given ID in the product's option
// group tree, returning the owning group alongside it.
func Lookup(p *model.Product, valueID int64) (model.OptionGroup, model.OptionValue, bool) {
	for _, g := range p.OptionGroups {
		for _, v := range g.Values {
			if v.ID == valueID {
				return g, v, true
			}
		}
	}
	return model.OptionGroup{}, model.OptionValue{}, false
}
