package pricing

import (
	"iter"

	"menu-bridge/internal/model"
)

// Selection is the caller's current set of chosen option values for one
// product instance. It preserves insertion order and is keyed by option
// value ID. One Selection belongs to one interactive session; instances
// are not safe for concurrent use.
type Selection struct {
	values []model.OptionValue
}

func NewSelection() *Selection {
	return &Selection{}
}

// Apply toggles value on according to the group's selection mode.
// Single mode evicts any prior choice belonging to the group before adding;
// multiple mode is an idempotent add. Apply does not check that value
// belongs to group; see ApplyStrict.
func (s *Selection) Apply(group model.OptionGroup, value model.OptionValue) {
	switch ModeFor(group.DisplayType) {
	case ModeSingle:
		inGroup := make(map[int64]bool, len(group.Values))
		for _, v := range group.Values {
			inGroup[v.ID] = true
		}
		kept := s.values[:0]
		for _, v := range s.values {
			if !inGroup[v.ID] {
				kept = append(kept, v)
			}
		}
		s.values = append(kept, value)
	default:
		if s.Contains(value.ID) {
			return
		}
		s.values = append(s.values, value)
	}
}

// ApplyStrict is Apply with referential validation: value must be one of
// group's own values.
func (s *Selection) ApplyStrict(group model.OptionGroup, value model.OptionValue) error {
	found := false
	for _, v := range group.Values {
		if v.ID == value.ID {
			found = true
			break
		}
	}
	if !found {
		return invalidReference(group.ID, value.ID)
	}
	s.Apply(group, value)
	return nil
}

// Remove drops the value with the given ID. Removing an absent ID is a no-op.
func (s *Selection) Remove(valueID int64) {
	for i, v := range s.values {
		if v.ID == valueID {
			s.values = append(s.values[:i], s.values[i+1:]...)
			return
		}
	}
}

func (s *Selection) Contains(valueID int64) bool {
	for _, v := range s.values {
		if v.ID == valueID {
			return true
		}
	}
	return false
}

func (s *Selection) Len() int {
	return len(s.values)
}

// Values returns the selected values in insertion order.
func (s *Selection) Values() []model.OptionValue {
	out := make([]model.OptionValue, len(s.values))
	copy(out, s.values)
	return out
}

// Names yields the selected values' display names in insertion order,
// for UI summary rendering. The sequence is restartable.
func (s *Selection) Names() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, v := range s.values {
			if !yield(v.Name) {
				return
			}
		}
	}
}
