package pricing

import (
	"slices"
	"testing"

	"menu-bridge/internal/model"
)

func TestNames_InsertionOrderAndRestartable(t *testing.T) {
	group := model.OptionGroup{
		ID:          4,
		DisplayType: "check_box",
		Values: []model.OptionValue{
			{ID: 30, GroupID: 4, Name: "Extra Pate", PriceExtra: 5000},
			{ID: 31, GroupID: 4, Name: "Extra Cha Lua", PriceExtra: 10000},
			{ID: 32, GroupID: 4, Name: "Chili", PriceExtra: 0},
		},
	}

	sel := NewSelection()
	sel.Apply(group, group.Values[2])
	sel.Apply(group, group.Values[0])
	sel.Apply(group, group.Values[1])
	sel.Remove(30)

	want := []string{"Chili", "Extra Cha Lua"}

	names := sel.Names()
	if got := slices.Collect(names); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	// The sequence must be restartable.
	if got := slices.Collect(names); !slices.Equal(got, want) {
		t.Fatalf("second pass: expected %v, got %v", want, got)
	}

	// Early break must not panic or skip cleanup.
	for range names {
		break
	}
}

func TestValues_ReturnsCopy(t *testing.T) {
	group := model.OptionGroup{
		ID:          4,
		DisplayType: "check_box",
		Values:      []model.OptionValue{{ID: 30, GroupID: 4, Name: "Extra Pate"}},
	}

	sel := NewSelection()
	sel.Apply(group, group.Values[0])

	vals := sel.Values()
	vals[0].Name = "mutated"

	if got := slices.Collect(sel.Names()); got[0] != "Extra Pate" {
		t.Fatalf("expected internal state untouched, got %q", got[0])
	}
}

func TestApply_SingleModeAcrossGroupsIsIndependent(t *testing.T) {
	size := model.OptionGroup{
		ID:          7,
		DisplayType: "radio",
		Values: []model.OptionValue{
			{ID: 1, GroupID: 7, Name: "Regular"},
			{ID: 2, GroupID: 7, Name: "Large", PriceExtra: 5000},
		},
	}
	spice := model.OptionGroup{
		ID:          8,
		DisplayType: "radio",
		Values: []model.OptionValue{
			{ID: 10, GroupID: 8, Name: "Mild"},
			{ID: 11, GroupID: 8, Name: "Hot"},
		},
	}

	sel := NewSelection()
	sel.Apply(size, size.Values[0])
	sel.Apply(spice, spice.Values[1])
	sel.Apply(size, size.Values[1]) // replaces within size only

	if sel.Len() != 2 {
		t.Fatalf("expected one choice per group, got %d", sel.Len())
	}
	if !sel.Contains(2) || !sel.Contains(11) {
		t.Fatalf("expected values 2 and 11 selected, got %v", slices.Collect(sel.Names()))
	}
}
