package translation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"menu-bridge/internal/model"
)

func TestApplyProduct(t *testing.T) {
	desc := "Bánh mì với pate"
	enDesc := "Baguette with pate"
	p := &model.Product{
		ID:          101,
		Name:        "Bánh Mì Đặc Biệt",
		Description: &desc,
		OptionGroups: []model.OptionGroup{
			{
				ID:   4,
				Name: "Topping",
				Values: []model.OptionValue{
					{ID: 30, Name: "Thêm Pate"},
					{ID: 31, Name: "Thêm Chả Lụa"},
				},
			},
		},
	}

	trs := map[string]model.Translation{
		Key(model.EntityProduct, 101):    {Name: "Special Banh Mi", Description: &enDesc},
		Key(model.EntityOptionGroup, 4):  {Name: "Toppings"},
		Key(model.EntityOptionValue, 30): {Name: "Extra Pate"},
	}

	ApplyProduct(p, trs)

	assert.Equal(t, "Special Banh Mi", p.Name)
	assert.Equal(t, &enDesc, p.Description)
	assert.Equal(t, "Toppings", p.OptionGroups[0].Name)
	assert.Equal(t, "Extra Pate", p.OptionGroups[0].Values[0].Name)
	// Untranslated value keeps the upstream name.
	assert.Equal(t, "Thêm Chả Lụa", p.OptionGroups[0].Values[1].Name)
}

func TestApplyProduct_NoOverrides(t *testing.T) {
	p := &model.Product{ID: 7, Name: "Phở Bò"}
	ApplyProduct(p, map[string]model.Translation{})
	assert.Equal(t, "Phở Bò", p.Name)
}

func TestApplyCategory(t *testing.T) {
	c := &model.Category{ID: 2, Name: "Đồ Uống"}
	trs := map[string]model.Translation{
		Key(model.EntityCategory, 2): {Name: "Drinks"},
	}
	ApplyCategory(c, trs)
	assert.Equal(t, "Drinks", c.Name)
}
