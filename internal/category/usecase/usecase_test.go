package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"menu-bridge/internal/model"
	productdto "menu-bridge/internal/product/dto"
	"menu-bridge/internal/translation"
	"menu-bridge/pkg/logger"
)

type fakeCategoryRepo struct {
	categories []model.Category
}

func (f *fakeCategoryRepo) FindAll(_ context.Context) ([]model.Category, error) {
	out := make([]model.Category, len(f.categories))
	copy(out, f.categories)
	return out, nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, _ int64) (*model.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Upsert(_ context.Context, _ *model.Category) error { return nil }

type fakeProductRepo struct {
	counts map[int64]int
}

func (f *fakeProductRepo) FindByID(_ context.Context, _ int64) (*model.Product, error) {
	return nil, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, _ *productdto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}

func (f *fakeProductRepo) CountByCategory(_ context.Context) (map[int64]int, error) {
	return f.counts, nil
}

func (f *fakeProductRepo) Upsert(_ context.Context, _ *model.Product) error { return nil }

func (f *fakeProductRepo) ReplaceOptionGroups(_ context.Context, _ int64, _ []model.OptionGroup) error {
	return nil
}

type fakeTranslationRepo struct {
	byLang map[string]map[string]model.Translation
}

func (f *fakeTranslationRepo) FindByLang(_ context.Context, lang string) (map[string]model.Translation, error) {
	trs, ok := f.byLang[lang]
	if !ok {
		return map[string]model.Translation{}, nil
	}
	return trs, nil
}

func (f *fakeTranslationRepo) Upsert(_ context.Context, _ *model.Translation) error { return nil }

func TestMenuSummary(t *testing.T) {
	catRepo := &fakeCategoryRepo{categories: []model.Category{
		{ID: 1, Name: "Đồ Ăn"},
		{ID: 2, Name: "Đồ Uống"},
		{ID: 3, Name: "Tráng Miệng"},
	}}
	prodRepo := &fakeProductRepo{counts: map[int64]int{1: 12, 2: 5}}
	trRepo := &fakeTranslationRepo{byLang: map[string]map[string]model.Translation{
		"en": {translation.Key(model.EntityCategory, 2): {Name: "Drinks"}},
	}}

	uc := NewCategoryUseCase(catRepo, prodRepo, trRepo, logger.NewNop(), "vi")

	summary, err := uc.MenuSummary(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, 3, summary.TotalCategories)
	require.Equal(t, 17, summary.TotalProducts)
	require.Equal(t, 12, summary.Categories[0].ProductCount)
	require.Equal(t, "Drinks", summary.Categories[1].Name)
	require.Equal(t, 0, summary.Categories[2].ProductCount)
}

func TestListCategories_DefaultLangUntranslated(t *testing.T) {
	catRepo := &fakeCategoryRepo{categories: []model.Category{{ID: 2, Name: "Đồ Uống"}}}
	trRepo := &fakeTranslationRepo{byLang: map[string]map[string]model.Translation{
		"en": {translation.Key(model.EntityCategory, 2): {Name: "Drinks"}},
	}}

	uc := NewCategoryUseCase(catRepo, &fakeProductRepo{}, trRepo, logger.NewNop(), "vi")

	categories, err := uc.ListCategories(context.Background(), "vi")
	require.NoError(t, err)
	require.Equal(t, "Đồ Uống", categories[0].Name)
}
