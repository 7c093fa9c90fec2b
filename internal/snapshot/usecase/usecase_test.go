package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"menu-bridge/internal/model"
	productdto "menu-bridge/internal/product/dto"
	"menu-bridge/internal/translation"
	"menu-bridge/pkg/cache"
	"menu-bridge/pkg/logger"
)

type fakeProductRepo struct {
	products []model.Product
	findAll  int
}

func (f *fakeProductRepo) FindByID(_ context.Context, id int64) (*model.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			cp := p
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(_ context.Context, _ *productdto.ProductFilters) ([]model.Product, int, error) {
	f.findAll++
	out := make([]model.Product, len(f.products))
	copy(out, f.products)
	return out, len(out), nil
}

func (f *fakeProductRepo) CountByCategory(_ context.Context) (map[int64]int, error) {
	return map[int64]int{}, nil
}

func (f *fakeProductRepo) Upsert(_ context.Context, _ *model.Product) error { return nil }

func (f *fakeProductRepo) ReplaceOptionGroups(_ context.Context, _ int64, _ []model.OptionGroup) error {
	return nil
}

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

func newTestUseCase(t *testing.T) (*snapshotUseCase, *fakeProductRepo, *miniredis.Miniredis) {
	t.Helper()

	prodRepo := &fakeProductRepo{products: []model.Product{
		{ID: 101, Name: "Bánh Mì Đặc Biệt", Price: 25000, Currency: "VND", IsActive: true},
	}}
	catRepo := &fakeCategoryRepo{categories: []model.Category{
		{ID: 2, Name: "Đồ Ăn", IsActive: true},
	}}
	trRepo := &fakeTranslationRepo{byLang: map[string]map[string]model.Translation{
		"en": {
			translation.Key(model.EntityProduct, 101): {Name: "Special Banh Mi"},
			translation.Key(model.EntityCategory, 2):  {Name: "Food"},
		},
	}}

	mr := miniredis.RunT(t)
	rc := &cache.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}

	uc := NewSnapshotUseCase(
		prodRepo, catRepo, trRepo, rc, logger.NewNop(),
		[]string{"vi", "en"}, "vi", time.Hour,
	)
	return uc.(*snapshotUseCase), prodRepo, mr
}

func TestReload_WritesEveryLanguageWithTTL(t *testing.T) {
	uc, _, mr := newTestUseCase(t)

	result, err := uc.Reload(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, result.JobID)
	require.Equal(t, []string{"vi", "en"}, result.Langs)
	require.Equal(t, 1, result.Products)
	require.Equal(t, 1, result.Categories)

	require.True(t, mr.Exists("menu:doc:vi"))
	require.True(t, mr.Exists("menu:doc:en"))
	require.Greater(t, mr.TTL("menu:doc:vi"), time.Duration(0))
}

func TestGetMenu_ReadThroughAndTranslation(t *testing.T) {
	uc, prodRepo, mr := newTestUseCase(t)

	doc, err := uc.GetMenu(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, "en", doc.Lang)
	require.Equal(t, "English", doc.LangName)
	require.Equal(t, "Special Banh Mi", doc.Products[0].Name)
	require.Equal(t, "Food", doc.Categories[0].Name)
	require.True(t, mr.Exists("menu:doc:en"))
	require.Equal(t, 1, prodRepo.findAll)

	// Second read is served from the store.
	_, err = uc.GetMenu(context.Background(), "en")
	require.NoError(t, err)
	require.Equal(t, 1, prodRepo.findAll)
}

func TestGetMenu_DefaultLanguageUntranslated(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	doc, err := uc.GetMenu(context.Background(), "vi")
	require.NoError(t, err)
	require.Equal(t, "Bánh Mì Đặc Biệt", doc.Products[0].Name)
}

func TestStatus(t *testing.T) {
	uc, _, _ := newTestUseCase(t)

	statuses, err := uc.Status(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 2)
	for _, st := range statuses {
		require.False(t, st.Present)
	}

	_, err = uc.Reload(context.Background())
	require.NoError(t, err)

	statuses, err = uc.Status(context.Background())
	require.NoError(t, err)
	for _, st := range statuses {
		require.True(t, st.Present)
		require.False(t, st.Stale)
		require.NotNil(t, st.UpdatedAt)
	}
}

func TestClear(t *testing.T) {
	uc, _, mr := newTestUseCase(t)

	_, err := uc.Reload(context.Background())
	require.NoError(t, err)

	removed, err := uc.Clear(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, removed)
	require.False(t, mr.Exists("menu:doc:vi"))

	// Clearing an empty store removes nothing and is not an error.
	removed, err = uc.Clear(context.Background())
	require.NoError(t, err)
	require.Equal(t, 0, removed)
}
