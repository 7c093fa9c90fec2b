package usecase

import (
	"context"

	"go.uber.org/zap"

	"menu-bridge/internal/category"
	"menu-bridge/internal/category/dto"
	"menu-bridge/internal/model"
	"menu-bridge/internal/product"
	"menu-bridge/internal/translation"
	"menu-bridge/pkg/logger"
)

type categoryUseCase struct {
	repo         category.Repository
	products     product.Repository
	translations translation.Repository
	logger       logger.ZapLogger
	defaultLang  string
}

func NewCategoryUseCase(
	repo category.Repository,
	products product.Repository,
	translations translation.Repository,
	log logger.ZapLogger,
	defaultLang string,
) category.UseCase {
	return &categoryUseCase{
		repo:         repo,
		products:     products,
		translations: translations,
		logger:       log,
		defaultLang:  defaultLang,
	}
}

func (uc *categoryUseCase) translationsFor(ctx context.Context, lang string) map[string]model.Translation {
	if lang == "" || lang == uc.defaultLang {
		return nil
	}
	trs, err := uc.translations.FindByLang(ctx, lang)
	if err != nil {
		uc.logger.Error("failed to load translations", zap.String("lang", lang), zap.Error(err))
		return nil
	}
	return trs
}

func (uc *categoryUseCase) ListCategories(ctx context.Context, lang string) ([]model.Category, error) {
	categories, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if trs := uc.translationsFor(ctx, lang); trs != nil {
		for i := range categories {
			translation.ApplyCategory(&categories[i], trs)
		}
	}
	return categories, nil
}

func (uc *categoryUseCase) MenuSummary(ctx context.Context, lang string) (*dto.MenuSummary, error) {
	categories, err := uc.ListCategories(ctx, lang)
	if err != nil {
		return nil, err
	}

	counts, err := uc.products.CountByCategory(ctx)
	if err != nil {
		return nil, err
	}

	totalProducts := 0
	for i := range categories {
		categories[i].ProductCount = counts[categories[i].ID]
		totalProducts += categories[i].ProductCount
	}

	return &dto.MenuSummary{
		Categories:      categories,
		TotalCategories: len(categories),
		TotalProducts:   totalProducts,
	}, nil
}

func (uc *categoryUseCase) SyncCategory(ctx context.Context, c *model.Category) error {
	return uc.repo.Upsert(ctx, c)
}
