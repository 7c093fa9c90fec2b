package usecase

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"time"

	"go.uber.org/zap"

	"menu-bridge/internal/model"
	"menu-bridge/internal/pricing"
	"menu-bridge/internal/product"
	"menu-bridge/internal/product/dto"
	"menu-bridge/internal/translation"
	"menu-bridge/pkg/cache"
	"menu-bridge/pkg/logger"
	"menu-bridge/pkg/search"
)

const (
	productsIndex = "products"
	listCacheTTL  = 5 * time.Minute
)

type productUseCase struct {
	repo         product.Repository
	translations translation.Repository
	cache        *cache.RedisClient
	es           *search.Client
	logger       logger.ZapLogger
	defaultLang  string
}

func NewProductUseCase(
	repo product.Repository,
	translations translation.Repository,
	cache *cache.RedisClient,
	es *search.Client,
	log logger.ZapLogger,
	defaultLang string,
) product.UseCase {
	return &productUseCase{
		repo:         repo,
		translations: translations,
		cache:        cache,
		es:           es,
		logger:       log,
		defaultLang:  defaultLang,
	}
}

func (uc *productUseCase) translationsFor(ctx context.Context, lang string) map[string]model.Translation {
	if lang == "" || lang == uc.defaultLang {
		return nil
	}
	trs, err := uc.translations.FindByLang(ctx, lang)
	if err != nil {
		// Serve untranslated rather than failing the request.
		uc.logger.Error("failed to load translations", zap.String("lang", lang), zap.Error(err))
		return nil
	}
	return trs
}

func (uc *productUseCase) GetProduct(ctx context.Context, id int64, lang string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}
	if trs := uc.translationsFor(ctx, lang); trs != nil {
		translation.ApplyProduct(p, trs)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	cacheKey, err := uc.generateCacheKey(filters)
	if err == nil {
		val, err := uc.cache.Client.Get(ctx, cacheKey).Result()
		if err == nil {
			var result struct {
				Products []model.Product
				Count    int
			}
			if err := json.Unmarshal([]byte(val), &result); err == nil {
				return result.Products, result.Count, nil
			}
		}
	}

	products, count, err := uc.findProducts(ctx, filters)
	if err != nil {
		return nil, 0, err
	}

	if trs := uc.translationsFor(ctx, filters.Lang); trs != nil {
		for i := range products {
			translation.ApplyProduct(&products[i], trs)
		}
	}

	if cacheKey != "" {
		cacheData := struct {
			Products []model.Product
			Count    int
		}{
			Products: products,
			Count:    count,
		}
		if data, err := json.Marshal(cacheData); err == nil {
			uc.cache.Client.Set(ctx, cacheKey, data, listCacheTTL)
		}
	}

	return products, count, nil
}

func (uc *productUseCase) findProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error) {
	if filters.SearchQuery != "" && uc.es != nil {
		q := map[string]interface{}{
			"query": map[string]interface{}{
				"query_string": map[string]interface{}{
					"query":  fmt.Sprintf("*%s*", filters.SearchQuery),
					"fields": []string{"name^3", "short_description", "description"},
				},
			},
			"from": (filters.Page - 1) * filters.PageSize,
		}
		if filters.PageSize > 0 {
			q["size"] = filters.PageSize
		}

		res, err := uc.es.Search(ctx, productsIndex, q)
		if err == nil {
			var esProducts []model.Product
			for _, hit := range res.Hits.Hits {
				var p model.Product
				if err := json.Unmarshal(hit.Source, &p); err == nil {
					esProducts = append(esProducts, p)
				}
			}
			return esProducts, res.Hits.Total.Value, nil
		}
		// If ES fails, fall through to DB
		uc.logger.Error("ES search failed, falling back to DB", zap.Error(err))
	}

	return uc.repo.FindAll(ctx, filters)
}

func (uc *productUseCase) Quote(ctx context.Context, input *dto.QuoteInput) (*dto.QuoteResult, error) {
	p, err := uc.GetProduct(ctx, input.ProductID, input.Lang)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	groupsByID := make(map[int64]model.OptionGroup, len(p.OptionGroups))
	for _, g := range p.OptionGroups {
		groupsByID[g.ID] = g
	}

	sel := pricing.NewSelection()
	for _, s := range input.Selections {
		group, ok := groupsByID[s.GroupID]
		if !ok {
			return nil, fmt.Errorf("%w: group %d", pricing.ErrInvalidReference, s.GroupID)
		}
		for _, valueID := range s.ValueIDs {
			_, value, ok := pricing.Lookup(p, valueID)
			if !ok || value.GroupID != group.ID {
				return nil, fmt.Errorf("%w: group %d, value %d", pricing.ErrInvalidReference, s.GroupID, valueID)
			}
			if err := sel.ApplyStrict(group, value); err != nil {
				return nil, err
			}
		}
	}

	total, err := pricing.ComputeTotalStrict(p, sel)
	if err != nil {
		return nil, err
	}

	items := make([]dto.QuoteItem, 0, sel.Len())
	for _, v := range sel.Values() {
		group, _, _ := pricing.Lookup(p, v.ID)
		items = append(items, dto.QuoteItem{
			ValueID:    v.ID,
			GroupID:    group.ID,
			GroupName:  group.Name,
			Name:       v.Name,
			PriceExtra: v.PriceExtra,
		})
	}

	return &dto.QuoteResult{
		ProductID:   p.ID,
		ProductName: p.Name,
		Currency:    p.Currency,
		BasePrice:   p.Price,
		Total:       total,
		Items:       items,
		Summary:     slices.Collect(sel.Names()),
	}, nil
}

func (uc *productUseCase) SyncProduct(ctx context.Context, p *model.Product) error {
	if err := uc.repo.Upsert(ctx, p); err != nil {
		return err
	}
	if err := uc.repo.ReplaceOptionGroups(ctx, p.ID, p.OptionGroups); err != nil {
		return err
	}

	go uc.invalidateListCache(context.Background())
	go uc.syncToElastic(context.Background(), p)

	return nil
}

func (uc *productUseCase) syncToElastic(ctx context.Context, p *model.Product) {
	if uc.es == nil {
		return
	}
	mapping := `{
		"mappings": {
			"properties": {
				"name": { "type": "text" },
				"short_description": { "type": "text" },
				"description": { "type": "text" },
				"price": { "type": "long" },
				"category_id": { "type": "long" },
				"is_active": { "type": "boolean" },
				"updated_at": { "type": "date" }
			}
		}
	}`
	_ = uc.es.CreateIndex(ctx, productsIndex, mapping)

	if err := uc.es.Index(ctx, productsIndex, strconv.FormatInt(p.ID, 10), p); err != nil {
		uc.logger.Error("failed to index product", zap.Int64("product_id", p.ID), zap.Error(err))
	}
}

func (uc *productUseCase) generateCacheKey(filters *dto.ProductFilters) (string, error) {
	data, err := json.Marshal(filters)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("products:list:%s:%x", filters.Lang, md5.Sum(data)), nil
}

func (uc *productUseCase) invalidateListCache(ctx context.Context) {
	keys, err := uc.cache.Client.Keys(ctx, "products:list:*").Result()
	if err == nil && len(keys) > 0 {
		uc.cache.Client.Del(ctx, keys...)
	}
}
