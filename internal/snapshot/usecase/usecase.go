package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"menu-bridge/internal/category"
	"menu-bridge/internal/model"
	"menu-bridge/internal/product"
	productdto "menu-bridge/internal/product/dto"
	"menu-bridge/internal/snapshot"
	"menu-bridge/internal/snapshot/dto"
	"menu-bridge/internal/translation"
	"menu-bridge/pkg/cache"
	"menu-bridge/pkg/logger"
)

const keyPrefix = "menu:doc:"

type snapshotUseCase struct {
	products     product.Repository
	categories   category.Repository
	translations translation.Repository
	cache        *cache.RedisClient
	logger       logger.ZapLogger
	langs        []string
	defaultLang  string
	ttl          time.Duration
}

func NewSnapshotUseCase(
	products product.Repository,
	categories category.Repository,
	translations translation.Repository,
	cache *cache.RedisClient,
	log logger.ZapLogger,
	langs []string,
	defaultLang string,
	ttl time.Duration,
) snapshot.UseCase {
	return &snapshotUseCase{
		products:     products,
		categories:   categories,
		translations: translations,
		cache:        cache,
		logger:       log,
		langs:        langs,
		defaultLang:  defaultLang,
		ttl:          ttl,
	}
}

func menuKey(lang string) string {
	return keyPrefix + lang
}

func (uc *snapshotUseCase) GetMenu(ctx context.Context, lang string) (*model.MenuDocument, error) {
	val, err := uc.cache.Client.Get(ctx, menuKey(lang)).Result()
	if err == nil {
		var doc model.MenuDocument
		if err := json.Unmarshal([]byte(val), &doc); err == nil {
			return &doc, nil
		}
		// A corrupt document falls through to a rebuild.
		uc.logger.Warn("discarding unreadable menu snapshot", zap.String("lang", lang))
	} else if !errors.Is(err, redis.Nil) {
		return nil, err
	}

	doc, err := uc.materialize(ctx, lang)
	if err != nil {
		return nil, err
	}
	uc.store(ctx, doc)
	return doc, nil
}

// materialize builds one language's full menu document from the catalog.
func (uc *snapshotUseCase) materialize(ctx context.Context, lang string) (*model.MenuDocument, error) {
	categories, err := uc.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	active := true
	products, _, err := uc.products.FindAll(ctx, &productdto.ProductFilters{IsActive: &active})
	if err != nil {
		return nil, err
	}

	if lang != uc.defaultLang {
		trs, err := uc.translations.FindByLang(ctx, lang)
		if err != nil {
			return nil, err
		}
		for i := range categories {
			translation.ApplyCategory(&categories[i], trs)
		}
		for i := range products {
			translation.ApplyProduct(&products[i], trs)
		}
	}

	return &model.MenuDocument{
		Lang:       lang,
		LangName:   translation.LangName(lang),
		Categories: categories,
		Products:   products,
		UpdatedAt:  time.Now().UTC(),
	}, nil
}

func (uc *snapshotUseCase) store(ctx context.Context, doc *model.MenuDocument) {
	data, err := json.Marshal(doc)
	if err != nil {
		uc.logger.Error("failed to marshal menu snapshot", zap.String("lang", doc.Lang), zap.Error(err))
		return
	}
	if err := uc.cache.Client.Set(ctx, menuKey(doc.Lang), data, uc.ttl).Err(); err != nil {
		uc.logger.Error("failed to store menu snapshot", zap.String("lang", doc.Lang), zap.Error(err))
	}
}

func (uc *snapshotUseCase) Reload(ctx context.Context) (*dto.ReloadResult, error) {
	result := &dto.ReloadResult{
		JobID:     uuid.New().String(),
		UpdatedAt: time.Now().UTC(),
	}

	for _, lang := range uc.langs {
		doc, err := uc.materialize(ctx, lang)
		if err != nil {
			return nil, err
		}
		uc.store(ctx, doc)
		result.Langs = append(result.Langs, lang)
		result.Categories = len(doc.Categories)
		result.Products = len(doc.Products)
	}

	uc.logger.Info("menu snapshots reloaded",
		zap.String("job_id", result.JobID),
		zap.Strings("langs", result.Langs),
		zap.Int("products", result.Products),
	)
	return result, nil
}

func (uc *snapshotUseCase) Status(ctx context.Context) ([]model.SnapshotStatus, error) {
	statuses := make([]model.SnapshotStatus, 0, len(uc.langs))
	for _, lang := range uc.langs {
		st := model.SnapshotStatus{Lang: lang}

		val, err := uc.cache.Client.Get(ctx, menuKey(lang)).Result()
		if err != nil {
			if !errors.Is(err, redis.Nil) {
				return nil, err
			}
			statuses = append(statuses, st)
			continue
		}

		var doc model.MenuDocument
		if err := json.Unmarshal([]byte(val), &doc); err != nil {
			statuses = append(statuses, st)
			continue
		}

		st.Present = true
		updated := doc.UpdatedAt
		st.UpdatedAt = &updated
		st.Stale = time.Since(updated) > uc.ttl
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func (uc *snapshotUseCase) Clear(ctx context.Context) (int, error) {
	keys, err := uc.cache.Client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return 0, err
	}
	if len(keys) == 0 {
		return 0, nil
	}
	if err := uc.cache.Client.Del(ctx, keys...).Err(); err != nil {
		return 0, err
	}
	return len(keys), nil
}
