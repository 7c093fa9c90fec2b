package listener

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"menu-bridge/internal/category"
	"menu-bridge/internal/model"
	"menu-bridge/internal/product"
	"menu-bridge/internal/snapshot"
	"menu-bridge/pkg/broker"
	"menu-bridge/pkg/logger"
)

// CatalogListener consumes catalog change events published by the
// back-office exporter and keeps the local mirror, the search index and
// the menu snapshots in sync.
type CatalogListener struct {
	consumer   *broker.KafkaConsumer
	products   product.UseCase
	categories category.UseCase
	snapshots  snapshot.UseCase
	logger     logger.ZapLogger
}

func NewCatalogListener(
	consumer *broker.KafkaConsumer,
	products product.UseCase,
	categories category.UseCase,
	snapshots snapshot.UseCase,
	log logger.ZapLogger,
) *CatalogListener {
	return &CatalogListener{
		consumer:   consumer,
		products:   products,
		categories: categories,
		snapshots:  snapshots,
		logger:     log,
	}
}

func (l *CatalogListener) Start(ctx context.Context) {
	l.logger.Info("Starting Catalog Kafka Listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping Catalog Kafka Listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				// Don't log context canceled error as error
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				time.Sleep(1 * time.Second)
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

type CatalogEvent struct {
	EventID   string          `json:"event_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	Timestamp time.Time       `json:"timestamp"`
}

const (
	eventProductUpdated  = "product.updated"
	eventCategoryUpdated = "category.updated"
	eventCatalogSynced   = "catalog.synced"
)

func (l *CatalogListener) processMessage(ctx context.Context, value []byte) {
	var event CatalogEvent
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Error("Failed to unmarshal event", zap.Error(err))
		return
	}

	switch event.EventType {
	case eventProductUpdated:
		var p model.Product
		if err := json.Unmarshal(event.Payload, &p); err != nil {
			l.logger.Error("Failed to unmarshal product payload", zap.String("event_id", event.EventID), zap.Error(err))
			return
		}
		l.logger.Info("Processing product.updated event",
			zap.String("event_id", event.EventID),
			zap.Int64("product_id", p.ID),
		)
		if err := l.products.SyncProduct(ctx, &p); err != nil {
			l.logger.Error("Failed to sync product", zap.Int64("product_id", p.ID), zap.Error(err))
			return
		}
		// A single product change invalidates every language's snapshot.
		if _, err := l.snapshots.Clear(ctx); err != nil {
			l.logger.Error("Failed to invalidate menu snapshots", zap.Error(err))
		}

	case eventCategoryUpdated:
		var c model.Category
		if err := json.Unmarshal(event.Payload, &c); err != nil {
			l.logger.Error("Failed to unmarshal category payload", zap.String("event_id", event.EventID), zap.Error(err))
			return
		}
		l.logger.Info("Processing category.updated event",
			zap.String("event_id", event.EventID),
			zap.Int64("category_id", c.ID),
		)
		if err := l.categories.SyncCategory(ctx, &c); err != nil {
			l.logger.Error("Failed to sync category", zap.Int64("category_id", c.ID), zap.Error(err))
			return
		}
		if _, err := l.snapshots.Clear(ctx); err != nil {
			l.logger.Error("Failed to invalidate menu snapshots", zap.Error(err))
		}

	case eventCatalogSynced:
		l.logger.Info("Processing catalog.synced event", zap.String("event_id", event.EventID))
		if _, err := l.snapshots.Reload(ctx); err != nil {
			l.logger.Error("Failed to reload menu snapshots", zap.Error(err))
		}
	}
}
