package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/warehouse/pkg/app"
	"github.com/ghuser/warehouse/pkg/cache"
	"github.com/ghuser/warehouse/pkg/config"
	"github.com/ghuser/warehouse/pkg/database"
	"github.com/ghuser/warehouse/pkg/events"
	"github.com/ghuser/warehouse/pkg/logger"
	"github.com/ghuser/warehouse/pkg/telemetry"
	warehouseEvents "github.com/ghuser/warehouse/services/warehouse/domain/events"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer pool.Close()
	log.Info("database pool connected")

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Db:       pool,
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")

	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all warehouse event handlers.
// Add new topics here as more events get read-model projections.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	itemCache := cache.NewItemCache(a.Redis)

	subscriptions := map[string]func(context.Context, *message.Message) error{
		warehouseEvents.TopicItemAdded:        handleItemAdded(a, itemCache),
		warehouseEvents.TopicItemFrozen:       handleItemFrozen(a, itemCache),
		warehouseEvents.TopicInstanceAssigned: handleInstanceAssigned(a, itemCache),
	}

	topics := make([]string, 0, len(subscriptions))
	for topic, handler := range subscriptions {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		topics = append(topics, topic)

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered", "topics", topics)
	return nil
}

// handleItemAdded warms the Redis read model when a catalog item is created.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
func handleItemAdded(a *app.Application, itemCache *cache.ItemCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt warehouseEvents.ItemAddedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := itemCache.Set(ctx, &cache.CachedItem{
			ItemID:            evt.ItemID,
			Name:              evt.Name,
			TotalQuantity:     evt.TotalQuantity,
			AvailableQuantity: evt.AvailableQuantity,
			Frozen:            evt.Frozen,
			Data:              evt.Data,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for item_added",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "item_id", evt.ItemID)
		}
		return nil
	}
}

// handleItemFrozen flips the frozen flag on the cached item, if present.
func handleItemFrozen(a *app.Application, itemCache *cache.ItemCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt warehouseEvents.ItemFrozenEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		cached, err := itemCache.Get(ctx, evt.ItemID)
		if errors.Is(err, redis.Nil) {
			return nil // not cached; the next read warms it from the store
		}
		if err != nil {
			a.Logger.WarnContext(ctx, "cache read failed for item_frozen",
				"item_id", evt.ItemID, "error", err)
			return nil
		}

		cached.Frozen = true
		cached.NoUpdateAfter = ""
		if err := itemCache.Set(ctx, cached); err != nil {
			a.Logger.WarnContext(ctx, "cache update failed for item_frozen",
				"item_id", evt.ItemID, "error", err)
		}
		return nil
	}
}

// handleInstanceAssigned projects the post-decrement availability onto the
// cached item, if present. The event carries the authoritative value, so no
// read-modify-write race with other assignments is possible.
func handleInstanceAssigned(a *app.Application, itemCache *cache.ItemCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt warehouseEvents.InstanceAssignedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		cached, err := itemCache.Get(ctx, evt.ItemID)
		if errors.Is(err, redis.Nil) {
			return nil
		}
		if err != nil {
			a.Logger.WarnContext(ctx, "cache read failed for instance_assigned",
				"item_id", evt.ItemID, "error", err)
			return nil
		}

		cached.AvailableQuantity = evt.AvailableQuantity
		if err := itemCache.Set(ctx, cached); err != nil {
			a.Logger.WarnContext(ctx, "cache update failed for instance_assigned",
				"item_id", evt.ItemID, "error", err)
		}
		return nil
	}
}
