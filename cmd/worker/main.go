package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/shopspring/decimal"

	"github.com/ghuser/stockledger/pkg/app"
	"github.com/ghuser/stockledger/pkg/cache"
	"github.com/ghuser/stockledger/pkg/config"
	"github.com/ghuser/stockledger/pkg/database"
	"github.com/ghuser/stockledger/pkg/events"
	"github.com/ghuser/stockledger/pkg/logger"
	"github.com/ghuser/stockledger/pkg/mailer"
	"github.com/ghuser/stockledger/pkg/telemetry"
	itemEvents "github.com/ghuser/stockledger/services/inventory/domain/events"
	profilePg "github.com/ghuser/stockledger/services/profile/infrastructure/persistence/postgres"
	saleEvents "github.com/ghuser/stockledger/services/sales/domain/events"
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
		Mailer:   mailer.NewResendMailer(cfg),
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

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	topics := map[string]func(context.Context, *message.Message) error{
		itemEvents.TopicItemCreated:  handleItemCreated(a),
		saleEvents.TopicSaleRecorded: handleSaleRecorded(a),
	}

	registered := make([]string, 0, len(topics))
	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}
		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
		registered = append(registered, topic)
	}

	a.Logger.Info("event subscribers registered", "topics", registered)
	return nil
}

// handleItemCreated returns a handler for item.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetItem calls are served from cache.
func handleItemCreated(a *app.Application) func(context.Context, *message.Message) error {
	itemCache := cache.NewItemCache(a.Redis)
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := itemCache.Set(ctx, &cache.CachedItem{
			ID:                evt.ItemID,
			UserID:            evt.UserID,
			Name:              evt.Name,
			Quantity:          evt.Quantity,
			CostPrice:         parsePrice(evt.CostPrice),
			SellingPrice:      parsePrice(evt.SellingPrice),
			LowStockThreshold: evt.LowStockThreshold,
			CreatedAt:         evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for item.created",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed",
				"item_id", evt.ItemID, "user_id", evt.UserID)
		}

		return nil
	}
}

// handleSaleRecorded returns a handler for sale.recorded events.
// Invalidates the sold item's cache entry and, when the sale drove the stock
// to or below the threshold, emails a low-stock alert to the owner's address.
// Alert delivery is best-effort: a mailer failure is logged, not retried forever.
func handleSaleRecorded(a *app.Application) func(context.Context, *message.Message) error {
	itemCache := cache.NewItemCache(a.Redis)
	profiles := profilePg.NewProfileRepository(a.Db)
	return func(ctx context.Context, msg *message.Message) error {
		var evt saleEvents.SaleRecordedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := itemCache.Delete(ctx, evt.UserID, evt.ItemID); err != nil {
			a.Logger.WarnContext(ctx, "cache invalidation failed for sale.recorded",
				"item_id", evt.ItemID, "error", err)
		}

		if evt.RemainingQuantity > evt.LowStockThreshold {
			return nil
		}

		profile, err := profiles.GetByID(ctx, evt.UserID)
		if err != nil {
			a.Logger.ErrorContext(ctx, "profile lookup failed for low-stock alert",
				"user_id", evt.UserID, "error", err)
			return nil
		}

		alert := []mailer.LowStockItem{{
			Name:      evt.ItemName,
			Quantity:  evt.RemainingQuantity,
			Threshold: evt.LowStockThreshold,
		}}
		if err := a.Mailer.SendLowStockAlert(ctx, profile.Email, alert); err != nil {
			a.Logger.ErrorContext(ctx, "low-stock alert delivery failed",
				"item_id", evt.ItemID, "to", profile.Email, "error", err)
			return nil
		}

		a.Logger.InfoContext(ctx, "low-stock alert sent",
			"item_id", evt.ItemID, "remaining", evt.RemainingQuantity)
		return nil
	}
}

func parsePrice(s string) *decimal.Decimal {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	return &d
}
