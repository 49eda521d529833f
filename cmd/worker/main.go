package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	kafkaAdapter "github.com/johndoe/me-api/adapters/event"
	"github.com/johndoe/me-api/adapters/persistence"
	"github.com/johndoe/me-api/internal/config"
	"github.com/johndoe/me-api/internal/domain/event"
	"github.com/johndoe/me-api/pkg/logger"
)

// The worker consumes portfolio mutation events and keeps per-entity
// counters in Redis so traffic can be inspected without a metrics stack.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Kafka.Brokers,
		Topic:   kafkaAdapter.TopicPortfolioEvents,
		GroupID: "me-api-stats",
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appLogger.Info("Worker consuming", zap.String("topic", kafkaAdapter.TopicPortfolioEvents))

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				appLogger.Info("Worker shutting down")
				return
			}
			appLogger.Error("cannot read message", err)
			continue
		}

		var evt event.Event
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			appLogger.Error("cannot decode event", err, zap.ByteString("payload", msg.Value))
			continue
		}

		key := fmt.Sprintf("stats:%s:%s", evt.Entity, evt.Action)
		if err := redisClient.Incr(ctx, key).Err(); err != nil {
			appLogger.Error("cannot bump counter", err, zap.String("key", key))
			continue
		}

		appLogger.Debug("event counted",
			zap.String("entity", evt.Entity),
			zap.String("action", evt.Action),
			zap.Int64("id", evt.ID),
		)
	}
}
