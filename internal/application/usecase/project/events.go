package project

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/johndoe/me-api/internal/domain/event"
	"github.com/johndoe/me-api/pkg/logger"
)

func publishProjectEvent(ctx context.Context, events event.Publisher, log logger.Logger, action string, id int64) {
	if events == nil {
		return
	}
	evt := event.Event{Entity: "project", Action: action, ID: id, OccurredAt: time.Now().UTC()}
	if err := events.Publish(ctx, evt); err != nil {
		log.Warn("failed to publish project event",
			zap.String("action", action), zap.Int64("id", id), zap.Error(err))
	}
}
