package event

import (
	"context"
	"time"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
)

// Event records one entity mutation for downstream consumers.
type Event struct {
	Entity     string    `json:"entity"`
	Action     string    `json:"action"`
	ID         int64     `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Publisher interface {
	Publish(ctx context.Context, evt Event) error
}
