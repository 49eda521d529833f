package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"github.com/johndoe/me-api/internal/config"
	"github.com/johndoe/me-api/internal/domain/event"
	"github.com/johndoe/me-api/pkg/logger"
)

const TopicPortfolioEvents = "portfolio.events"

// KafkaProducer publishes entity change events. Failures here are the
// caller's to log; a lost event never fails the originating request.
type KafkaProducer struct {
	writer *kafka.Writer
	logger logger.Logger
}

func NewKafkaProducer(cfg config.Config, log logger.Logger) (*KafkaProducer, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicPortfolioEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka producer successfully.")
	return &KafkaProducer{writer: writer, logger: log}, nil
}

func (p *KafkaProducer) Publish(ctx context.Context, evt event.Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(evt.Entity),
		Value: payload,
	})
}

func (p *KafkaProducer) Close() {
	if p.writer != nil {
		p.writer.Close()
	}
}
