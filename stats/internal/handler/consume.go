package handler

import (
	"context"
	"encoding/json"

	"github.com/IBM/sarama"
	"go.uber.org/zap"

	"github.com/carznow/rental-service/pkg/kafka"
)

type stats func(ctx context.Context, event kafka.BookingEvent) error

type Consumer struct {
	statsHandler stats
	log          *zap.Logger
}

func NewConsumer(stats stats, log *zap.Logger) *Consumer {
	return &Consumer{
		statsHandler: stats,
		log:          log.Named("consumer"),
	}
}

// Setup runs again on every rebalance, so it must stay re-entrant.
func (consumer *Consumer) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (consumer *Consumer) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				consumer.log.Warn("message channel was closed")
				return nil
			}
			var event kafka.BookingEvent
			if err := json.Unmarshal(message.Value, &event); err != nil {
				consumer.log.Error("unmarshal event", zap.Error(err))
				session.MarkMessage(message, "")
				continue
			}

			if err := consumer.statsHandler(context.Background(), event); err != nil {
				consumer.log.Error("consumer.statsHandler", zap.Error(err))
				continue
			}

			consumer.log.Debug("Message claimed:", zap.String("value", string(message.Value)), zap.Time("timestamp", message.Timestamp), zap.String("topic", message.Topic))
			session.MarkMessage(message, "")
		case <-session.Context().Done():
			return nil
		}
	}
}
