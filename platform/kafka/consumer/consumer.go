package consumer

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/you-humble/repair-workshop/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type consumer struct {
	group       sarama.ConsumerGroup
	topics      []string
	logger      Logger
	middlewares []kafka.Middleware
}

func NewConsumer(group sarama.ConsumerGroup, topics []string, logger Logger, middlewares ...kafka.Middleware) *consumer {
	return &consumer{
		group:       group,
		topics:      topics,
		logger:      logger,
		middlewares: middlewares,
	}
}

// Consume joins the group and keeps rejoining after rebalances.
// It returns nil once the group is closed and ctx.Err() once ctx is cancelled.
func (c *consumer) Consume(ctx context.Context, handler kafka.MessageHandler) error {
	claims := newClaimHandler(handler, c.logger, c.middlewares...)
	topics := zap.Strings("topics", c.topics)

	c.logger.Info(ctx, "Kafka consumer joining group", topics)

	for ctx.Err() == nil {
		err := c.group.Consume(ctx, c.topics, claims)
		switch {
		case err == nil:
			c.logger.Info(ctx, "Kafka session ended, rejoining", topics)
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		default:
			c.logger.Error(ctx, "Kafka consume failed", topics, zap.Error(err))
			return errors.Wrapf(err, "consume %v", c.topics)
		}
	}

	return ctx.Err()
}
