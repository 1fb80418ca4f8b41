package consumer

import (
	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/you-humble/repair-workshop/platform/kafka"
)

// claimHandler feeds every claimed record through the middleware chain and marks accepted ones.
// A rejected record is logged and skipped: offsets are cumulative, so the next mark commits past it.
// Handlers must treat delivery as at most once for records they reject.
type claimHandler struct {
	handle kafka.MessageHandler
	logger Logger
}

var _ sarama.ConsumerGroupHandler = (*claimHandler)(nil)

func newClaimHandler(handler kafka.MessageHandler, logger Logger, mws ...kafka.Middleware) *claimHandler {
	return &claimHandler{
		handle: kafka.Chain(handler, mws...),
		logger: logger,
	}
}

func (h *claimHandler) Setup(session sarama.ConsumerGroupSession) error {
	h.logger.Info(session.Context(), "Kafka claims assigned", zap.Any("claims", session.Claims()))
	return nil
}

func (h *claimHandler) Cleanup(sarama.ConsumerGroupSession) error { return nil }

func (h *claimHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	done := session.Context().Done()

	for {
		var record *sarama.ConsumerMessage
		var open bool

		select {
		case <-done:
			return nil
		case record, open = <-claim.Messages():
		}

		if !open {
			h.logger.Info(session.Context(), "Kafka claim drained",
				zap.String("topic", claim.Topic()),
				zap.Int32("partition", claim.Partition()),
			)
			return nil
		}

		msg := toMessage(record)
		ctx := otel.GetTextMapPropagator().Extract(session.Context(), kafka.HeaderCarrier(msg.Headers))

		if err := h.handle(ctx, msg); err != nil {
			h.logger.Error(ctx, "Kafka record rejected",
				zap.String("topic", msg.Topic),
				zap.Int32("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
			continue
		}

		session.MarkMessage(record, "")
	}
}

func toMessage(record *sarama.ConsumerMessage) kafka.Message {
	headers := make(map[string][]byte, len(record.Headers))
	for _, h := range record.Headers {
		if h == nil || len(h.Key) == 0 {
			continue
		}
		headers[string(h.Key)] = h.Value
	}

	return kafka.Message{
		Headers:        headers,
		Timestamp:      record.Timestamp,
		BlockTimestamp: record.BlockTimestamp,
		Key:            record.Key,
		Value:          record.Value,
		Topic:          record.Topic,
		Partition:      record.Partition,
		Offset:         record.Offset,
	}
}
