package producer

import (
	"context"

	"github.com/IBM/sarama"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/you-humble/repair-workshop/platform/kafka"
)

type Logger interface {
	Info(ctx context.Context, msg string, fields ...zap.Field)
	Error(ctx context.Context, msg string, fields ...zap.Field)
}

type producer struct {
	sync   sarama.SyncProducer
	topic  string
	logger Logger
}

func NewProducer(syncProducer sarama.SyncProducer, topic string, logger Logger) *producer {
	return &producer{
		sync:   syncProducer,
		topic:  topic,
		logger: logger,
	}
}

// Send publishes one record keyed by key. The caller's trace context rides in the headers.
func (p *producer) Send(ctx context.Context, key, value []byte) error {
	record := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(key),
		Value:   sarama.ByteEncoder(value),
		Headers: traceHeaders(ctx),
	}

	partition, offset, err := p.sync.SendMessage(record)
	if err != nil {
		p.logger.Error(ctx, "Kafka publish failed",
			zap.String("topic", p.topic),
			zap.ByteString("key", key),
			zap.Error(err),
		)
		return err
	}

	p.logger.Info(ctx, "Kafka record published",
		zap.String("topic", p.topic),
		zap.ByteString("key", key),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)

	return nil
}

func traceHeaders(ctx context.Context) []sarama.RecordHeader {
	carrier := kafka.HeaderCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)

	if len(carrier) == 0 {
		return nil
	}

	headers := make([]sarama.RecordHeader, 0, len(carrier))
	for k, v := range carrier {
		headers = append(headers, sarama.RecordHeader{Key: []byte(k), Value: v})
	}

	return headers
}
