package stockproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/kafka"
)

type Converter interface {
	LowStockAlertToPayload(a model.LowStockAlert) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewLowStockProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendLowStock(ctx context.Context, alert model.LowStockAlert) error {
	payload, err := s.conv.LowStockAlertToPayload(alert)
	if err != nil {
		return fmt.Errorf("converter low_stock_alert_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, alert.PartID[:], payload); err != nil {
		return fmt.Errorf("producer to low stock topic error: %w", err)
	}

	return nil
}
