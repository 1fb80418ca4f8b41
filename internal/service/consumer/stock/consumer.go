package stockconsumer

import (
	"context"
	"fmt"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/kafka"
	"github.com/you-humble/repair-workshop/platform/logger"
)

type Converter interface {
	PayloadToLowStockAlert(data []byte) (model.LowStockAlert, error)
}

type Notifier interface {
	NotifyLowStock(ctx context.Context, alert model.LowStockAlert) error
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
	notifier Notifier
}

func NewLowStockConsumer(consumer kafka.Consumer, conv Converter, notifier Notifier) *service {
	return &service{consumer: consumer, conv: conv, notifier: notifier}
}

func (s *service) RunLowStockConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting low stock consumer")

	if err := s.consumer.Consume(ctx, s.lowStockHandler); err != nil {
		logger.Error(ctx, "Consume from low stock topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

func (s *service) lowStockHandler(ctx context.Context, msg kafka.Message) error {
	alert, err := s.conv.PayloadToLowStockAlert(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode low stock alert", logger.ErrorF(err))
		return fmt.Errorf("converter payload_to_low_stock_alert error: %w", err)
	}

	if err := s.notifier.NotifyLowStock(ctx, alert); err != nil {
		logger.Error(ctx, "Failed to notify about low stock",
			logger.UUID("part_id", alert.PartID),
			logger.ErrorF(err),
		)
		return err
	}

	return nil
}
