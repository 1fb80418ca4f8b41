package repproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/kafka"
)

type Converter interface {
	RepairEventToPayload(e model.RepairEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewRepairProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendRepairEvent(ctx context.Context, event model.RepairEvent) error {
	payload, err := s.conv.RepairEventToPayload(event)
	if err != nil {
		return fmt.Errorf("converter repair_event_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, event.RepairID[:], payload); err != nil {
		return fmt.Errorf("producer to repair events topic error: %w", err)
	}

	return nil
}
