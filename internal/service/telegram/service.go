package telegram

import (
	"context"
	"errors"
	"sync"

	"github.com/samber/lo"

	converter "github.com/you-humble/repair-workshop/internal/converter/telegram"
	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/logger"
)

type MessageSender interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type service struct {
	client  MessageSender
	mu      sync.RWMutex
	chatIDs map[int64]struct{}
}

// NewTgService notifies the given chats; more can subscribe through AddChatID.
// A nil client only logs.
func NewTgService(client MessageSender, chatIDs ...int64) *service {
	svc := &service{client: client, chatIDs: make(map[int64]struct{}, len(chatIDs))}
	for _, id := range chatIDs {
		if id != 0 {
			svc.chatIDs[id] = struct{}{}
		}
	}

	return svc
}

func (svc *service) NotifyLowStock(ctx context.Context, alert model.LowStockAlert) error {
	logger.Info(ctx, "low stock",
		logger.UUID("part_id", alert.PartID),
		logger.String("part_name", alert.PartName),
		logger.Int64("quantity", alert.Quantity),
		logger.Int64("threshold", alert.Threshold),
	)

	if svc.client == nil {
		return nil
	}

	msg, err := converter.BuildLowStock(alert)
	if err != nil {
		return err
	}

	var errs []error
	for _, chatID := range svc.chats() {
		if err := svc.client.SendMessage(ctx, chatID, msg); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// SendLowStock lets the ledger notify directly when no broker is configured.
func (svc *service) SendLowStock(ctx context.Context, alert model.LowStockAlert) error {
	return svc.NotifyLowStock(ctx, alert)
}

func (svc *service) chats() []int64 {
	svc.mu.RLock()
	defer svc.mu.RUnlock()

	return lo.Keys(svc.chatIDs)
}

func (svc *service) AddChatID(_ context.Context, chatID int64) {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	svc.chatIDs[chatID] = struct{}{}
}
