package telegram

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/internal/service/mocks"
)

func alert() model.LowStockAlert {
	return model.LowStockAlert{
		EventID:    uuid.New(),
		PartID:     uuid.New(),
		PartName:   "Battery",
		Quantity:   0,
		Threshold:  2,
		OccurredAt: time.Now().UTC(),
	}
}

func TestServiceNotifyLowStock(t *testing.T) {
	t.Parallel()

	t.Run("nil client only logs", func(t *testing.T) {
		t.Parallel()

		svc := NewTgService(nil, 42)
		assert.NoError(t, svc.NotifyLowStock(context.Background(), alert()))
	})

	t.Run("every chat receives the message", func(t *testing.T) {
		t.Parallel()

		client := mocks.NewMockMessageSender(t)
		client.On("SendMessage", mock.Anything, int64(1), mock.MatchedBy(func(text string) bool {
			return strings.Contains(text, "Battery")
		})).Return(nil).Once()
		client.On("SendMessage", mock.Anything, int64(2), mock.Anything).Return(nil).Once()

		svc := NewTgService(client, 1, 0)
		svc.AddChatID(context.Background(), 2)

		require.NoError(t, svc.SendLowStock(context.Background(), alert()))
	})

	t.Run("send errors are joined", func(t *testing.T) {
		t.Parallel()

		client := mocks.NewMockMessageSender(t)
		client.On("SendMessage", mock.Anything, int64(1), mock.Anything).Return(errors.New("forbidden")).Once()
		client.On("SendMessage", mock.Anything, int64(2), mock.Anything).Return(nil).Once()

		svc := NewTgService(client, 1, 2)

		err := svc.NotifyLowStock(context.Background(), alert())
		assert.EqualError(t, err, "forbidden")
	})

	t.Run("chats can subscribe while a message is being sent", func(t *testing.T) {
		t.Parallel()

		client := mocks.NewMockMessageSender(t)
		svc := NewTgService(client, 1)

		client.On("SendMessage", mock.Anything, int64(1), mock.Anything).
			Run(func(args mock.Arguments) {
				svc.AddChatID(args.Get(0).(context.Context), 7)
			}).
			Return(nil).Once()

		done := make(chan error, 1)
		go func() { done <- svc.NotifyLowStock(context.Background(), alert()) }()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("subscribing blocked on an in-flight send")
		}
		assert.ElementsMatch(t, []int64{1, 7}, svc.chats())
	})

	t.Run("no chats yet", func(t *testing.T) {
		t.Parallel()

		client := mocks.NewMockMessageSender(t)
		svc := NewTgService(client)

		assert.NoError(t, svc.NotifyLowStock(context.Background(), alert()))
	})
}
