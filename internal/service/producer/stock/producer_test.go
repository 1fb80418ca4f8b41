package stockproducer

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/converter"
	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/internal/service/mocks"
)

func TestServiceSendLowStock(t *testing.T) {
	t.Parallel()

	conv := converter.NewKafkaConverter()
	alert := model.LowStockAlert{EventID: uuid.New(), PartID: uuid.New(), PartName: "Screen", Quantity: 1, Threshold: 2}

	t.Run("keyed by part id", func(t *testing.T) {
		t.Parallel()

		producer := mocks.NewMockProducer(t)
		producer.On("Send", mock.Anything, alert.PartID[:], mock.MatchedBy(func(value []byte) bool {
			got, err := conv.PayloadToLowStockAlert(value)
			return err == nil && got.PartID == alert.PartID
		})).Return(nil).Once()

		require.NoError(t, NewLowStockProducer(producer, conv).SendLowStock(context.Background(), alert))
	})

	t.Run("producer failure", func(t *testing.T) {
		t.Parallel()

		producer := mocks.NewMockProducer(t)
		producer.On("Send", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

		err := NewLowStockProducer(producer, conv).SendLowStock(context.Background(), alert)
		assert.ErrorContains(t, err, "broker down")
	})
}
