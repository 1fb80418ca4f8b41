package converter

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/model"
)

func TestBuildLowStock(t *testing.T) {
	t.Parallel()

	partID := uuid.New()
	msg, err := BuildLowStock(model.LowStockAlert{
		PartID:     partID,
		PartName:   "iPhone 12 Screen",
		Quantity:   1,
		Threshold:  3,
		OccurredAt: time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Contains(t, msg, "*Low stock*")
	assert.Contains(t, msg, "Part: *iPhone 12 Screen*")
	assert.Contains(t, msg, "In stock: 1 (alert at 3)")
	assert.Contains(t, msg, partID.String())
	assert.Contains(t, msg, "2025-06-01 14:30")
}
