package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/model"
)

func seedPart(t *testing.T, r *partRepository, name string, qty, threshold int64) uuid.UUID {
	t.Helper()

	id, err := r.Create(context.Background(), &model.SparePart{
		Name:              name,
		Category:          "Display",
		BrandID:           uuid.New(),
		ModelID:           uuid.New(),
		Quantity:          qty,
		PurchasePrice:     decimal.NewFromInt(1),
		SellingPrice:      decimal.NewFromInt(2),
		LowStockThreshold: threshold,
	})
	require.NoError(t, err)

	return id
}

func TestPartRepositoryUpdateQuantity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewPartRepository()
	id := seedPart(t, r, "Screen", 5, 1)

	err := r.UpdateQuantity(ctx, model.QuantityUpdate{PartID: id, From: 4, To: 2})
	assert.ErrorIs(t, err, model.ErrStockConflict)

	err = r.UpdateQuantity(ctx, model.QuantityUpdate{PartID: id, From: 5, To: -1})
	assert.ErrorIs(t, err, model.ErrValidation)

	err = r.UpdateQuantity(ctx, model.QuantityUpdate{PartID: uuid.New(), From: 0, To: 1})
	assert.ErrorIs(t, err, model.ErrPartNotFound)

	err = r.UpdateQuantity(ctx, model.QuantityUpdate{
		PartID:   id,
		From:     5,
		To:       2,
		Movement: model.StockMovement{ID: uuid.New(), PartID: id, Type: model.MovementRepairOut, Delta: -3, QuantityAfter: 2},
	})
	require.NoError(t, err)

	p, err := r.PartByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.Quantity)

	movements, err := r.Movements(ctx, id)
	require.NoError(t, err)
	require.Len(t, movements, 2)
	assert.Equal(t, model.MovementInitial, movements[0].Type)
	assert.Equal(t, model.MovementRepairOut, movements[1].Type)
}

func TestPartRepositoryList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewPartRepository()
	seedPart(t, r, "iPhone 12 Screen", 1, 5)
	seedPart(t, r, "Battery", 10, 5)
	zero := seedPart(t, r, "Back glass", 0, 0)

	type testCase struct {
		name   string
		filter model.PartsFilter
		want   []string
	}

	tests := []testCase{
		{name: "all sorted by name", want: []string{"Back glass", "Battery", "iPhone 12 Screen"}},
		{name: "search is case insensitive", filter: model.PartsFilter{Search: "SCREEN"}, want: []string{"iPhone 12 Screen"}},
		{name: "low stock includes threshold equality", filter: model.PartsFilter{LowStockOnly: true}, want: []string{"Back glass", "iPhone 12 Screen"}},
		{name: "category", filter: model.PartsFilter{Category: "display"}, want: []string{"Back glass", "Battery", "iPhone 12 Screen"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			parts, err := r.List(ctx, tt.filter)
			require.NoError(t, err)

			names := make([]string, 0, len(parts))
			for _, p := range parts {
				names = append(names, p.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}

	movements, err := r.Movements(ctx, zero)
	require.NoError(t, err)
	assert.Empty(t, movements)
}

func TestPartRepositoryDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	r := NewPartRepository()
	id := seedPart(t, r, "Camera", 2, 1)

	require.NoError(t, r.Delete(ctx, id))
	assert.ErrorIs(t, r.Delete(ctx, id), model.ErrPartNotFound)

	_, err := r.PartByID(ctx, id)
	assert.ErrorIs(t, err, model.ErrPartNotFound)
}
