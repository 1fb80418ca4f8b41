package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/repair-workshop/internal/model"
)

func usage(qty int64, selling, purchase string) model.PartUsage {
	return model.PartUsage{
		PartID:              uuid.New(),
		Quantity:            qty,
		PriceAtTime:         decimal.RequireFromString(selling),
		PurchasePriceAtTime: decimal.RequireFromString(purchase),
	}
}

func TestComputeTotals(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		labor     string
		usages    []model.PartUsage
		wantErr   error
		wantParts string
		wantTotal string
		wantPrft  string
	}

	tests := []testCase{
		{
			name:      "no parts: total equals labor, zero profit",
			labor:     "50",
			usages:    nil,
			wantParts: "0",
			wantTotal: "50",
			wantPrft:  "0",
		},
		{
			name:      "single line",
			labor:     "50",
			usages:    []model.PartUsage{usage(2, "30", "20")},
			wantParts: "60",
			wantTotal: "110",
			wantPrft:  "20",
		},
		{
			name:      "three units of one part",
			labor:     "50",
			usages:    []model.PartUsage{usage(3, "30", "20")},
			wantParts: "90",
			wantTotal: "140",
			wantPrft:  "30",
		},
		{
			name:  "several lines with cents",
			labor: "12.50",
			usages: []model.PartUsage{
				usage(1, "19.99", "10.01"),
				usage(4, "2.25", "1.10"),
			},
			wantParts: "28.99",
			wantTotal: "41.49",
			wantPrft:  "14.58",
		},
		{
			name:      "zero labor is allowed",
			labor:     "0",
			usages:    []model.PartUsage{usage(1, "10", "4")},
			wantParts: "10",
			wantTotal: "10",
			wantPrft:  "6",
		},
		{
			name:    "negative labor",
			labor:   "-1",
			wantErr: model.ErrValidation,
		},
		{
			name:    "zero quantity",
			labor:   "10",
			usages:  []model.PartUsage{usage(0, "10", "4")},
			wantErr: model.ErrValidation,
		},
		{
			name:    "zero selling price",
			labor:   "10",
			usages:  []model.PartUsage{usage(1, "0", "4")},
			wantErr: model.ErrValidation,
		},
		{
			name:    "negative purchase price",
			labor:   "10",
			usages:  []model.PartUsage{usage(1, "10", "-4")},
			wantErr: model.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ComputeTotals(decimal.RequireFromString(tt.labor), tt.usages)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.wantParts).Equal(got.PartsCost), "parts cost %s", got.PartsCost)
			assert.True(t, decimal.RequireFromString(tt.wantTotal).Equal(got.TotalCost), "total cost %s", got.TotalCost)
			assert.True(t, decimal.RequireFromString(tt.wantPrft).Equal(got.Profit), "profit %s", got.Profit)
		})
	}
}

func TestComputeTotalsReconciles(t *testing.T) {
	t.Parallel()

	labor := decimal.RequireFromString("75.40")
	usages := []model.PartUsage{
		usage(2, "45.00", "30.00"),
		usage(1, "120.99", "80.49"),
		usage(5, "3.10", "1.05"),
	}

	got, err := ComputeTotals(labor, usages)
	require.NoError(t, err)

	purchase := decimal.Zero
	for _, u := range usages {
		purchase = purchase.Add(u.PurchasePriceAtTime.Mul(decimal.NewFromInt(u.Quantity)))
	}

	assert.True(t, got.TotalCost.Equal(labor.Add(got.PartsCost)))
	assert.True(t, got.Profit.Equal(got.PartsCost.Sub(purchase)))
}
