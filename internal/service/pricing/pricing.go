package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/you-humble/repair-workshop/internal/model"
)

// ComputeTotals derives the monetary totals of a repair from its labor cost and part usages.
//
//	PartsCost = Σ quantity × selling price
//	TotalCost = labor + PartsCost
//	Profit    = Σ quantity × (selling price − purchase price)
//
// Labor is not part of profit.
func ComputeTotals(laborCost decimal.Decimal, usages []model.PartUsage) (model.Totals, error) {
	const op = "pricing.ComputeTotals"

	if laborCost.IsNegative() {
		return model.Totals{}, fmt.Errorf("%s: negative labor cost: %w", op, model.ErrValidation)
	}

	partsCost := decimal.Zero
	profit := decimal.Zero
	for _, u := range usages {
		if u.Quantity <= 0 {
			return model.Totals{}, fmt.Errorf("%s: part %s quantity %d: %w",
				op, u.PartID, u.Quantity, model.ErrValidation)
		}
		if !u.PriceAtTime.IsPositive() || !u.PurchasePriceAtTime.IsPositive() {
			return model.Totals{}, fmt.Errorf("%s: part %s has non-positive price: %w",
				op, u.PartID, model.ErrValidation)
		}

		partsCost = partsCost.Add(u.LineTotal())
		profit = profit.Add(u.LineProfit())
	}

	return model.Totals{
		PartsCost: partsCost,
		TotalCost: laborCost.Add(partsCost),
		Profit:    profit,
	}, nil
}
