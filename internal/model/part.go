package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DefaultLowStockThreshold int64 = 5

type MovementType string

const (
	MovementInitial      MovementType = "initial"
	MovementRepairOut    MovementType = "repair_out"
	MovementRepairReturn MovementType = "repair_return"
	MovementPurchaseIn   MovementType = "purchase_in"
)

type SparePart struct {
	ID            uuid.UUID
	Name          string
	Category      string
	ScreenQuality string
	BrandID       uuid.UUID
	ModelID       uuid.UUID
	// On-hand stock. Changed only through the ledger.
	Quantity          int64
	PurchasePrice     decimal.Decimal
	SellingPrice      decimal.Decimal
	LowStockThreshold int64
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (p *SparePart) IsLowStock() bool {
	return p.Quantity <= p.LowStockThreshold
}

// StockMovement is one journal row of a quantity change.
type StockMovement struct {
	ID            uuid.UUID
	PartID        uuid.UUID
	Type          MovementType
	Delta         int64
	QuantityAfter int64
	RepairID      *uuid.UUID
	Note          string
	CreatedAt     time.Time
}

// QuantityUpdate is a compare-and-swap of a part's quantity plus its journal row.
type QuantityUpdate struct {
	PartID   uuid.UUID
	From     int64
	To       int64
	Movement StockMovement
}

// StockRef says why stock moves.
type StockRef struct {
	Type     MovementType
	RepairID *uuid.UUID
	Note     string
}

type StockChange struct {
	PartID   uuid.UUID
	Quantity int64
	Previous int64
	Current  int64
}

// Consumption is a successful decrement together with the part as it was read under lock.
type Consumption struct {
	StockChange
	Part SparePart
}

type CreatePartParams struct {
	Name              string
	Category          string
	ScreenQuality     string
	BrandID           uuid.UUID
	ModelID           uuid.UUID
	Quantity          int64
	PurchasePrice     decimal.Decimal
	SellingPrice      decimal.Decimal
	LowStockThreshold *int64
}

type PartsFilter struct {
	Search       string
	Category     string
	BrandID      *uuid.UUID
	ModelID      *uuid.UUID
	LowStockOnly bool
}

type LowStockAlert struct {
	EventID    uuid.UUID
	PartID     uuid.UUID
	PartName   string
	Quantity   int64
	Threshold  int64
	OccurredAt time.Time
}
