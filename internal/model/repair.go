package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Repair struct {
	ID            uuid.UUID
	CustomerName  string
	CustomerPhone string
	BrandID       uuid.UUID
	ModelID       uuid.UUID
	BrandName     string
	ModelName     string
	IssueType     string
	Description   string
	Status        RepairStatus
	LaborCost     decimal.Decimal
	PartsCost     decimal.Decimal
	TotalCost     decimal.Decimal
	Profit        decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
	// Set once, when the repair enters completed.
	CompletedAt *time.Time
	Parts       []PartUsage
}

// PartUsage records stock consumed by a repair, with prices frozen at creation.
type PartUsage struct {
	ID                  uuid.UUID
	RepairID            uuid.UUID
	PartID              uuid.UUID
	PartName            string
	Quantity            int64
	PriceAtTime         decimal.Decimal
	PurchasePriceAtTime decimal.Decimal
}

func (u PartUsage) LineTotal() decimal.Decimal {
	return u.PriceAtTime.Mul(decimal.NewFromInt(u.Quantity))
}

func (u PartUsage) LineProfit() decimal.Decimal {
	return u.PriceAtTime.Sub(u.PurchasePriceAtTime).Mul(decimal.NewFromInt(u.Quantity))
}

type Totals struct {
	PartsCost decimal.Decimal
	TotalCost decimal.Decimal
	Profit    decimal.Decimal
}

type PartRequest struct {
	PartID   uuid.UUID
	Quantity int64
}

type CreateRepairParams struct {
	CustomerName  string
	CustomerPhone string
	BrandID       uuid.UUID
	ModelID       uuid.UUID
	IssueType     string
	Description   string
	LaborCost     decimal.Decimal
	Parts         []PartRequest
}

type RepairFilter struct {
	Status  *RepairStatus
	Search  string
	BrandID *uuid.UUID
	Limit   uint64
	Offset  uint64
}

type RepairSummary struct {
	Total    int64
	ByStatus map[RepairStatus]int64
	// pending + in_progress
	Open int64
	// Sums over completed and archived repairs.
	Revenue decimal.Decimal
	Profit  decimal.Decimal
	Labor   decimal.Decimal
}

type DeleteWarning struct {
	PartID   uuid.UUID
	Quantity int64
	Reason   string
}

type DeleteRepairResult struct {
	RepairID  uuid.UUID
	Restocked []StockChange
	Warnings  []DeleteWarning
}

type StatusChange struct {
	RepairID    uuid.UUID
	From        RepairStatus
	To          RepairStatus
	CompletedAt *time.Time
}
