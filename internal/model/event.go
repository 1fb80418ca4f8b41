package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RepairEventType string

const (
	RepairCreated       RepairEventType = "repair.created"
	RepairStatusChanged RepairEventType = "repair.status_changed"
	RepairDeleted       RepairEventType = "repair.deleted"
)

type RepairEvent struct {
	EventID    uuid.UUID
	Type       RepairEventType
	RepairID   uuid.UUID
	Status     RepairStatus
	TotalCost  decimal.Decimal
	Profit     decimal.Decimal
	OccurredAt time.Time
}
