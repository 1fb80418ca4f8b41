package model

import (
	"time"

	"github.com/google/uuid"
)

type Brand struct {
	ID         uuid.UUID
	Name       string
	ModelCount int64
	CreatedAt  time.Time
}

type DeviceModel struct {
	ID        uuid.UUID
	BrandID   uuid.UUID
	Name      string
	CreatedAt time.Time
}
