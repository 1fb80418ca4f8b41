package model

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

var (
	ErrValidation        = errors.New("validation error")           // 400
	ErrPartNotFound      = errors.New("spare part not found")       // 404
	ErrRepairNotFound    = errors.New("repair not found")           // 404
	ErrBrandNotFound     = errors.New("brand not found")            // 404
	ErrModelNotFound     = errors.New("device model not found")     // 404
	ErrIllegalTransition = errors.New("illegal status transition")  // 409
	ErrStockConflict     = errors.New("stock changed concurrently") // 409
	ErrAlreadyExists     = errors.New("already exists")             // 409
	ErrInsufficientStock = errors.New("insufficient stock")         // 422
	ErrUnknownStatus     = errors.New("unknown status")
	ErrCacheMiss         = errors.New("cache miss")
)

// InsufficientStockError carries the amounts behind ErrInsufficientStock.
type InsufficientStockError struct {
	PartID    uuid.UUID
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: part %s requested %d available %d",
		ErrInsufficientStock, e.PartID, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }

