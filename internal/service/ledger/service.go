package ledger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/logger"
)

type PartRepository interface {
	PartByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error)
	// UpdateQuantity must fail with model.ErrStockConflict when the stored quantity is not upd.From.
	UpdateQuantity(ctx context.Context, upd model.QuantityUpdate) error
}

type LowStockSender interface {
	SendLowStock(ctx context.Context, alert model.LowStockAlert) error
}

type service struct {
	repo           PartRepository
	alerts         LowStockSender
	locks          *partLocks
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewLedgerService(
	repository PartRepository,
	alerts LowStockSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		alerts:         alerts,
		locks:          newPartLocks(),
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

// ReserveAndConsume atomically checks availability and decrements the stock of one part.
// Calls for the same part are serialized; the store compare-and-swap covers other processes.
func (svc *service) ReserveAndConsume(
	ctx context.Context,
	partID uuid.UUID,
	quantity int64,
	ref model.StockRef,
) (*model.Consumption, error) {
	const op string = "ledger.service.ReserveAndConsume"
	log := logger.With(
		logger.UUID("part_id", partID),
		logger.Int64("quantity", quantity),
	)

	if quantity <= 0 {
		log.Error(ctx, "non-positive quantity")
		return nil, fmt.Errorf("%s: quantity must be positive: %w", op, model.ErrValidation)
	}

	if ref.Type == "" {
		ref.Type = model.MovementRepairOut
	}

	c, err := svc.consume(ctx, partID, quantity, ref)
	if err != nil {
		if errors.Is(err, model.ErrInsufficientStock) {
			log.Warn(ctx, "insufficient stock", logger.ErrorF(err))
		} else {
			log.Error(ctx, "consume", logger.ErrorF(err))
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Alerts go out after the part lock is released.
	if c.Previous > c.Part.LowStockThreshold && c.Current <= c.Part.LowStockThreshold {
		svc.alertLowStock(ctx, &c.Part, c.Current)
	}

	return c, nil
}

// consume holds the part lock only for the read and the compare-and-swap.
func (svc *service) consume(
	ctx context.Context,
	partID uuid.UUID,
	quantity int64,
	ref model.StockRef,
) (*model.Consumption, error) {
	unlock := svc.locks.lock(partID)
	defer unlock()

	part, err := svc.partByID(ctx, partID)
	if err != nil {
		return nil, fmt.Errorf("part by id: %w", err)
	}

	if part.Quantity < quantity {
		return nil, &model.InsufficientStockError{
			PartID:    partID,
			Requested: quantity,
			Available: part.Quantity,
		}
	}

	if err := svc.apply(ctx, part, -quantity, ref); err != nil {
		return nil, fmt.Errorf("update quantity: %w", err)
	}

	return &model.Consumption{
		StockChange: model.StockChange{
			PartID:   partID,
			Quantity: quantity,
			Previous: part.Quantity,
			Current:  part.Quantity - quantity,
		},
		Part: *part,
	}, nil
}

// Restock returns quantity units of a part to stock.
func (svc *service) Restock(
	ctx context.Context,
	partID uuid.UUID,
	quantity int64,
	ref model.StockRef,
) (*model.StockChange, error) {
	const op string = "ledger.service.Restock"
	log := logger.With(
		logger.UUID("part_id", partID),
		logger.Int64("quantity", quantity),
		logger.String("movement", string(ref.Type)),
	)

	if quantity <= 0 {
		log.Error(ctx, "non-positive quantity")
		return nil, fmt.Errorf("%s: quantity must be positive: %w", op, model.ErrValidation)
	}

	unlock := svc.locks.lock(partID)
	defer unlock()

	part, err := svc.partByID(ctx, partID)
	if err != nil {
		log.Error(ctx, "repository part by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if ref.Type == "" {
		ref.Type = model.MovementRepairReturn
	}

	if err := svc.apply(ctx, part, quantity, ref); err != nil {
		log.Error(ctx, "repository update quantity", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &model.StockChange{
		PartID:   partID,
		Quantity: quantity,
		Previous: part.Quantity,
		Current:  part.Quantity + quantity,
	}, nil
}

func (svc *service) partByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	return svc.repo.PartByID(ctx, id)
}

func (svc *service) apply(ctx context.Context, part *model.SparePart, delta int64, ref model.StockRef) error {
	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	to := part.Quantity + delta

	return svc.repo.UpdateQuantity(ctx, model.QuantityUpdate{
		PartID: part.ID,
		From:   part.Quantity,
		To:     to,
		Movement: model.StockMovement{
			ID:            uuid.New(),
			PartID:        part.ID,
			Type:          ref.Type,
			Delta:         delta,
			QuantityAfter: to,
			RepairID:      ref.RepairID,
			Note:          ref.Note,
			CreatedAt:     svc.now().UTC(),
		},
	})
}

// alertLowStock is best effort: a failed alert never undoes a consumption.
func (svc *service) alertLowStock(ctx context.Context, part *model.SparePart, quantity int64) {
	if svc.alerts == nil {
		return
	}

	alert := model.LowStockAlert{
		EventID:    uuid.New(),
		PartID:     part.ID,
		PartName:   part.Name,
		Quantity:   quantity,
		Threshold:  part.LowStockThreshold,
		OccurredAt: svc.now().UTC(),
	}

	if err := svc.alerts.SendLowStock(ctx, alert); err != nil {
		logger.Warn(ctx, "send low stock alert",
			logger.UUID("part_id", part.ID),
			logger.ErrorF(err),
		)
	}
}
