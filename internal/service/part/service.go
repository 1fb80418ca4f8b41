package part

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/logger"
)

type PartRepository interface {
	// Create stores the part and journals its opening stock.
	Create(ctx context.Context, p *model.SparePart) (uuid.UUID, error)
	PartByID(ctx context.Context, id uuid.UUID) (*model.SparePart, error)
	List(ctx context.Context, filter model.PartsFilter) ([]model.SparePart, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Movements(ctx context.Context, partID uuid.UUID) ([]model.StockMovement, error)
}

type Ledger interface {
	Restock(ctx context.Context, partID uuid.UUID, quantity int64, ref model.StockRef) (*model.StockChange, error)
}

type CatalogReader interface {
	ModelByID(ctx context.Context, id uuid.UUID) (*model.DeviceModel, error)
}

type service struct {
	repo           PartRepository
	ledger         Ledger
	catalog        CatalogReader
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewPartService(
	repository PartRepository,
	ledger Ledger,
	catalog CatalogReader,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		ledger:         ledger,
		catalog:        catalog,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Create(ctx context.Context, params model.CreatePartParams) (*model.SparePart, error) {
	const op string = "part.service.Create"
	log := logger.With(
		logger.String("name", params.Name),
		logger.UUID("model_id", params.ModelID),
	)

	params.Name = strings.TrimSpace(params.Name)
	if err := validateCreate(params); err != nil {
		log.Error(ctx, "wrong params", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdbCtx, rdbCancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer rdbCancel()

	dm, err := svc.catalog.ModelByID(rdbCtx, params.ModelID)
	if err != nil {
		log.Error(ctx, "catalog model by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if dm.BrandID != params.BrandID {
		log.Error(ctx, "model does not belong to brand", logger.UUID("brand_id", params.BrandID))
		return nil, fmt.Errorf("%s: model of another brand: %w", op, model.ErrValidation)
	}

	threshold := model.DefaultLowStockThreshold
	if params.LowStockThreshold != nil {
		threshold = *params.LowStockThreshold
	}

	p := &model.SparePart{
		Name:              params.Name,
		Category:          strings.TrimSpace(params.Category),
		ScreenQuality:     strings.TrimSpace(params.ScreenQuality),
		BrandID:           params.BrandID,
		ModelID:           params.ModelID,
		Quantity:          params.Quantity,
		PurchasePrice:     params.PurchasePrice,
		SellingPrice:      params.SellingPrice,
		LowStockThreshold: threshold,
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	id, err := svc.repo.Create(wdbCtx, p)
	if err != nil {
		log.Error(ctx, "repository create part", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	p.ID = id

	return p, nil
}

func (svc *service) Part(ctx context.Context, id uuid.UUID) (*model.SparePart, error) {
	const op string = "part.service.Part"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	p, err := svc.repo.PartByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository part by id", logger.UUID("part_id", id), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return p, nil
}

func (svc *service) List(ctx context.Context, filter model.PartsFilter) ([]model.SparePart, error) {
	const op string = "part.service.List"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	parts, err := svc.repo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list parts", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return parts, nil
}

// LowStock lists parts at or below their alert threshold.
func (svc *service) LowStock(ctx context.Context) ([]model.SparePart, error) {
	return svc.List(ctx, model.PartsFilter{LowStockOnly: true})
}

// Delete removes a part. Repairs keep their usage rows and price snapshots.
func (svc *service) Delete(ctx context.Context, id uuid.UUID) error {
	const op string = "part.service.Delete"

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Delete(ctx, id); err != nil {
		logger.Error(ctx, "repository delete part", logger.UUID("part_id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Receive books a purchase delivery into stock.
func (svc *service) Receive(ctx context.Context, id uuid.UUID, quantity int64, note string) (*model.StockChange, error) {
	const op string = "part.service.Receive"
	log := logger.With(
		logger.UUID("part_id", id),
		logger.Int64("quantity", quantity),
	)

	if quantity <= 0 {
		log.Error(ctx, "non-positive quantity")
		return nil, fmt.Errorf("%s: %w", op, model.ErrValidation)
	}

	change, err := svc.ledger.Restock(ctx, id, quantity, model.StockRef{
		Type: model.MovementPurchaseIn,
		Note: strings.TrimSpace(note),
	})
	if err != nil {
		log.Error(ctx, "ledger restock", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return change, nil
}

func (svc *service) Movements(ctx context.Context, id uuid.UUID) ([]model.StockMovement, error) {
	const op string = "part.service.Movements"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	if _, err := svc.repo.PartByID(ctx, id); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	movements, err := svc.repo.Movements(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository movements", logger.UUID("part_id", id), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return movements, nil
}

func validateCreate(params model.CreatePartParams) error {
	switch {
	case params.Name == "":
		return fmt.Errorf("empty name: %w", model.ErrValidation)
	case params.BrandID == uuid.Nil || params.ModelID == uuid.Nil:
		return fmt.Errorf("brand and model are required: %w", model.ErrValidation)
	case params.Quantity < 0:
		return fmt.Errorf("negative quantity: %w", model.ErrValidation)
	case !params.PurchasePrice.IsPositive():
		return fmt.Errorf("purchase price must be positive: %w", model.ErrValidation)
	case !params.SellingPrice.IsPositive():
		return fmt.Errorf("selling price must be positive: %w", model.ErrValidation)
	case !params.SellingPrice.GreaterThan(params.PurchasePrice):
		return fmt.Errorf("selling price must exceed purchase price: %w", model.ErrValidation)
	case params.LowStockThreshold != nil && *params.LowStockThreshold < 0:
		return fmt.Errorf("negative low stock threshold: %w", model.ErrValidation)
	}

	return nil
}
