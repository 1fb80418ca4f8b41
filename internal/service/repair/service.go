package repair

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/internal/service/pricing"
	"github.com/you-humble/repair-workshop/internal/service/workflow"
	"github.com/you-humble/repair-workshop/platform/logger"
	"github.com/you-humble/repair-workshop/platform/tracing"
)

const maxPhoneLength = 32

type RepairRepository interface {
	// Create persists the repair together with its part usages in one transaction.
	Create(ctx context.Context, r *model.Repair) (uuid.UUID, error)
	RepairByID(ctx context.Context, id uuid.UUID) (*model.Repair, error)
	// UpdateStatus applies the change only if the stored status still equals change.From.
	UpdateStatus(ctx context.Context, change model.StatusChange) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, filter model.RepairFilter) ([]model.Repair, error)
	Summary(ctx context.Context) (*model.RepairSummary, error)
}

type Ledger interface {
	ReserveAndConsume(ctx context.Context, partID uuid.UUID, quantity int64, ref model.StockRef) (*model.Consumption, error)
	Restock(ctx context.Context, partID uuid.UUID, quantity int64, ref model.StockRef) (*model.StockChange, error)
}

type CatalogReader interface {
	ModelByID(ctx context.Context, id uuid.UUID) (*model.DeviceModel, error)
}

type EventSender interface {
	SendRepairEvent(ctx context.Context, event model.RepairEvent) error
}

type SummaryCache interface {
	Summary(ctx context.Context) (*model.RepairSummary, error)
	SetSummary(ctx context.Context, summary *model.RepairSummary) error
	Invalidate(ctx context.Context) error
}

type service struct {
	repo           RepairRepository
	ledger         Ledger
	catalog        CatalogReader
	events         EventSender
	cache          SummaryCache
	tracer         trace.Tracer
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
	now            func() time.Time
}

func NewRepairService(
	repository RepairRepository,
	ledger Ledger,
	catalog CatalogReader,
	events EventSender,
	cache SummaryCache,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		repo:           repository,
		ledger:         ledger,
		catalog:        catalog,
		events:         events,
		cache:          cache,
		tracer:         tracing.Tracer("repair-service"),
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
		now:            time.Now,
	}
}

// Create consumes the requested parts, prices the repair and stores it as pending.
// Either every consumption and the repair are committed, or stock is returned to what it was.
func (svc *service) Create(ctx context.Context, params model.CreateRepairParams) (*model.Repair, error) {
	const op string = "repair.service.Create"
	ctx, span := svc.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("model_id", params.ModelID.String()),
		attribute.Int("number_part_requests", len(params.Parts)),
	))
	defer span.End()

	log := logger.With(
		logger.UUID("model_id", params.ModelID),
		logger.Int("number_part_requests", len(params.Parts)),
	)

	params.CustomerName = strings.TrimSpace(params.CustomerName)
	params.CustomerPhone = strings.TrimSpace(params.CustomerPhone)

	if err := validateCreate(params); err != nil {
		log.Error(ctx, "wrong params", logger.ErrorF(err))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	if err := svc.checkDevice(ctx, params.BrandID, params.ModelID); err != nil {
		log.Error(ctx, "check device", logger.ErrorF(err))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	requests := mergeRequests(params.Parts)
	repairID := uuid.New()
	log = log.With(logger.UUID("repair_id", repairID))

	consumed, err := svc.consumeAll(ctx, repairID, requests)
	if err != nil {
		log.Warn(ctx, "consume parts", logger.ErrorF(err))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	usages := lo.Map(consumed, func(c *model.Consumption, _ int) model.PartUsage {
		return model.PartUsage{
			ID:                  uuid.New(),
			RepairID:            repairID,
			PartID:              c.PartID,
			PartName:            c.Part.Name,
			Quantity:            c.Quantity,
			PriceAtTime:         c.Part.SellingPrice,
			PurchasePriceAtTime: c.Part.PurchasePrice,
		}
	})

	totals, err := pricing.ComputeTotals(params.LaborCost, usages)
	if err != nil {
		log.Error(ctx, "compute totals", logger.ErrorF(err))
		svc.returnStock(ctx, repairID, consumedChanges(consumed))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	now := svc.now().UTC()
	rep := &model.Repair{
		ID:            repairID,
		CustomerName:  params.CustomerName,
		CustomerPhone: params.CustomerPhone,
		BrandID:       params.BrandID,
		ModelID:       params.ModelID,
		IssueType:     strings.TrimSpace(params.IssueType),
		Description:   strings.TrimSpace(params.Description),
		Status:        workflow.InitialStatus,
		LaborCost:     params.LaborCost,
		PartsCost:     totals.PartsCost,
		TotalCost:     totals.TotalCost,
		Profit:        totals.Profit,
		CreatedAt:     now,
		UpdatedAt:     now,
		Parts:         usages,
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if _, err := svc.repo.Create(wdbCtx, rep); err != nil {
		log.Error(ctx, "repository create repair", logger.ErrorF(err))
		svc.returnStock(ctx, repairID, consumedChanges(consumed))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	span.SetAttributes(attribute.String("repair_id", repairID.String()))
	log.Info(ctx, "repair created",
		logger.String("total_cost", rep.TotalCost.String()),
		logger.String("profit", rep.Profit.String()),
	)

	svc.invalidateSummary(ctx)
	svc.publish(ctx, model.RepairCreated, rep)

	return rep, nil
}

// ChangeStatus moves a repair one step forward along the workflow.
func (svc *service) ChangeStatus(
	ctx context.Context,
	id uuid.UUID,
	requested model.RepairStatus,
) (*model.Repair, error) {
	const op string = "repair.service.ChangeStatus"
	ctx, span := svc.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("repair_id", id.String()),
		attribute.String("requested_status", string(requested)),
	))
	defer span.End()

	log := logger.With(
		logger.UUID("repair_id", id),
		logger.String("requested_status", string(requested)),
	)

	rep, err := svc.repairByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository repair by id", logger.ErrorF(err))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	from := rep.Status
	if err := workflow.Apply(rep, requested, svc.now().UTC()); err != nil {
		log.Warn(ctx, "illegal transition", logger.String("status", string(from)))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.UpdateStatus(wdbCtx, model.StatusChange{
		RepairID:    id,
		From:        from,
		To:          rep.Status,
		CompletedAt: rep.CompletedAt,
	}); err != nil {
		log.Error(ctx, "repository update status", logger.ErrorF(err))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	log.Info(ctx, "repair status changed", logger.String("from", string(from)))

	svc.invalidateSummary(ctx)
	svc.publish(ctx, model.RepairStatusChanged, rep)

	return rep, nil
}

// Delete returns every consumed part to stock and removes the repair.
// A part that no longer exists becomes a warning; any other stock failure aborts before removal.
func (svc *service) Delete(ctx context.Context, id uuid.UUID) (*model.DeleteRepairResult, error) {
	const op string = "repair.service.Delete"
	ctx, span := svc.tracer.Start(ctx, op, trace.WithAttributes(
		attribute.String("repair_id", id.String()),
	))
	defer span.End()

	log := logger.With(logger.UUID("repair_id", id))

	rep, err := svc.repairByID(ctx, id)
	if err != nil {
		log.Error(ctx, "repository repair by id", logger.ErrorF(err))
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	res := &model.DeleteRepairResult{
		RepairID:  id,
		Restocked: make([]model.StockChange, 0, len(rep.Parts)),
	}
	ref := model.StockRef{Type: model.MovementRepairReturn, RepairID: &id, Note: "repair deleted"}

	for _, u := range rep.Parts {
		change, err := svc.ledger.Restock(ctx, u.PartID, u.Quantity, ref)
		if err != nil {
			if errors.Is(err, model.ErrPartNotFound) {
				log.Warn(ctx, "restock skipped: part not found", logger.UUID("part_id", u.PartID))
				res.Warnings = append(res.Warnings, model.DeleteWarning{
					PartID:   u.PartID,
					Quantity: u.Quantity,
					Reason:   model.ErrPartNotFound.Error(),
				})
				continue
			}

			log.Error(ctx, "restock part", logger.UUID("part_id", u.PartID), logger.ErrorF(err))
			svc.takeBack(ctx, id, res.Restocked)
			return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
		}

		res.Restocked = append(res.Restocked, *change)
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer wdbCancel()

	if err := svc.repo.Delete(wdbCtx, id); err != nil {
		log.Error(ctx, "repository delete repair", logger.ErrorF(err))
		svc.takeBack(ctx, id, res.Restocked)
		return nil, svc.fail(span, fmt.Errorf("%s: %w", op, err))
	}

	log.Info(ctx, "repair deleted",
		logger.Int("number_restocked", len(res.Restocked)),
		logger.Int("number_warnings", len(res.Warnings)),
	)

	svc.invalidateSummary(ctx)
	svc.publish(ctx, model.RepairDeleted, rep)

	return res, nil
}

func (svc *service) RepairByID(ctx context.Context, id uuid.UUID) (*model.Repair, error) {
	const op string = "repair.service.RepairByID"

	rep, err := svc.repairByID(ctx, id)
	if err != nil {
		logger.Error(ctx, "repository repair by id",
			logger.UUID("repair_id", id),
			logger.ErrorF(err),
		)
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return rep, nil
}

func (svc *service) List(ctx context.Context, filter model.RepairFilter) ([]model.Repair, error) {
	const op string = "repair.service.List"

	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%s: %w %q", op, model.ErrUnknownStatus, *filter.Status)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	repairs, err := svc.repo.List(ctx, filter)
	if err != nil {
		logger.Error(ctx, "repository list repairs", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return repairs, nil
}

// Summary serves dashboard counters, preferring the cache.
func (svc *service) Summary(ctx context.Context) (*model.RepairSummary, error) {
	const op string = "repair.service.Summary"

	if svc.cache != nil {
		s, err := svc.cache.Summary(ctx)
		if err == nil {
			return s, nil
		}
		if !errors.Is(err, model.ErrCacheMiss) {
			logger.Warn(ctx, "cache summary", logger.ErrorF(err))
		}
	}

	rdbCtx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	s, err := svc.repo.Summary(rdbCtx)
	if err != nil {
		logger.Error(ctx, "repository summary", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if svc.cache != nil {
		if err := svc.cache.SetSummary(ctx, s); err != nil {
			logger.Warn(ctx, "cache set summary", logger.ErrorF(err))
		}
	}

	return s, nil
}

func (svc *service) repairByID(ctx context.Context, id uuid.UUID) (*model.Repair, error) {
	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	return svc.repo.RepairByID(ctx, id)
}

func (svc *service) checkDevice(ctx context.Context, brandID, modelID uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	dm, err := svc.catalog.ModelByID(ctx, modelID)
	if err != nil {
		return err
	}
	if dm.BrandID != brandID {
		return fmt.Errorf("model %s does not belong to brand %s: %w", modelID, brandID, model.ErrValidation)
	}

	return nil
}

// consumeAll takes stock part by part in ascending id order.
// On the first failure everything taken so far is put back.
func (svc *service) consumeAll(
	ctx context.Context,
	repairID uuid.UUID,
	requests []model.PartRequest,
) ([]*model.Consumption, error) {
	ref := model.StockRef{Type: model.MovementRepairOut, RepairID: &repairID}
	consumed := make([]*model.Consumption, 0, len(requests))

	for _, req := range requests {
		c, err := svc.ledger.ReserveAndConsume(ctx, req.PartID, req.Quantity, ref)
		if err != nil {
			svc.returnStock(ctx, repairID, consumedChanges(consumed))
			return nil, err
		}
		consumed = append(consumed, c)
	}

	return consumed, nil
}

// returnStock undoes consumptions of a repair that was never stored.
func (svc *service) returnStock(ctx context.Context, repairID uuid.UUID, changes []model.StockChange) {
	ref := model.StockRef{Type: model.MovementRepairReturn, RepairID: &repairID, Note: "repair creation rolled back"}

	for i := len(changes) - 1; i >= 0; i-- {
		c := changes[i]

		cctx, cancel := svc.compensationContext(ctx)
		_, err := svc.ledger.Restock(cctx, c.PartID, c.Quantity, ref)
		cancel()

		if err != nil {
			logger.Error(ctx, "rollback restock",
				logger.UUID("repair_id", repairID),
				logger.UUID("part_id", c.PartID),
				logger.Int64("quantity", c.Quantity),
				logger.ErrorF(err),
			)
		}
	}
}

// takeBack re-consumes stock returned by an aborted deletion; the repair still owns it.
func (svc *service) takeBack(ctx context.Context, repairID uuid.UUID, changes []model.StockChange) {
	ref := model.StockRef{Type: model.MovementRepairOut, RepairID: &repairID, Note: "repair deletion aborted"}

	for i := len(changes) - 1; i >= 0; i-- {
		c := changes[i]

		cctx, cancel := svc.compensationContext(ctx)
		_, err := svc.ledger.ReserveAndConsume(cctx, c.PartID, c.Quantity, ref)
		cancel()

		if err != nil {
			logger.Error(ctx, "abort delete: take back stock",
				logger.UUID("repair_id", repairID),
				logger.UUID("part_id", c.PartID),
				logger.Int64("quantity", c.Quantity),
				logger.ErrorF(err),
			)
		}
	}
}

// compensationContext ignores the caller's cancellation and carries its own write deadline.
func (svc *service) compensationContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), svc.writeDBTimeout)
}

func (svc *service) invalidateSummary(ctx context.Context) {
	if svc.cache == nil {
		return
	}

	if err := svc.cache.Invalidate(ctx); err != nil {
		logger.Warn(ctx, "cache invalidate summary", logger.ErrorF(err))
	}
}

func (svc *service) publish(ctx context.Context, typ model.RepairEventType, rep *model.Repair) {
	if svc.events == nil {
		return
	}

	err := svc.events.SendRepairEvent(ctx, model.RepairEvent{
		EventID:    uuid.New(),
		Type:       typ,
		RepairID:   rep.ID,
		Status:     rep.Status,
		TotalCost:  rep.TotalCost,
		Profit:     rep.Profit,
		OccurredAt: svc.now().UTC(),
	})
	if err != nil {
		logger.Warn(ctx, "send repair event",
			logger.UUID("repair_id", rep.ID),
			logger.String("event_type", string(typ)),
			logger.ErrorF(err),
		)
	}
}

func (svc *service) fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}

func validateCreate(params model.CreateRepairParams) error {
	switch {
	case params.CustomerName == "":
		return fmt.Errorf("empty customer name: %w", model.ErrValidation)
	case utf8.RuneCountInString(params.CustomerPhone) > maxPhoneLength:
		return fmt.Errorf("customer phone longer than %d: %w", maxPhoneLength, model.ErrValidation)
	case params.BrandID == uuid.Nil || params.ModelID == uuid.Nil:
		return fmt.Errorf("brand and model are required: %w", model.ErrValidation)
	case params.LaborCost.IsNegative():
		return fmt.Errorf("negative labor cost: %w", model.ErrValidation)
	}

	for _, p := range params.Parts {
		if p.PartID == uuid.Nil {
			return fmt.Errorf("empty part id: %w", model.ErrValidation)
		}
		if p.Quantity <= 0 {
			return fmt.Errorf("part %s quantity %d: %w", p.PartID, p.Quantity, model.ErrValidation)
		}
	}

	return nil
}

// mergeRequests sums duplicate part requests and orders them by part id,
// which fixes the lock order across concurrent creations.
func mergeRequests(parts []model.PartRequest) []model.PartRequest {
	merged := make(map[uuid.UUID]int64, len(parts))
	for _, p := range parts {
		merged[p.PartID] += p.Quantity
	}

	requests := lo.MapToSlice(merged, func(id uuid.UUID, qty int64) model.PartRequest {
		return model.PartRequest{PartID: id, Quantity: qty}
	})
	sort.Slice(requests, func(i, j int) bool {
		return requests[i].PartID.String() < requests[j].PartID.String()
	})

	return requests
}

func consumedChanges(consumed []*model.Consumption) []model.StockChange {
	return lo.Map(consumed, func(c *model.Consumption, _ int) model.StockChange {
		return c.StockChange
	})
}
