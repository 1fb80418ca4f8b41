package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/you-humble/repair-workshop/internal/model"
)

// CatalogNames resolves brand and model names for search; nil disables name matching.
type CatalogNames interface {
	BrandByID(ctx context.Context, id uuid.UUID) (*model.Brand, error)
	ModelByID(ctx context.Context, id uuid.UUID) (*model.DeviceModel, error)
}

type repairRepository struct {
	mu      sync.RWMutex
	repairs map[uuid.UUID]model.Repair
	catalog CatalogNames
}

func NewRepairRepository(catalog CatalogNames) *repairRepository {
	return &repairRepository{
		repairs: make(map[uuid.UUID]model.Repair),
		catalog: catalog,
	}
}

// Create stores the repair and its usages as one unit.
func (r *repairRepository) Create(_ context.Context, rep *model.Repair) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	if _, ok := r.repairs[rep.ID]; ok {
		return uuid.Nil, model.ErrAlreadyExists
	}

	now := time.Now().UTC()
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = now
	}
	rep.UpdatedAt = now

	for i := range rep.Parts {
		if rep.Parts[i].ID == uuid.Nil {
			rep.Parts[i].ID = uuid.New()
		}
		rep.Parts[i].RepairID = rep.ID
	}

	r.repairs[rep.ID] = cloneRepair(*rep)

	return rep.ID, nil
}

func (r *repairRepository) RepairByID(ctx context.Context, id uuid.UUID) (*model.Repair, error) {
	r.mu.RLock()
	rep, ok := r.repairs[id]
	r.mu.RUnlock()

	if !ok {
		return nil, model.ErrRepairNotFound
	}

	rep = cloneRepair(rep)
	r.fillNames(ctx, &rep)

	return &rep, nil
}

// UpdateStatus is a compare-and-swap on the current status.
func (r *repairRepository) UpdateStatus(_ context.Context, change model.StatusChange) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rep, ok := r.repairs[change.RepairID]
	if !ok {
		return model.ErrRepairNotFound
	}
	if rep.Status != change.From {
		return model.ErrIllegalTransition
	}

	rep.Status = change.To
	rep.CompletedAt = change.CompletedAt
	rep.UpdatedAt = time.Now().UTC()
	r.repairs[change.RepairID] = rep

	return nil
}

func (r *repairRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.repairs[id]; !ok {
		return model.ErrRepairNotFound
	}
	delete(r.repairs, id)

	return nil
}

func (r *repairRepository) List(ctx context.Context, filter model.RepairFilter) ([]model.Repair, error) {
	r.mu.RLock()
	all := lo.Map(lo.Values(r.repairs), func(rep model.Repair, _ int) model.Repair {
		return cloneRepair(rep)
	})
	r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	repairs := make([]model.Repair, 0, len(all))
	for _, rep := range all {
		r.fillNames(ctx, &rep)

		if filter.Status != nil && rep.Status != *filter.Status {
			continue
		}
		if filter.BrandID != nil && rep.BrandID != *filter.BrandID {
			continue
		}
		if search != "" && !matches(search, rep.CustomerName, rep.CustomerPhone, rep.BrandName, rep.ModelName) {
			continue
		}
		repairs = append(repairs, rep)
	}

	sort.Slice(repairs, func(i, j int) bool {
		return repairs[i].CreatedAt.After(repairs[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= uint64(len(repairs)) {
			return []model.Repair{}, nil
		}
		repairs = repairs[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < uint64(len(repairs)) {
		repairs = repairs[:filter.Limit]
	}

	return repairs, nil
}

func (r *repairRepository) Summary(_ context.Context) (*model.RepairSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := &model.RepairSummary{
		ByStatus: make(map[model.RepairStatus]int64, len(model.RepairStatuses)),
		Revenue:  decimal.Zero,
		Profit:   decimal.Zero,
		Labor:    decimal.Zero,
	}
	for _, st := range model.RepairStatuses {
		s.ByStatus[st] = 0
	}

	for _, rep := range r.repairs {
		s.Total++
		s.ByStatus[rep.Status]++

		switch rep.Status {
		case model.StatusPending, model.StatusInProgress:
			s.Open++
		case model.StatusCompleted, model.StatusArchived:
			s.Revenue = s.Revenue.Add(rep.TotalCost)
			s.Profit = s.Profit.Add(rep.Profit)
			s.Labor = s.Labor.Add(rep.LaborCost)
		}
	}

	return s, nil
}

func (r *repairRepository) fillNames(ctx context.Context, rep *model.Repair) {
	if r.catalog == nil {
		return
	}
	if b, err := r.catalog.BrandByID(ctx, rep.BrandID); err == nil {
		rep.BrandName = b.Name
	}
	if m, err := r.catalog.ModelByID(ctx, rep.ModelID); err == nil {
		rep.ModelName = m.Name
	}
}

func matches(search string, fields ...string) bool {
	return lo.SomeBy(fields, func(f string) bool {
		return strings.Contains(strings.ToLower(f), search)
	})
}

func cloneRepair(rep model.Repair) model.Repair {
	rep.Parts = append([]model.PartUsage(nil), rep.Parts...)
	if rep.CompletedAt != nil {
		completedAt := *rep.CompletedAt
		rep.CompletedAt = &completedAt
	}

	return rep
}
