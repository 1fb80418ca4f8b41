package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/repair-workshop/internal/model"
)

type partRepository struct {
	mu        sync.RWMutex
	parts     map[uuid.UUID]model.SparePart
	movements []model.StockMovement
}

func NewPartRepository() *partRepository {
	return &partRepository{parts: make(map[uuid.UUID]model.SparePart)}
}

func (r *partRepository) Create(_ context.Context, p *model.SparePart) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if _, ok := r.parts[p.ID]; ok {
		return uuid.Nil, model.ErrAlreadyExists
	}

	now := time.Now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now
	r.parts[p.ID] = *p

	if p.Quantity > 0 {
		r.movements = append(r.movements, model.StockMovement{
			ID:            uuid.New(),
			PartID:        p.ID,
			Type:          model.MovementInitial,
			Delta:         p.Quantity,
			QuantityAfter: p.Quantity,
			CreatedAt:     now,
		})
	}

	return p.ID, nil
}

func (r *partRepository) PartByID(_ context.Context, id uuid.UUID) (*model.SparePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.parts[id]
	if !ok {
		return nil, model.ErrPartNotFound
	}

	return &p, nil
}

func (r *partRepository) UpdateQuantity(_ context.Context, upd model.QuantityUpdate) error {
	if upd.To < 0 {
		return model.ErrValidation
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.parts[upd.PartID]
	if !ok {
		return model.ErrPartNotFound
	}
	if p.Quantity != upd.From {
		return model.ErrStockConflict
	}

	p.Quantity = upd.To
	p.UpdatedAt = time.Now().UTC()
	r.parts[p.ID] = p
	r.movements = append(r.movements, upd.Movement)

	return nil
}

func (r *partRepository) List(_ context.Context, filter model.PartsFilter) ([]model.SparePart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search := strings.ToLower(strings.TrimSpace(filter.Search))
	parts := lo.Filter(lo.Values(r.parts), func(p model.SparePart, _ int) bool {
		if search != "" && !strings.Contains(strings.ToLower(p.Name), search) {
			return false
		}
		if filter.Category != "" && !strings.EqualFold(p.Category, filter.Category) {
			return false
		}
		if filter.BrandID != nil && p.BrandID != *filter.BrandID {
			return false
		}
		if filter.ModelID != nil && p.ModelID != *filter.ModelID {
			return false
		}
		if filter.LowStockOnly && !p.IsLowStock() {
			return false
		}
		return true
	})

	sort.Slice(parts, func(i, j int) bool { return parts[i].Name < parts[j].Name })

	return parts, nil
}

func (r *partRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parts[id]; !ok {
		return model.ErrPartNotFound
	}
	delete(r.parts, id)

	return nil
}

func (r *partRepository) Movements(_ context.Context, partID uuid.UUID) ([]model.StockMovement, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return lo.Filter(r.movements, func(m model.StockMovement, _ int) bool {
		return m.PartID == partID
	}), nil
}
