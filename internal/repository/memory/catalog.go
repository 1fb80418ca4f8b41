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

type catalogRepository struct {
	mu     sync.RWMutex
	brands map[uuid.UUID]model.Brand
	models map[uuid.UUID]model.DeviceModel
}

func NewCatalogRepository() *catalogRepository {
	return &catalogRepository{
		brands: make(map[uuid.UUID]model.Brand),
		models: make(map[uuid.UUID]model.DeviceModel),
	}
}

func (r *catalogRepository) CreateBrand(_ context.Context, b *model.Brand) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.brands {
		if strings.EqualFold(existing.Name, b.Name) {
			return uuid.Nil, model.ErrAlreadyExists
		}
	}

	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	b.CreatedAt = time.Now().UTC()
	r.brands[b.ID] = *b

	return b.ID, nil
}

func (r *catalogRepository) BrandByID(_ context.Context, id uuid.UUID) (*model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.brands[id]
	if !ok {
		return nil, model.ErrBrandNotFound
	}
	b.ModelCount = r.modelCount(id)

	return &b, nil
}

func (r *catalogRepository) Brands(_ context.Context, search string) ([]model.Brand, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	search = strings.ToLower(strings.TrimSpace(search))
	brands := lo.FilterMap(lo.Values(r.brands), func(b model.Brand, _ int) (model.Brand, bool) {
		b.ModelCount = r.modelCount(b.ID)
		return b, search == "" || strings.Contains(strings.ToLower(b.Name), search)
	})

	sort.Slice(brands, func(i, j int) bool { return brands[i].Name < brands[j].Name })

	return brands, nil
}

func (r *catalogRepository) CreateModel(_ context.Context, m *model.DeviceModel) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.brands[m.BrandID]; !ok {
		return uuid.Nil, model.ErrBrandNotFound
	}
	for _, existing := range r.models {
		if existing.BrandID == m.BrandID && strings.EqualFold(existing.Name, m.Name) {
			return uuid.Nil, model.ErrAlreadyExists
		}
	}

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.CreatedAt = time.Now().UTC()
	r.models[m.ID] = *m

	return m.ID, nil
}

func (r *catalogRepository) Models(_ context.Context, brandID *uuid.UUID) ([]model.DeviceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	models := lo.Filter(lo.Values(r.models), func(m model.DeviceModel, _ int) bool {
		return brandID == nil || m.BrandID == *brandID
	})

	sort.Slice(models, func(i, j int) bool { return models[i].Name < models[j].Name })

	return models, nil
}

func (r *catalogRepository) ModelByID(_ context.Context, id uuid.UUID) (*model.DeviceModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[id]
	if !ok {
		return nil, model.ErrModelNotFound
	}

	return &m, nil
}

func (r *catalogRepository) modelCount(brandID uuid.UUID) int64 {
	return int64(lo.CountBy(lo.Values(r.models), func(m model.DeviceModel) bool {
		return m.BrandID == brandID
	}))
}
