package memory

import (
	"context"
	"sync"
	"time"

	"github.com/you-humble/repair-workshop/internal/model"
)

type settingsRepository struct {
	mu       sync.RWMutex
	settings model.WorkshopSettings
}

func NewSettingsRepository() *settingsRepository {
	return &settingsRepository{}
}

func (r *settingsRepository) Settings(_ context.Context) (*model.WorkshopSettings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s := r.settings
	return &s, nil
}

func (r *settingsRepository) Update(_ context.Context, s *model.WorkshopSettings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.UpdatedAt = time.Now().UTC()
	r.settings = *s

	return nil
}
