package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/logger"
)

type SettingsRepository interface {
	Settings(ctx context.Context) (*model.WorkshopSettings, error)
	Update(ctx context.Context, s *model.WorkshopSettings) error
}

type service struct {
	repo           SettingsRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewSettingsService(repository SettingsRepository, readDBTimeout, writeDBTimeout time.Duration) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) Settings(ctx context.Context) (*model.WorkshopSettings, error) {
	const op string = "settings.service.Settings"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	s, err := svc.repo.Settings(ctx)
	if err != nil {
		logger.Error(ctx, "repository settings", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

func (svc *service) Update(ctx context.Context, upd model.WorkshopSettings) (*model.WorkshopSettings, error) {
	const op string = "settings.service.Update"

	s := &model.WorkshopSettings{
		Name:            strings.TrimSpace(upd.Name),
		Address:         strings.TrimSpace(upd.Address),
		Phone:           strings.TrimSpace(upd.Phone),
		ThankYouMessage: strings.TrimSpace(upd.ThankYouMessage),
	}
	if s.Name == "" {
		return nil, fmt.Errorf("%s: empty workshop name: %w", op, model.ErrValidation)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	if err := svc.repo.Update(ctx, s); err != nil {
		logger.Error(ctx, "repository update settings", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}
