package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/logger"
)

const maxNameLength = 100

type CatalogRepository interface {
	CreateBrand(ctx context.Context, b *model.Brand) (uuid.UUID, error)
	BrandByID(ctx context.Context, id uuid.UUID) (*model.Brand, error)
	Brands(ctx context.Context, search string) ([]model.Brand, error)
	CreateModel(ctx context.Context, m *model.DeviceModel) (uuid.UUID, error)
	Models(ctx context.Context, brandID *uuid.UUID) ([]model.DeviceModel, error)
	ModelByID(ctx context.Context, id uuid.UUID) (*model.DeviceModel, error)
}

type service struct {
	repo           CatalogRepository
	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewCatalogService(repository CatalogRepository, readDBTimeout, writeDBTimeout time.Duration) *service {
	return &service{
		repo:           repository,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

func (svc *service) CreateBrand(ctx context.Context, name string) (*model.Brand, error) {
	const op string = "catalog.service.CreateBrand"

	name, err := normalizeName(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	b := &model.Brand{Name: name}
	id, err := svc.repo.CreateBrand(ctx, b)
	if err != nil {
		logger.Error(ctx, "repository create brand", logger.String("name", name), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	b.ID = id

	return b, nil
}

func (svc *service) Brand(ctx context.Context, id uuid.UUID) (*model.Brand, error) {
	const op string = "catalog.service.Brand"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	b, err := svc.repo.BrandByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}

func (svc *service) Brands(ctx context.Context, search string) ([]model.Brand, error) {
	const op string = "catalog.service.Brands"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	brands, err := svc.repo.Brands(ctx, strings.TrimSpace(search))
	if err != nil {
		logger.Error(ctx, "repository brands", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return brands, nil
}

func (svc *service) CreateModel(ctx context.Context, brandID uuid.UUID, name string) (*model.DeviceModel, error) {
	const op string = "catalog.service.CreateModel"
	log := logger.With(logger.UUID("brand_id", brandID))

	name, err := normalizeName(name)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ctx, cancel := context.WithTimeout(ctx, svc.writeDBTimeout)
	defer cancel()

	m := &model.DeviceModel{BrandID: brandID, Name: name}
	id, err := svc.repo.CreateModel(ctx, m)
	if err != nil {
		log.Error(ctx, "repository create model", logger.String("name", name), logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	m.ID = id

	return m, nil
}

func (svc *service) Models(ctx context.Context, brandID *uuid.UUID) ([]model.DeviceModel, error) {
	const op string = "catalog.service.Models"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	models, err := svc.repo.Models(ctx, brandID)
	if err != nil {
		logger.Error(ctx, "repository models", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return models, nil
}

func (svc *service) ModelByID(ctx context.Context, id uuid.UUID) (*model.DeviceModel, error) {
	const op string = "catalog.service.ModelByID"

	ctx, cancel := context.WithTimeout(ctx, svc.readDBTimeout)
	defer cancel()

	m, err := svc.repo.ModelByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

func normalizeName(name string) (string, error) {
	name = strings.Join(strings.Fields(name), " ")
	if name == "" {
		return "", fmt.Errorf("empty name: %w", model.ErrValidation)
	}
	if len([]rune(name)) > maxNameLength {
		return "", fmt.Errorf("name longer than %d: %w", maxNameLength, model.ErrValidation)
	}

	return name, nil
}
