package http

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/you-humble/repair-workshop/internal/model"
)

type RepairService interface {
	Create(ctx context.Context, params model.CreateRepairParams) (*model.Repair, error)
	ChangeStatus(ctx context.Context, id uuid.UUID, requested model.RepairStatus) (*model.Repair, error)
	Delete(ctx context.Context, id uuid.UUID) (*model.DeleteRepairResult, error)
	RepairByID(ctx context.Context, id uuid.UUID) (*model.Repair, error)
	List(ctx context.Context, filter model.RepairFilter) ([]model.Repair, error)
	Summary(ctx context.Context) (*model.RepairSummary, error)
}

type PartService interface {
	Create(ctx context.Context, params model.CreatePartParams) (*model.SparePart, error)
	Part(ctx context.Context, id uuid.UUID) (*model.SparePart, error)
	List(ctx context.Context, filter model.PartsFilter) ([]model.SparePart, error)
	LowStock(ctx context.Context) ([]model.SparePart, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Receive(ctx context.Context, id uuid.UUID, quantity int64, note string) (*model.StockChange, error)
	Movements(ctx context.Context, id uuid.UUID) ([]model.StockMovement, error)
}

type CatalogService interface {
	CreateBrand(ctx context.Context, name string) (*model.Brand, error)
	Brands(ctx context.Context, search string) ([]model.Brand, error)
	CreateModel(ctx context.Context, brandID uuid.UUID, name string) (*model.DeviceModel, error)
	Models(ctx context.Context, brandID *uuid.UUID) ([]model.DeviceModel, error)
}

type SettingsService interface {
	Settings(ctx context.Context) (*model.WorkshopSettings, error)
	Update(ctx context.Context, upd model.WorkshopSettings) (*model.WorkshopSettings, error)
}

type handler struct {
	repairs  RepairService
	parts    PartService
	catalog  CatalogService
	settings SettingsService
	validate *validator.Validate
}

func NewHandler(
	repairs RepairService,
	parts PartService,
	catalog CatalogService,
	settings SettingsService,
) *handler {
	return &handler{
		repairs:  repairs,
		parts:    parts,
		catalog:  catalog,
		settings: settings,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Routes mounts the v1 API under r.
func (h *handler) Routes(r chi.Router) {
	r.Route("/repairs", func(r chi.Router) {
		r.Post("/", h.CreateRepair)
		r.Get("/", h.ListRepairs)
		r.Get("/summary", h.RepairSummary)
		r.Get("/{id}", h.GetRepair)
		r.Patch("/{id}/status", h.ChangeRepairStatus)
		r.Delete("/{id}", h.DeleteRepair)
	})

	r.Route("/parts", func(r chi.Router) {
		r.Post("/", h.CreatePart)
		r.Get("/", h.ListParts)
		r.Get("/low-stock", h.LowStockParts)
		r.Get("/{id}", h.GetPart)
		r.Delete("/{id}", h.DeletePart)
		r.Post("/{id}/receive", h.ReceivePart)
		r.Get("/{id}/movements", h.PartMovements)
	})

	r.Route("/brands", func(r chi.Router) {
		r.Post("/", h.CreateBrand)
		r.Get("/", h.ListBrands)
		r.Post("/{id}/models", h.CreateModel)
	})
	r.Get("/models", h.ListModels)

	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.UpdateSettings)
}
