package http

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/you-humble/repair-workshop/internal/model"
)

func (h *handler) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req nameRequest
	if err := h.decode(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	b, err := h.catalog.CreateBrand(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, brandResponse{
		ID:         b.ID,
		Name:       b.Name,
		ModelCount: b.ModelCount,
		CreatedAt:  b.CreatedAt,
	})
}

func (h *handler) ListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := h.catalog.Brands(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, lo.Map(brands, func(b model.Brand, _ int) brandResponse {
		return brandResponse{ID: b.ID, Name: b.Name, ModelCount: b.ModelCount, CreatedAt: b.CreatedAt}
	}))
}

func (h *handler) CreateModel(w http.ResponseWriter, r *http.Request) {
	brandID, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req nameRequest
	if err := h.decode(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, err := h.catalog.CreateModel(r.Context(), brandID, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, modelResponse{ID: m.ID, BrandID: m.BrandID, Name: m.Name, CreatedAt: m.CreatedAt})
}

func (h *handler) ListModels(w http.ResponseWriter, r *http.Request) {
	brandID, err := queryUUID(r, "brand_id")
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	models, err := h.catalog.Models(r.Context(), brandID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, lo.Map(models, func(m model.DeviceModel, _ int) modelResponse {
		return modelResponse{ID: m.ID, BrandID: m.BrandID, Name: m.Name, CreatedAt: m.CreatedAt}
	}))
}
