package http

import (
	"net/http"

	"github.com/samber/lo"

	"github.com/you-humble/repair-workshop/internal/model"
)

func (h *handler) CreatePart(w http.ResponseWriter, r *http.Request) {
	var req createPartRequest
	if err := h.decode(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	p, err := h.parts.Create(r.Context(), req.toParams())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, partToResponse(p))
}

func (h *handler) ListParts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := model.PartsFilter{
		Search:       q.Get("search"),
		Category:     q.Get("category"),
		LowStockOnly: q.Get("low_stock") == "true",
	}

	var err error
	if filter.BrandID, err = queryUUID(r, "brand_id"); err != nil {
		writeServiceError(w, r, err)
		return
	}
	if filter.ModelID, err = queryUUID(r, "model_id"); err != nil {
		writeServiceError(w, r, err)
		return
	}

	parts, err := h.parts.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, partsToResponse(parts))
}

func (h *handler) LowStockParts(w http.ResponseWriter, r *http.Request) {
	parts, err := h.parts.LowStock(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, partsToResponse(parts))
}

func (h *handler) GetPart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	p, err := h.parts.Part(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, partToResponse(p))
}

func (h *handler) DeletePart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	if err := h.parts.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) ReceivePart(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req receivePartRequest
	if err := h.decode(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	change, err := h.parts.Receive(r.Context(), id, req.Quantity, req.Note)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stockChangeToResponse(*change))
}

func (h *handler) PartMovements(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	movements, err := h.parts.Movements(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, lo.Map(movements, func(m model.StockMovement, _ int) movementResponse {
		return movementResponse{
			ID:            m.ID,
			Type:          m.Type,
			Delta:         m.Delta,
			QuantityAfter: m.QuantityAfter,
			RepairID:      m.RepairID,
			Note:          m.Note,
			CreatedAt:     m.CreatedAt,
		}
	}))
}
