package http

import (
	"net/http"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/repair-workshop/internal/model"
)

func (h *handler) CreateRepair(w http.ResponseWriter, r *http.Request) {
	var req createRepairRequest
	if err := h.decode(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	rep, err := h.repairs.Create(r.Context(), req.toParams())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, repairToResponse(rep))
}

func (h *handler) ListRepairs(w http.ResponseWriter, r *http.Request) {
	filter, err := repairFilterFromQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	repairs, err := h.repairs.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, lo.Map(repairs, func(rep model.Repair, _ int) repairResponse {
		return repairToResponse(&rep)
	}))
}

func (h *handler) RepairSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.repairs.Summary(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, summaryResponse{
		Total:    s.Total,
		ByStatus: s.ByStatus,
		Open:     s.Open,
		Revenue:  s.Revenue,
		Profit:   s.Profit,
		Labor:    s.Labor,
	})
}

func (h *handler) GetRepair(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	rep, err := h.repairs.RepairByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, repairToResponse(rep))
}

func (h *handler) ChangeRepairStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req changeStatusRequest
	if err := h.decode(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	rep, err := h.repairs.ChangeStatus(r.Context(), id, model.RepairStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, repairToResponse(rep))
}

func (h *handler) DeleteRepair(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	res, err := h.repairs.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, deleteResultToResponse(res))
}

func repairFilterFromQuery(r *http.Request) (model.RepairFilter, error) {
	q := r.URL.Query()
	filter := model.RepairFilter{Search: q.Get("search")}

	if raw := q.Get("status"); raw != "" {
		status := model.RepairStatus(raw)
		filter.Status = &status
	}

	brandID, err := queryUUID(r, "brand_id")
	if err != nil {
		return filter, err
	}
	filter.BrandID = brandID

	if filter.Limit, err = queryUint(r, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = queryUint(r, "offset"); err != nil {
		return filter, err
	}

	return filter, nil
}
