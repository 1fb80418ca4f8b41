package http

import (
	"net/http"

	"github.com/you-humble/repair-workshop/internal/model"
)

func (h *handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.settings.Settings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, settingsToResponse(s))
}

func (h *handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req settingsRequest
	if err := h.decode(w, r, &req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	s, err := h.settings.Update(r.Context(), model.WorkshopSettings{
		Name:            req.Name,
		Address:         req.Address,
		Phone:           req.Phone,
		ThankYouMessage: req.ThankYouMessage,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, settingsToResponse(s))
}
