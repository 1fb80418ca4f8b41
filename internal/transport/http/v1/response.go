package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/you-humble/repair-workshop/internal/model"
	"github.com/you-humble/repair-workshop/platform/logger"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if body == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, errorResponse{Code: status, Message: msg})
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrUnknownStatus):
		writeError(w, r, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrRepairNotFound),
		errors.Is(err, model.ErrBrandNotFound),
		errors.Is(err, model.ErrModelNotFound):
		writeError(w, r, http.StatusNotFound, err.Error()) // 404
	case errors.Is(err, model.ErrIllegalTransition),
		errors.Is(err, model.ErrStockConflict),
		errors.Is(err, model.ErrAlreadyExists):
		writeError(w, r, http.StatusConflict, err.Error()) // 409
	case errors.Is(err, model.ErrInsufficientStock):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error()) // 422
	default:
		logger.Error(r.Context(), "unhandled service error", logger.ErrorF(err))
		writeError(w, r, http.StatusInternalServerError, "internal server error") // 500
	}
}

// decode reads a JSON body into dst and validates it.
func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid body: %s", model.ErrValidation, err.Error())
	}
	if err := h.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %s", model.ErrValidation, err.Error())
	}

	return nil
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: invalid id", model.ErrValidation)
	}

	return id, nil
}

func queryUUID(r *http.Request, key string) (*uuid.UUID, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s", model.ErrValidation, key)
	}

	return &id, nil
}

func queryUint(r *http.Request, key string) (uint64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}

	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %s", model.ErrValidation, key)
	}

	return v, nil
}
