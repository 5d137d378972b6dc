package transport

import (
	"encoding/json"
	"errors"
	"net/http"

	"sushimenu/internal/logger"
	"sushimenu/internal/sushi"

	"go.uber.org/zap"
)

type SushiHandler struct {
	svc sushi.Service
}

func NewSushiHandler(svc sushi.Service) *SushiHandler {
	return &SushiHandler{svc: svc}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (h *SushiHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list sushi")
		return
	}

	if items == nil {
		items = []sushi.Sushi{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *SushiHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}

	item, err := h.svc.GetByID(r.Context(), id)
	if errors.Is(err, sushi.ErrNotFound) {
		writeError(w, http.StatusNotFound, sushi.ErrNotFound.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to get sushi")
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *SushiHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input sushi.CreateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	created, err := h.svc.Create(r.Context(), input)
	if err != nil {
		var verr *sushi.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":  "invalid input",
				"fields": verr.Fields,
			})
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to create sushi")
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (h *SushiHandler) Archive(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "id required")
		return
	}

	archived, err := h.svc.Archive(r.Context(), id)
	switch {
	case errors.Is(err, sushi.ErrNotFound):
		writeError(w, http.StatusNotFound, sushi.ErrNotFound.Error())
		return
	case errors.Is(err, sushi.ErrAlreadyArchived):
		writeError(w, http.StatusConflict, sushi.ErrAlreadyArchived.Error())
		return
	case err != nil:
		logger.FromCtx(r.Context()).Error("archive failed", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to archive sushi")
		return
	}

	writeJSON(w, http.StatusOK, archived)
}
