package public

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"log/slog"

	"educafric/internal/domain"
	"educafric/pkg/validator"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type LocationTracker interface {
	TrackLocation(ctx context.Context, req domain.TrackLocationRequest) (domain.TrackLocationResponse, error)
}

type PanicTrigger interface {
	TriggerPanic(ctx context.Context, req domain.TriggerPanicRequest) (domain.TriggerPanicResponse, error)
}

type Handler struct {
	logger          *slog.Logger
	LocationTracker LocationTracker
	PanicTrigger    PanicTrigger
}

func NewHandler(logger *slog.Logger, tracker LocationTracker, panics PanicTrigger) *Handler {
	return &Handler{
		logger:          logger,
		LocationTracker: tracker,
		PanicTrigger:    panics,
	}
}

func (h *Handler) PublicLocationTrack(w http.ResponseWriter, r *http.Request) {
	var req domain.TrackLocationRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	// reject trailing garbage after the first JSON object
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.LocationTracker.TrackLocation(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) PublicPanicTrigger(w http.ResponseWriter, r *http.Request) {
	var req domain.TriggerPanicRequest

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := dec.Decode(&struct{}{}); err != io.EOF {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	resp, err := h.PanicTrigger.TriggerPanic(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, resp)
}
