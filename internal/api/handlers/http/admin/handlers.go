package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"educafric/internal/domain"
	"educafric/pkg/validator"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type ZoneAdmin interface {
	Create(ctx context.Context, req domain.CreateSafeZoneRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.SafeZone, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SafeZone, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateSafeZoneRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type EmergencyResolver interface {
	Resolve(ctx context.Context, id uuid.UUID) error
}

type StatsGetter interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.TrackingStats, error)
}

type Handler struct {
	logger      *slog.Logger
	Zones       ZoneAdmin
	Emergencies EmergencyResolver
	Stats       StatsGetter
}

func NewHandler(logger *slog.Logger, zones ZoneAdmin, emergencies EmergencyResolver, stats StatsGetter) *Handler {
	return &Handler{
		logger:      logger,
		Zones:       zones,
		Emergencies: emergencies,
		Stats:       stats,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) AdminZoneCreate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneCreate", slog.String("remote", r.RemoteAddr))

	var req domain.CreateSafeZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	l.Info("creating safe zone",
		slog.String("name", req.Name),
		slog.Float64("center_lat", req.CenterLat),
		slog.Float64("center_lng", req.CenterLng),
		slog.Float64("radius_m", req.RadiusM),
		slog.String("zone_type", string(req.ZoneType)),
	)

	id, err := h.Zones.Create(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("safe zone created", slog.String("id", id.String()))
	h.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *Handler) AdminZoneList(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneList", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	page := parseInt(r.URL.Query().Get("page"), 1)
	limit := parseInt(r.URL.Query().Get("limit"), 20)
	if limit > 100 {
		limit = 100
		l.Warn("limit capped", slog.Int("limit", limit))
	}

	zones, total, err := h.Zones.List(r.Context(), page, limit)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("safe zones listed", slog.Int("count", len(zones)), slog.Int64("total", total))
	h.writeJSON(w, http.StatusOK, map[string]any{
		"zones": zones,
		"total": total,
		"page":  page,
		"limit": limit,
	})
}

func (h *Handler) AdminZoneGet(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneGet", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	zone, err := h.Zones.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, zone)
}

func (h *Handler) AdminZoneUpdate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneUpdate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateSafeZoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := validator.ValidateStruct(&req); err != nil {
		l.Warn("validation failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if err := h.Zones.Update(r.Context(), id, req); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminZoneDeactivate(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminZoneDeactivate", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Zones.Deactivate(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminEmergencyResolve(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminEmergencyResolve", slog.String("remote", r.RemoteAddr))

	id, ok := h.parseID(w, r)
	if !ok {
		return
	}

	if err := h.Emergencies.Resolve(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AdminStats(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)
	l.Debug("AdminStats", slog.String("query", r.URL.RawQuery), slog.String("remote", r.RemoteAddr))

	minutesStr := r.URL.Query().Get("minutes")
	if minutesStr == "" {
		minutesStr = "60"
	}

	minutes, err := strconv.Atoi(minutesStr)
	if err != nil || minutes <= 0 || minutes > 1440 {
		l.Warn("invalid minutes", slog.String("minutes", minutesStr))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "minutes must be 1-1440"})
		return
	}

	stats, err := h.Stats.GetStats(r.Context(), domain.StatsRequest{Minutes: minutes})
	if err != nil {
		l.Error("Stats.GetStats failed", slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	l.Info("stats success", slog.Int("minutes", minutes))
	h.writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.log(r).Warn("invalid id", slog.String("id", idStr), slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
