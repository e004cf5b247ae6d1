package service

import (
	"context"
	"log/slog"
	"time"

	"educafric/internal/domain"
	"educafric/pkg/e"

	"github.com/google/uuid"
)

type trackingService struct {
	zones         SafeZoneRepository
	zoneCache     ZoneCacheService
	membership    MembershipStore
	alerts        AlertRepository
	checks        StatsRepository
	users         UserDirectory
	notifyQueue   NotifyQueue
	logger        *slog.Logger
	speedLimitKMH float64
	zoneCacheTTL  time.Duration
	now           func() time.Time
}

// NewTrackingService wires the evaluator into its collaborators. Passing a
// nil clock uses time.Now; tests inject a fixed instant to pin the time and
// day policy checks.
func NewTrackingService(
	zones SafeZoneRepository,
	zoneCache ZoneCacheService,
	membership MembershipStore,
	alerts AlertRepository,
	checks StatsRepository,
	users UserDirectory,
	notifyQueue NotifyQueue,
	logger *slog.Logger,
	speedLimitKMH float64,
	zoneCacheTTL time.Duration,
	clock func() time.Time,
) TrackingService {
	if speedLimitKMH <= 0 {
		speedLimitKMH = 50
	}
	if clock == nil {
		clock = time.Now
	}
	return &trackingService{
		zones:         zones,
		zoneCache:     zoneCache,
		membership:    membership,
		alerts:        alerts,
		checks:        checks,
		users:         users,
		notifyQueue:   notifyQueue,
		logger:        logger,
		speedLimitKMH: speedLimitKMH,
		zoneCacheTTL:  zoneCacheTTL,
		now:           clock,
	}
}

func (s *trackingService) TrackLocation(ctx context.Context, req domain.TrackLocationRequest) (domain.TrackLocationResponse, error) {
	s.logger.Info("location track START",
		slog.Int64("device_id", req.DeviceID),
		slog.Int64("user_id", req.UserID),
		slog.Float64("lat", req.Lat),
		slog.Float64("lng", req.Lng),
	)

	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		s.logger.Warn("invalid coordinates",
			slog.Int64("device_id", req.DeviceID),
			slog.Float64("lat", req.Lat),
			slog.Float64("lng", req.Lng),
		)
		return domain.TrackLocationResponse{}, e.ErrInvalidCoordinates
	}

	sample := sampleFromRequest(req)

	zones, err := s.loadZones(ctx, req.ScopeType, req.ScopeID)
	if err != nil {
		// Fail safe: a broken zone lookup must not crash tracking; the
		// update is reported as not evaluated and no alerts are produced.
		s.logger.Error("zone lookup failed", slog.Any("error", err))
		return emptyResponse(), nil
	}

	previous, err := s.membership.Get(ctx, req.DeviceID)
	if err != nil {
		s.logger.Error("membership lookup failed",
			slog.Int64("device_id", req.DeviceID), slog.Any("error", err))
		return emptyResponse(), nil
	}

	now := s.now()
	statuses := EvaluateZones(sample, zones, now)

	displayName := s.resolveName(ctx, req.UserID)
	alerts := BuildAlerts(sample, zones, statuses, previous, displayName, s.speedLimitKMH, now)

	s.logger.Info("zones evaluated",
		slog.Int("zones", len(zones)),
		slog.Int("alerts", len(alerts)),
	)

	if err := s.membership.Set(ctx, req.DeviceID, Membership(statuses)); err != nil {
		s.logger.Error("membership save failed",
			slog.Int64("device_id", req.DeviceID), slog.Any("error", err))
	}

	if len(alerts) > 0 {
		if err := s.alerts.SaveAlerts(ctx, alerts); err != nil {
			s.logger.Error("alerts save failed", slog.Any("error", err))
		}
		for _, a := range alerts {
			payload := domain.NotificationPayload{
				UserID:    a.UserID,
				DeviceID:  a.DeviceID,
				AlertType: a.AlertType,
				Severity:  a.Severity,
				Message:   a.Message,
				SentAt:    now,
			}
			if err := s.notifyQueue.Enqueue(ctx, payload); err != nil {
				s.logger.Error("enqueue notification failed", slog.Any("error", err))
			}
		}
	}

	check := &domain.LocationCheck{
		ID:        uuid.New(),
		DeviceID:  req.DeviceID,
		UserID:    req.UserID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		ZoneIDs:   insideZoneIDs(statuses),
		CheckedAt: now,
	}
	if err := s.checks.SaveCheck(ctx, check); err != nil {
		s.logger.Error("location check save failed", slog.Any("error", err))
	}

	s.logger.Info("location track END", slog.Int("alerts", len(alerts)))
	return domain.TrackLocationResponse{
		ZoneStatuses: statuses,
		Alerts:       alerts,
		Evaluated:    true,
	}, nil
}

// loadZones reads the scope's active zones cache-first with a store
// fallback; the fetched list is written back best-effort.
func (s *trackingService) loadZones(ctx context.Context, scopeType domain.ScopeType, scopeID int64) ([]domain.SafeZone, error) {
	zones, err := s.zoneCache.GetScope(ctx, scopeType, scopeID)
	if err == nil && zones != nil {
		return zones, nil
	}
	if err != nil {
		s.logger.Warn("zone cache read failed", slog.Any("error", err))
	}

	zones, err = s.zones.ListActiveForScope(ctx, scopeType, scopeID)
	if err != nil {
		return nil, err
	}

	if err := s.zoneCache.SetScope(ctx, scopeType, scopeID, zones, s.zoneCacheTTL); err != nil {
		s.logger.Warn("zone cache write failed", slog.Any("error", err))
	}
	return zones, nil
}

// resolveName never fails: a broken directory lookup degrades to the
// placeholder instead of dropping alerts.
func (s *trackingService) resolveName(ctx context.Context, userID int64) string {
	name, err := s.users.DisplayName(ctx, userID)
	if err != nil || name == "" {
		s.logger.Warn("display name lookup failed",
			slog.Int64("user_id", userID), slog.Any("error", err))
		return UnknownUserName
	}
	return name
}

func sampleFromRequest(req domain.TrackLocationRequest) domain.LocationSample {
	return domain.LocationSample{
		DeviceID:  req.DeviceID,
		UserID:    req.UserID,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Accuracy:  req.Accuracy,
		Altitude:  req.Altitude,
		Speed:     req.Speed,
		Heading:   req.Heading,
		Timestamp: req.Timestamp,
	}
}

func insideZoneIDs(statuses []domain.ZoneStatus) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(statuses))
	for _, st := range statuses {
		if st.IsInside {
			ids = append(ids, st.ZoneID)
		}
	}
	return ids
}

func emptyResponse() domain.TrackLocationResponse {
	return domain.TrackLocationResponse{
		ZoneStatuses: []domain.ZoneStatus{},
		Alerts:       []domain.Alert{},
		Evaluated:    false,
	}
}
