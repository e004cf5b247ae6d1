package service

import (
	"context"
	"log/slog"

	"educafric/internal/domain"
	"educafric/pkg/e"

	"github.com/google/uuid"
)

type zoneAdminService struct {
	repo   SafeZoneRepository
	cache  ZoneCacheService
	logger *slog.Logger
}

func NewZoneAdminService(repo SafeZoneRepository, cache ZoneCacheService, logger *slog.Logger) ZoneAdminService {
	return &zoneAdminService{repo: repo, cache: cache, logger: logger}
}

func (s *zoneAdminService) Create(ctx context.Context, req domain.CreateSafeZoneRequest) (uuid.UUID, error) {
	if err := checkTimeWindow(req.AllowedTimeStart, req.AllowedTimeEnd); err != nil {
		return uuid.Nil, err
	}
	if req.RadiusM < 10 || req.RadiusM > 5000 {
		return uuid.Nil, e.ErrInvalidRadius
	}

	zone := &domain.SafeZone{
		ID:               uuid.New(),
		Name:             req.Name,
		Description:      req.Description,
		CenterLat:        req.CenterLat,
		CenterLng:        req.CenterLng,
		RadiusM:          req.RadiusM,
		ZoneType:         req.ZoneType,
		ScopeType:        req.ScopeType,
		ScopeID:          req.ScopeID,
		CreatedBy:        req.CreatedBy,
		AllowedTimeStart: req.AllowedTimeStart,
		AllowedTimeEnd:   req.AllowedTimeEnd,
		AllowedDays:      req.AllowedDays,
		NotifyOnEntry:    req.NotifyOnEntry,
		NotifyOnExit:     req.NotifyOnExit,
		IsActive:         true,
	}
	if err := s.repo.Create(ctx, zone); err != nil {
		return uuid.Nil, err
	}

	s.invalidate(ctx, zone.ScopeType, zone.ScopeID)
	return zone.ID, nil
}

func (s *zoneAdminService) List(ctx context.Context, page, limit int) ([]*domain.SafeZone, int64, error) {
	return s.repo.List(ctx, page, limit)
}

func (s *zoneAdminService) Get(ctx context.Context, id uuid.UUID) (*domain.SafeZone, error) {
	return s.repo.Get(ctx, id)
}

func (s *zoneAdminService) Update(ctx context.Context, id uuid.UUID, req domain.UpdateSafeZoneRequest) error {
	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if req.Name != nil {
		zone.Name = *req.Name
	}
	if req.Description != nil {
		zone.Description = *req.Description
	}
	if req.CenterLat != nil {
		zone.CenterLat = *req.CenterLat
	}
	if req.CenterLng != nil {
		zone.CenterLng = *req.CenterLng
	}
	if req.RadiusM != nil {
		if *req.RadiusM < 10 || *req.RadiusM > 5000 {
			return e.ErrInvalidRadius
		}
		zone.RadiusM = *req.RadiusM
	}
	if req.ZoneType != nil {
		zone.ZoneType = *req.ZoneType
	}
	if req.AllowedTimeStart != nil {
		zone.AllowedTimeStart = *req.AllowedTimeStart
	}
	if req.AllowedTimeEnd != nil {
		zone.AllowedTimeEnd = *req.AllowedTimeEnd
	}
	if err := checkTimeWindow(zone.AllowedTimeStart, zone.AllowedTimeEnd); err != nil {
		return err
	}
	if req.AllowedDays != nil {
		zone.AllowedDays = *req.AllowedDays
	}
	if req.NotifyOnEntry != nil {
		zone.NotifyOnEntry = *req.NotifyOnEntry
	}
	if req.NotifyOnExit != nil {
		zone.NotifyOnExit = *req.NotifyOnExit
	}
	if req.IsActive != nil {
		zone.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, zone); err != nil {
		return err
	}

	s.invalidate(ctx, zone.ScopeType, zone.ScopeID)
	return nil
}

func (s *zoneAdminService) Deactivate(ctx context.Context, id uuid.UUID) error {
	zone, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx, zone.ScopeType, zone.ScopeID)
	return nil
}

func (s *zoneAdminService) invalidate(ctx context.Context, scopeType domain.ScopeType, scopeID int64) {
	if err := s.cache.InvalidateScope(ctx, scopeType, scopeID); err != nil {
		s.logger.Warn("zone cache invalidate failed",
			slog.String("scope_type", string(scopeType)),
			slog.Int64("scope_id", scopeID),
			slog.Any("error", err))
	}
}

// checkTimeWindow enforces the both-or-none rule and rejects overnight
// windows: the evaluator compares "HH:MM" lexicographically, so start > end
// would silently mean an empty window.
func checkTimeWindow(start, end string) error {
	if (start == "") != (end == "") {
		return e.ErrInvalidTimeWindow
	}
	if start != "" && start > end {
		return e.ErrInvalidTimeWindow
	}
	return nil
}
