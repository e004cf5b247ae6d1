package service

import (
	"context"

	"educafric/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) Create(ctx context.Context, req domain.CreateSafeZoneRequest) (uuid.UUID, error) {
	return s.ZoneAdminService.Create(ctx, req)
}

func (s *Service) List(ctx context.Context, page, limit int) ([]*domain.SafeZone, int64, error) {
	return s.ZoneAdminService.List(ctx, page, limit)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.SafeZone, error) {
	return s.ZoneAdminService.Get(ctx, id)
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req domain.UpdateSafeZoneRequest) error {
	return s.ZoneAdminService.Update(ctx, id, req)
}

func (s *Service) Deactivate(ctx context.Context, id uuid.UUID) error {
	return s.ZoneAdminService.Deactivate(ctx, id)
}

func (s *Service) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.TrackingStats, error) {
	return s.StatsService.GetStats(ctx, req)
}
