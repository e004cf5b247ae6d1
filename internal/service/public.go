package service

import (
	"context"

	"educafric/internal/domain"

	"github.com/google/uuid"
)

func (s *Service) TrackLocation(ctx context.Context, req domain.TrackLocationRequest) (domain.TrackLocationResponse, error) {
	return s.TrackingService.TrackLocation(ctx, req)
}

func (s *Service) TriggerPanic(ctx context.Context, req domain.TriggerPanicRequest) (domain.TriggerPanicResponse, error) {
	return s.EmergencyService.TriggerPanic(ctx, req)
}

func (s *Service) Resolve(ctx context.Context, id uuid.UUID) error {
	return s.EmergencyService.Resolve(ctx, id)
}
