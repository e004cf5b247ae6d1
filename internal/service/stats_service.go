package service

import (
	"context"

	"educafric/internal/domain"
)

type statsService struct {
	checks StatsRepository
	alerts AlertRepository
}

func NewStatsService(checks StatsRepository, alerts AlertRepository) StatsService {
	return &statsService{checks: checks, alerts: alerts}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.TrackingStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}

	devices, err := s.checks.CountTrackedDevices(ctx, minutes)
	if err != nil {
		return nil, err
	}

	alerts, err := s.alerts.CountSince(ctx, minutes)
	if err != nil {
		return nil, err
	}

	return &domain.TrackingStats{
		DeviceCount: devices,
		AlertCount:  alerts,
		Minutes:     minutes,
	}, nil
}
