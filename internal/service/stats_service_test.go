package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"educafric/internal/domain"
	"educafric/internal/service"
	mock_service "educafric/internal/service/mocks"
)

func TestGetStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checks := mock_service.NewMockStatsRepository(ctrl)
	alerts := mock_service.NewMockAlertRepository(ctrl)
	svc := service.NewStatsService(checks, alerts)
	ctx := context.Background()

	checks.EXPECT().CountTrackedDevices(ctx, 30).Return(int64(12), nil)
	alerts.EXPECT().CountSince(ctx, 30).Return(int64(4), nil)

	stats, err := svc.GetStats(ctx, domain.StatsRequest{Minutes: 30})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.DeviceCount != 12 || stats.AlertCount != 4 || stats.Minutes != 30 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestGetStats_DefaultWindow(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checks := mock_service.NewMockStatsRepository(ctrl)
	alerts := mock_service.NewMockAlertRepository(ctrl)
	svc := service.NewStatsService(checks, alerts)
	ctx := context.Background()

	checks.EXPECT().CountTrackedDevices(ctx, 60).Return(int64(3), nil)
	alerts.EXPECT().CountSince(ctx, 60).Return(int64(0), nil)

	stats, err := svc.GetStats(ctx, domain.StatsRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Minutes != 60 {
		t.Fatalf("expected default window of 60 minutes, got %d", stats.Minutes)
	}
}

func TestGetStats_RepoFailure(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	checks := mock_service.NewMockStatsRepository(ctrl)
	alerts := mock_service.NewMockAlertRepository(ctrl)
	svc := service.NewStatsService(checks, alerts)
	ctx := context.Background()

	checks.EXPECT().CountTrackedDevices(ctx, 60).Return(int64(0), errors.New("pg down"))

	if _, err := svc.GetStats(ctx, domain.StatsRequest{Minutes: 60}); err == nil {
		t.Fatalf("expected error")
	}
}
