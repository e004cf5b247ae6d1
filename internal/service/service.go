package service

import (
	"context"
	"time"

	"educafric/internal/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go

// ZoneAdminService manages safe zones on behalf of schools and families.
type ZoneAdminService interface {
	Create(ctx context.Context, req domain.CreateSafeZoneRequest) (uuid.UUID, error)
	List(ctx context.Context, page, limit int) ([]*domain.SafeZone, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SafeZone, error)
	Update(ctx context.Context, id uuid.UUID, req domain.UpdateSafeZoneRequest) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// TrackingService evaluates inbound location updates against safe zones.
type TrackingService interface {
	TrackLocation(ctx context.Context, req domain.TrackLocationRequest) (domain.TrackLocationResponse, error)
}

// EmergencyService handles panic triggers and their resolution.
type EmergencyService interface {
	TriggerPanic(ctx context.Context, req domain.TriggerPanicRequest) (domain.TriggerPanicResponse, error)
	Resolve(ctx context.Context, id uuid.UUID) error
}

// StatsService reports tracking activity over a recent window.
type StatsService interface {
	GetStats(ctx context.Context, req domain.StatsRequest) (*domain.TrackingStats, error)
}

type SafeZoneRepository interface {
	Create(ctx context.Context, zone *domain.SafeZone) error
	List(ctx context.Context, page, limit int) ([]*domain.SafeZone, int64, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.SafeZone, error)
	Update(ctx context.Context, zone *domain.SafeZone) error
	Deactivate(ctx context.Context, id uuid.UUID) error // soft delete
	ListActiveForScope(ctx context.Context, scopeType domain.ScopeType, scopeID int64) ([]domain.SafeZone, error)
	ListScopes(ctx context.Context) ([]domain.ZoneScope, error)
}

type ZoneCacheService interface {
	GetScope(ctx context.Context, scopeType domain.ScopeType, scopeID int64) ([]domain.SafeZone, error)
	SetScope(ctx context.Context, scopeType domain.ScopeType, scopeID int64, zones []domain.SafeZone, ttl time.Duration) error
	InvalidateScope(ctx context.Context, scopeType domain.ScopeType, scopeID int64) error
}

type MembershipStore interface {
	Get(ctx context.Context, deviceID int64) (map[uuid.UUID]bool, error)
	Set(ctx context.Context, deviceID int64, membership map[uuid.UUID]bool) error
}

type AlertRepository interface {
	SaveAlerts(ctx context.Context, alerts []domain.Alert) error
	CountSince(ctx context.Context, minutes int) (int64, error)
}

type StatsRepository interface {
	SaveCheck(ctx context.Context, check *domain.LocationCheck) error
	CountTrackedDevices(ctx context.Context, minutes int) (int64, error)
}

type EmergencyRepository interface {
	Create(ctx context.Context, panic *domain.EmergencyPanic) error
	Get(ctx context.Context, id uuid.UUID) (*domain.EmergencyPanic, error)
	Resolve(ctx context.Context, id uuid.UUID) error
}

// UserDirectory resolves platform user ids to display names. Lookups may
// fail; callers substitute a placeholder and carry on.
type UserDirectory interface {
	DisplayName(ctx context.Context, userID int64) (string, error)
}

type NotifyQueue interface {
	Enqueue(ctx context.Context, payload domain.NotificationPayload) error
}

type Service struct {
	ZoneAdminService ZoneAdminService
	TrackingService  TrackingService
	EmergencyService EmergencyService
	StatsService     StatsService
}

func NewService(
	zoneAdminService ZoneAdminService,
	trackingService TrackingService,
	emergencyService EmergencyService,
	statsService StatsService,
) *Service {
	return &Service{
		ZoneAdminService: zoneAdminService,
		TrackingService:  trackingService,
		EmergencyService: emergencyService,
		StatsService:     statsService,
	}
}
