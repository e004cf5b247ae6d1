//go:build integration

package postgres

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"educafric/internal/domain"
	"educafric/pkg/e"
)

var (
	testPool   *pgxpool.Pool
	tc         testcontainers.Container
	testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	user := "postgres"
	pass := "postgres"
	db := "postgres"

	req := testcontainers.ContainerRequest{
		Image:        "postgis/postgis:16-3.4-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     user,
			"POSTGRES_PASSWORD": pass,
			"POSTGRES_DB":       db,
		},
		WaitingFor: wait.ForAll(
			wait.ForListeningPort("5432/tcp"),
			wait.ForLog("database system is ready to accept connections"),
		).WithDeadline(90 * time.Second),
	}

	var err error
	tc, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		fmt.Println("cannot start container:", err)
		os.Exit(1)
	}

	host, _ := tc.Host(ctx)
	mappedPort, _ := tc.MappedPort(ctx, "5432/tcp")

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, pass, host, mappedPort.Port(), db)

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := testPool.Ping(ctx); err != nil {
		fmt.Println("pool.Ping:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	if err := setupSchema(ctx, testPool); err != nil {
		fmt.Println("setupSchema:", err)
		testPool.Close()
		_ = tc.Terminate(ctx)
		os.Exit(1)
	}

	code := m.Run()

	testPool.Close()
	_ = tc.Terminate(ctx)
	os.Exit(code)
}

func setupSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE EXTENSION IF NOT EXISTS postgis;

		CREATE TABLE IF NOT EXISTS safe_zones (
			id uuid PRIMARY KEY,
			name text NOT NULL,
			description text NOT NULL DEFAULT '',
			center geography(Point, 4326) NOT NULL,
			radius_m double precision NOT NULL,
			zone_type text NOT NULL,
			scope_type text NOT NULL,
			scope_id bigint NOT NULL,
			created_by bigint NOT NULL,
			allowed_time_start text NOT NULL DEFAULT '',
			allowed_time_end text NOT NULL DEFAULT '',
			allowed_days text[] NOT NULL DEFAULT '{}',
			notify_on_entry boolean NOT NULL DEFAULT FALSE,
			notify_on_exit boolean NOT NULL DEFAULT FALSE,
			is_active boolean NOT NULL DEFAULT TRUE,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS geofence_alerts (
			id uuid PRIMARY KEY,
			device_id bigint NOT NULL,
			user_id bigint NOT NULL,
			safe_zone_id uuid,
			alert_type text NOT NULL,
			severity text NOT NULL,
			message text NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			created_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS emergency_panics (
			id uuid PRIMARY KEY,
			user_id bigint NOT NULL,
			device_id bigint NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			panic_type text NOT NULL,
			message text NOT NULL DEFAULT '',
			triggered_at timestamptz NOT NULL,
			is_resolved boolean NOT NULL DEFAULT FALSE,
			services_contacted boolean NOT NULL DEFAULT FALSE
		);

		CREATE TABLE IF NOT EXISTS location_checks (
			id uuid PRIMARY KEY,
			device_id bigint NOT NULL,
			user_id bigint NOT NULL,
			lat double precision NOT NULL,
			lng double precision NOT NULL,
			zone_ids uuid[] NOT NULL DEFAULT '{}',
			checked_at timestamptz NOT NULL
		);

		CREATE TABLE IF NOT EXISTS users (
			id bigint PRIMARY KEY,
			first_name text NOT NULL,
			last_name text NOT NULL
		);
	`)
	return err
}

func truncateAll(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`TRUNCATE TABLE safe_zones, geofence_alerts, emergency_panics, location_checks, users`)
	if err != nil {
		t.Fatalf("truncate: %v", err)
	}
}

func testZone() *domain.SafeZone {
	return &domain.SafeZone{
		Name:             "École Saint-Paul",
		Description:      "Campus principal",
		CenterLat:        4.0511,
		CenterLng:        9.7679,
		RadiusM:          300,
		ZoneType:         domain.ZoneSchool,
		ScopeType:        domain.ScopeSchool,
		ScopeID:          1,
		CreatedBy:        12,
		AllowedTimeStart: "07:00",
		AllowedTimeEnd:   "18:00",
		AllowedDays:      []string{"monday", "friday"},
		NotifyOnEntry:    true,
		NotifyOnExit:     true,
		IsActive:         true,
	}
}

func TestSafeZoneRepo_Create_RoundTrip(t *testing.T) {

	truncateAll(t)

	repo := NewSafeZoneRepo(testPool, testLogger)

	zone := testZone()
	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if zone.ID == uuid.Nil {
		t.Fatalf("expected ID set")
	}
	if zone.CreatedAt.IsZero() {
		t.Fatalf("expected CreatedAt set")
	}

	got, err := repo.Get(context.Background(), zone.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.CenterLat != zone.CenterLat || got.CenterLng != zone.CenterLng {
		t.Fatalf("lat/lng mismatch got=(%v,%v) want=(%v,%v)", got.CenterLat, got.CenterLng, zone.CenterLat, zone.CenterLng)
	}
	if got.RadiusM != zone.RadiusM || got.Name != zone.Name {
		t.Fatalf("zone mismatch: %+v", got)
	}
	if got.AllowedTimeStart != "07:00" || got.AllowedTimeEnd != "18:00" {
		t.Fatalf("time window mismatch: %+v", got)
	}
	if len(got.AllowedDays) != 2 || got.AllowedDays[0] != "monday" {
		t.Fatalf("allowed days mismatch: %v", got.AllowedDays)
	}
}

func TestSafeZoneRepo_List_Pagination(t *testing.T) {

	truncateAll(t)

	repo := NewSafeZoneRepo(testPool, testLogger)

	for i := 0; i < 3; i++ {
		zone := testZone()
		zone.Name = fmt.Sprintf("Zone %d", i)
		zone.CreatedAt = time.Date(2025, 1, 1, 0, 0, i, 0, time.UTC)
		if err := repo.Create(context.Background(), zone); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	list1, total, err := repo.List(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected total=3 got=%d", total)
	}
	if len(list1) != 2 {
		t.Fatalf("expected len=2 got=%d", len(list1))
	}
	if list1[0].CreatedAt.Before(list1[1].CreatedAt) {
		t.Fatalf("expected DESC order by created_at")
	}

	list2, _, err := repo.List(context.Background(), 2, 2)
	if err != nil {
		t.Fatalf("List page2: %v", err)
	}
	if len(list2) != 1 {
		t.Fatalf("expected len=1 got=%d", len(list2))
	}
}

func TestSafeZoneRepo_Update_NotFound(t *testing.T) {

	truncateAll(t)

	repo := NewSafeZoneRepo(testPool, testLogger)

	zone := testZone()
	zone.ID = uuid.New()
	zone.CreatedAt = time.Now().UTC()

	err := repo.Update(context.Background(), zone)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestSafeZoneRepo_Deactivate_HidesFromScope(t *testing.T) {

	truncateAll(t)

	repo := NewSafeZoneRepo(testPool, testLogger)

	zone := testZone()
	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Create: %v", err)
	}

	active, err := repo.ListActiveForScope(context.Background(), domain.ScopeSchool, 1)
	if err != nil {
		t.Fatalf("ListActiveForScope: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("expected 1 active zone, got %d", len(active))
	}

	if err := repo.Deactivate(context.Background(), zone.ID); err != nil {
		t.Fatalf("Deactivate: %v", err)
	}

	active, err = repo.ListActiveForScope(context.Background(), domain.ScopeSchool, 1)
	if err != nil {
		t.Fatalf("ListActiveForScope after deactivate: %v", err)
	}
	if len(active) != 0 {
		t.Fatalf("deactivated zone still listed")
	}

	// second deactivate is a no-op on an already-inactive row
	err = repo.Deactivate(context.Background(), zone.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestSafeZoneRepo_ListScopes(t *testing.T) {

	truncateAll(t)

	repo := NewSafeZoneRepo(testPool, testLogger)

	school := testZone()
	if err := repo.Create(context.Background(), school); err != nil {
		t.Fatalf("Create school: %v", err)
	}

	family := testZone()
	family.Name = "Maison"
	family.ScopeType = domain.ScopeFamily
	family.ScopeID = 9
	if err := repo.Create(context.Background(), family); err != nil {
		t.Fatalf("Create family: %v", err)
	}

	scopes, err := repo.ListScopes(context.Background())
	if err != nil {
		t.Fatalf("ListScopes: %v", err)
	}
	if len(scopes) != 2 {
		t.Fatalf("expected 2 scopes, got %d: %+v", len(scopes), scopes)
	}
}

func TestAlertRepo_SaveAndCount(t *testing.T) {

	truncateAll(t)

	repo := NewAlertRepo(testPool, testLogger)
	zoneID := uuid.New()

	alerts := []domain.Alert{
		{
			DeviceID:   42,
			UserID:     7,
			SafeZoneID: &zoneID,
			AlertType:  domain.AlertEntry,
			Severity:   domain.SeverityLow,
			Message:    "Aminata Diallo est arrivé(e) à École Saint-Paul",
			Lat:        4.0511,
			Lng:        9.7679,
		},
		{
			DeviceID:  42,
			UserID:    7,
			AlertType: domain.AlertSpeedLimit,
			Severity:  domain.SeverityHigh,
			Message:   "Aminata Diallo dépasse la limite de vitesse: 60 km/h",
			Lat:       4.0511,
			Lng:       9.7679,
		},
	}
	if err := repo.SaveAlerts(context.Background(), alerts); err != nil {
		t.Fatalf("SaveAlerts: %v", err)
	}

	cnt, err := repo.CountSince(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountSince: %v", err)
	}
	if cnt != 2 {
		t.Fatalf("expected 2 alerts, got %d", cnt)
	}

	recent, err := repo.ListRecent(context.Background(), 42, 10)
	if err != nil {
		t.Fatalf("ListRecent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("expected 2 recent alerts, got %d", len(recent))
	}

	// speed alert has no zone reference
	for _, a := range recent {
		if a.AlertType == domain.AlertSpeedLimit && a.SafeZoneID != nil {
			t.Fatalf("speed alert must have nil safe_zone_id")
		}
	}
}

func TestEmergencyRepo_CreateResolve(t *testing.T) {

	truncateAll(t)

	repo := NewEmergencyRepo(testPool, testLogger)

	rec := &domain.EmergencyPanic{
		UserID:    7,
		DeviceID:  42,
		Lat:       4.0511,
		Lng:       9.7679,
		PanicType: domain.PanicMedical,
		Message:   "Besoin d'aide",
	}
	if err := repo.Create(context.Background(), rec); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := repo.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.IsResolved {
		t.Fatalf("new panic must be unresolved")
	}

	if err := repo.Resolve(context.Background(), rec.ID); err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	got, err = repo.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Get after resolve: %v", err)
	}
	if !got.IsResolved {
		t.Fatalf("panic not resolved")
	}

	err = repo.Resolve(context.Background(), rec.ID)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for double resolve, got: %v", err)
	}
}

func TestCheckRepo_CountTrackedDevices(t *testing.T) {

	truncateAll(t)

	repo := NewCheckRepo(testPool, testLogger)

	for _, deviceID := range []int64{42, 42, 43} {
		check := &domain.LocationCheck{
			DeviceID: deviceID,
			UserID:   7,
			Lat:      4.0511,
			Lng:      9.7679,
			ZoneIDs:  []uuid.UUID{uuid.New()},
		}
		if err := repo.SaveCheck(context.Background(), check); err != nil {
			t.Fatalf("SaveCheck: %v", err)
		}
	}

	cnt, err := repo.CountTrackedDevices(context.Background(), 60)
	if err != nil {
		t.Fatalf("CountTrackedDevices: %v", err)
	}
	if cnt != 2 {
		t.Fatalf("expected 2 distinct devices, got %d", cnt)
	}
}

func TestUserRepo_DisplayName(t *testing.T) {

	truncateAll(t)

	_, err := testPool.Exec(context.Background(),
		`INSERT INTO users (id, first_name, last_name) VALUES (7, 'Aminata', 'Diallo')`)
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}

	repo := NewUserRepo(testPool, testLogger)

	name, err := repo.DisplayName(context.Background(), 7)
	if err != nil {
		t.Fatalf("DisplayName: %v", err)
	}
	if name != "Aminata Diallo" {
		t.Fatalf("unexpected name: %q", name)
	}

	_, err = repo.DisplayName(context.Background(), 999)
	if !errors.Is(err, e.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}
