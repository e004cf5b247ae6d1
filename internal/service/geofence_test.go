package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"educafric/internal/domain"
	"educafric/internal/service"
)

// mondayMorning is a Monday, 08:00 local.
var mondayMorning = time.Date(2025, 12, 22, 8, 0, 0, 0, time.UTC)

// tuesdayMorning is a Tuesday, 08:00 local.
var tuesdayMorning = time.Date(2025, 12, 23, 8, 0, 0, 0, time.UTC)

func f64ptr(v float64) *float64 { return &v }

func schoolZone(t *testing.T) domain.SafeZone {
	t.Helper()
	return domain.SafeZone{
		ID:               uuid.New(),
		Name:             "École Saint-Paul",
		CenterLat:        4.0511,
		CenterLng:        9.7679,
		RadiusM:          300,
		ZoneType:         domain.ZoneSchool,
		ScopeType:        domain.ScopeSchool,
		ScopeID:          1,
		AllowedTimeStart: "07:00",
		AllowedTimeEnd:   "18:00",
		AllowedDays:      []string{"monday", "tuesday", "wednesday", "thursday", "friday"},
		NotifyOnEntry:    true,
		NotifyOnExit:     true,
		IsActive:         true,
	}
}

func sampleAt(lat, lng float64) domain.LocationSample {
	return domain.LocationSample{
		DeviceID:  42,
		UserID:    7,
		Lat:       lat,
		Lng:       lng,
		Timestamp: mondayMorning,
	}
}

func TestHaversine_Symmetry(t *testing.T) {
	t.Parallel()

	pairs := [][4]float64{
		{4.0511, 9.7679, 4.0501, 9.7669},
		{55.75, 37.61, 48.85, 2.35},
		{-33.86, 151.20, 35.68, 139.69},
	}
	for _, p := range pairs {
		ab := service.Haversine(p[0], p[1], p[2], p[3])
		ba := service.Haversine(p[2], p[3], p[0], p[1])
		if math.Abs(ab-ba) > 1e-6 {
			t.Fatalf("asymmetric distance: ab=%f ba=%f", ab, ba)
		}
	}
}

func TestHaversine_ZeroAtIdentity(t *testing.T) {
	t.Parallel()

	if d := service.Haversine(4.0511, 9.7679, 4.0511, 9.7679); d != 0 {
		t.Fatalf("expected 0 for identical points, got %f", d)
	}
}

func TestHaversine_KnownValue(t *testing.T) {
	t.Parallel()

	// ~157 m for a 0.001° shift in both axes near the equator,
	// from the Haversine formula with R=6,371,000.
	d := service.Haversine(4.0511, 9.7679, 4.0501, 9.7669)
	if math.Abs(d-157.0) > 5 {
		t.Fatalf("unexpected distance: got=%f want≈157", d)
	}
}

func TestEvaluateZones_InclusiveBoundary(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	sample := sampleAt(zone.CenterLat, zone.CenterLng)

	// Place the zone boundary exactly at the sample's distance.
	dist := service.Haversine(4.0511, 9.7679, 4.0501, 9.7669)
	zone.CenterLat = 4.0501
	zone.CenterLng = 9.7669
	zone.RadiusM = dist

	statuses := service.EvaluateZones(sample, []domain.SafeZone{zone}, mondayMorning)
	if len(statuses) != 1 {
		t.Fatalf("expected 1 status, got %d", len(statuses))
	}
	if !statuses[0].IsInside {
		t.Fatalf("distance == radius must count as inside")
	}
}

func TestEvaluateZones_NoTimeWindowAlwaysAllowed(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	zone.AllowedTimeStart = ""
	zone.AllowedTimeEnd = ""

	midnight := time.Date(2025, 12, 22, 0, 1, 0, 0, time.UTC)
	statuses := service.EvaluateZones(sampleAt(4.0511, 9.7679), []domain.SafeZone{zone}, midnight)
	if !statuses[0].IsAllowedTime {
		t.Fatalf("no time window must mean always allowed")
	}
}

func TestEvaluateZones_TimeWindowInclusiveBounds(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	sample := sampleAt(4.0511, 9.7679)

	atStart := time.Date(2025, 12, 22, 7, 0, 0, 0, time.UTC)
	atEnd := time.Date(2025, 12, 22, 18, 0, 0, 0, time.UTC)
	after := time.Date(2025, 12, 22, 18, 1, 0, 0, time.UTC)

	if st := service.EvaluateZones(sample, []domain.SafeZone{zone}, atStart); !st[0].IsAllowedTime {
		t.Fatalf("window start must be allowed")
	}
	if st := service.EvaluateZones(sample, []domain.SafeZone{zone}, atEnd); !st[0].IsAllowedTime {
		t.Fatalf("window end must be allowed")
	}
	if st := service.EvaluateZones(sample, []domain.SafeZone{zone}, after); st[0].IsAllowedTime {
		t.Fatalf("18:01 must be outside a 07:00-18:00 window")
	}
}

func TestEvaluateZones_DayFilter(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	zone.AllowedDays = []string{"monday"}

	statuses := service.EvaluateZones(sampleAt(4.0511, 9.7679), []domain.SafeZone{zone}, tuesdayMorning)
	if statuses[0].IsAllowedDay {
		t.Fatalf("monday-only zone must not allow tuesday")
	}

	statuses = service.EvaluateZones(sampleAt(4.0511, 9.7679), []domain.SafeZone{zone}, mondayMorning)
	if !statuses[0].IsAllowedDay {
		t.Fatalf("monday-only zone must allow monday")
	}
}

func TestEvaluateZones_PreservesInputOrder(t *testing.T) {
	t.Parallel()

	z1 := schoolZone(t)
	z2 := schoolZone(t)
	z2.Name = "Maison"
	z3 := schoolZone(t)
	z3.Name = "Clinique"

	zones := []domain.SafeZone{z1, z2, z3}
	statuses := service.EvaluateZones(sampleAt(4.0511, 9.7679), zones, mondayMorning)

	for i := range zones {
		if statuses[i].ZoneID != zones[i].ID {
			t.Fatalf("status %d out of order: got zone %s", i, statuses[i].ZoneID)
		}
	}
}

func TestBuildAlerts_EntryExitIdempotence(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	sample := sampleAt(4.0511, 9.7679)
	statuses := service.EvaluateZones(sample, []domain.SafeZone{zone}, mondayMorning)

	// already inside, still inside: no transition, no alert
	prev := map[uuid.UUID]bool{zone.ID: true}
	alerts := service.BuildAlerts(sample, []domain.SafeZone{zone}, statuses, prev, "Aminata Diallo", 50, mondayMorning)
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts without a transition, got %d: %+v", len(alerts), alerts)
	}

	// outside, still outside
	far := sampleAt(5.0, 10.5)
	statuses = service.EvaluateZones(far, []domain.SafeZone{zone}, mondayMorning)
	alerts = service.BuildAlerts(far, []domain.SafeZone{zone}, statuses, map[uuid.UUID]bool{}, "Aminata Diallo", 50, mondayMorning)
	if len(alerts) != 0 {
		t.Fatalf("expected no alerts when staying outside, got %d", len(alerts))
	}
}

func TestBuildAlerts_EntryRespectsNotifyFlag(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	zone.NotifyOnEntry = false
	sample := sampleAt(4.0511, 9.7679)
	statuses := service.EvaluateZones(sample, []domain.SafeZone{zone}, mondayMorning)

	alerts := service.BuildAlerts(sample, []domain.SafeZone{zone}, statuses, map[uuid.UUID]bool{}, "Aminata Diallo", 50, mondayMorning)
	if len(alerts) != 0 {
		t.Fatalf("entry with notify_on_entry=false must not alert, got %+v", alerts)
	}
}

func TestBuildAlerts_ExitAlert(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	far := sampleAt(5.0, 10.5)
	statuses := service.EvaluateZones(far, []domain.SafeZone{zone}, mondayMorning)

	prev := map[uuid.UUID]bool{zone.ID: true}
	alerts := service.BuildAlerts(far, []domain.SafeZone{zone}, statuses, prev, "Aminata Diallo", 50, mondayMorning)
	if len(alerts) != 1 {
		t.Fatalf("expected 1 exit alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.AlertType != domain.AlertExit {
		t.Fatalf("expected exit alert, got %s", a.AlertType)
	}
	if a.Severity != domain.SeverityMedium {
		t.Fatalf("exit severity must be medium, got %s", a.Severity)
	}
	if a.Message != "Aminata Diallo a quitté École Saint-Paul" {
		t.Fatalf("unexpected message: %q", a.Message)
	}
	if a.SafeZoneID == nil || *a.SafeZoneID != zone.ID {
		t.Fatalf("exit alert must reference the zone")
	}
}

func TestBuildAlerts_SpeedThresholdStrict(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	sample := sampleAt(4.0511, 9.7679)
	sample.Speed = f64ptr(50)
	statuses := service.EvaluateZones(sample, []domain.SafeZone{zone}, mondayMorning)
	prev := map[uuid.UUID]bool{zone.ID: true}

	alerts := service.BuildAlerts(sample, []domain.SafeZone{zone}, statuses, prev, "Aminata Diallo", 50, mondayMorning)
	if len(alerts) != 0 {
		t.Fatalf("speed == limit must not alert, got %+v", alerts)
	}

	sample.Speed = f64ptr(50.1)
	alerts = service.BuildAlerts(sample, []domain.SafeZone{zone}, statuses, prev, "Aminata Diallo", 50, mondayMorning)
	if len(alerts) != 1 {
		t.Fatalf("speed just above limit must alert, got %d", len(alerts))
	}
	a := alerts[0]
	if a.AlertType != domain.AlertSpeedLimit || a.Severity != domain.SeverityHigh {
		t.Fatalf("unexpected alert: %+v", a)
	}
	if a.SafeZoneID != nil {
		t.Fatalf("speed alerts are zone-independent")
	}
	if a.Message != "Aminata Diallo dépasse la limite de vitesse: 50.1 km/h" {
		t.Fatalf("unexpected message: %q", a.Message)
	}
}

func TestBuildAlerts_UnauthorizedCoOccursWithEntry(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	sample := sampleAt(4.0511, 9.7679)

	// inside the window's days but outside its hours
	lateEvening := time.Date(2025, 12, 22, 21, 30, 0, 0, time.UTC)
	statuses := service.EvaluateZones(sample, []domain.SafeZone{zone}, lateEvening)
	if statuses[0].IsAllowedTime {
		t.Fatalf("21:30 must be outside 07:00-18:00")
	}

	alerts := service.BuildAlerts(sample, []domain.SafeZone{zone}, statuses, map[uuid.UUID]bool{}, "Aminata Diallo", 50, lateEvening)
	if len(alerts) != 2 {
		t.Fatalf("expected entry + unauthorized alerts, got %d: %+v", len(alerts), alerts)
	}
	if alerts[0].AlertType != domain.AlertEntry {
		t.Fatalf("first alert must be entry, got %s", alerts[0].AlertType)
	}
	if alerts[1].AlertType != domain.AlertUnauthorizedTime {
		t.Fatalf("second alert must be unauthorized_time, got %s", alerts[1].AlertType)
	}
	if alerts[1].Severity != domain.SeverityHigh {
		t.Fatalf("unauthorized severity must be high")
	}
	if alerts[1].Message != "Aminata Diallo est dans École Saint-Paul en dehors des heures autorisées" {
		t.Fatalf("unexpected message: %q", alerts[1].Message)
	}
}

func TestBuildAlerts_EndToEndScenario(t *testing.T) {
	t.Parallel()

	zone := schoolZone(t)
	sample := sampleAt(4.0511, 9.7679)
	sample.Speed = f64ptr(60)

	statuses := service.EvaluateZones(sample, []domain.SafeZone{zone}, mondayMorning)
	st := statuses[0]
	if !st.IsInside || st.DistanceM != 0 || !st.IsAllowedTime || !st.IsAllowedDay {
		t.Fatalf("unexpected status: %+v", st)
	}

	alerts := service.BuildAlerts(sample, []domain.SafeZone{zone}, statuses, map[uuid.UUID]bool{}, "Aminata Diallo", 50, mondayMorning)
	if len(alerts) != 2 {
		t.Fatalf("expected entry + speed alerts, got %d: %+v", len(alerts), alerts)
	}
	if alerts[0].AlertType != domain.AlertEntry || alerts[0].Severity != domain.SeverityLow {
		t.Fatalf("unexpected first alert: %+v", alerts[0])
	}
	if alerts[0].Message != "Aminata Diallo est arrivé(e) à École Saint-Paul" {
		t.Fatalf("unexpected entry message: %q", alerts[0].Message)
	}
	if alerts[1].AlertType != domain.AlertSpeedLimit {
		t.Fatalf("unexpected second alert: %+v", alerts[1])
	}
}

func TestMembership_Flatten(t *testing.T) {
	t.Parallel()

	z1 := schoolZone(t)
	z2 := schoolZone(t)
	statuses := []domain.ZoneStatus{
		{ZoneID: z1.ID, IsInside: true},
		{ZoneID: z2.ID, IsInside: false},
	}

	m := service.Membership(statuses)
	if !m[z1.ID] || m[z2.ID] {
		t.Fatalf("unexpected membership: %+v", m)
	}
}
