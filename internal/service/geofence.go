package service

import (
	"math"
	"strconv"
	"strings"
	"time"

	"educafric/internal/domain"

	"github.com/google/uuid"
)

const earthRadiusM = 6371000.0

// UnknownUserName is used when the user directory cannot resolve a name.
const UnknownUserName = "Utilisateur inconnu"

// Haversine returns the great-circle distance in meters between two points
// given in degrees. Pure math; returns 0 for identical points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := deg2rad(lat2 - lat1)
	dLon := deg2rad(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusM * c
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// EvaluateZones computes one ZoneStatus per zone, in input order. The zone
// boundary is inclusive: a sample exactly radius meters from the center is
// inside. Time and day policy are checked against now, not against the
// sample's own timestamp.
func EvaluateZones(sample domain.LocationSample, zones []domain.SafeZone, now time.Time) []domain.ZoneStatus {
	statuses := make([]domain.ZoneStatus, 0, len(zones))
	for _, z := range zones {
		dist := Haversine(sample.Lat, sample.Lng, z.CenterLat, z.CenterLng)
		statuses = append(statuses, domain.ZoneStatus{
			ZoneID:        z.ID,
			ZoneName:      z.Name,
			IsInside:      dist <= z.RadiusM,
			DistanceM:     int64(math.Round(dist)),
			IsAllowedTime: isAllowedTime(&z, now),
			IsAllowedDay:  isAllowedDay(&z, now),
		})
	}
	return statuses
}

// isAllowedTime compares the current wall-clock "HH:MM" against the zone
// window lexicographically, inclusive on both ends. Windows never wrap past
// midnight; zone admin rejects start > end at creation time.
func isAllowedTime(z *domain.SafeZone, now time.Time) bool {
	if !z.HasTimeWindow() {
		return true
	}
	hm := now.Format("15:04")
	return hm >= z.AllowedTimeStart && hm <= z.AllowedTimeEnd
}

func isAllowedDay(z *domain.SafeZone, now time.Time) bool {
	if len(z.AllowedDays) == 0 {
		return true
	}
	day := strings.ToLower(now.Weekday().String())
	for _, d := range z.AllowedDays {
		if d == day {
			return true
		}
	}
	return false
}

// BuildAlerts diffs the fresh zone statuses against the previous membership
// and emits alerts in rule order: entry/exit then unauthorized presence per
// zone, then the zone-independent speed check. previous is keyed by zone id;
// a missing key means the device was outside that zone. zones and statuses
// are parallel slices as produced by EvaluateZones.
func BuildAlerts(
	sample domain.LocationSample,
	zones []domain.SafeZone,
	statuses []domain.ZoneStatus,
	previous map[uuid.UUID]bool,
	displayName string,
	speedLimitKMH float64,
	now time.Time,
) []domain.Alert {
	alerts := make([]domain.Alert, 0, 2)

	for i := range zones {
		z := zones[i]
		st := statuses[i]
		wasInside := previous[z.ID]

		if st.IsInside && !wasInside && z.NotifyOnEntry {
			alerts = append(alerts, newAlert(sample, &z, domain.AlertEntry,
				displayName+" est arrivé(e) à "+z.Name, now))
		}

		if !st.IsInside && wasInside && z.NotifyOnExit {
			alerts = append(alerts, newAlert(sample, &z, domain.AlertExit,
				displayName+" a quitté "+z.Name, now))
		}

		if st.IsInside && (!st.IsAllowedTime || !st.IsAllowedDay) {
			alerts = append(alerts, newAlert(sample, &z, domain.AlertUnauthorizedTime,
				displayName+" est dans "+z.Name+" en dehors des heures autorisées", now))
		}
	}

	if sample.Speed != nil && *sample.Speed > speedLimitKMH {
		speed := strconv.FormatFloat(*sample.Speed, 'f', -1, 64)
		alerts = append(alerts, domain.Alert{
			ID:        uuid.New(),
			DeviceID:  sample.DeviceID,
			UserID:    sample.UserID,
			AlertType: domain.AlertSpeedLimit,
			Severity:  domain.SeverityFor(domain.AlertSpeedLimit),
			Message:   displayName + " dépasse la limite de vitesse: " + speed + " km/h",
			Lat:       sample.Lat,
			Lng:       sample.Lng,
			Timestamp: now,
		})
	}

	return alerts
}

func newAlert(sample domain.LocationSample, z *domain.SafeZone, t domain.AlertType, msg string, now time.Time) domain.Alert {
	zoneID := z.ID
	return domain.Alert{
		ID:         uuid.New(),
		DeviceID:   sample.DeviceID,
		UserID:     sample.UserID,
		SafeZoneID: &zoneID,
		AlertType:  t,
		Severity:   domain.SeverityFor(t),
		Message:    msg,
		Lat:        sample.Lat,
		Lng:        sample.Lng,
		Timestamp:  now,
	}
}

// Membership flattens statuses into the map persisted for the next update.
func Membership(statuses []domain.ZoneStatus) map[uuid.UUID]bool {
	m := make(map[uuid.UUID]bool, len(statuses))
	for _, st := range statuses {
		m[st.ZoneID] = st.IsInside
	}
	return m
}
