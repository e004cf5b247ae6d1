package domain

import (
	"time"

	"github.com/google/uuid"
)

type ZoneType string

const (
	ZoneSchool    ZoneType = "school"
	ZoneHome      ZoneType = "home"
	ZoneFamily    ZoneType = "family"
	ZoneMedical   ZoneType = "medical"
	ZoneEmergency ZoneType = "emergency"
)

type ScopeType string

const (
	ScopeSchool ScopeType = "school"
	ScopeFamily ScopeType = "family"
)

// SafeZone is a circular geofence with an optional time-of-day/day-of-week
// access policy. Radius is in meters, 10..5000. AllowedTimeStart/End are
// zero-padded "HH:MM" strings and are either both set or both empty; an
// empty window means "always allowed". AllowedDays holds lowercase English
// day names; empty means "all days".
type SafeZone struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	CenterLat        float64   `json:"center_lat" validate:"required,lat"`
	CenterLng        float64   `json:"center_lng" validate:"required,lng"`
	RadiusM          float64   `json:"radius_m" validate:"required,radius_m"`
	ZoneType         ZoneType  `json:"zone_type"`
	ScopeType        ScopeType `json:"scope_type"`
	ScopeID          int64     `json:"scope_id"`
	CreatedBy        int64     `json:"created_by"`
	AllowedTimeStart string    `json:"allowed_time_start,omitempty"`
	AllowedTimeEnd   string    `json:"allowed_time_end,omitempty"`
	AllowedDays      []string  `json:"allowed_days,omitempty"`
	NotifyOnEntry    bool      `json:"notify_on_entry"`
	NotifyOnExit     bool      `json:"notify_on_exit"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

// ZoneScope identifies one owning scope (a school or a family).
type ZoneScope struct {
	ScopeType ScopeType `json:"scope_type"`
	ScopeID   int64     `json:"scope_id"`
}

// HasTimeWindow reports whether the zone restricts access by time of day.
func (z *SafeZone) HasTimeWindow() bool {
	return z.AllowedTimeStart != "" && z.AllowedTimeEnd != ""
}
