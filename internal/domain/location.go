package domain

import (
	"time"

	"github.com/google/uuid"
)

// LocationSample is a single device position report. The timestamp is
// caller-supplied and trusted as-is. Speed is km/h when present.
type LocationSample struct {
	DeviceID  int64     `json:"device_id" validate:"required"`
	UserID    int64     `json:"user_id" validate:"required"`
	Lat       float64   `json:"lat" validate:"required,lat"`
	Lng       float64   `json:"lng" validate:"required,lng"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Altitude  *float64  `json:"altitude,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ZoneStatus is the per-zone evaluation result for one sample. DistanceM is
// rounded to whole meters. Not persisted; recomputed on every evaluation.
type ZoneStatus struct {
	ZoneID        uuid.UUID `json:"zone_id"`
	ZoneName      string    `json:"zone_name"`
	IsInside      bool      `json:"is_inside"`
	DistanceM     int64     `json:"distance_m"`
	IsAllowedTime bool      `json:"is_allowed_time"`
	IsAllowedDay  bool      `json:"is_allowed_day"`
}

type TrackLocationRequest struct {
	DeviceID  int64     `json:"device_id" validate:"required"`
	UserID    int64     `json:"user_id" validate:"required"`
	ScopeType ScopeType `json:"scope_type" validate:"required,oneof=school family"`
	ScopeID   int64     `json:"scope_id" validate:"required"`
	Lat       float64   `json:"lat" validate:"required,lat"`
	Lng       float64   `json:"lng" validate:"required,lng"`
	Accuracy  *float64  `json:"accuracy,omitempty"`
	Altitude  *float64  `json:"altitude,omitempty"`
	Speed     *float64  `json:"speed,omitempty"`
	Heading   *float64  `json:"heading,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// TrackLocationResponse carries the evaluation output. Evaluated=false means
// the update was accepted but evaluation failed internally; statuses and
// alerts are empty in that case rather than partial.
type TrackLocationResponse struct {
	ZoneStatuses []ZoneStatus `json:"zone_statuses"`
	Alerts       []Alert      `json:"alerts"`
	Evaluated    bool         `json:"evaluated"`
}

// LocationCheck is the persisted trace of one evaluated update.
type LocationCheck struct {
	ID        uuid.UUID   `json:"id"`
	DeviceID  int64       `json:"device_id"`
	UserID    int64       `json:"user_id"`
	Lat       float64     `json:"lat"`
	Lng       float64     `json:"lng"`
	ZoneIDs   []uuid.UUID `json:"zone_ids"`
	CheckedAt time.Time   `json:"checked_at"`
}
