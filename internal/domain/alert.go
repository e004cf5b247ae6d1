package domain

import (
	"time"

	"github.com/google/uuid"
)

type AlertType string

const (
	AlertEntry            AlertType = "entry"
	AlertExit             AlertType = "exit"
	AlertUnauthorizedTime AlertType = "unauthorized_time"
	AlertSpeedLimit       AlertType = "speed_limit"
)

type AlertSeverity string

const (
	SeverityLow    AlertSeverity = "low"
	SeverityMedium AlertSeverity = "medium"
	SeverityHigh   AlertSeverity = "high"
)

// SeverityFor maps an alert type to its fixed severity.
func SeverityFor(t AlertType) AlertSeverity {
	switch t {
	case AlertEntry:
		return SeverityLow
	case AlertExit:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// Alert describes one notable geofencing condition. SafeZoneID is nil for
// speed violations, which are zone-independent.
type Alert struct {
	ID         uuid.UUID     `json:"id"`
	DeviceID   int64         `json:"device_id"`
	UserID     int64         `json:"user_id"`
	SafeZoneID *uuid.UUID    `json:"safe_zone_id,omitempty"`
	AlertType  AlertType     `json:"alert_type"`
	Severity   AlertSeverity `json:"severity"`
	Message    string        `json:"message"`
	Lat        float64       `json:"lat"`
	Lng        float64       `json:"lng"`
	Timestamp  time.Time     `json:"timestamp"`
}

// NotificationPayload is what gets queued for the notification sender.
type NotificationPayload struct {
	UserID    int64         `json:"user_id"`
	DeviceID  int64         `json:"device_id"`
	AlertType AlertType     `json:"alert_type"`
	Severity  AlertSeverity `json:"severity"`
	Message   string        `json:"message"`
	Urgent    bool          `json:"urgent"`
	SentAt    time.Time     `json:"sent_at"`
}
