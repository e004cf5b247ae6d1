package domain

import (
	"time"

	"github.com/google/uuid"
)

type PanicType string

const (
	PanicMedical  PanicType = "medical"
	PanicSecurity PanicType = "security"
	PanicLost     PanicType = "lost"
	PanicAccident PanicType = "accident"
)

// EmergencyPanic is a user-triggered distress signal. Resolution happens
// out-of-band by a human responder.
type EmergencyPanic struct {
	ID                         uuid.UUID `json:"id"`
	UserID                     int64     `json:"user_id"`
	DeviceID                   int64     `json:"device_id"`
	Lat                        float64   `json:"lat"`
	Lng                        float64   `json:"lng"`
	PanicType                  PanicType `json:"panic_type"`
	Message                    string    `json:"message,omitempty"`
	Timestamp                  time.Time `json:"timestamp"`
	IsResolved                 bool      `json:"is_resolved"`
	EmergencyServicesContacted bool      `json:"emergency_services_contacted"`
}

type TriggerPanicRequest struct {
	UserID    int64     `json:"user_id" validate:"required"`
	DeviceID  int64     `json:"device_id" validate:"required"`
	Lat       float64   `json:"lat" validate:"required,lat"`
	Lng       float64   `json:"lng" validate:"required,lng"`
	PanicType PanicType `json:"panic_type" validate:"required,oneof=medical security lost accident"`
	Message   string    `json:"message,omitempty"`
}

type TriggerPanicResponse struct {
	Success             bool      `json:"success"`
	EmergencyID         uuid.UUID `json:"emergency_id"`
	ResponseTimeSeconds int       `json:"response_time_seconds"`
}
