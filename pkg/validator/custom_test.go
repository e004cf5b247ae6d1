package validator_test

import (
	"testing"

	"educafric/internal/domain"
	"educafric/pkg/validator"
)

func validCreateRequest() domain.CreateSafeZoneRequest {
	return domain.CreateSafeZoneRequest{
		Name:             "École Saint-Paul",
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
	}
}

func TestValidateCreateSafeZoneRequest(t *testing.T) {
	t.Parallel()

	req := validCreateRequest()
	if err := validator.ValidateStruct(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*domain.CreateSafeZoneRequest)
	}{
		{"lat out of range", func(r *domain.CreateSafeZoneRequest) { r.CenterLat = 90.5 }},
		{"lng out of range", func(r *domain.CreateSafeZoneRequest) { r.CenterLng = -180.5 }},
		{"radius too small", func(r *domain.CreateSafeZoneRequest) { r.RadiusM = 5 }},
		{"radius too large", func(r *domain.CreateSafeZoneRequest) { r.RadiusM = 6000 }},
		{"unpadded hour", func(r *domain.CreateSafeZoneRequest) { r.AllowedTimeStart = "7:00" }},
		{"hour 24", func(r *domain.CreateSafeZoneRequest) { r.AllowedTimeEnd = "24:00" }},
		{"capitalized day", func(r *domain.CreateSafeZoneRequest) { r.AllowedDays = []string{"Monday"} }},
		{"french day", func(r *domain.CreateSafeZoneRequest) { r.AllowedDays = []string{"lundi"} }},
		{"unknown zone type", func(r *domain.CreateSafeZoneRequest) { r.ZoneType = "park" }},
		{"unknown scope type", func(r *domain.CreateSafeZoneRequest) { r.ScopeType = "village" }},
		{"empty name", func(r *domain.CreateSafeZoneRequest) { r.Name = "" }},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := validCreateRequest()
			tc.mutate(&req)
			if err := validator.ValidateStruct(&req); err == nil {
				t.Fatalf("expected validation failure")
			}
		})
	}
}

func TestValidateTrackLocationRequest(t *testing.T) {
	t.Parallel()

	req := domain.TrackLocationRequest{
		DeviceID:  42,
		UserID:    7,
		ScopeType: domain.ScopeSchool,
		ScopeID:   1,
		Lat:       4.0511,
		Lng:       9.7679,
	}
	if err := validator.ValidateStruct(&req); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	req.Lat = 95
	if err := validator.ValidateStruct(&req); err == nil {
		t.Fatalf("expected failure for out-of-range lat")
	}
}
