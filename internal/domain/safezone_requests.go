package domain

type CreateSafeZoneRequest struct {
	Name             string    `json:"name" validate:"required,min=1,max=120"`
	Description      string    `json:"description,omitempty" validate:"max=500"`
	CenterLat        float64   `json:"center_lat" validate:"required,lat"`
	CenterLng        float64   `json:"center_lng" validate:"required,lng"`
	RadiusM          float64   `json:"radius_m" validate:"required,radius_m"`
	ZoneType         ZoneType  `json:"zone_type" validate:"required,oneof=school home family medical emergency"`
	ScopeType        ScopeType `json:"scope_type" validate:"required,oneof=school family"`
	ScopeID          int64     `json:"scope_id" validate:"required"`
	CreatedBy        int64     `json:"created_by" validate:"required"`
	AllowedTimeStart string    `json:"allowed_time_start,omitempty" validate:"omitempty,hhmm"`
	AllowedTimeEnd   string    `json:"allowed_time_end,omitempty" validate:"omitempty,hhmm"`
	AllowedDays      []string  `json:"allowed_days,omitempty" validate:"omitempty,dive,weekday"`
	NotifyOnEntry    bool      `json:"notify_on_entry"`
	NotifyOnExit     bool      `json:"notify_on_exit"`
}

type UpdateSafeZoneRequest struct {
	Name             *string   `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	Description      *string   `json:"description,omitempty" validate:"omitempty,max=500"`
	CenterLat        *float64  `json:"center_lat,omitempty" validate:"omitempty,lat"`
	CenterLng        *float64  `json:"center_lng,omitempty" validate:"omitempty,lng"`
	RadiusM          *float64  `json:"radius_m,omitempty" validate:"omitempty,radius_m"`
	ZoneType         *ZoneType `json:"zone_type,omitempty" validate:"omitempty,oneof=school home family medical emergency"`
	AllowedTimeStart *string   `json:"allowed_time_start,omitempty" validate:"omitempty,hhmm"`
	AllowedTimeEnd   *string   `json:"allowed_time_end,omitempty" validate:"omitempty,hhmm"`
	AllowedDays      *[]string `json:"allowed_days,omitempty" validate:"omitempty,dive,weekday"`
	NotifyOnEntry    *bool     `json:"notify_on_entry,omitempty"`
	NotifyOnExit     *bool     `json:"notify_on_exit,omitempty"`
	IsActive         *bool     `json:"is_active,omitempty"`
}

type ListSafeZonesResponse struct {
	Zones []SafeZone `json:"zones"`
	Page  int        `json:"page"`
	Limit int        `json:"limit"`
	Total int64      `json:"total"`
}
