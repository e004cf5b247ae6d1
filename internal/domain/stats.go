package domain

type TrackingStats struct {
	DeviceCount int64 `json:"device_count"`
	AlertCount  int64 `json:"alert_count"`
	Minutes     int   `json:"minutes"`
}

type StatsRequest struct {
	Minutes int `query:"minutes" validate:"min=1,max=1440"` // one day max
}
