package request

import "time"

type GenerateSlotsRequest struct {
	StartTime       time.Time `json:"start_time" binding:"required"`
	EndTime         time.Time `json:"end_time" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=15,max=240"`
}

func (r GenerateSlotsRequest) Duration() time.Duration {
	return time.Duration(r.DurationMinutes) * time.Minute
}
