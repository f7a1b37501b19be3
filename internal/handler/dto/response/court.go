package response

import (
	"time"

	"courtbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type CourtResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Location     string    `json:"location"`
	PricePerHour int64     `json:"pricePerHour"`
	IsActive     bool      `json:"isActive"`
}

type SlotResponse struct {
	ID          uuid.UUID `json:"id"`
	CourtID     uuid.UUID `json:"courtId"`
	SlotDate    string    `json:"slotDate"`
	SlotNumber  int       `json:"slotNumber"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	IsAvailable bool      `json:"isAvailable"`
}

func FromCourtView(v *queries.CourtView) *CourtResponse {
	return &CourtResponse{
		ID:           v.ID,
		Name:         v.Name,
		Location:     v.Location,
		PricePerHour: v.PricePerHour,
		IsActive:     v.IsActive,
	}
}

func FromSlotView(v *queries.SlotView) *SlotResponse {
	return &SlotResponse{
		ID:          v.ID,
		CourtID:     v.CourtID,
		SlotDate:    v.SlotDate.Format("2006-01-02"),
		SlotNumber:  v.SlotNumber,
		StartTime:   v.StartTime,
		EndTime:     v.EndTime,
		IsAvailable: v.IsAvailable,
	}
}

func FromSlotViews(views []*queries.SlotView) []*SlotResponse {
	resp := make([]*SlotResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, FromSlotView(v))
	}
	return resp
}
