package response

import (
	"time"

	"rehearsal-rooms/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotResponse struct {
	ID        string    `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

type DayAvailabilityResponse struct {
	RoomID         uuid.UUID      `json:"roomId"`
	Date           string         `json:"date"`
	Slots          []SlotResponse `json:"slots"`
	CarryoverSlots []SlotResponse `json:"carryoverSlots"`
}

func FromDayAvailabilityView(rm *queries.DayAvailabilityView) *DayAvailabilityResponse {
	return &DayAvailabilityResponse{
		RoomID:         rm.RoomID,
		Date:           rm.Date,
		Slots:          slotsFrom(rm.Slots),
		CarryoverSlots: slotsFrom(rm.CarryoverSlots),
	}
}

func slotsFrom(views []queries.SlotView) []SlotResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{
			ID:        v.ID,
			Start:     v.Start,
			End:       v.End,
			Available: v.Available,
		}
	}
	return slots
}
