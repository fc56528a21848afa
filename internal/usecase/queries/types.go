package queries

import (
	"time"

	"rehearsal-rooms/internal/domain/booking"
	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/domain/schedule"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type SlotView struct {
	ID        string    `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Available bool      `json:"available"`
}

type DayAvailabilityView struct {
	RoomID         uuid.UUID  `json:"room_id"`
	Date           string     `json:"date"`
	Slots          []SlotView `json:"slots"`
	CarryoverSlots []SlotView `json:"carryover_slots"`
}

type BookingView struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"room_id"`
	ClientID         uuid.UUID `json:"client_id"`
	ClientName       string    `json:"client_name"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	DurationHours    int       `json:"duration_hours"`
	Status           string    `json:"status"`
	TotalPriceCents  int64     `json:"total_price_cents"`
	ExternalEventRef *string   `json:"external_event_ref,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type RoomView struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	HourlyRateCents     int64      `json:"hourly_rate_cents"`
	IsActive            bool       `json:"is_active"`
	SyncEnabled         bool       `json:"sync_enabled"`
	ExternalCalendarRef *string    `json:"external_calendar_ref,omitempty"`
	LastSyncTime        *time.Time `json:"last_sync_time,omitempty"`
}

func SlotViewsFrom(slots []schedule.Slot) []SlotView {
	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{
			ID:        s.ID,
			Start:     s.Start,
			End:       s.End,
			Available: s.Available,
		}
	}
	return views
}

func BookingViewFrom(b *booking.Booking) *BookingView {
	return &BookingView{
		ID:               b.ID(),
		RoomID:           b.RoomID(),
		ClientID:         b.ClientID(),
		ClientName:       b.ClientName(),
		Start:            b.TimeRange().Start(),
		End:              b.TimeRange().End(),
		DurationHours:    b.TimeRange().DurationHours(),
		Status:           b.Status().String(),
		TotalPriceCents:  b.TotalPrice().Cents(),
		ExternalEventRef: b.ExternalEventRef(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}
}

func RoomViewFrom(rm *room.Room) *RoomView {
	return &RoomView{
		ID:                  rm.ID(),
		Name:                rm.Name(),
		HourlyRateCents:     rm.HourlyRateCents(),
		IsActive:            rm.IsActive(),
		SyncEnabled:         rm.SyncEnabled(),
		ExternalCalendarRef: rm.ExternalCalendarRef(),
		LastSyncTime:        rm.LastSyncTime(),
	}
}
