package response

import (
	"time"

	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	HourlyRateCents     int64      `json:"hourlyRateCents"`
	IsActive            bool       `json:"isActive"`
	SyncEnabled         bool       `json:"syncEnabled"`
	ExternalCalendarRef *string    `json:"externalCalendarRef,omitempty"`
	LastSyncTime        *time.Time `json:"lastSyncTime,omitempty"`
}

type SyncReportResponse struct {
	RanAt time.Time                `json:"ranAt"`
	Rooms []RoomSyncResultResponse `json:"rooms"`
}

type RoomSyncResultResponse struct {
	RoomID          uuid.UUID `json:"roomId"`
	RoomName        string    `json:"roomName"`
	EventsFound     int       `json:"eventsFound"`
	BookingsUpdated int       `json:"bookingsUpdated"`
	Success         bool      `json:"success"`
	Error           string    `json:"error,omitempty"`
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:                  rm.ID,
		Name:                rm.Name,
		HourlyRateCents:     rm.HourlyRateCents,
		IsActive:            rm.IsActive,
		SyncEnabled:         rm.SyncEnabled,
		ExternalCalendarRef: rm.ExternalCalendarRef,
		LastSyncTime:        rm.LastSyncTime,
	}
}

func FromSyncReport(report *commands.SyncReport) *SyncReportResponse {
	rooms := make([]RoomSyncResultResponse, len(report.Rooms))
	for i, r := range report.Rooms {
		rooms[i] = RoomSyncResultResponse{
			RoomID:          r.RoomID,
			RoomName:        r.RoomName,
			EventsFound:     r.EventsFound,
			BookingsUpdated: r.BookingsUpdated,
			Success:         r.Success,
			Error:           r.Error,
		}
	}
	return &SyncReportResponse{
		RanAt: report.RanAt,
		Rooms: rooms,
	}
}
