package response

import (
	"time"

	"rehearsal-rooms/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID               uuid.UUID `json:"id"`
	RoomID           uuid.UUID `json:"roomId"`
	ClientID         uuid.UUID `json:"clientId"`
	ClientName       string    `json:"clientName"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	DurationHours    int       `json:"durationHours"`
	Status           string    `json:"status"`
	TotalPriceCents  int64     `json:"totalPriceCents"`
	ExternalEventRef *string   `json:"externalEventRef,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

type StatusChangeResponse struct {
	Booking  *BookingResponse `json:"booking"`
	SyncNote string           `json:"syncNote,omitempty"`
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:               rm.ID,
		RoomID:           rm.RoomID,
		ClientID:         rm.ClientID,
		ClientName:       rm.ClientName,
		Start:            rm.Start,
		End:              rm.End,
		DurationHours:    rm.DurationHours,
		Status:           rm.Status,
		TotalPriceCents:  rm.TotalPriceCents,
		ExternalEventRef: rm.ExternalEventRef,
		CreatedAt:        rm.CreatedAt,
		UpdatedAt:        rm.UpdatedAt,
	}
}
