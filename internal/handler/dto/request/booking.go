package request

import (
	"time"

	"github.com/google/uuid"
)

type SubmitBookingRequest struct {
	RoomID uuid.UUID `json:"roomId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required,oneof=pending_review approved cancelled completed"`
}
