package booking

import (
	"errors"
	"time"

	"rehearsal-rooms/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange      = errors.New("invalid booking range")
	ErrInvalidStatus     = errors.New("invalid status value")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrNegativeRate      = errors.New("hourly rate cannot be negative")
)

// RoomSpec is the write-side snapshot of the room a booking is made against.
type RoomSpec struct {
	ID              uuid.UUID
	Name            string
	HourlyRateCents int64
}

type Booking struct {
	id               uuid.UUID
	roomID           uuid.UUID
	clientID         uuid.UUID
	clientName       string
	timeRange        TimeRange
	status           Status
	totalPrice       Money
	externalEventRef *string
	createdAt        time.Time
	updatedAt        time.Time
}

// NewBooking admits a proposed reservation into the domain: range validated,
// priced per started hour, status starts at pending review. The external
// mirror ref is always unset here; mirroring is a post-commit side effect.
func NewBooking(room RoomSpec, clientID uuid.UUID, clientName string, start, end time.Time) (*Booking, error) {
	tr, err := NewTimeRange(start, end)
	if err != nil {
		return nil, ErrInvalidRange
	}
	if room.HourlyRateCents < 0 {
		return nil, ErrNegativeRate
	}

	price, err := NewMoney(int64(tr.DurationHours()) * room.HourlyRateCents)
	if err != nil {
		return nil, err
	}

	return &Booking{
		id:         uuid.New(),
		roomID:     room.ID,
		clientID:   clientID,
		clientName: clientName,
		timeRange:  tr,
		status:     StatusPendingReview,
		totalPrice: price,
	}, nil
}

func ReconstructBooking(
	id, roomID, clientID uuid.UUID,
	clientName string,
	timeRange TimeRange,
	status Status,
	totalPrice Money,
	externalEventRef *string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:               id,
		roomID:           roomID,
		clientID:         clientID,
		clientName:       clientName,
		timeRange:        timeRange,
		status:           status,
		totalPrice:       totalPrice,
		externalEventRef: externalEventRef,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (b *Booking) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	return nil
}

// SetExternalEventRef records a successful mirror creation. The ref being
// present is the fact that the mirror exists; absence only means
// reconciliation is still pending.
func (b *Booking) SetExternalEventRef(ref string) {
	b.externalEventRef = &ref
}

func (b *Booking) ClearExternalEventRef() {
	b.externalEventRef = nil
}

func (b *Booking) IsMirrored() bool {
	return b.externalEventRef != nil
}

func (b *Booking) Blocks() bool {
	return b.status.Blocks()
}

// BusyInterval projects the booking into the availability grid's value type.
func (b *Booking) BusyInterval() schedule.BusyInterval {
	return schedule.BusyInterval{
		Start:     b.timeRange.Start(),
		End:       b.timeRange.End(),
		Source:    schedule.SourceInternal,
		OriginRef: b.id.String(),
	}
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) RoomID() uuid.UUID         { return b.roomID }
func (b *Booking) ClientID() uuid.UUID       { return b.clientID }
func (b *Booking) ClientName() string        { return b.clientName }
func (b *Booking) TimeRange() TimeRange      { return b.timeRange }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) TotalPrice() Money         { return b.totalPrice }
func (b *Booking) ExternalEventRef() *string { return b.externalEventRef }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }
