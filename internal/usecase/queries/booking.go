package queries

import (
	"context"

	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/errs"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings shared.BookingRepository
}

func NewBookingQueries(bookings shared.BookingRepository) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	b, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return BookingViewFrom(b), nil
}

type RoomQueries interface {
	List(ctx context.Context) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	rooms shared.RoomRepository
}

func NewRoomQueries(rooms shared.RoomRepository) RoomQueries {
	return &roomQueriesImpl{rooms: rooms}
}

func (q *roomQueriesImpl) List(ctx context.Context) ([]*RoomView, error) {
	all, err := q.rooms.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]*RoomView, len(all))
	for i, rm := range all {
		views[i] = RoomViewFrom(rm)
	}
	return views, nil
}
