package queries

import (
	"context"
	"time"

	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/errs"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrRoomNotFound = errs.New("room not found")
)

type AvailabilityQueries interface {
	// GetDayAvailability returns the tagged slot grid for the date: the full
	// day plus the early-morning carryover of the following day.
	GetDayAvailability(ctx context.Context, roomID uuid.UUID, date time.Time) (*DayAvailabilityView, error)
}

type availabilityQueriesImpl struct {
	rooms shared.RoomRepository
	grid  *shared.GridService
}

func NewAvailabilityQueries(rooms shared.RoomRepository, grid *shared.GridService) AvailabilityQueries {
	return &availabilityQueriesImpl{
		rooms: rooms,
		grid:  grid,
	}
}

func (q *availabilityQueriesImpl) GetDayAvailability(ctx context.Context, roomID uuid.UUID, date time.Time) (*DayAvailabilityView, error) {
	rm, err := q.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	grid, err := q.grid.BuildDayGrid(ctx, rm, date)
	if err != nil {
		return nil, err
	}

	return &DayAvailabilityView{
		RoomID:         rm.ID(),
		Date:           date.Format("2006-01-02"),
		Slots:          SlotViewsFrom(grid.Day),
		CarryoverSlots: SlotViewsFrom(grid.Carryover),
	}, nil
}
