//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/booking"
	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/internal/usecase/shared"
	sharedmock "rehearsal-rooms/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func syncedRoom(calendarRef string) *room.Room {
	now := time.Now()
	return room.ReconstructRoom(
		uuid.New(), "Room A", 150000,
		true, true, &calendarRef, nil, now, now,
	)
}

func plainRoom() *room.Room {
	now := time.Now()
	return room.ReconstructRoom(
		uuid.New(), "Room A", 150000,
		true, false, nil, nil, now, now,
	)
}

func blockingBooking(t *testing.T, roomID uuid.UUID, start, end time.Time) *booking.Booking {
	t.Helper()
	tr, err := booking.NewTimeRange(start, end)
	require.NoError(t, err)
	price, err := booking.NewMoney(0)
	require.NoError(t, err)
	return booking.ReconstructBooking(
		uuid.New(), roomID, uuid.New(), "band",
		tr, booking.StatusApproved, price, nil, start, start,
	)
}

func TestGetDayAvailability(t *testing.T) {
	ctx := context.Background()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	setup := func(t *testing.T) (*sharedmock.MockRoomRepository, *sharedmock.MockBookingRepository, *sharedmock.MockBusyProvider, queries.AvailabilityQueries) {
		ctrl := gomock.NewController(t)
		rooms := sharedmock.NewMockRoomRepository(ctrl)
		bookings := sharedmock.NewMockBookingRepository(ctrl)
		provider := sharedmock.NewMockBusyProvider(ctrl)
		grid := shared.NewGridService(bookings, provider, time.UTC)
		return rooms, bookings, provider, queries.NewAvailabilityQueries(rooms, grid)
	}

	t.Run("merges internal and external busy sources", func(t *testing.T) {
		rooms, bookings, provider, q := setup(t)
		rm := syncedRoom("cal-1")

		rooms.EXPECT().FindByID(ctx, rm.ID()).Return(rm, nil)
		bookings.EXPECT().FindBlockingInRange(ctx, rm.ID(), gomock.Any(), gomock.Any()).
			Return([]*booking.Booking{
				blockingBooking(t, rm.ID(), date.Add(14*time.Hour), date.Add(15*time.Hour)),
			}, nil)
		provider.EXPECT().ListBusy(ctx, "cal-1", gomock.Any(), gomock.Any()).
			Return([]shared.BusyEvent{
				{OriginID: "evt-1", Start: date.Add(9 * time.Hour), End: date.Add(10 * time.Hour)},
			}, nil)

		view, err := q.GetDayAvailability(ctx, rm.ID(), date)
		require.NoError(t, err)

		require.Len(t, view.Slots, 24)
		require.Len(t, view.CarryoverSlots, 6)
		assert.Equal(t, "2025-03-10", view.Date)
		assert.False(t, view.Slots[14].Available)
		assert.False(t, view.Slots[9].Available)
		assert.True(t, view.Slots[10].Available)
	})

	t.Run("provider outage degrades open", func(t *testing.T) {
		rooms, bookings, provider, q := setup(t)
		rm := syncedRoom("cal-1")

		rooms.EXPECT().FindByID(ctx, rm.ID()).Return(rm, nil)
		bookings.EXPECT().FindBlockingInRange(ctx, rm.ID(), gomock.Any(), gomock.Any()).
			Return(nil, nil)
		provider.EXPECT().ListBusy(ctx, "cal-1", gomock.Any(), gomock.Any()).
			Return(nil, shared.ErrProviderUnavailable)

		view, err := q.GetDayAvailability(ctx, rm.ID(), date)
		require.NoError(t, err)

		for _, s := range view.Slots {
			assert.True(t, s.Available)
		}
	})

	t.Run("provider is not consulted for rooms without sync", func(t *testing.T) {
		rooms, bookings, _, q := setup(t)
		rm := plainRoom()

		rooms.EXPECT().FindByID(ctx, rm.ID()).Return(rm, nil)
		bookings.EXPECT().FindBlockingInRange(ctx, rm.ID(), gomock.Any(), gomock.Any()).
			Return(nil, nil)

		_, err := q.GetDayAvailability(ctx, rm.ID(), date)
		require.NoError(t, err)
	})

	t.Run("unknown room", func(t *testing.T) {
		rooms, _, _, q := setup(t)
		roomID := uuid.New()

		rooms.EXPECT().FindByID(ctx, roomID).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := q.GetDayAvailability(ctx, roomID, date)
		assert.ErrorIs(t, err, queries.ErrRoomNotFound)
	})
}
