//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/booking"
	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/clock"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/internal/usecase/shared"
	sharedmock "rehearsal-rooms/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const syncWindow = 7 * 24 * time.Hour

type syncMocks struct {
	rooms    *sharedmock.MockRoomRepository
	bookings *sharedmock.MockBookingRepository
	provider *sharedmock.MockBusyProvider
	clock    *clock.MockClock
	commands commands.SyncCommands
}

func newSyncMocks(t *testing.T) *syncMocks {
	ctrl := gomock.NewController(t)
	m := &syncMocks{
		rooms:    sharedmock.NewMockRoomRepository(ctrl),
		bookings: sharedmock.NewMockBookingRepository(ctrl),
		provider: sharedmock.NewMockBusyProvider(ctrl),
		clock:    clock.NewMockClock(time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)),
	}
	m.commands = commands.NewSyncCommands(m.rooms, m.bookings, m.provider, m.clock, syncWindow)
	return m
}

func syncRoom(name, calendarRef string) *room.Room {
	now := time.Now()
	return room.ReconstructRoom(uuid.New(), name, 150000, true, true, &calendarRef, nil, now, now)
}

func TestRun(t *testing.T) {
	ctx := context.Background()

	t.Run("one room's failure never aborts the batch", func(t *testing.T) {
		m := newSyncMocks(t)
		now := m.clock.Now()
		broken := syncRoom("Room A", "cal-broken")
		healthy := syncRoom("Room B", "cal-ok")

		m.rooms.EXPECT().FindSyncEnabled(ctx).Return([]*room.Room{broken, healthy}, nil)

		m.rooms.EXPECT().UpdateSyncState(ctx, broken).Return(nil)
		m.provider.EXPECT().ListBusy(ctx, "cal-broken", now, now.Add(syncWindow)).
			Return(nil, shared.ErrProviderUnavailable)

		m.rooms.EXPECT().UpdateSyncState(ctx, healthy).Return(nil)
		m.provider.EXPECT().ListBusy(ctx, "cal-ok", now, now.Add(syncWindow)).
			Return([]shared.BusyEvent{{OriginID: "evt-1"}}, nil)
		m.bookings.EXPECT().FindMissingMirror(ctx, healthy.ID(), now, now.Add(syncWindow)).
			Return(nil, nil)

		report, err := m.commands.Run(ctx)
		require.NoError(t, err)
		require.Len(t, report.Rooms, 2)

		assert.False(t, report.Rooms[0].Success)
		assert.NotEmpty(t, report.Rooms[0].Error)
		assert.True(t, report.Rooms[1].Success)
		assert.Equal(t, 1, report.Rooms[1].EventsFound)

		// the failed attempt is stamped too
		require.NotNil(t, broken.LastSyncTime())
		assert.Equal(t, now, *broken.LastSyncTime())
	})

	t.Run("backfills missing mirrors", func(t *testing.T) {
		m := newSyncMocks(t)
		now := m.clock.Now()
		rm := syncRoom("Room A", "cal-1")

		unmirrored := persistedBooking(t, rm.ID(), booking.StatusApproved, nil)

		m.rooms.EXPECT().FindSyncEnabled(ctx).Return([]*room.Room{rm}, nil)
		m.rooms.EXPECT().UpdateSyncState(ctx, rm).
			DoAndReturn(func(_ context.Context, r *room.Room) error {
				require.NotNil(t, r.LastSyncTime())
				assert.Equal(t, now, *r.LastSyncTime())
				return nil
			})
		m.provider.EXPECT().ListBusy(ctx, "cal-1", now, now.Add(syncWindow)).Return(nil, nil)
		m.bookings.EXPECT().FindMissingMirror(ctx, rm.ID(), now, now.Add(syncWindow)).
			Return([]*booking.Booking{unmirrored}, nil)
		m.provider.EXPECT().CreateMirror(ctx, "cal-1", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, event shared.MirrorEvent) (string, error) {
				assert.Equal(t, "Rehearsal - band", event.Summary)
				return "evt-new", nil
			})
		m.bookings.EXPECT().SetExternalEventRef(ctx, unmirrored.ID(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, ref *string) error {
				require.NotNil(t, ref)
				assert.Equal(t, "evt-new", *ref)
				return nil
			})

		report, err := m.commands.Run(ctx)
		require.NoError(t, err)
		require.Len(t, report.Rooms, 1)

		assert.True(t, report.Rooms[0].Success)
		assert.Equal(t, 1, report.Rooms[0].BookingsUpdated)
	})

	t.Run("mirror failure mid-backfill keeps the earlier progress", func(t *testing.T) {
		m := newSyncMocks(t)
		now := m.clock.Now()
		rm := syncRoom("Room A", "cal-1")

		first := persistedBooking(t, rm.ID(), booking.StatusApproved, nil)
		second := persistedBooking(t, rm.ID(), booking.StatusApproved, nil)

		m.rooms.EXPECT().FindSyncEnabled(ctx).Return([]*room.Room{rm}, nil)
		m.rooms.EXPECT().UpdateSyncState(ctx, rm).Return(nil)
		m.provider.EXPECT().ListBusy(ctx, "cal-1", now, now.Add(syncWindow)).Return(nil, nil)
		m.bookings.EXPECT().FindMissingMirror(ctx, rm.ID(), now, now.Add(syncWindow)).
			Return([]*booking.Booking{first, second}, nil)

		gomock.InOrder(
			m.provider.EXPECT().CreateMirror(ctx, "cal-1", gomock.Any()).Return("evt-1", nil),
			m.provider.EXPECT().CreateMirror(ctx, "cal-1", gomock.Any()).
				Return("", shared.ErrProviderUnavailable),
		)
		m.bookings.EXPECT().SetExternalEventRef(ctx, first.ID(), gomock.Any()).Return(nil)

		report, err := m.commands.Run(ctx)
		require.NoError(t, err)
		require.Len(t, report.Rooms, 1)

		assert.False(t, report.Rooms[0].Success)
		assert.NotEmpty(t, report.Rooms[0].Error)
		assert.Equal(t, 1, report.Rooms[0].BookingsUpdated)
	})

	t.Run("no sync-enabled rooms yields an empty report", func(t *testing.T) {
		m := newSyncMocks(t)

		m.rooms.EXPECT().FindSyncEnabled(ctx).Return(nil, nil)

		report, err := m.commands.Run(ctx)
		require.NoError(t, err)
		assert.Empty(t, report.Rooms)
	})
}

func TestSetRoomSync(t *testing.T) {
	ctx := context.Background()

	t.Run("enable probes the provider first", func(t *testing.T) {
		m := newSyncMocks(t)
		calendarRef := "cal-1"
		now := time.Now()
		rm := room.ReconstructRoom(uuid.New(), "Room A", 150000, true, false, &calendarRef, nil, now, now)

		m.rooms.EXPECT().FindByID(ctx, rm.ID()).Return(rm, nil)
		m.provider.EXPECT().Probe(ctx, "cal-1").Return(nil)
		m.rooms.EXPECT().UpdateSyncState(ctx, rm).Return(nil)

		view, err := m.commands.SetRoomSync(ctx, rm.ID(), true)
		require.NoError(t, err)
		assert.True(t, view.SyncEnabled)
	})

	t.Run("enable fails when the probe fails", func(t *testing.T) {
		m := newSyncMocks(t)
		calendarRef := "cal-1"
		now := time.Now()
		rm := room.ReconstructRoom(uuid.New(), "Room A", 150000, true, false, &calendarRef, nil, now, now)

		m.rooms.EXPECT().FindByID(ctx, rm.ID()).Return(rm, nil)
		m.provider.EXPECT().Probe(ctx, "cal-1").Return(shared.ErrProviderUnavailable)

		_, err := m.commands.SetRoomSync(ctx, rm.ID(), true)
		assert.ErrorIs(t, err, commands.ErrProviderUnreachable)
		assert.False(t, rm.SyncEnabled())
	})

	t.Run("enable requires a calendar mapping", func(t *testing.T) {
		m := newSyncMocks(t)
		now := time.Now()
		rm := room.ReconstructRoom(uuid.New(), "Room A", 150000, true, false, nil, nil, now, now)

		m.rooms.EXPECT().FindByID(ctx, rm.ID()).Return(rm, nil)

		_, err := m.commands.SetRoomSync(ctx, rm.ID(), true)
		assert.ErrorIs(t, err, shared.ErrRoomNotMapped)
	})

	t.Run("disable is unconditional", func(t *testing.T) {
		m := newSyncMocks(t)
		rm := syncRoom("Room A", "cal-1")

		m.rooms.EXPECT().FindByID(ctx, rm.ID()).Return(rm, nil)
		m.rooms.EXPECT().UpdateSyncState(ctx, rm).Return(nil)

		view, err := m.commands.SetRoomSync(ctx, rm.ID(), false)
		require.NoError(t, err)
		assert.False(t, view.SyncEnabled)
	})

	t.Run("unknown room", func(t *testing.T) {
		m := newSyncMocks(t)
		id := uuid.New()

		m.rooms.EXPECT().FindByID(ctx, id).
			Return(nil, infra.WrapRepoErr("room not found", nil, infra.KindNotFound))

		_, err := m.commands.SetRoomSync(ctx, id, true)
		assert.ErrorIs(t, err, queries.ErrRoomNotFound)
	})
}
