package commands

import (
	"context"
	"log/slog"
	"time"

	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/clock"
	"rehearsal-rooms/internal/pkg/errs"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrProviderUnreachable = errs.New("external provider unreachable")
)

type SyncReport struct {
	RanAt time.Time        `json:"ran_at"`
	Rooms []RoomSyncResult `json:"rooms"`
}

type RoomSyncResult struct {
	RoomID          uuid.UUID `json:"room_id"`
	RoomName        string    `json:"room_name"`
	EventsFound     int       `json:"events_found"`
	BookingsUpdated int       `json:"bookings_updated"`
	Success         bool      `json:"success"`
	Error           string    `json:"error,omitempty"`
}

type SyncCommands interface {
	// Run reconciles every sync-enabled room against the external provider
	// over the fixed forward window, backfilling missing mirrors. One room's
	// failure never aborts the batch.
	Run(ctx context.Context) (*SyncReport, error)
	// SetRoomSync toggles a room's sync flag. Enabling probes the provider
	// first and refuses on failure; disabling is unconditional.
	SetRoomSync(ctx context.Context, roomID uuid.UUID, enabled bool) (*queries.RoomView, error)
}

type syncCommandsImpl struct {
	rooms    shared.RoomRepository
	bookings shared.BookingRepository
	provider shared.BusyProvider
	clock    clock.Clock
	window   time.Duration
}

func NewSyncCommands(
	rooms shared.RoomRepository,
	bookings shared.BookingRepository,
	provider shared.BusyProvider,
	clk clock.Clock,
	window time.Duration,
) SyncCommands {
	return &syncCommandsImpl{
		rooms:    rooms,
		bookings: bookings,
		provider: provider,
		clock:    clk,
		window:   window,
	}
}

func (c *syncCommandsImpl) Run(ctx context.Context) (*SyncReport, error) {
	now := c.clock.Now()

	syncRooms, err := c.rooms.FindSyncEnabled(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	report := &SyncReport{
		RanAt: now,
		Rooms: make([]RoomSyncResult, 0, len(syncRooms)),
	}

	for _, rm := range syncRooms {
		report.Rooms = append(report.Rooms, c.syncRoom(ctx, rm, now))
	}

	return report, nil
}

func (c *syncCommandsImpl) syncRoom(ctx context.Context, rm *room.Room, now time.Time) RoomSyncResult {
	roomID := rm.ID()
	result := RoomSyncResult{RoomID: roomID, RoomName: rm.Name()}

	fail := func(err error) RoomSyncResult {
		slog.Warn("room sync failed", "room_id", roomID.String(), "error", err.Error())
		result.Error = err.Error()
		return result
	}

	// The attempt itself is stamped, successful or not, so a room that keeps
	// failing is visible by its stale data against a fresh last_sync_time.
	rm.MarkSynced(now)
	if err := c.rooms.UpdateSyncState(ctx, rm); err != nil {
		return fail(err)
	}

	calendarRef := rm.ExternalCalendarRef()
	if calendarRef == nil {
		return fail(shared.ErrRoomNotMapped)
	}

	events, err := c.provider.ListBusy(ctx, *calendarRef, now, now.Add(c.window))
	if err != nil {
		return fail(err)
	}
	result.EventsFound = len(events)

	unmirrored, err := c.bookings.FindMissingMirror(ctx, roomID, now, now.Add(c.window))
	if err != nil {
		return fail(err)
	}

	for _, b := range unmirrored {
		originID, err := c.provider.CreateMirror(ctx, *calendarRef, mirrorEventFrom(b))
		if err != nil {
			return fail(err)
		}
		if err := c.bookings.SetExternalEventRef(ctx, b.ID(), &originID); err != nil {
			return fail(err)
		}
		result.BookingsUpdated++
	}

	result.Success = true
	return result
}

func (c *syncCommandsImpl) SetRoomSync(ctx context.Context, roomID uuid.UUID, enabled bool) (*queries.RoomView, error) {
	rm, err := c.rooms.FindByID(ctx, roomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, queries.ErrRoomNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if enabled {
		if rm.ExternalCalendarRef() == nil {
			return nil, shared.ErrRoomNotMapped
		}
		// Connectivity probe: sync must not be enabled against a calendar
		// the provider cannot serve.
		if err := c.provider.Probe(ctx, *rm.ExternalCalendarRef()); err != nil {
			return nil, errs.Mark(err, ErrProviderUnreachable)
		}
		if err := rm.EnableSync(); err != nil {
			return nil, errs.Mark(err, shared.ErrRoomNotMapped)
		}
	} else {
		rm.DisableSync()
	}

	if err := c.rooms.UpdateSyncState(ctx, rm); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	return queries.RoomViewFrom(rm), nil
}
