package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"rehearsal-rooms/internal/domain/booking"
	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/domain/schedule"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/errs"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidRange           = errs.New("invalid booking range")
	ErrRoomUnavailable        = errs.New("room unavailable")
	ErrSlotConflict           = errs.New("slot conflict")
	ErrSelectionDiscontinuous = errs.New("selection spans an unavailable slot")
	ErrReversedDayOrder       = errs.New("selection runs backwards across midnight")
	ErrBookingNotFound        = errs.New("booking not found")
	ErrInvalidStatus          = errs.New("invalid status change")
	ErrStoreFailure           = errs.New("store operation failed")
)

// Sync notes returned alongside status changes so the best-effort mirror
// outcome is visible as data rather than hidden in logs.
const (
	SyncNoteMirrorCreated       = "mirror_created"
	SyncNoteMirrorUpdated       = "mirror_updated"
	SyncNoteMirrorDeleted       = "mirror_deleted"
	SyncNoteMirrorPending       = "mirror_pending"
	SyncNoteMirrorUpdatePending = "mirror_update_pending"
	SyncNoteMirrorDeletePending = "mirror_delete_pending"
)

type SubmitBookingInput struct {
	RoomID     uuid.UUID
	ClientID   uuid.UUID
	ClientName string
	Start      time.Time
	End        time.Time
}

type StatusChangeResult struct {
	Booking  *queries.BookingView
	SyncNote string
}

type BookingCommands interface {
	// Submit is the admission point: it re-validates the proposed interval
	// against live internal state and atomically admits or rejects it.
	Submit(ctx context.Context, in SubmitBookingInput) (*queries.BookingView, error)
	ChangeStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) (*StatusChangeResult, error)
}

type bookingCommandsImpl struct {
	rooms    shared.RoomRepository
	bookings shared.BookingRepository
	provider shared.BusyProvider
	grid     *shared.GridService
	tx       shared.TxRunner
}

func NewBookingCommands(
	rooms shared.RoomRepository,
	bookings shared.BookingRepository,
	provider shared.BusyProvider,
	grid *shared.GridService,
	tx shared.TxRunner,
) BookingCommands {
	return &bookingCommandsImpl{
		rooms:    rooms,
		bookings: bookings,
		provider: provider,
		grid:     grid,
		tx:       tx,
	}
}

func (c *bookingCommandsImpl) Submit(ctx context.Context, in SubmitBookingInput) (*queries.BookingView, error) {
	if !in.Start.Before(in.End) {
		return nil, ErrInvalidRange
	}

	rm, err := c.rooms.FindByID(ctx, in.RoomID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomUnavailable
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if !rm.IsActive() {
		return nil, ErrRoomUnavailable
	}

	// Advisory overlap check against live internal state. Reported before
	// the continuity check so an internal conflict surfaces as a conflict,
	// not as a discontinuous selection.
	overlap, err := c.bookings.AnyBlockingOverlap(ctx, nil, in.RoomID, in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	if overlap {
		return nil, ErrSlotConflict
	}

	if err := c.revalidateSelection(ctx, rm, in.Start, in.End); err != nil {
		return nil, err
	}

	entity, err := booking.NewBooking(booking.RoomSpec{
		ID:              rm.ID(),
		Name:            rm.Name(),
		HourlyRateCents: rm.HourlyRateCents(),
	}, in.ClientID, in.ClientName, in.Start, in.End)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}

	// The check above is advisory only; the exclusion constraint enforced
	// inside this transaction is what closes the race between concurrent
	// submissions for the same room.
	err = c.tx.WithinTx(ctx, func(ctx context.Context, db shared.DBTX) error {
		overlap, err := c.bookings.AnyBlockingOverlap(ctx, db, in.RoomID, in.Start, in.End)
		if err != nil {
			return err
		}
		if overlap {
			return ErrSlotConflict
		}
		return c.bookings.Create(ctx, db, entity)
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) || infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.mirrorNewBooking(ctx, rm, entity)

	persisted, err := c.bookings.FindByID(ctx, entity.ID())
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}
	return queries.BookingViewFrom(persisted), nil
}

// revalidateSelection re-runs the client's continuity algorithm
// authoritatively against a freshly generated grid; the client-side run is
// an optimistic affordance only and is never trusted.
func (c *bookingCommandsImpl) revalidateSelection(ctx context.Context, rm *room.Room, start, end time.Time) error {
	loc := c.grid.Location()
	grid, err := c.grid.BuildDayGrid(ctx, rm, start.In(loc))
	if err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	startID := schedule.SlotID(hourFloor(start, loc))
	endID := schedule.SlotID(hourFloor(end.Add(-time.Nanosecond), loc))

	if _, err := schedule.ValidateSelection(grid, startID, endID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrReversedDayOrder):
			return ErrReversedDayOrder
		case errors.Is(err, schedule.ErrDiscontinuous):
			return ErrSelectionDiscontinuous
		default:
			// Unknown slot or reversed indices mean the span falls outside
			// the bookable window for its date.
			return ErrInvalidRange
		}
	}
	return nil
}

func (c *bookingCommandsImpl) mirrorNewBooking(ctx context.Context, rm *room.Room, b *booking.Booking) {
	if !rm.SyncEnabled() || rm.ExternalCalendarRef() == nil {
		return
	}

	originID, err := c.provider.CreateMirror(ctx, *rm.ExternalCalendarRef(), mirrorEventFrom(b))
	if err != nil {
		// Not a rejection condition: the reconciliation job closes the gap.
		slog.Warn("booking mirror creation failed, deferred to reconciliation",
			"booking_id", b.ID().String(), "error", err.Error())
		return
	}

	if err := c.bookings.SetExternalEventRef(ctx, b.ID(), &originID); err != nil {
		slog.Warn("failed to record external event ref",
			"booking_id", b.ID().String(), "error", err.Error())
	}
}

func (c *bookingCommandsImpl) ChangeStatus(ctx context.Context, bookingID uuid.UUID, next booking.Status) (*StatusChangeResult, error) {
	b, err := c.bookings.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	reAdmitting := b.Status() == booking.StatusCancelled && next == booking.StatusApproved

	if err := b.TransitionTo(next); err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	err = c.tx.WithinTx(ctx, func(ctx context.Context, db shared.DBTX) error {
		if reAdmitting {
			// A cancelled booking released its interval; re-approval must
			// re-compete for it like a fresh admission.
			overlap, err := c.bookings.AnyBlockingOverlap(ctx, db, b.RoomID(), b.TimeRange().Start(), b.TimeRange().End())
			if err != nil {
				return err
			}
			if overlap {
				return ErrSlotConflict
			}
		}
		return c.bookings.UpdateStatus(ctx, db, b)
	})
	if err != nil {
		if errors.Is(err, ErrSlotConflict) || infra.IsKind(err, infra.KindConflict) {
			return nil, ErrSlotConflict
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	note := c.applyMirrorSideEffects(ctx, b, next)

	return &StatusChangeResult{
		Booking:  queries.BookingViewFrom(b),
		SyncNote: note,
	}, nil
}

// applyMirrorSideEffects pushes the status change to the external provider,
// best-effort. Approval creates or updates the mirror; cancellation deletes
// it. Failures become pending notes, never errors.
func (c *bookingCommandsImpl) applyMirrorSideEffects(ctx context.Context, b *booking.Booking, next booking.Status) string {
	rm, err := c.rooms.FindByID(ctx, b.RoomID())
	if err != nil || !rm.SyncEnabled() || rm.ExternalCalendarRef() == nil {
		return ""
	}
	calendarRef := *rm.ExternalCalendarRef()

	switch next {
	case booking.StatusApproved:
		if b.IsMirrored() {
			if err := c.provider.UpdateMirror(ctx, calendarRef, *b.ExternalEventRef(), mirrorEventFrom(b)); err != nil {
				slog.Warn("mirror update failed", "booking_id", b.ID().String(), "error", err.Error())
				return SyncNoteMirrorUpdatePending
			}
			return SyncNoteMirrorUpdated
		}
		originID, err := c.provider.CreateMirror(ctx, calendarRef, mirrorEventFrom(b))
		if err != nil {
			slog.Warn("mirror creation failed", "booking_id", b.ID().String(), "error", err.Error())
			return SyncNoteMirrorPending
		}
		b.SetExternalEventRef(originID)
		if err := c.bookings.SetExternalEventRef(ctx, b.ID(), &originID); err != nil {
			slog.Warn("failed to record external event ref", "booking_id", b.ID().String(), "error", err.Error())
		}
		return SyncNoteMirrorCreated

	case booking.StatusCancelled:
		if !b.IsMirrored() {
			return ""
		}
		if err := c.provider.DeleteMirror(ctx, calendarRef, *b.ExternalEventRef()); err != nil {
			// The ref stays set so reconciliation can see the stale mirror.
			slog.Warn("mirror deletion failed", "booking_id", b.ID().String(), "error", err.Error())
			return SyncNoteMirrorDeletePending
		}
		b.ClearExternalEventRef()
		if err := c.bookings.SetExternalEventRef(ctx, b.ID(), nil); err != nil {
			slog.Warn("failed to clear external event ref", "booking_id", b.ID().String(), "error", err.Error())
		}
		return SyncNoteMirrorDeleted

	default:
		return ""
	}
}

func mirrorEventFrom(b *booking.Booking) shared.MirrorEvent {
	return shared.MirrorEvent{
		Summary: "Rehearsal - " + b.ClientName(),
		Start:   b.TimeRange().Start(),
		End:     b.TimeRange().End(),
	}
}

func hourFloor(t time.Time, loc *time.Location) time.Time {
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), lt.Hour(), 0, 0, 0, loc)
}
