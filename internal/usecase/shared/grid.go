package shared

import (
	"context"
	"log/slog"
	"time"

	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/domain/schedule"
)

// GridService is the slot generator: it merges internal bookings with the
// external provider's busy intervals and produces the tagged hourly grid for
// a date. It is shared by the availability query and by the admission path,
// which re-runs the selection check against the same grid shape.
type GridService struct {
	bookings BookingRepository
	provider BusyProvider
	loc      *time.Location
}

func NewGridService(bookings BookingRepository, provider BusyProvider, loc *time.Location) *GridService {
	return &GridService{
		bookings: bookings,
		provider: provider,
		loc:      loc,
	}
}

func (s *GridService) Location() *time.Location {
	return s.loc
}

// BuildDayGrid loads both busy sources for the grid window of date and tags
// the slots. A provider failure degrades open: the external contribution is
// treated as empty and the grid is still returned, so booking traffic never
// halts on an external outage. Conflicts that slip through are caught at
// admission time and healed by the reconciliation job.
func (s *GridService) BuildDayGrid(ctx context.Context, rm *room.Room, date time.Time) (schedule.DayGrid, error) {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.loc)
	windowEnd := midnight.Add((24 + schedule.CarryoverHours) * time.Hour)

	blocking, err := s.bookings.FindBlockingInRange(ctx, rm.ID(), midnight, windowEnd)
	if err != nil {
		return schedule.DayGrid{}, err
	}

	internal := make([]schedule.BusyInterval, len(blocking))
	for i, b := range blocking {
		internal[i] = b.BusyInterval()
	}

	external := s.externalBusy(ctx, rm, midnight, windowEnd)

	busy := schedule.NewIntervalSet(internal, external)
	return schedule.BuildDayGrid(rm.ID(), midnight, s.loc, busy), nil
}

func (s *GridService) externalBusy(ctx context.Context, rm *room.Room, from, to time.Time) []schedule.BusyInterval {
	if !rm.SyncEnabled() || rm.ExternalCalendarRef() == nil {
		return nil
	}

	events, err := s.provider.ListBusy(ctx, *rm.ExternalCalendarRef(), from, to)
	if err != nil {
		slog.Warn("external busy fetch failed, degrading open",
			"room_id", rm.ID().String(), "error", err.Error())
		return nil
	}

	intervals := make([]schedule.BusyInterval, len(events))
	for i, ev := range events {
		intervals[i] = schedule.BusyInterval{
			Start:     ev.Start,
			End:       ev.End,
			Source:    schedule.SourceExternal,
			OriginRef: ev.OriginID,
		}
	}
	return intervals
}
