package schedule

import (
	"time"

	"github.com/google/uuid"
)

const (
	// SlotDuration is the fixed granularity of the availability grid.
	SlotDuration = time.Hour

	// CarryoverHours is how far into the next day the grid extends, because
	// sessions may run past midnight but not arbitrarily into the morning.
	// This value is part of the selection contract shared with clients; it is
	// deliberately a constant, not configuration.
	CarryoverHours = 6

	slotIDLayout = "2006-01-02T15"
)

// Slot is one hour of the availability grid. Slots are generated fresh per
// request and carry no identity beyond it.
type Slot struct {
	ID        string
	RoomID    uuid.UUID
	Start     time.Time
	End       time.Time
	Available bool
}

// DayGrid is the two slot sequences exposed for a queried date: the full
// day (hours 0-23) and the early-morning carryover of the following day.
type DayGrid struct {
	Day       []Slot
	Carryover []Slot
}

// Window returns the half-open time span the grid covers.
func (g DayGrid) Window() (time.Time, time.Time) {
	if len(g.Day) == 0 {
		return time.Time{}, time.Time{}
	}
	last := g.Day[len(g.Day)-1]
	if n := len(g.Carryover); n > 0 {
		last = g.Carryover[n-1]
	}
	return g.Day[0].Start, last.End
}

// SlotID derives the stable identifier for the slot starting at t.
func SlotID(t time.Time) string {
	return t.Format(slotIDLayout)
}

// BuildDayGrid generates the hourly grid for date (interpreted in loc) and
// tags each slot by consulting the busy set. Output is chronological.
func BuildDayGrid(roomID uuid.UUID, date time.Time, loc *time.Location, busy IntervalSet) DayGrid {
	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)

	day := buildSequence(roomID, midnight, 24)
	carryover := buildSequence(roomID, midnight.Add(24*SlotDuration), CarryoverHours)

	return DayGrid{
		Day:       busy.Apply(day),
		Carryover: busy.Apply(carryover),
	}
}

func buildSequence(roomID uuid.UUID, from time.Time, hours int) []Slot {
	slots := make([]Slot, hours)
	for i := range hours {
		start := from.Add(time.Duration(i) * SlotDuration)
		slots[i] = Slot{
			ID:     SlotID(start),
			RoomID: roomID,
			Start:  start,
			End:    start.Add(SlotDuration),
		}
	}
	return slots
}
