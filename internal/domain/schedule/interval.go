package schedule

import "time"

type Source string

const (
	SourceInternal Source = "internal"
	SourceExternal Source = "external"
)

// BusyInterval is a half-open [Start, End) span during which a room is
// occupied, regardless of which system says so. It is a projection of a
// booking or of an external calendar event and never outlives a request.
type BusyInterval struct {
	Start     time.Time
	End       time.Time
	Source    Source
	OriginRef string
}

// Overlaps reports whether the interval overlaps [t0, t1) under the strict
// half-open test: touching endpoints do not overlap.
func (b BusyInterval) Overlaps(t0, t1 time.Time) bool {
	return t0.Before(b.End) && t1.After(b.Start)
}

// IntervalSet merges busy intervals from any number of sources and answers
// overlap queries against the union. The intervals are held as given; each
// query is independent, so no normalization is needed for correctness.
type IntervalSet struct {
	intervals []BusyInterval
}

func NewIntervalSet(groups ...[]BusyInterval) IntervalSet {
	var all []BusyInterval
	for _, g := range groups {
		all = append(all, g...)
	}
	return IntervalSet{intervals: all}
}

func (s IntervalSet) Len() int {
	return len(s.intervals)
}

func (s IntervalSet) Overlaps(t0, t1 time.Time) bool {
	for _, iv := range s.intervals {
		if iv.Overlaps(t0, t1) {
			return true
		}
	}
	return false
}

// Apply returns a copy of the slots with Available set by negating the
// overlap test for each slot's span.
func (s IntervalSet) Apply(slots []Slot) []Slot {
	out := make([]Slot, len(slots))
	for i, sl := range slots {
		sl.Available = !s.Overlaps(sl.Start, sl.End)
		out[i] = sl
	}
	return out
}
