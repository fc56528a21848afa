//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func at(hour int) time.Time {
	return time.Date(2025, 3, 10, hour, 0, 0, 0, time.UTC)
}

func TestBusyInterval_Overlaps(t *testing.T) {
	busy := schedule.BusyInterval{Start: at(10), End: at(12), Source: schedule.SourceInternal}

	testCases := []struct {
		name     string
		t0, t1   time.Time
		expected bool
	}{
		{name: "fully inside", t0: at(10), t1: at(11), expected: true},
		{name: "fully covering", t0: at(9), t1: at(13), expected: true},
		{name: "partial at start", t0: at(9), t1: at(11), expected: true},
		{name: "partial at end", t0: at(11), t1: at(13), expected: true},
		{name: "touching at start does not overlap", t0: at(8), t1: at(10), expected: false},
		{name: "touching at end does not overlap", t0: at(12), t1: at(14), expected: false},
		{name: "disjoint before", t0: at(7), t1: at(8), expected: false},
		{name: "disjoint after", t0: at(13), t1: at(14), expected: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, busy.Overlaps(tc.t0, tc.t1))
		})
	}
}

func TestIntervalSet_Overlaps(t *testing.T) {
	t.Run("merges intervals from multiple sources", func(t *testing.T) {
		internal := []schedule.BusyInterval{
			{Start: at(14), End: at(15), Source: schedule.SourceInternal},
		}
		external := []schedule.BusyInterval{
			{Start: at(9), End: at(10), Source: schedule.SourceExternal},
		}

		set := schedule.NewIntervalSet(internal, external)

		assert.Equal(t, 2, set.Len())
		assert.True(t, set.Overlaps(at(14), at(15)))
		assert.True(t, set.Overlaps(at(9), at(10)))
		assert.False(t, set.Overlaps(at(11), at(12)))
	})

	t.Run("empty set never overlaps", func(t *testing.T) {
		set := schedule.NewIntervalSet()

		assert.Equal(t, 0, set.Len())
		assert.False(t, set.Overlaps(at(0), at(24)))
	})

	t.Run("empty external contribution leaves internal intact", func(t *testing.T) {
		internal := []schedule.BusyInterval{
			{Start: at(14), End: at(15), Source: schedule.SourceInternal},
		}

		set := schedule.NewIntervalSet(internal, nil)

		assert.Equal(t, 1, set.Len())
		assert.True(t, set.Overlaps(at(14), at(15)))
	})
}

func TestIntervalSet_Apply(t *testing.T) {
	slots := []schedule.Slot{
		{ID: "2025-03-10T09", Start: at(9), End: at(10)},
		{ID: "2025-03-10T10", Start: at(10), End: at(11)},
		{ID: "2025-03-10T11", Start: at(11), End: at(12)},
	}
	set := schedule.NewIntervalSet([]schedule.BusyInterval{
		{Start: at(10), End: at(11), Source: schedule.SourceInternal},
	})

	tagged := set.Apply(slots)

	assert.True(t, tagged[0].Available)
	assert.False(t, tagged[1].Available)
	assert.True(t, tagged[2].Available)

	// input must not be mutated: the free slots would read true here if
	// Apply tagged in place
	assert.False(t, slots[0].Available)
	assert.False(t, slots[2].Available)
}
