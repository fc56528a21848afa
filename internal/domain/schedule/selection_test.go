//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gridWithBusy(busy ...schedule.BusyInterval) schedule.DayGrid {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return schedule.BuildDayGrid(uuid.New(), date, time.UTC, schedule.NewIntervalSet(busy))
}

func busyAt(day, hour, hours int) schedule.BusyInterval {
	start := time.Date(2025, 3, day, hour, 0, 0, 0, time.UTC)
	return schedule.BusyInterval{
		Start:  start,
		End:    start.Add(time.Duration(hours) * time.Hour),
		Source: schedule.SourceInternal,
	}
}

func TestValidateSelection(t *testing.T) {
	t.Run("single slot selection", func(t *testing.T) {
		sel, err := schedule.ValidateSelection(gridWithBusy(), "2025-03-10T10", "2025-03-10T10")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-10T10"}, sel.SlotIDs)
	})

	t.Run("contiguous same day span", func(t *testing.T) {
		sel, err := schedule.ValidateSelection(gridWithBusy(), "2025-03-10T10", "2025-03-10T13")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"2025-03-10T10", "2025-03-10T11", "2025-03-10T12", "2025-03-10T13",
		}, sel.SlotIDs)
	})

	t.Run("span crossing an unavailable slot is discontinuous", func(t *testing.T) {
		grid := gridWithBusy(busyAt(10, 12, 1))

		_, err := schedule.ValidateSelection(grid, "2025-03-10T10", "2025-03-10T14")
		assert.ErrorIs(t, err, schedule.ErrDiscontinuous)
	})

	t.Run("end before start within the day", func(t *testing.T) {
		_, err := schedule.ValidateSelection(gridWithBusy(), "2025-03-10T14", "2025-03-10T10")
		assert.ErrorIs(t, err, schedule.ErrEndBeforeStart)
	})

	t.Run("cross midnight span joins the sequences", func(t *testing.T) {
		sel, err := schedule.ValidateSelection(gridWithBusy(), "2025-03-10T22", "2025-03-11T01")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"2025-03-10T22", "2025-03-10T23", "2025-03-11T00", "2025-03-11T01",
		}, sel.SlotIDs)
	})

	t.Run("cross midnight span broken on either side is discontinuous", func(t *testing.T) {
		testCases := []struct {
			name string
			busy schedule.BusyInterval
		}{
			{name: "gap before midnight", busy: busyAt(10, 23, 1)},
			{name: "gap after midnight", busy: busyAt(11, 0, 1)},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				grid := gridWithBusy(tc.busy)

				_, err := schedule.ValidateSelection(grid, "2025-03-10T22", "2025-03-11T01")
				assert.ErrorIs(t, err, schedule.ErrDiscontinuous)
			})
		}
	})

	t.Run("carryover-only selection is valid", func(t *testing.T) {
		sel, err := schedule.ValidateSelection(gridWithBusy(), "2025-03-11T01", "2025-03-11T03")
		require.NoError(t, err)
		assert.Equal(t, []string{
			"2025-03-11T01", "2025-03-11T02", "2025-03-11T03",
		}, sel.SlotIDs)
	})

	t.Run("start in carryover with end in day is reversed", func(t *testing.T) {
		_, err := schedule.ValidateSelection(gridWithBusy(), "2025-03-11T01", "2025-03-10T22")
		assert.ErrorIs(t, err, schedule.ErrReversedDayOrder)
	})

	t.Run("reversed day order wins over availability problems", func(t *testing.T) {
		// Everything between the two ids is busy; the ordering error must
		// still be the one reported.
		grid := gridWithBusy(busyAt(10, 20, 10))

		_, err := schedule.ValidateSelection(grid, "2025-03-11T01", "2025-03-10T22")
		assert.ErrorIs(t, err, schedule.ErrReversedDayOrder)
	})

	t.Run("slot outside the grid is unknown", func(t *testing.T) {
		testCases := []struct {
			name           string
			startID, endID string
		}{
			{name: "start on another date", startID: "2025-03-09T10", endID: "2025-03-10T10"},
			{name: "end beyond the carryover", startID: "2025-03-10T22", endID: "2025-03-11T07"},
			{name: "malformed id", startID: "garbage", endID: "2025-03-10T10"},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := schedule.ValidateSelection(gridWithBusy(), tc.startID, tc.endID)
				assert.ErrorIs(t, err, schedule.ErrUnknownSlot)
			})
		}
	})

	t.Run("selection over a busy slot itself is discontinuous", func(t *testing.T) {
		grid := gridWithBusy(busyAt(10, 10, 1))

		_, err := schedule.ValidateSelection(grid, "2025-03-10T10", "2025-03-10T10")
		assert.ErrorIs(t, err, schedule.ErrDiscontinuous)
	})
}
