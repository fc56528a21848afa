package schedule

import "errors"

var (
	ErrEndBeforeStart   = errors.New("end slot precedes start slot")
	ErrDiscontinuous    = errors.New("selection spans an unavailable slot")
	ErrReversedDayOrder = errors.New("selection runs backwards across midnight")
	ErrUnknownSlot      = errors.New("slot not in generated grid")
)

// Selection is a validated contiguous range of slots, in chronological order.
type Selection struct {
	SlotIDs []string
}

// ValidateSelection decides whether picking startID..endID on the grid forms
// a contiguous, fully available span. It is the single implementation of the
// continuity rules: the interactive client runs it optimistically and the
// admission boundary re-runs it authoritatively, so the two can never
// diverge.
//
// Same-day spans are index-range containment checks. A cross-midnight span
// (start in the day sequence, end in the carryover) is two half-open
// continuity checks joined at the boundary. Equal start and end ids collapse
// to a single-hour selection.
func ValidateSelection(grid DayGrid, startID, endID string) (Selection, error) {
	si, startInDay, ok := locate(grid, startID)
	if !ok {
		return Selection{}, ErrUnknownSlot
	}
	ei, endInDay, ok := locate(grid, endID)
	if !ok {
		return Selection{}, ErrUnknownSlot
	}

	// Checked before everything else: the order of the sequences alone makes
	// the selection invalid, regardless of availability.
	if !startInDay && endInDay {
		return Selection{}, ErrReversedDayOrder
	}

	switch {
	case startInDay == endInDay:
		seq := grid.Day
		if !startInDay {
			seq = grid.Carryover
		}
		return contiguous(seq, si, ei)

	default: // start in day, end in carryover
		head, err := contiguous(grid.Day, si, len(grid.Day)-1)
		if err != nil {
			return Selection{}, err
		}
		tail, err := contiguous(grid.Carryover, 0, ei)
		if err != nil {
			return Selection{}, err
		}
		return Selection{SlotIDs: append(head.SlotIDs, tail.SlotIDs...)}, nil
	}
}

func contiguous(seq []Slot, from, to int) (Selection, error) {
	if to < from {
		return Selection{}, ErrEndBeforeStart
	}
	ids := make([]string, 0, to-from+1)
	for i := from; i <= to; i++ {
		if !seq[i].Available {
			return Selection{}, ErrDiscontinuous
		}
		ids = append(ids, seq[i].ID)
	}
	return Selection{SlotIDs: ids}, nil
}

func locate(grid DayGrid, id string) (idx int, inDay bool, ok bool) {
	for i, s := range grid.Day {
		if s.ID == id {
			return i, true, true
		}
	}
	for i, s := range grid.Carryover {
		if s.ID == id {
			return i, false, true
		}
	}
	return 0, false, false
}
