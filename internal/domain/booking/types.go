package booking

type Status string

const (
	StatusPendingReview Status = "pending_review"
	StatusApproved      Status = "approved"
	StatusCancelled     Status = "cancelled"
	StatusCompleted     Status = "completed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPendingReview, StatusApproved, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// Blocks reports whether a booking in this status counts as busy for
// availability and conflicts. Only pending-review and approved bookings
// occupy their interval.
func (s Status) Blocks() bool {
	return s == StatusPendingReview || s == StatusApproved
}

// CanTransitionTo encodes the status machine:
// pending_review -> approved | cancelled, approved -> cancelled,
// cancelled -> approved (re-approval of a still-future booking), and any
// status -> completed, which is an administrative close-out.
func (s Status) CanTransitionTo(next Status) bool {
	if next == StatusCompleted {
		return s != StatusCompleted
	}
	switch s {
	case StatusPendingReview:
		return next == StatusApproved || next == StatusCancelled
	case StatusApproved:
		return next == StatusCancelled
	case StatusCancelled:
		return next == StatusApproved
	default:
		return false
	}
}
