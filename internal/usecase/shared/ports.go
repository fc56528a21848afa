package shared

import (
	"context"
	"time"

	"rehearsal-rooms/internal/domain/booking"
	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx, so write-path
// repository methods can run inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxRunner wraps a function in a database transaction, retrying on
// serialization failures.
type TxRunner interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context, db DBTX) error) error
}

type RoomRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error)
	List(ctx context.Context) ([]*room.Room, error)
	FindSyncEnabled(ctx context.Context) ([]*room.Room, error)
	// UpdateSyncState persists the two room fields this core owns: the sync
	// flag and the last sync time.
	UpdateSyncState(ctx context.Context, r *room.Room) error
}

// BookingRepository write methods take the DBTX they should run on; a nil
// DBTX means "outside any transaction, straight on the pool".
type BookingRepository interface {
	Create(ctx context.Context, db DBTX, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// FindBlockingInRange returns bookings whose interval intersects
	// [from, to) and whose status blocks availability, chronologically.
	FindBlockingInRange(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
	// AnyBlockingOverlap is the advisory half of the admission check; the
	// exclusion constraint enforced on insert is the authoritative half.
	AnyBlockingOverlap(ctx context.Context, db DBTX, roomID uuid.UUID, start, end time.Time) (bool, error)
	UpdateStatus(ctx context.Context, db DBTX, b *booking.Booking) error
	SetExternalEventRef(ctx context.Context, id uuid.UUID, ref *string) error
	FindMissingMirror(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*booking.Booking, error)
}

// Typed degradation results from the external busy-interval provider. These
// never escalate into a request failure for availability or submission
// flows; callers treat the external contribution as empty instead.
var (
	ErrProviderUnavailable = errs.New("external provider unavailable")
	ErrProviderAuthFailed  = errs.New("external provider authentication failed")
	ErrRoomNotMapped       = errs.New("room not mapped on external provider")
)

// BusyEvent is one externally sourced busy interval.
type BusyEvent struct {
	OriginID string
	Start    time.Time
	End      time.Time
}

// MirrorEvent is the payload pushed when mirroring a booking externally.
type MirrorEvent struct {
	Summary string
	Start   time.Time
	End     time.Time
}

// BusyProvider is the boundary to the external calendar system. All calls
// are bounded by the configured timeout; a timed-out call reports
// ErrProviderUnavailable.
type BusyProvider interface {
	ListBusy(ctx context.Context, calendarRef string, from, to time.Time) ([]BusyEvent, error)
	CreateMirror(ctx context.Context, calendarRef string, event MirrorEvent) (string, error)
	UpdateMirror(ctx context.Context, calendarRef, originID string, event MirrorEvent) error
	DeleteMirror(ctx context.Context, calendarRef, originID string) error
	// Probe checks reachability of a calendar before sync is enabled for it.
	Probe(ctx context.Context, calendarRef string) error
}
