package repository

import (
	"context"
	"time"

	"rehearsal-rooms/internal/domain/booking"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/pgconv"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bookingColumns = `id, room_id, client_id, client_name, start_time, end_time,
	status, total_price_cents, external_event_ref, created_at, updated_at`

// blockingStatuses must stay in lockstep with the predicate of the
// bookings_no_overlap exclusion constraint in db/schema.sql.
const blockingStatuses = `('pending_review', 'approved')`

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) shared.BookingRepository {
	return &BookingRepository{db: db}
}

// dbtx resolves the execution target: callers pass nil to run against the
// pool instead of an open transaction.
func (r *BookingRepository) dbtx(db shared.DBTX) shared.DBTX {
	if db == nil {
		return r.db
	}
	return db
}

// Create inserts the booking. The bookings_no_overlap exclusion constraint
// makes this the authoritative admission point: a concurrent overlapping
// insert loses with an exclusion violation, surfaced as KindConflict.
func (r *BookingRepository) Create(ctx context.Context, db shared.DBTX, b *booking.Booking) error {
	_, err := r.dbtx(db).Exec(ctx, `
		INSERT INTO bookings (id, room_id, client_id, client_name, start_time, end_time,
			status, total_price_cents, external_event_ref)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		b.ID(), b.RoomID(), b.ClientID(), b.ClientName(),
		b.TimeRange().Start(), b.TimeRange().End(),
		b.Status().String(), b.TotalPrice().Cents(),
		pgconv.StringPtrToPgtype(b.ExternalEventRef()))
	if err != nil {
		return infra.WrapRepoErr("failed to create booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	row := r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id)

	b, err := scanBooking(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return b, nil
}

func (r *BookingRepository) FindBlockingInRange(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE room_id = $1
		  AND status IN `+blockingStatuses+`
		  AND start_time < $3 AND end_time > $2
		ORDER BY start_time`,
		roomID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find blocking bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) AnyBlockingOverlap(ctx context.Context, db shared.DBTX, roomID uuid.UUID, start, end time.Time) (bool, error) {
	var exists bool
	err := r.dbtx(db).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM bookings
			WHERE room_id = $1
			  AND status IN `+blockingStatuses+`
			  AND start_time < $3 AND end_time > $2
		)`,
		roomID, start, end).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check booking overlap", err)
	}
	return exists, nil
}

// UpdateStatus persists a status transition together with the current mirror
// ref. Re-entering a blocking status re-fires the exclusion constraint, so a
// re-approval into a now-occupied interval fails with KindConflict.
func (r *BookingRepository) UpdateStatus(ctx context.Context, db shared.DBTX, b *booking.Booking) error {
	tag, err := r.dbtx(db).Exec(ctx, `
		UPDATE bookings SET status = $2, external_event_ref = $3, updated_at = now()
		WHERE id = $1`,
		b.ID(), b.Status().String(), pgconv.StringPtrToPgtype(b.ExternalEventRef()))
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) SetExternalEventRef(ctx context.Context, id uuid.UUID, ref *string) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET external_event_ref = $2, updated_at = now() WHERE id = $1`,
		id, pgconv.StringPtrToPgtype(ref))
	if err != nil {
		return infra.WrapRepoErr("failed to set external event ref", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *BookingRepository) FindMissingMirror(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*booking.Booking, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+bookingColumns+` FROM bookings
		WHERE room_id = $1
		  AND status IN `+blockingStatuses+`
		  AND external_event_ref IS NULL
		  AND start_time < $3 AND end_time > $2
		ORDER BY start_time`,
		roomID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find unmirrored bookings", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func collectBookings(rows pgx.Rows) ([]*booking.Booking, error) {
	var result []*booking.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return result, nil
}

func scanBooking(row pgx.Row) (*booking.Booking, error) {
	var (
		id              uuid.UUID
		roomID          uuid.UUID
		clientID        uuid.UUID
		clientName      string
		startTime       time.Time
		endTime         time.Time
		status          string
		totalPriceCents int64
		externalRef     pgtype.Text
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	if err := row.Scan(&id, &roomID, &clientID, &clientName, &startTime, &endTime,
		&status, &totalPriceCents, &externalRef, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	tr, err := booking.NewTimeRange(startTime, endTime)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(totalPriceCents)
	if err != nil {
		return nil, err
	}

	return booking.ReconstructBooking(
		id, roomID, clientID, clientName,
		tr, booking.Status(status), price,
		pgconv.StringPtrFromPgtype(externalRef),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
