package repository

import (
	"context"

	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/pkg/pgconv"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

const roomColumns = `id, name, hourly_rate_cents, is_active, sync_enabled,
	external_calendar_ref, last_sync_time, created_at, updated_at`

type RoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) shared.RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row := r.db.QueryRow(ctx, `SELECT `+roomColumns+` FROM rooms WHERE id = $1`, id)

	rm, err := scanRoom(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find room by ID", err)
	}
	return rm, nil
}

func (r *RoomRepository) List(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomColumns+` FROM rooms ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rooms", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func (r *RoomRepository) FindSyncEnabled(ctx context.Context) ([]*room.Room, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE sync_enabled AND is_active ORDER BY name`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sync-enabled rooms", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func (r *RoomRepository) UpdateSyncState(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE rooms SET sync_enabled = $2, last_sync_time = $3, updated_at = now() WHERE id = $1`,
		rm.ID(), rm.SyncEnabled(), pgconv.TimePtrToPgtype(rm.LastSyncTime()))
	if err != nil {
		return infra.WrapRepoErr("failed to update room sync state", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func collectRooms(rows pgx.Rows) ([]*room.Room, error) {
	var result []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan room row", err)
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read room rows", err)
	}
	return result, nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id              uuid.UUID
		name            string
		hourlyRateCents int64
		isActive        bool
		syncEnabled     bool
		calendarRef     pgtype.Text
		lastSyncTime    pgtype.Timestamptz
		createdAt       pgtype.Timestamptz
		updatedAt       pgtype.Timestamptz
	)
	if err := row.Scan(&id, &name, &hourlyRateCents, &isActive, &syncEnabled,
		&calendarRef, &lastSyncTime, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return room.ReconstructRoom(
		id, name, hourlyRateCents, isActive, syncEnabled,
		pgconv.StringPtrFromPgtype(calendarRef),
		pgconv.TimePtrFromPgtype(lastSyncTime),
		pgconv.TimeFromPgtype(createdAt),
		pgconv.TimeFromPgtype(updatedAt),
	), nil
}
