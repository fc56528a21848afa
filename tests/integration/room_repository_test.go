//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"rehearsal-rooms/internal/domain/room"
	"rehearsal-rooms/internal/infra"
	"rehearsal-rooms/internal/infra/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func seedRoomRow(t *testing.T, pool *pgxpool.Pool, name string, active bool, calendarRef *string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := pool.Exec(context.Background(), `
		INSERT INTO rooms (id, name, hourly_rate_cents, is_active, external_calendar_ref)
		VALUES ($1, $2, 150000, $3, $4)`, id, name, active, calendarRef)
	require.NoError(t, err, "failed to seed room")
	return id
}

func TestRoomRepository_FindAndList(t *testing.T) {
	pool := setupTestDatabase(t)
	repo := repository.NewRoomRepository(pool)
	ctx := context.Background()

	ref := "cal-a"
	idA := seedRoomRow(t, pool, "Room A", true, &ref)
	seedRoomRow(t, pool, "Room B", false, nil)

	rm, err := repo.FindByID(ctx, idA)
	require.NoError(t, err)
	require.Equal(t, "Room A", rm.Name())
	require.Equal(t, int64(150000), rm.HourlyRateCents())
	require.True(t, rm.IsActive())
	require.False(t, rm.SyncEnabled())
	require.NotNil(t, rm.ExternalCalendarRef())
	require.Equal(t, ref, *rm.ExternalCalendarRef())
	require.Nil(t, rm.LastSyncTime())

	_, err = repo.FindByID(ctx, uuid.New())
	require.True(t, infra.IsKind(err, infra.KindNotFound))

	// Listing is name-ordered and includes inactive rooms.
	rooms, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	require.Equal(t, "Room A", rooms[0].Name())
	require.Equal(t, "Room B", rooms[1].Name())
}

func TestRoomRepository_SyncState(t *testing.T) {
	pool := setupTestDatabase(t)
	repo := repository.NewRoomRepository(pool)
	ctx := context.Background()

	ref := "cal-a"
	mappedID := seedRoomRow(t, pool, "Room A", true, &ref)
	seedRoomRow(t, pool, "Room B", true, nil)
	inactiveRef := "cal-c"
	inactiveID := seedRoomRow(t, pool, "Room C", false, &inactiveRef)

	enable := func(id uuid.UUID) {
		rm, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		require.NoError(t, rm.EnableSync())
		require.NoError(t, repo.UpdateSyncState(ctx, rm))
	}
	enable(mappedID)
	enable(inactiveID)

	// Inactive rooms are excluded even with the flag on.
	enabled, err := repo.FindSyncEnabled(ctx)
	require.NoError(t, err)
	require.Len(t, enabled, 1)
	require.Equal(t, mappedID, enabled[0].ID())

	syncedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	enabled[0].MarkSynced(syncedAt)
	require.NoError(t, repo.UpdateSyncState(ctx, enabled[0]))

	rm, err := repo.FindByID(ctx, mappedID)
	require.NoError(t, err)
	require.True(t, rm.SyncEnabled())
	require.NotNil(t, rm.LastSyncTime())
	require.True(t, rm.LastSyncTime().Equal(syncedAt))

	rm.DisableSync()
	require.NoError(t, repo.UpdateSyncState(ctx, rm))

	enabled, err = repo.FindSyncEnabled(ctx)
	require.NoError(t, err)
	require.Empty(t, enabled)

	ghost := room.ReconstructRoom(uuid.New(), "Room X", 150000, true, true, &ref, nil,
		time.Now(), time.Now())
	err = repo.UpdateSyncState(ctx, ghost)
	require.True(t, infra.IsKind(err, infra.KindNotFound))
}
