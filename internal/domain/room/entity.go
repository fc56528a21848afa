package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNoCalendarRef = errors.New("room has no external calendar mapping")

// Room is one of the small fixed set of physical rooms. Created and edited
// by the admin collaborator; this core reads it everywhere and mutates only
// the sync flag and last sync time.
type Room struct {
	id                  uuid.UUID
	name                string
	hourlyRateCents     int64
	isActive            bool
	syncEnabled         bool
	externalCalendarRef *string
	lastSyncTime        *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

func ReconstructRoom(
	id uuid.UUID,
	name string,
	hourlyRateCents int64,
	isActive, syncEnabled bool,
	externalCalendarRef *string,
	lastSyncTime *time.Time,
	createdAt, updatedAt time.Time,
) *Room {
	return &Room{
		id:                  id,
		name:                name,
		hourlyRateCents:     hourlyRateCents,
		isActive:            isActive,
		syncEnabled:         syncEnabled,
		externalCalendarRef: externalCalendarRef,
		lastSyncTime:        lastSyncTime,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}
}

// EnableSync flips the sync flag on. The caller must have probed the
// provider first; the entity only enforces that a calendar mapping exists.
func (r *Room) EnableSync() error {
	if r.externalCalendarRef == nil {
		return ErrNoCalendarRef
	}
	r.syncEnabled = true
	return nil
}

// DisableSync is unconditional.
func (r *Room) DisableSync() {
	r.syncEnabled = false
}

func (r *Room) MarkSynced(t time.Time) {
	r.lastSyncTime = &t
}

func (r *Room) ID() uuid.UUID                { return r.id }
func (r *Room) Name() string                 { return r.name }
func (r *Room) HourlyRateCents() int64       { return r.hourlyRateCents }
func (r *Room) IsActive() bool               { return r.isActive }
func (r *Room) SyncEnabled() bool            { return r.syncEnabled }
func (r *Room) ExternalCalendarRef() *string { return r.externalCalendarRef }
func (r *Room) LastSyncTime() *time.Time     { return r.lastSyncTime }
func (r *Room) CreatedAt() time.Time         { return r.createdAt }
func (r *Room) UpdatedAt() time.Time         { return r.updatedAt }
