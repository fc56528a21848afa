package request

type RoomSyncRequest struct {
	Enabled *bool `json:"enabled" binding:"required"`
}
