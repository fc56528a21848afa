package api

import (
	"errors"
	"net/http"

	reqdto "rehearsal-rooms/internal/handler/dto/request"
	resdto "rehearsal-rooms/internal/handler/dto/response"
	"rehearsal-rooms/internal/handler/httperr"
	"rehearsal-rooms/internal/usecase/commands"
	"rehearsal-rooms/internal/usecase/queries"
	"rehearsal-rooms/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	roomQueries  queries.RoomQueries
	syncCommands commands.SyncCommands
}

func NewRoomHandler(roomQueries queries.RoomQueries, syncCommands commands.SyncCommands) *RoomHandler {
	return &RoomHandler{
		roomQueries:  roomQueries,
		syncCommands: syncCommands,
	}
}

// @Summary List rooms
// @Description List all rehearsal rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} resdto.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.roomQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.RoomResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromRoomView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Toggle room sync
// @Description Enable or disable external calendar sync for a room; enabling probes the provider first
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body reqdto.RoomSyncRequest true "Sync toggle request"
// @Success 200 {object} resdto.RoomResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /rooms/{id}/sync [patch]
func (h *RoomHandler) SetRoomSync(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid room ID format",
		})
		return
	}

	var req reqdto.RoomSyncRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.syncCommands.SetRoomSync(c.Request.Context(), roomID, *req.Enabled)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room not found",
			})
		case errors.Is(err, shared.ErrRoomNotMapped):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Room has no external calendar mapping",
			})
		case errors.Is(err, commands.ErrProviderUnreachable):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "External calendar provider unreachable",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}
