package api

import (
	"net/http"

	resdto "rehearsal-rooms/internal/handler/dto/response"
	"rehearsal-rooms/internal/handler/httperr"
	"rehearsal-rooms/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncCommands commands.SyncCommands
}

func NewSyncHandler(syncCommands commands.SyncCommands) *SyncHandler {
	return &SyncHandler{
		syncCommands: syncCommands,
	}
}

// @Summary Run reconciliation sync
// @Description Reconcile all sync-enabled rooms against the external calendar provider
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.SyncReportResponse
// @Failure 401 {object} map[string]string
// @Router /sync/run [post]
func (h *SyncHandler) RunSync(c *gin.Context) {
	report, err := h.syncCommands.Run(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSyncReport(report))
}
