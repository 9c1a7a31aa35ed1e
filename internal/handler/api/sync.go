package api

import (
	"errors"
	"net/http"
	"strconv"

	reqdto "event-coupon-admin/internal/handler/dto/request"
	resdto "event-coupon-admin/internal/handler/dto/response"
	"event-coupon-admin/internal/usecase/commands"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SyncHandler struct {
	syncCommands   commands.SyncCommands
	syncLogQueries queries.SyncLogQueries
	eventQueries   queries.EventQueries
}

func NewSyncHandler(syncCommands commands.SyncCommands, syncLogQueries queries.SyncLogQueries, eventQueries queries.EventQueries) *SyncHandler {
	return &SyncHandler{
		syncCommands:   syncCommands,
		syncLogQueries: syncLogQueries,
		eventQueries:   eventQueries,
	}
}

// @Summary Sync guest list
// @Description Pull the Luma guest list and upsert local guest records
// @Tags sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SyncGuestsRequest false "Sync request"
// @Success 200 {object} resdto.SyncResultResponse
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /sync/guests [post]
func (h *SyncHandler) SyncGuests(c *gin.Context) {
	var req reqdto.SyncGuestsRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid request format",
			})
			return
		}
	}

	result, err := h.syncCommands.SyncGuests(c.Request.Context(), req.LumaEventID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrNoEventConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No Luma event configured",
			})
		case errors.Is(err, commands.ErrLumaNotConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Luma API key is not configured",
			})
		case errors.Is(err, commands.ErrSyncFailed):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Guest sync failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSyncResult(result))
}

// @Summary List sync logs
// @Description Recent guest sync runs, newest first
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum number of logs"
// @Success 200 {array} queries.SyncLogView
// @Failure 401 {object} map[string]string
// @Router /sync/logs [get]
func (h *SyncHandler) ListLogs(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid limit parameter",
			})
			return
		}
		limit = parsed
	}

	views, err := h.syncLogQueries.ListRecent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.SyncLogView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary List synced events
// @Description Luma events known locally from past syncs
// @Tags sync
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.EventView
// @Failure 401 {object} map[string]string
// @Router /events [get]
func (h *SyncHandler) ListEvents(c *gin.Context) {
	views, err := h.eventQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.EventView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Test Luma connection
// @Description Verify the stored Luma API key against the Luma API
// @Tags sync
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 422 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /luma/test-connection [post]
func (h *SyncHandler) TestConnection(c *gin.Context) {
	if err := h.syncCommands.TestConnection(c.Request.Context()); err != nil {
		switch {
		case errors.Is(err, commands.ErrLumaNotConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Luma API key is not configured",
			})
		default:
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Luma connection test failed",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
