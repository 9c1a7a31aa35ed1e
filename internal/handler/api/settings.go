package api

import (
	"net/http"

	reqdto "event-coupon-admin/internal/handler/dto/request"
	"event-coupon-admin/internal/usecase/commands"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsQueries  queries.SettingsQueries
	settingsCommands commands.SettingsCommands
}

func NewSettingsHandler(settingsQueries queries.SettingsQueries, settingsCommands commands.SettingsCommands) *SettingsHandler {
	return &SettingsHandler{
		settingsQueries:  settingsQueries,
		settingsCommands: settingsCommands,
	}
}

// @Summary Get settings
// @Description Full settings for the admin surface, including API keys
// @Tags settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.SettingsView
// @Failure 401 {object} map[string]string
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	view, err := h.settingsQueries.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Update settings
// @Description Patch the provided settings fields
// @Tags settings
// @Accept json
// @Security BearerAuth
// @Param request body reqdto.UpdateSettingsRequest true "Settings patch"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Router /settings [patch]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.settingsCommands.Update(c.Request.Context(), req.ToPatch()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Public settings
// @Description City name and timezone for the public registration page
// @Tags settings
// @Produce json
// @Success 200 {object} queries.PublicSettingsView
// @Router /public/settings [get]
func (h *SettingsHandler) GetPublic(c *gin.Context) {
	view, err := h.settingsQueries.GetPublic(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}
