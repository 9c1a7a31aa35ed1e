package api

import (
	"errors"
	"net/http"

	resdto "event-coupon-admin/internal/handler/dto/response"
	"event-coupon-admin/internal/usecase/commands"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestHandler struct {
	guestQueries  queries.GuestQueries
	guestCommands commands.GuestCommands
}

func NewGuestHandler(guestQueries queries.GuestQueries, guestCommands commands.GuestCommands) *GuestHandler {
	return &GuestHandler{
		guestQueries:  guestQueries,
		guestCommands: guestCommands,
	}
}

// @Summary List guests
// @Description List synced guests of the configured Luma event
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by registration status"
// @Success 200 {array} resdto.GuestResponse
// @Failure 401 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guests [get]
func (h *GuestHandler) List(c *gin.Context) {
	var status *string
	if v := c.Query("status"); v != "" {
		status = &v
	}

	views, err := h.guestQueries.ListForConfiguredEvent(c.Request.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrNoEventConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No Luma event configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromGuestViews(views)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get guest
// @Description Get a synced guest by Luma guest ID
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param lumaGuestId path string true "Luma guest ID"
// @Success 200 {object} resdto.GuestResponse
// @Failure 404 {object} map[string]string
// @Router /guests/{lumaGuestId} [get]
func (h *GuestHandler) Get(c *gin.Context) {
	view, err := h.guestQueries.GetByLumaID(c.Request.Context(), c.Param("lumaGuestId"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp, err := resdto.FromGuestView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Assign coupon to guest
// @Description Claim the next available coupon code for the guest
// @Tags guests
// @Produce json
// @Security BearerAuth
// @Param lumaGuestId path string true "Luma guest ID"
// @Success 200 {object} resdto.AssignCouponResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guests/{lumaGuestId}/assign-coupon [post]
func (h *GuestHandler) AssignCoupon(c *gin.Context) {
	claim, err := h.guestCommands.AssignCoupon(c.Request.Context(), c.Param("lumaGuestId"))
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errors.Is(err, commands.ErrCouponAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Guest already has a coupon",
			})
		case errors.Is(err, commands.ErrPoolExhausted):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No coupon codes available",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest record has invalid name or email",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.AssignCouponResponse{
		CouponCodeID: claim.ID,
		CouponCode:   claim.Code,
	})
}

// @Summary Send coupon email to guest
// @Description Email the guest's assigned coupon code and record the send time
// @Tags guests
// @Security BearerAuth
// @Param lumaGuestId path string true "Luma guest ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guests/{lumaGuestId}/send-email [post]
func (h *GuestHandler) SendCouponEmail(c *gin.Context) {
	if err := h.guestCommands.SendCouponEmail(c.Request.Context(), c.Param("lumaGuestId")); err != nil {
		switch {
		case errors.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errors.Is(err, commands.ErrNoCouponAssigned):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest has no coupon assigned",
			})
		case errors.Is(err, commands.ErrMailNotConfigured):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Email delivery is not configured",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Unassign coupon from guest
// @Description Return the guest's coupon code to the pool
// @Tags guests
// @Security BearerAuth
// @Param lumaGuestId path string true "Luma guest ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /guests/{lumaGuestId}/coupon [delete]
func (h *GuestHandler) UnassignCoupon(c *gin.Context) {
	if err := h.guestCommands.UnassignCoupon(c.Request.Context(), c.Param("lumaGuestId")); err != nil {
		switch {
		case errors.Is(err, commands.ErrGuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Guest not found",
			})
		case errors.Is(err, commands.ErrNoCouponAssigned):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Guest has no coupon assigned",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
