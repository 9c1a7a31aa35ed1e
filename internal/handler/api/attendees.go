package api

import (
	"errors"
	"net/http"
	"strconv"

	resdto "event-coupon-admin/internal/handler/dto/response"
	"event-coupon-admin/internal/usecase/commands"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttendeeHandler struct {
	attendeeQueries  queries.AttendeeQueries
	attendeeCommands commands.AttendeeCommands
}

func NewAttendeeHandler(attendeeQueries queries.AttendeeQueries, attendeeCommands commands.AttendeeCommands) *AttendeeHandler {
	return &AttendeeHandler{
		attendeeQueries:  attendeeQueries,
		attendeeCommands: attendeeCommands,
	}
}

// @Summary List attendees
// @Description List attendees, optionally filtered by coupon state and source
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param has_coupon query bool false "Filter by coupon assignment"
// @Param source query string false "Filter by registration source"
// @Success 200 {array} queries.AttendeeView
// @Failure 401 {object} map[string]string
// @Router /attendees [get]
func (h *AttendeeHandler) List(c *gin.Context) {
	filter, err := parseAttendeeFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid filter parameters",
		})
		return
	}

	views, err := h.attendeeQueries.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.AttendeeView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get attendee
// @Description Get attendee by ID
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendee ID"
// @Success 200 {object} queries.AttendeeView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /attendees/{id} [get]
func (h *AttendeeHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid attendee ID format",
		})
		return
	}

	view, err := h.attendeeQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAttendeeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Attendee not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Assign coupon to attendee
// @Description Claim the next available coupon code for the attendee
// @Tags attendees
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendee ID"
// @Success 200 {object} resdto.AssignCouponResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /attendees/{id}/assign-coupon [post]
func (h *AttendeeHandler) AssignCoupon(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid attendee ID format",
		})
		return
	}

	claim, err := h.attendeeCommands.AssignCoupon(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAttendeeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Attendee not found",
			})
		case errors.Is(err, commands.ErrCouponAlreadyAssigned):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Attendee already has a coupon",
			})
		case errors.Is(err, commands.ErrPoolExhausted):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "No coupon codes available",
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

// @Summary Send coupon email to attendee
// @Description Resend the coupon email for the attendee's assigned code
// @Tags attendees
// @Security BearerAuth
// @Param id path string true "Attendee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /attendees/{id}/send-email [post]
func (h *AttendeeHandler) SendCouponEmail(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid attendee ID format",
		})
		return
	}

	if err := h.attendeeCommands.SendCouponEmail(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAttendeeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Attendee not found",
			})
		case errors.Is(err, commands.ErrNoCouponAssigned):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Attendee has no coupon assigned",
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

// @Summary Delete attendee
// @Description Delete attendee and release any assigned coupon back to the pool
// @Tags attendees
// @Security BearerAuth
// @Param id path string true "Attendee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /attendees/{id} [delete]
func (h *AttendeeHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid attendee ID format",
		})
		return
	}

	if err := h.attendeeCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrAttendeeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Attendee not found",
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

func parseAttendeeFilter(c *gin.Context) (queries.AttendeeFilter, error) {
	var filter queries.AttendeeFilter

	if v := c.Query("has_coupon"); v != "" {
		hasCoupon, err := strconv.ParseBool(v)
		if err != nil {
			return filter, err
		}
		filter.HasCoupon = &hasCoupon
	}

	if v := c.Query("source"); v != "" {
		filter.Source = &v
	}

	return filter, nil
}
