package api

import (
	"errors"
	"net/http"

	reqdto "event-coupon-admin/internal/handler/dto/request"
	resdto "event-coupon-admin/internal/handler/dto/response"
	"event-coupon-admin/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// RegisterHandler serves the public registration endpoint.
type RegisterHandler struct {
	registration commands.RegistrationCommands
}

func NewRegisterHandler(registration commands.RegistrationCommands) *RegisterHandler {
	return &RegisterHandler{registration: registration}
}

// @Summary Register attendee
// @Description Register for the event and receive a coupon code when available
// @Tags register
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterAttendeeRequest true "Registration request"
// @Success 201 {object} resdto.RegisterAttendeeResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /register [post]
func (h *RegisterHandler) Register(c *gin.Context) {
	var req reqdto.RegisterAttendeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.registration.Register(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid name or email",
			})
		case errors.Is(err, commands.ErrDuplicateEmail):
			c.JSON(http.StatusConflict, gin.H{
				"error": "This email is already registered",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	resp := resdto.RegisterAttendeeResponse{
		AttendeeID:     result.AttendeeID,
		CouponAssigned: result.CouponAssigned,
		EmailSent:      result.EmailSent,
	}
	if result.CouponAssigned {
		resp.CouponCode = &result.CouponCode
	}

	c.JSON(http.StatusCreated, resp)
}
