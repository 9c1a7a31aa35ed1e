package api

import (
	"errors"
	"net/http"

	reqdto "event-coupon-admin/internal/handler/dto/request"
	resdto "event-coupon-admin/internal/handler/dto/response"
	"event-coupon-admin/internal/usecase/commands"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	couponQueries  queries.CouponQueries
	couponCommands commands.CouponCommands
}

func NewCouponHandler(couponQueries queries.CouponQueries, couponCommands commands.CouponCommands) *CouponHandler {
	return &CouponHandler{
		couponQueries:  couponQueries,
		couponCommands: couponCommands,
	}
}

// @Summary List coupon codes
// @Description List all coupon codes with usage state
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.CouponCodeView
// @Failure 401 {object} map[string]string
// @Router /coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	views, err := h.couponQueries.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	if views == nil {
		views = []*queries.CouponCodeView{}
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Coupon pool stats
// @Description Total, used, and available coupon counts
// @Tags coupons
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.CouponStatsView
// @Failure 401 {object} map[string]string
// @Router /coupons/stats [get]
func (h *CouponHandler) Stats(c *gin.Context) {
	stats, err := h.couponQueries.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// @Summary Create coupon code
// @Description Add a single coupon code to the pool
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateCouponRequest true "Coupon request"
// @Success 201 {object} resdto.CreateCouponResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	id, err := h.couponCommands.Create(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid coupon code format",
			})
		case errors.Is(err, commands.ErrDuplicateCouponCode):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon code already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.CreateCouponResponse{ID: id})
}

// @Summary Bulk import coupon codes
// @Description Import newline-separated coupon codes, reporting duplicates and invalid lines
// @Tags coupons
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkImportCouponsRequest true "Bulk import request"
// @Success 200 {object} resdto.BulkImportResponse
// @Failure 400 {object} map[string]string
// @Router /coupons/bulk [post]
func (h *CouponHandler) BulkImport(c *gin.Context) {
	var req reqdto.BulkImportCouponsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.couponCommands.BulkImport(c.Request.Context(), req.Codes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBulkImportResult(result))
}

// @Summary Update coupon code
// @Description Rename an unused coupon code
// @Tags coupons
// @Accept json
// @Security BearerAuth
// @Param id path string true "Coupon code ID"
// @Param request body reqdto.UpdateCouponRequest true "Update request"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/{id} [patch]
func (h *CouponHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon code ID format",
		})
		return
	}

	var req reqdto.UpdateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.couponCommands.UpdateCode(c.Request.Context(), id, req.Code); err != nil {
		h.writeCouponMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Delete coupon code
// @Description Remove an unused coupon code from the pool
// @Tags coupons
// @Security BearerAuth
// @Param id path string true "Coupon code ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon code ID format",
		})
		return
	}

	if err := h.couponCommands.Delete(c.Request.Context(), id); err != nil {
		h.writeCouponMutationError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CouponHandler) writeCouponMutationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon code format",
		})
	case errors.Is(err, commands.ErrCouponNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Coupon code not found",
		})
	case errors.Is(err, commands.ErrCouponInUse):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Coupon code has already been assigned",
		})
	case errors.Is(err, commands.ErrDuplicateCouponCode):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Coupon code already exists",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
