package api

import (
	"errors"
	"net/http"

	reqdto "event-coupon-admin/internal/handler/dto/request"
	resdto "event-coupon-admin/internal/handler/dto/response"
	"event-coupon-admin/internal/handler/middleware"
	"event-coupon-admin/internal/pkg/config"
	"event-coupon-admin/internal/pkg/cookie"
	"event-coupon-admin/internal/pkg/jwt"
	"event-coupon-admin/internal/usecase"
	"event-coupon-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase  usecase.AuthUseCase
	adminQueries queries.AdminQueries
	jwtService   *jwt.Service
	cookieCfg    config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, adminQueries queries.AdminQueries, jwtService *jwt.Service, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		authUseCase:  authUseCase,
		adminQueries: adminQueries,
		jwtService:   jwtService,
		cookieCfg:    cookieCfg,
	}
}

// @Summary Admin login
// @Description Login with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrAuthInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetSessionCookie(c, h.cookieCfg, result.Token, h.jwtService.TokenDuration())

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		Admin:       result.Admin,
	})
}

// @Summary Register admin
// @Description Create an admin account using the shared registration secret
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterAdminRequest true "Registration request"
// @Success 201 {object} resdto.RegisterAdminResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req reqdto.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.authUseCase.RegisterAdmin(c.Request.Context(), req.Name, req.Email, req.Password, req.RegistrationSecret)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrRegistrationDisabled):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Admin registration is disabled",
			})
		case errors.Is(err, usecase.ErrInvalidRegistrationSecret):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Invalid registration secret",
			})
		case errors.Is(err, usecase.ErrAdminAlreadyExists):
			c.JSON(http.StatusConflict, gin.H{
				"error": "An admin with this email already exists",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.RegisterAdminResponse{
		Admin:      result.Admin,
		FirstAdmin: result.FirstAdmin,
	})
}

// @Summary Admin logout
// @Description Clear the session cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearSessionCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current admin
// @Description Get the authenticated admin's profile
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} queries.AuthorizedAdminView
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	adminID, ok := middleware.GetAdminID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Admin not authenticated",
		})
		return
	}

	view, err := h.adminQueries.GetCurrentAdmin(c.Request.Context(), adminID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrAdminNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Admin not found",
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
