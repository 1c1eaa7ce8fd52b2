package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
	"github.com/mpawlak/wedrownik/services/trips"
)

// AuthHandler handles registration and login
type AuthHandler struct {
	tripUC trips.TripUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(tripUC trips.TripUC) *AuthHandler {
	return &AuthHandler{
		tripUC: tripUC,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.AuthRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.tripUC.Register(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Registration failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Registration failed")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account created", resp)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.AuthRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.tripUC.Login(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			return utils.UnauthorizedResponse(c, "Unknown email or wrong password")
		}
		logger.Error("Login failed", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Logged in", resp)
}
