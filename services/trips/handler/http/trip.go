package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/pkg/middleware"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
	"github.com/mpawlak/wedrownik/services/trips"
)

// TripHandler handles trip CRUD, length and planning endpoints
type TripHandler struct {
	tripUC trips.TripUC
}

// NewTripHandler creates a new trip handler
func NewTripHandler(tripUC trips.TripUC) *TripHandler {
	return &TripHandler{
		tripUC: tripUC,
	}
}

// ListTrips handles GET /routes. The route sits behind the optional JWT
// middleware: anonymous callers get a 401 that still carries an empty list so
// list consumers never break on shape.
func (h *TripHandler) ListTrips(c echo.Context) error {
	userID := middleware.UserIDFromContext(c)

	routes, err := h.tripUC.ListTrips(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) {
			return utils.ErrorResponseWithData(c, http.StatusUnauthorized, "Authentication required", routes)
		}
		logger.Error("Failed to list trips", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list trips")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trips retrieved successfully", routes)
}

// GetTrip handles GET /routes/:id
func (h *TripHandler) GetTrip(c echo.Context) error {
	tripID, err := parseTripID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	enriched, err := h.tripUC.GetTrip(c.Request().Context(), middleware.UserIDFromContext(c), tripID)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to get trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip retrieved successfully", enriched)
}

// CreateTrip handles POST /routes
func (h *TripHandler) CreateTrip(c echo.Context) error {
	var req models.CreateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	stored, err := h.tripUC.CreateTrip(c.Request().Context(), middleware.UserIDFromContext(c), &req)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to create trip")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Trip created", stored)
}

// UpdateTrip handles PUT /routes/:id
func (h *TripHandler) UpdateTrip(c echo.Context) error {
	tripID, err := parseTripID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	var req models.UpdateRouteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	stored, err := h.tripUC.UpdateTrip(c.Request().Context(), middleware.UserIDFromContext(c), tripID, &req)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to update trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip updated", stored)
}

// DeleteTrip handles DELETE /routes/:id
func (h *TripHandler) DeleteTrip(c echo.Context) error {
	tripID, err := parseTripID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	if err := h.tripUC.DeleteTrip(c.Request().Context(), middleware.UserIDFromContext(c), tripID); err != nil {
		return tripErrorResponse(c, err, "Failed to delete trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip deleted", nil)
}

// TripLength handles GET /routes/:id/length
func (h *TripHandler) TripLength(c echo.Context) error {
	tripID, err := parseTripID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	length, err := h.tripUC.TripLength(c.Request().Context(), middleware.UserIDFromContext(c), tripID)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to compute trip length")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip length computed", map[string]float64{
		"distance_km": length,
	})
}

// PlanTrip handles GET /routes/:id/plan
func (h *TripHandler) PlanTrip(c echo.Context) error {
	tripID, err := parseTripID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid trip ID")
	}

	result, err := h.tripUC.PlanTrip(c.Request().Context(), middleware.UserIDFromContext(c), tripID)
	if err != nil {
		return tripErrorResponse(c, err, "Failed to plan trip")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Trip planned", result)
}

func parseTripID(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// tripErrorResponse maps the domain error taxonomy onto HTTP statuses
func tripErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return utils.UnauthorizedResponse(c, "Authentication required")
	case errors.Is(err, apperrors.ErrForbidden):
		return utils.ForbiddenResponse(c, "You do not own this trip")
	case errors.Is(err, apperrors.ErrTripNotFound):
		return utils.NotFoundResponse(c, "Trip not found")
	case errors.Is(err, apperrors.ErrInvalidInput):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrLookupUnavailable):
		return utils.ServiceUnavailableResponse(c, "Place lookup unavailable")
	default:
		logger.Error(fallback, logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, fallback)
	}
}
