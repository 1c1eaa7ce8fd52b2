package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/utils"
	"github.com/mpawlak/wedrownik/services/places"
)

// PlaceHandler handles HTTP requests for the place catalog
type PlaceHandler struct {
	placeUC places.PlaceUC
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeUC places.PlaceUC) *PlaceHandler {
	return &PlaceHandler{
		placeUC: placeUC,
	}
}

// ListPlaces handles GET /places
func (h *PlaceHandler) ListPlaces(c echo.Context) error {
	result, err := h.placeUC.ListPlaces(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list places", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list places")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Places retrieved successfully", result)
}

// GetPlace handles GET /places/:id
func (h *PlaceHandler) GetPlace(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid place ID")
	}

	place, err := h.placeUC.GetPlace(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPlaceNotFound) {
			return utils.NotFoundResponse(c, "Place not found")
		}
		logger.Error("Failed to get place",
			logger.Int64("place_id", id),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to get place")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Place retrieved successfully", place)
}

// NearbyPlaces handles GET /places/nearby?lat=..&lng=..&radius_km=..
func (h *PlaceHandler) NearbyPlaces(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid or missing lat parameter")
	}
	longitude, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid or missing lng parameter")
	}

	radiusKm := 0.0
	if raw := c.QueryParam("radius_km"); raw != "" {
		radiusKm, err = strconv.ParseFloat(raw, 64)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid radius_km parameter")
		}
	}

	result, err := h.placeUC.NearbyPlaces(c.Request().Context(), latitude, longitude, radiusKm)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCoordinate) {
			return utils.BadRequestResponse(c, "Coordinate out of range")
		}
		logger.Error("Failed to search nearby places",
			logger.Float64("lat", latitude),
			logger.Float64("lng", longitude),
			logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to search nearby places")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Nearby places retrieved successfully", result)
}
