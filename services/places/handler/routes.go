package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/services/places"
	httphandler "github.com/mpawlak/wedrownik/services/places/handler/http"
)

// Handler wires the place catalog HTTP handlers onto an Echo instance
type Handler struct {
	placeHandler *httphandler.PlaceHandler
}

// NewHandler creates a new places service handler
func NewHandler(placeUC places.PlaceUC) *Handler {
	return &Handler{
		placeHandler: httphandler.NewPlaceHandler(placeUC),
	}
}

// RegisterRoutes registers all place catalog routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	group := e.Group("/places")
	group.GET("", h.placeHandler.ListPlaces)
	group.GET("/nearby", h.placeHandler.NearbyPlaces)
	group.GET("/:id", h.placeHandler.GetPlace)
}
