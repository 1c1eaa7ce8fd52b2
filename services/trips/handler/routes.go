package handler

import (
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/mpawlak/wedrownik/internal/pkg/middleware"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
	"github.com/mpawlak/wedrownik/services/trips"
	httphandler "github.com/mpawlak/wedrownik/services/trips/handler/http"
)

// Handler wires the trip service HTTP handlers onto an Echo instance
type Handler struct {
	authHandler *httphandler.AuthHandler
	tripHandler *httphandler.TripHandler
	cfg         *models.Config
}

// NewHandler creates a new trip service handler
func NewHandler(tripUC trips.TripUC, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: httphandler.NewAuthHandler(tripUC),
		tripHandler: httphandler.NewTripHandler(tripUC),
		cfg:         cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for protected routes
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// The signature is already verified; this pass lifts the
			// claims into context as typed values.
			if token := middleware.BearerToken(c); token != "" {
				_ = middleware.SetIdentityFromToken(c, token, h.cfg.JWT)
			}
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return utils.UnauthorizedResponse(c, "Invalid or missing token")
		},
	})
}

// RegisterRoutes registers all trip service routes
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/login", h.authHandler.Login)

	// Listing tolerates anonymous callers and answers with an empty list,
	// so it sits behind the optional guard instead of the strict one.
	e.GET("/routes", h.tripHandler.ListTrips, middleware.OptionalJWTMiddleware(h.cfg.JWT))

	protected := e.Group("/routes", h.GetJWTMiddleware())
	protected.POST("", h.tripHandler.CreateTrip)
	protected.GET("/:id", h.tripHandler.GetTrip)
	protected.PUT("/:id", h.tripHandler.UpdateTrip)
	protected.DELETE("/:id", h.tripHandler.DeleteTrip)
	protected.GET("/:id/length", h.tripHandler.TripLength)
	protected.GET("/:id/plan", h.tripHandler.PlanTrip)
}
