package usecase

import (
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/services/trips"
)

// TripUC implements the trip service usecase
type TripUC struct {
	cfg       *models.Config
	tripRepo  trips.TripRepo
	userRepo  trips.UserRepo
	placeGW   trips.PlaceGW
	plannerGW trips.PlannerGW
	eventsGW  trips.TripEventsGW
}

// NewTripUC creates a new trip usecase
func NewTripUC(
	cfg *models.Config,
	tripRepo trips.TripRepo,
	userRepo trips.UserRepo,
	placeGW trips.PlaceGW,
	plannerGW trips.PlannerGW,
	eventsGW trips.TripEventsGW,
) *TripUC {
	return &TripUC{
		cfg:       cfg,
		tripRepo:  tripRepo,
		userRepo:  userRepo,
		placeGW:   placeGW,
		plannerGW: plannerGW,
		eventsGW:  eventsGW,
	}
}
