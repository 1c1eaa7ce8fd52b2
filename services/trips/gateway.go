package trips

import (
	"context"

	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/mpawlak/wedrownik/services/trips PlaceGW,PlannerGW,TripEventsGW

// PlaceGW talks to the place catalog service. A missing place is
// ErrPlaceNotFound; a backend that cannot be reached at all is
// ErrLookupUnavailable.
type PlaceGW interface {
	GetPlace(ctx context.Context, placeID int64) (*models.Place, error)
}

// PlannerGW talks to the external routing engine.
type PlannerGW interface {
	PlanTrip(ctx context.Context, req *models.PlanRequest) (*models.PlanResult, error)
}

// TripEventsGW publishes trip lifecycle events. Callers log failures and
// carry on; event delivery is best effort.
type TripEventsGW interface {
	TripCreated(event models.TripEvent) error
	TripUpdated(event models.TripEvent) error
	TripDeleted(event models.TripEvent) error
}
