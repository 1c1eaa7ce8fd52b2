package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mpawlak/wedrownik/services/trips TripUC

// TripUC represents the trip service usecase interface
type TripUC interface {
	Register(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.AuthRequest) (*models.AuthResponse, error)

	ListTrips(ctx context.Context, userID uuid.UUID) ([]models.Route, error)
	GetTrip(ctx context.Context, userID uuid.UUID, tripID int64) (*models.EnrichedTrip, error)
	CreateTrip(ctx context.Context, userID uuid.UUID, req *models.CreateRouteRequest) (*models.Route, error)
	UpdateTrip(ctx context.Context, userID uuid.UUID, tripID int64, req *models.UpdateRouteRequest) (*models.Route, error)
	DeleteTrip(ctx context.Context, userID uuid.UUID, tripID int64) error
	TripLength(ctx context.Context, userID uuid.UUID, tripID int64) (float64, error)
	PlanTrip(ctx context.Context, userID uuid.UUID, tripID int64) (*models.PlanResult, error)
}
