package trips

import (
	"context"

	"github.com/google/uuid"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mpawlak/wedrownik/services/trips TripRepo,UserRepo

// TripRepo defines trip persistence. Implementations do not enforce
// ownership; they return trips by ID regardless of owner and the usecase
// decides who may see what.
type TripRepo interface {
	// CreateTrip stores a new trip and returns it with ID and timestamps
	// assigned.
	CreateTrip(ctx context.Context, route *models.Route) (*models.Route, error)
	// GetTrip returns a trip by ID, ErrTripNotFound when absent.
	GetTrip(ctx context.Context, tripID int64) (*models.Route, error)
	// ListTrips returns all trips owned by the given user, newest first.
	ListTrips(ctx context.Context, userID uuid.UUID) ([]models.Route, error)
	// UpdateTrip replaces a stored trip's mutable fields and point list.
	UpdateTrip(ctx context.Context, route *models.Route) (*models.Route, error)
	// DeleteTrip removes a trip by ID, ErrTripNotFound when absent.
	DeleteTrip(ctx context.Context, tripID int64) error
}

// UserRepo defines account persistence for auth
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) (*models.User, error)
	// GetUserByEmail returns (nil, nil) when no account matches.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
