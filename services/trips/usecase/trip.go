package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

// ListTrips returns the user's trips, newest first. An anonymous caller gets
// an empty slice together with ErrUnauthenticated so handlers can keep
// rendering a list shape.
func (uc *TripUC) ListTrips(ctx context.Context, userID uuid.UUID) ([]models.Route, error) {
	if userID == uuid.Nil {
		return []models.Route{}, apperrors.ErrUnauthenticated
	}
	return uc.tripRepo.ListTrips(ctx, userID)
}

// GetTrip returns one trip enriched with its resolved places and length
func (uc *TripUC) GetTrip(ctx context.Context, userID uuid.UUID, tripID int64) (*models.EnrichedTrip, error) {
	route, err := uc.ownedTrip(ctx, userID, tripID, true)
	if err != nil {
		return nil, err
	}
	return uc.assembleTrip(ctx, route)
}

// CreateTrip validates and stores a new trip for the user
func (uc *TripUC) CreateTrip(ctx context.Context, userID uuid.UUID, req *models.CreateRouteRequest) (*models.Route, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}
	if err := validateTripInput(req.Name, req.RoutePoints); err != nil {
		return nil, err
	}

	stored, err := uc.tripRepo.CreateTrip(ctx, &models.Route{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		Notes:       req.Notes,
		RoutePoints: req.RoutePoints,
	})
	if err != nil {
		return nil, err
	}

	uc.publishEvent("created", uc.eventsGW.TripCreated, stored)
	return stored, nil
}

// UpdateTrip applies a partial update to an owned trip. Fields absent from
// the request keep their stored values; in particular an absent point list
// leaves the stored points untouched.
func (uc *TripUC) UpdateTrip(ctx context.Context, userID uuid.UUID, tripID int64, req *models.UpdateRouteRequest) (*models.Route, error) {
	route, err := uc.ownedTrip(ctx, userID, tripID, false)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		route.Name = strings.TrimSpace(*req.Name)
	}
	if req.Notes != nil {
		route.Notes = *req.Notes
	}
	if req.RoutePoints != nil {
		route.RoutePoints = *req.RoutePoints
	}
	if err := validateTripInput(route.Name, route.RoutePoints); err != nil {
		return nil, err
	}

	stored, err := uc.tripRepo.UpdateTrip(ctx, route)
	if err != nil {
		return nil, err
	}

	uc.publishEvent("updated", uc.eventsGW.TripUpdated, stored)
	return stored, nil
}

// DeleteTrip removes an owned trip
func (uc *TripUC) DeleteTrip(ctx context.Context, userID uuid.UUID, tripID int64) error {
	route, err := uc.ownedTrip(ctx, userID, tripID, false)
	if err != nil {
		return err
	}

	if err := uc.tripRepo.DeleteTrip(ctx, tripID); err != nil {
		return err
	}

	uc.publishEvent("deleted", uc.eventsGW.TripDeleted, route)
	return nil
}

// TripLength returns the summed leg distance of the trip's resolved places
func (uc *TripUC) TripLength(ctx context.Context, userID uuid.UUID, tripID int64) (float64, error) {
	enriched, err := uc.GetTrip(ctx, userID, tripID)
	if err != nil {
		return 0, err
	}
	return enriched.DistanceKm, nil
}

// ownedTrip loads a trip and enforces ownership. On read paths a foreign trip
// is reported as missing so trip IDs leak nothing; on write paths the caller
// learns the trip exists but is not theirs.
func (uc *TripUC) ownedTrip(ctx context.Context, userID uuid.UUID, tripID int64, readOnly bool) (*models.Route, error) {
	if userID == uuid.Nil {
		return nil, apperrors.ErrUnauthenticated
	}

	route, err := uc.tripRepo.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if route.UserID != userID {
		if readOnly {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, apperrors.ErrForbidden
	}
	return route, nil
}

func validateTripInput(name string, points []models.RoutePoint) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: trip name is required", apperrors.ErrInvalidInput)
	}
	if len(points) == 0 {
		return fmt.Errorf("%w: a trip needs at least one place", apperrors.ErrInvalidInput)
	}

	seen := make(map[int]bool, len(points))
	for _, point := range points {
		if point.Order < 1 {
			return fmt.Errorf("%w: point order must be positive", apperrors.ErrInvalidInput)
		}
		if seen[point.Order] {
			return fmt.Errorf("%w: duplicate point order %d", apperrors.ErrInvalidInput, point.Order)
		}
		seen[point.Order] = true
	}
	return nil
}

// publishEvent sends a lifecycle event, logging failures instead of breaking
// the write that triggered them.
func (uc *TripUC) publishEvent(action string, publish func(models.TripEvent) error, route *models.Route) {
	err := publish(models.TripEvent{
		TripID:    route.ID,
		UserID:    route.UserID,
		Name:      route.Name,
		Timestamp: models.Now(),
	})
	if err != nil {
		logger.Warn("Failed to publish trip event",
			logger.String("action", action),
			logger.Int64("trip_id", route.ID),
			logger.ErrorField(err))
	}
}
