package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/logger"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
)

// PlanTrip asks the routing engine for a plan from the trip's first place to
// its last. When the engine is unavailable or punts with a non-JSON answer,
// the response carries the Haversine trip length and the fallback flag
// instead of failing.
func (uc *TripUC) PlanTrip(ctx context.Context, userID uuid.UUID, tripID int64) (*models.PlanResult, error) {
	route, err := uc.ownedTrip(ctx, userID, tripID, true)
	if err != nil {
		return nil, err
	}

	enriched, err := uc.assembleTrip(ctx, route)
	if err != nil {
		return nil, err
	}
	if len(enriched.Places) < 2 {
		return nil, fmt.Errorf("%w: planning needs at least two resolvable places", apperrors.ErrInvalidInput)
	}

	first, err := utils.PlaceGeoPoint(enriched.Places[0])
	if err != nil {
		return nil, err
	}
	last, err := utils.PlaceGeoPoint(enriched.Places[len(enriched.Places)-1])
	if err != nil {
		return nil, err
	}

	result, err := uc.plannerGW.PlanTrip(ctx, &models.PlanRequest{
		FromLatitude:  first.Latitude,
		FromLongitude: first.Longitude,
		ToLatitude:    last.Latitude,
		ToLongitude:   last.Longitude,
	})
	if err != nil {
		logger.Warn("Routing engine unavailable, falling back to Haversine estimate",
			logger.Int64("trip_id", tripID),
			logger.ErrorField(err))
		return &models.PlanResult{
			DistanceKm:     enriched.DistanceKm,
			ClientFallback: true,
		}, nil
	}
	if result.ClientFallback {
		result.DistanceKm = enriched.DistanceKm
	}
	return result, nil
}
