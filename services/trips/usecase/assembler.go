package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
)

// assembleTrip resolves a route's points into full place records. Each
// distinct place ID is looked up exactly once, lookups run concurrently, and
// every lookup settles before the result is built. Points whose place no
// longer exists in the catalog are dropped; a catalog that cannot be reached
// at all fails the whole assembly with ErrLookupUnavailable.
func (uc *TripUC) assembleTrip(ctx context.Context, route *models.Route) (*models.EnrichedTrip, error) {
	orderedIDs := route.PlaceIDsInOrder()

	distinct := make([]int64, 0, len(orderedIDs))
	seen := make(map[int64]bool, len(orderedIDs))
	for _, id := range orderedIDs {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	var (
		mu        sync.Mutex
		wg        sync.WaitGroup
		resolved  = make(map[int64]*models.Place, len(distinct))
		lookupErr error
	)
	for _, id := range distinct {
		wg.Add(1)
		go func(placeID int64) {
			defer wg.Done()
			place, err := uc.placeGW.GetPlace(ctx, placeID)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				// A vanished place just drops out of the trip
				if errors.Is(err, apperrors.ErrPlaceNotFound) {
					return
				}
				if lookupErr == nil {
					lookupErr = err
				}
				return
			}
			resolved[placeID] = place
		}(id)
	}
	wg.Wait()

	if lookupErr != nil {
		if errors.Is(lookupErr, apperrors.ErrLookupUnavailable) {
			return nil, lookupErr
		}
		return nil, fmt.Errorf("%w: %v", apperrors.ErrLookupUnavailable, lookupErr)
	}

	places := make([]models.Place, 0, len(orderedIDs))
	for _, id := range orderedIDs {
		if place, ok := resolved[id]; ok {
			places = append(places, *place)
		}
	}

	distance, err := utils.CalculateTripLength(places)
	if err != nil {
		return nil, err
	}

	return &models.EnrichedTrip{
		ID:          route.ID,
		Name:        route.Name,
		Description: route.Notes,
		Places:      places,
		DistanceKm:  distance,
		CreatedAt:   route.CreatedAt,
		UpdatedAt:   route.UpdatedAt,
	}, nil
}
