package usecase

import (
	"context"

	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
)

// GetPlace returns a single catalog entry by ID
func (uc *PlaceUC) GetPlace(ctx context.Context, id int64) (*models.Place, error) {
	return uc.placeRepo.GetPlace(ctx, id)
}

// ListPlaces returns the whole catalog
func (uc *PlaceUC) ListPlaces(ctx context.Context) ([]models.Place, error) {
	return uc.placeRepo.ListPlaces(ctx)
}

// NearbyPlaces returns catalog entries within radiusKm of the given point,
// closest first. A non-positive radius falls back to the configured default.
func (uc *PlaceUC) NearbyPlaces(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.Place, error) {
	if err := utils.ValidateCoordinate(latitude, longitude); err != nil {
		return nil, err
	}
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Places.NearbyRadiusKm
	}

	point := utils.GeoPoint{Latitude: latitude, Longitude: longitude}
	return uc.placeRepo.NearbyPlaces(ctx, point, radiusKm)
}
