package places

import (
	"context"

	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/mpawlak/wedrownik/services/places PlaceRepo

// PlaceRepo defines the place catalog persistence interface
type PlaceRepo interface {
	GetPlace(ctx context.Context, id int64) (*models.Place, error)
	ListPlaces(ctx context.Context) ([]models.Place, error)
	NearbyPlaces(ctx context.Context, point utils.GeoPoint, radiusKm float64) ([]models.Place, error)
	SeedCatalog(ctx context.Context, catalog []models.Place) error
}
