package places

import (
	"context"

	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/mpawlak/wedrownik/services/places PlaceUC

// PlaceUC represents the place catalog usecase interface
type PlaceUC interface {
	GetPlace(ctx context.Context, id int64) (*models.Place, error)
	ListPlaces(ctx context.Context) ([]models.Place, error)
	NearbyPlaces(ctx context.Context, latitude, longitude, radiusKm float64) ([]models.Place, error)
}
