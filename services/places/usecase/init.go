package usecase

import (
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/services/places"
)

// PlaceUC implements the place catalog usecase
type PlaceUC struct {
	cfg       *models.Config
	placeRepo places.PlaceRepo
}

// NewPlaceUC creates a new place usecase
func NewPlaceUC(cfg *models.Config, placeRepo places.PlaceRepo) *PlaceUC {
	return &PlaceUC{
		cfg:       cfg,
		placeRepo: placeRepo,
	}
}
