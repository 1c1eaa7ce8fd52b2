package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// ValidateCoordinate checks that a latitude/longitude pair is inside the
// valid [-90,90]/[-180,180] ranges
func ValidateCoordinate(latitude, longitude float64) error {
	if math.IsNaN(latitude) || math.IsNaN(longitude) {
		return apperrors.ErrInvalidCoordinate
	}
	if latitude < -90 || latitude > 90 {
		return apperrors.ErrInvalidCoordinate
	}
	if longitude < -180 || longitude > 180 {
		return apperrors.ErrInvalidCoordinate
	}
	return nil
}

// CalculateDistance calculates the distance between two points in kilometers using the Haversine formula
func CalculateDistance(point1, point2 GeoPoint) float64 {
	// Earth's radius in kilometers
	const earthRadius = 6371.0

	// Convert latitude and longitude from degrees to radians
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	// Haversine formula
	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	distance := earthRadius * c

	return distance
}

// PlaceGeoPoint extracts the coordinate pair from a place record. Places
// without usable coordinates fail with ErrIncompletePlaceData.
func PlaceGeoPoint(place models.Place) (GeoPoint, error) {
	if !place.HasCoordinates() {
		return GeoPoint{}, apperrors.ErrIncompletePlaceData
	}
	return GeoPoint{
		Latitude:  *place.Latitude,
		Longitude: *place.Longitude,
	}, nil
}

// CalculateTripLength sums the Haversine distance over each consecutive pair
// of places in the given order. The order is taken as the visiting order, not
// optimized. Zero or one place yields zero.
func CalculateTripLength(places []models.Place) (float64, error) {
	if len(places) <= 1 {
		return 0, nil
	}

	total := 0.0
	prev, err := PlaceGeoPoint(places[0])
	if err != nil {
		return 0, err
	}
	for _, place := range places[1:] {
		next, err := PlaceGeoPoint(place)
		if err != nil {
			return 0, err
		}
		total += CalculateDistance(prev, next)
		prev = next
	}

	return total, nil
}

// EncodeGeoPoint converts a point to a geohash cell of the given precision
func EncodeGeoPoint(point GeoPoint, precision uint) string {
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}
