package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"
	"github.com/jmoiron/sqlx"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/mpawlak/wedrownik/internal/utils"
)

// placeGeohashPrecision is the cell size stored with each catalog row,
// roughly 5m x 5m.
const placeGeohashPrecision = 9

// GeoIndex is the slice of the Redis client the catalog needs for nearby
// lookups.
type GeoIndex interface {
	GeoAdd(ctx context.Context, key string, longitude, latitude float64, member string) error
	GeoRadius(ctx context.Context, key string, longitude, latitude, radius float64, unit string) ([]redis.GeoLocation, error)
}

// PlaceRepo implements the place catalog repository on Postgres, with the
// geospatial index kept in a Redis geo set.
type PlaceRepo struct {
	cfg *models.Config
	db  *sqlx.DB
	geo GeoIndex
}

// NewPlaceRepo creates a new place repository
func NewPlaceRepo(cfg *models.Config, db *sqlx.DB, geo GeoIndex) *PlaceRepo {
	return &PlaceRepo{
		cfg: cfg,
		db:  db,
		geo: geo,
	}
}

// GetPlace retrieves a single place by ID
func (r *PlaceRepo) GetPlace(ctx context.Context, id int64) (*models.Place, error) {
	var place models.Place
	query := `SELECT id, name, latitude, longitude, geohash, category, description, created_at, updated_at
		FROM places WHERE id = $1`

	err := r.db.GetContext(ctx, &place, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrPlaceNotFound
		}
		return nil, fmt.Errorf("%w: get place: %v", apperrors.ErrPersistenceFailure, err)
	}

	return &place, nil
}

// ListPlaces retrieves the whole catalog ordered by name
func (r *PlaceRepo) ListPlaces(ctx context.Context) ([]models.Place, error) {
	places := []models.Place{}
	query := `SELECT id, name, latitude, longitude, geohash, category, description, created_at, updated_at
		FROM places ORDER BY name ASC`

	err := r.db.SelectContext(ctx, &places, query)
	if err != nil {
		return nil, fmt.Errorf("%w: list places: %v", apperrors.ErrPersistenceFailure, err)
	}

	return places, nil
}

// NearbyPlaces finds catalog entries within radiusKm of the given point,
// closest first. The geo set only answers with IDs, so hits are resolved
// against Postgres afterwards.
func (r *PlaceRepo) NearbyPlaces(ctx context.Context, point utils.GeoPoint, radiusKm float64) ([]models.Place, error) {
	locations, err := r.geo.GeoRadius(ctx, r.cfg.Places.GeoSetKey, point.Longitude, point.Latitude, radiusKm, "km")
	if err != nil {
		return nil, fmt.Errorf("%w: geo radius query: %v", apperrors.ErrPersistenceFailure, err)
	}

	places := make([]models.Place, 0, len(locations))
	for _, loc := range locations {
		id, err := strconv.ParseInt(loc.Name, 10, 64)
		if err != nil {
			continue
		}
		place, err := r.GetPlace(ctx, id)
		if err != nil {
			if errors.Is(err, apperrors.ErrPlaceNotFound) {
				// Stale geo index entry, skip it
				continue
			}
			return nil, err
		}
		places = append(places, *place)
	}

	return places, nil
}

// SeedCatalog upserts the given catalog into Postgres and refreshes the Redis
// geo index. Meant for first boot against an empty database.
func (r *PlaceRepo) SeedCatalog(ctx context.Context, catalog []models.Place) error {
	query := `INSERT INTO places (id, name, latitude, longitude, geohash, category, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			geohash = EXCLUDED.geohash,
			category = EXCLUDED.category,
			description = EXCLUDED.description,
			updated_at = NOW()`

	for _, place := range catalog {
		cell := ""
		if place.HasCoordinates() {
			cell = utils.EncodeGeoPoint(utils.GeoPoint{
				Latitude:  *place.Latitude,
				Longitude: *place.Longitude,
			}, placeGeohashPrecision)
		}

		_, err := r.db.ExecContext(ctx, query,
			place.ID, place.Name, place.Latitude, place.Longitude, cell, place.Category, place.Description)
		if err != nil {
			return fmt.Errorf("%w: seed place %d: %v", apperrors.ErrPersistenceFailure, place.ID, err)
		}

		if place.HasCoordinates() {
			err = r.geo.GeoAdd(ctx, r.cfg.Places.GeoSetKey,
				*place.Longitude, *place.Latitude, strconv.FormatInt(place.ID, 10))
			if err != nil {
				return fmt.Errorf("%w: index place %d: %v", apperrors.ErrPersistenceFailure, place.ID, err)
			}
		}
	}

	return nil
}
