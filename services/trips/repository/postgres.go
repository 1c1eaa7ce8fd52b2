package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

// PostgresTripRepo implements TripRepo on Postgres. Trips live in a routes
// table with their points in route_points; IDs and timestamps are assigned by
// the database.
type PostgresTripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewPostgresTripRepo creates a new Postgres trip repository
func NewPostgresTripRepo(cfg *models.Config, db *sqlx.DB) *PostgresTripRepo {
	return &PostgresTripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip stores a new trip and its points in one transaction
func (r *PostgresTripRepo) CreateTrip(ctx context.Context, route *models.Route) (*models.Route, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrPersistenceFailure, err)
	}
	defer tx.Rollback()

	stored := *route
	err = tx.QueryRowxContext(ctx,
		`INSERT INTO routes (user_id, name, notes, created_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, created_at`,
		route.UserID, route.Name, route.Notes,
	).Scan(&stored.ID, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: insert route: %v", apperrors.ErrPersistenceFailure, err)
	}

	if err := insertRoutePoints(ctx, tx, stored.ID, route.RoutePoints); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", apperrors.ErrPersistenceFailure, err)
	}
	return &stored, nil
}

// GetTrip returns a trip by ID with its points in stored order
func (r *PostgresTripRepo) GetTrip(ctx context.Context, tripID int64) (*models.Route, error) {
	var route models.Route
	err := r.db.GetContext(ctx, &route,
		`SELECT id, user_id, name, notes, created_at, updated_at FROM routes WHERE id = $1`,
		tripID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, fmt.Errorf("%w: get route: %v", apperrors.ErrPersistenceFailure, err)
	}

	points, err := r.routePoints(ctx, route.ID)
	if err != nil {
		return nil, err
	}
	route.RoutePoints = points
	return &route, nil
}

// ListTrips returns all trips owned by the given user, newest first
func (r *PostgresTripRepo) ListTrips(ctx context.Context, userID uuid.UUID) ([]models.Route, error) {
	routes := []models.Route{}
	err := r.db.SelectContext(ctx, &routes,
		`SELECT id, user_id, name, notes, created_at, updated_at
		FROM routes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list routes: %v", apperrors.ErrPersistenceFailure, err)
	}

	for i := range routes {
		points, err := r.routePoints(ctx, routes[i].ID)
		if err != nil {
			return nil, err
		}
		routes[i].RoutePoints = points
	}
	return routes, nil
}

// UpdateTrip replaces a trip's fields and point list in one transaction
func (r *PostgresTripRepo) UpdateTrip(ctx context.Context, route *models.Route) (*models.Route, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: begin transaction: %v", apperrors.ErrPersistenceFailure, err)
	}
	defer tx.Rollback()

	stored := *route
	err = tx.QueryRowxContext(ctx,
		`UPDATE routes SET name = $1, notes = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING created_at, updated_at`,
		route.Name, route.Notes, route.ID,
	).Scan(&stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrTripNotFound
		}
		return nil, fmt.Errorf("%w: update route: %v", apperrors.ErrPersistenceFailure, err)
	}

	_, err = tx.ExecContext(ctx, `DELETE FROM route_points WHERE route_id = $1`, route.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: clear route points: %v", apperrors.ErrPersistenceFailure, err)
	}
	if err := insertRoutePoints(ctx, tx, route.ID, route.RoutePoints); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: commit: %v", apperrors.ErrPersistenceFailure, err)
	}
	return &stored, nil
}

// DeleteTrip removes a trip and its points
func (r *PostgresTripRepo) DeleteTrip(ctx context.Context, tripID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %v", apperrors.ErrPersistenceFailure, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `DELETE FROM route_points WHERE route_id = $1`, tripID)
	if err != nil {
		return fmt.Errorf("%w: delete route points: %v", apperrors.ErrPersistenceFailure, err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM routes WHERE id = $1`, tripID)
	if err != nil {
		return fmt.Errorf("%w: delete route: %v", apperrors.ErrPersistenceFailure, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: rows affected: %v", apperrors.ErrPersistenceFailure, err)
	}
	if affected == 0 {
		return apperrors.ErrTripNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %v", apperrors.ErrPersistenceFailure, err)
	}
	return nil
}

func (r *PostgresTripRepo) routePoints(ctx context.Context, routeID int64) ([]models.RoutePoint, error) {
	points := []models.RoutePoint{}
	err := r.db.SelectContext(ctx, &points,
		`SELECT place_id, point_order FROM route_points WHERE route_id = $1 ORDER BY point_order ASC`,
		routeID)
	if err != nil {
		return nil, fmt.Errorf("%w: get route points: %v", apperrors.ErrPersistenceFailure, err)
	}
	return points, nil
}

func insertRoutePoints(ctx context.Context, tx *sqlx.Tx, routeID int64, points []models.RoutePoint) error {
	for _, point := range points {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO route_points (route_id, place_id, point_order) VALUES ($1, $2, $3)`,
			routeID, point.PlaceID, point.Order)
		if err != nil {
			return fmt.Errorf("%w: insert route point: %v", apperrors.ErrPersistenceFailure, err)
		}
	}
	return nil
}
