package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/constants"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

// KVStore is the slice of the Redis client the local trip store needs. A miss
// on Get reports redis.Nil.
type KVStore interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	Incr(ctx context.Context, key string) (int64, error)
}

// LocalTripRepo implements TripRepo on a key-value store, for deployments
// without Postgres. Each user's trips live as one serialized list under a
// per-user key; a small owner index maps trip IDs back to their user so
// lookups by ID alone still work. Reads-modify-writes are not transactional,
// so concurrent updates to the same trip are last-write-wins.
type LocalTripRepo struct {
	kv KVStore
}

// NewLocalTripRepo creates a new key-value trip repository
func NewLocalTripRepo(kv KVStore) *LocalTripRepo {
	return &LocalTripRepo{kv: kv}
}

func localTripsKey(userID uuid.UUID) string {
	return fmt.Sprintf(constants.KeyUserTrips, userID.String())
}

func localOwnerKey(tripID int64) string {
	return fmt.Sprintf(constants.KeyTripOwner, tripID)
}

// CreateTrip assigns an ID from the counter key and appends the trip to its
// owner's list. Timestamps come from the local clock.
func (r *LocalTripRepo) CreateTrip(ctx context.Context, route *models.Route) (*models.Route, error) {
	id, err := r.kv.Incr(ctx, constants.KeyTripCounter)
	if err != nil {
		return nil, fmt.Errorf("%w: next trip id: %v", apperrors.ErrPersistenceFailure, err)
	}

	stored := *route
	stored.ID = id
	stored.CreatedAt = models.Now()
	stored.UpdatedAt = nil

	routes, err := r.loadTrips(ctx, route.UserID)
	if err != nil {
		return nil, err
	}
	routes = append(routes, stored)
	if err := r.saveTrips(ctx, route.UserID, routes); err != nil {
		return nil, err
	}

	if err := r.kv.Set(ctx, localOwnerKey(id), route.UserID.String(), 0); err != nil {
		return nil, fmt.Errorf("%w: index trip owner: %v", apperrors.ErrPersistenceFailure, err)
	}
	return &stored, nil
}

// GetTrip resolves the owner through the index, then finds the trip in the
// owner's list
func (r *LocalTripRepo) GetTrip(ctx context.Context, tripID int64) (*models.Route, error) {
	ownerID, err := r.tripOwner(ctx, tripID)
	if err != nil {
		return nil, err
	}

	routes, err := r.loadTrips(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range routes {
		if routes[i].ID == tripID {
			return &routes[i], nil
		}
	}
	return nil, apperrors.ErrTripNotFound
}

// ListTrips returns the user's trips, newest first
func (r *LocalTripRepo) ListTrips(ctx context.Context, userID uuid.UUID) ([]models.Route, error) {
	routes, err := r.loadTrips(ctx, userID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].CreatedAt.After(routes[j].CreatedAt)
	})
	return routes, nil
}

// UpdateTrip replaces the stored trip in place, preserving its creation time
func (r *LocalTripRepo) UpdateTrip(ctx context.Context, route *models.Route) (*models.Route, error) {
	ownerID, err := r.tripOwner(ctx, route.ID)
	if err != nil {
		return nil, err
	}

	routes, err := r.loadTrips(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	for i := range routes {
		if routes[i].ID != route.ID {
			continue
		}
		now := models.Now()
		stored := *route
		stored.UserID = ownerID
		stored.CreatedAt = routes[i].CreatedAt
		stored.UpdatedAt = &now
		routes[i] = stored
		if err := r.saveTrips(ctx, ownerID, routes); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, apperrors.ErrTripNotFound
}

// DeleteTrip removes the trip from its owner's list and drops the owner index
func (r *LocalTripRepo) DeleteTrip(ctx context.Context, tripID int64) error {
	ownerID, err := r.tripOwner(ctx, tripID)
	if err != nil {
		return err
	}

	routes, err := r.loadTrips(ctx, ownerID)
	if err != nil {
		return err
	}
	kept := routes[:0]
	found := false
	for _, route := range routes {
		if route.ID == tripID {
			found = true
			continue
		}
		kept = append(kept, route)
	}
	if !found {
		return apperrors.ErrTripNotFound
	}

	if err := r.saveTrips(ctx, ownerID, kept); err != nil {
		return err
	}
	if err := r.kv.Delete(ctx, localOwnerKey(tripID)); err != nil {
		return fmt.Errorf("%w: drop trip owner index: %v", apperrors.ErrPersistenceFailure, err)
	}
	return nil
}

func (r *LocalTripRepo) tripOwner(ctx context.Context, tripID int64) (uuid.UUID, error) {
	raw, err := r.kv.Get(ctx, localOwnerKey(tripID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return uuid.Nil, apperrors.ErrTripNotFound
		}
		return uuid.Nil, fmt.Errorf("%w: trip owner index: %v", apperrors.ErrPersistenceFailure, err)
	}
	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: corrupt trip owner index: %v", apperrors.ErrPersistenceFailure, err)
	}
	return ownerID, nil
}

func (r *LocalTripRepo) loadTrips(ctx context.Context, userID uuid.UUID) ([]models.Route, error) {
	raw, err := r.kv.Get(ctx, localTripsKey(userID))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []models.Route{}, nil
		}
		return nil, fmt.Errorf("%w: load trips: %v", apperrors.ErrPersistenceFailure, err)
	}

	routes := []models.Route{}
	if err := json.Unmarshal([]byte(raw), &routes); err != nil {
		return nil, fmt.Errorf("%w: decode trips: %v", apperrors.ErrPersistenceFailure, err)
	}
	return routes, nil
}

func (r *LocalTripRepo) saveTrips(ctx context.Context, userID uuid.UUID, routes []models.Route) error {
	data, err := json.Marshal(routes)
	if err != nil {
		return fmt.Errorf("%w: encode trips: %v", apperrors.ErrPersistenceFailure, err)
	}
	if err := r.kv.Set(ctx, localTripsKey(userID), string(data), 0); err != nil {
		return fmt.Errorf("%w: save trips: %v", apperrors.ErrPersistenceFailure, err)
	}
	return nil
}
