package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/mpawlak/wedrownik/internal/pkg/apperrors"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeKV is an in-memory KVStore with redis.Nil miss semantics
type fakeKV struct {
	data     map[string]string
	counters map[string]int64
}

func newFakeKV() *fakeKV {
	return &fakeKV{
		data:     make(map[string]string),
		counters: make(map[string]int64),
	}
}

func (f *fakeKV) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	f.data[key] = value.(string)
	return nil
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	value, ok := f.data[key]
	if !ok {
		return "", redis.Nil
	}
	return value, nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func (f *fakeKV) Incr(_ context.Context, key string) (int64, error) {
	f.counters[key]++
	return f.counters[key], nil
}

func TestLocalCreateAndGetTrip(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())
	userID := uuid.New()

	stored, err := repo.CreateTrip(context.Background(), &models.Route{
		UserID:      userID,
		Name:        "Tatry",
		RoutePoints: []models.RoutePoint{{PlaceID: 14, Order: 1}, {PlaceID: 15, Order: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Nil(t, stored.UpdatedAt)

	got, err := repo.GetTrip(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "Tatry", got.Name)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, []int64{14, 15}, got.PlaceIDsInOrder())
}

func TestLocalGetTripNotFound(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())

	_, err := repo.GetTrip(context.Background(), 777)
	assert.ErrorIs(t, err, apperrors.ErrTripNotFound)
}

func TestLocalIDsAreSequential(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())
	userID := uuid.New()

	first, err := repo.CreateTrip(context.Background(), &models.Route{UserID: userID, Name: "a"})
	require.NoError(t, err)
	second, err := repo.CreateTrip(context.Background(), &models.Route{UserID: userID, Name: "b"})
	require.NoError(t, err)
	assert.Equal(t, first.ID+1, second.ID)
}

func TestLocalListTripsNewestFirst(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())
	userID := uuid.New()

	_, err := repo.CreateTrip(context.Background(), &models.Route{UserID: userID, Name: "older"})
	require.NoError(t, err)
	_, err = repo.CreateTrip(context.Background(), &models.Route{UserID: userID, Name: "newer"})
	require.NoError(t, err)

	routes, err := repo.ListTrips(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, routes, 2)
	assert.False(t, routes[0].CreatedAt.Before(routes[1].CreatedAt))
}

func TestLocalListTripsEmptyForUnknownUser(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())

	routes, err := repo.ListTrips(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestLocalUpdateTrip(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())
	userID := uuid.New()

	stored, err := repo.CreateTrip(context.Background(), &models.Route{UserID: userID, Name: "before"})
	require.NoError(t, err)

	updated, err := repo.UpdateTrip(context.Background(), &models.Route{
		ID:          stored.ID,
		UserID:      userID,
		Name:        "after",
		RoutePoints: []models.RoutePoint{{PlaceID: 9, Order: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, stored.CreatedAt, updated.CreatedAt)
	require.NotNil(t, updated.UpdatedAt)

	got, err := repo.GetTrip(context.Background(), stored.ID)
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
	assert.Equal(t, []int64{9}, got.PlaceIDsInOrder())
}

func TestLocalUpdateTripNotFound(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())

	_, err := repo.UpdateTrip(context.Background(), &models.Route{ID: 777, Name: "ghost"})
	assert.ErrorIs(t, err, apperrors.ErrTripNotFound)
}

func TestLocalDeleteTrip(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())
	userID := uuid.New()

	stored, err := repo.CreateTrip(context.Background(), &models.Route{UserID: userID, Name: "doomed"})
	require.NoError(t, err)

	require.NoError(t, repo.DeleteTrip(context.Background(), stored.ID))

	_, err = repo.GetTrip(context.Background(), stored.ID)
	assert.ErrorIs(t, err, apperrors.ErrTripNotFound)

	routes, err := repo.ListTrips(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, routes)
}

func TestLocalDeleteTripNotFound(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())

	err := repo.DeleteTrip(context.Background(), 777)
	assert.ErrorIs(t, err, apperrors.ErrTripNotFound)
}

func TestLocalTripsIsolatedPerUser(t *testing.T) {
	repo := NewLocalTripRepo(newFakeKV())
	alice := uuid.New()
	bob := uuid.New()

	_, err := repo.CreateTrip(context.Background(), &models.Route{UserID: alice, Name: "alice trip"})
	require.NoError(t, err)

	routes, err := repo.ListTrips(context.Background(), bob)
	require.NoError(t, err)
	assert.Empty(t, routes)
}
