package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mpawlak/wedrownik/internal/pkg/circuitbreaker"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plannerGatewayFor(url string) *PlannerGateway {
	cfg := &models.Config{}
	cfg.Services.PlannerURL = url
	return NewPlannerGateway(cfg)
}

func TestPlannerGatewayPlanTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/plan", r.URL.Path)

		var req models.PlanRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 50.054, req.FromLatitude)
		assert.False(t, req.ArriveBy)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"distance_km":3.2,"duration_min":41}`))
	}))
	defer server.Close()

	result, err := plannerGatewayFor(server.URL).PlanTrip(context.Background(), &models.PlanRequest{
		FromLatitude:  50.054,
		FromLongitude: 19.9355,
		ToLatitude:    50.0614,
		ToLongitude:   19.9372,
	})
	require.NoError(t, err)
	assert.Equal(t, 3.2, result.DistanceKm)
	assert.Equal(t, 41, result.DurationMin)
	assert.False(t, result.ClientFallback)
}

func TestPlannerGatewayNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>rate limited</body></html>`))
	}))
	defer server.Close()

	result, err := plannerGatewayFor(server.URL).PlanTrip(context.Background(), &models.PlanRequest{})
	require.NoError(t, err)
	assert.True(t, result.ClientFallback)
}

func TestPlannerGatewayBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	result, err := plannerGatewayFor(server.URL).PlanTrip(context.Background(), &models.PlanRequest{})
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestPlannerGatewayUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	result, err := plannerGatewayFor(server.URL).PlanTrip(context.Background(), &models.PlanRequest{})
	assert.Nil(t, result)
	assert.Error(t, err)
}

func TestPlannerGatewayBreakerOpensAfterRepeatedFailures(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	gw := plannerGatewayFor(server.URL)
	for i := 0; i < 5; i++ {
		_, err := gw.PlanTrip(context.Background(), &models.PlanRequest{})
		require.Error(t, err)
	}
	assert.Equal(t, 5, hits)

	// Breaker is open now, so the engine is no longer consulted.
	_, err := gw.PlanTrip(context.Background(), &models.PlanRequest{})
	assert.ErrorIs(t, err, circuitbreaker.ErrBreakerOpen)
	assert.Equal(t, 5, hits)
}
