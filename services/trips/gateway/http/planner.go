package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mpawlak/wedrownik/internal/pkg/circuitbreaker"
	httpclient "github.com/mpawlak/wedrownik/internal/pkg/http"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
)

// PlannerGateway proxies point-to-point planning to the external routing
// engine. A circuit breaker sits in front of the engine; while it is open
// plan requests fail fast and callers fall back to straight-line estimates.
type PlannerGateway struct {
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
}

// NewPlannerGateway creates a new planner gateway
func NewPlannerGateway(cfg *models.Config) *PlannerGateway {
	return &PlannerGateway{
		client:  httpclient.NewClient(cfg.Services.PlannerURL, 15*time.Second),
		breaker: circuitbreaker.New(circuitbreaker.DefaultConfig("routing-engine")),
	}
}

// PlanTrip asks the engine for a plan. The engine sometimes answers with an
// HTML error page instead of JSON; that case is reported as a result with
// ClientFallback set so the caller can estimate the distance itself.
func (g *PlannerGateway) PlanTrip(ctx context.Context, req *models.PlanRequest) (*models.PlanResult, error) {
	var result *models.PlanResult
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		var planErr error
		result, planErr = g.plan(ctx, req)
		return planErr
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (g *PlannerGateway) plan(ctx context.Context, req *models.PlanRequest) (*models.PlanResult, error) {
	status, body, err := g.client.PostJSON(ctx, "/plan", req)
	if err != nil {
		return nil, fmt.Errorf("routing engine unreachable: %w", err)
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("routing engine returned status %d", status)
	}

	var result models.PlanResult
	if err := json.Unmarshal(body, &result); err != nil {
		return &models.PlanResult{ClientFallback: true}, nil
	}
	return &result, nil
}
