package models

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/google/uuid"
)

// RoutePoint is a reference to a place within a route, with a 1-based order
// unique inside its parent route.
type RoutePoint struct {
	PlaceID int64 `json:"place_id" db:"place_id"`
	Order   int   `json:"order" db:"point_order"`
}

// routePointWire carries the camelCase naming used by the remote routes
// backend alongside the canonical snake_case form.
type routePointWire struct {
	PlaceID      int64  `json:"place_id"`
	PlaceIDCamel *int64 `json:"placeId"`
	Order        int    `json:"order"`
}

// UnmarshalJSON normalizes placeId/place_id into the canonical field.
func (rp *RoutePoint) UnmarshalJSON(data []byte) error {
	var w routePointWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	rp.PlaceID = w.PlaceID
	if w.PlaceIDCamel != nil {
		rp.PlaceID = *w.PlaceIDCamel
	}
	rp.Order = w.Order
	return nil
}

// Route represents a stored trip: an ordered, user-owned sequence of route
// points plus metadata. Point order is defined by the Order field, not slice
// position.
type Route struct {
	ID          int64        `json:"id" db:"id"`
	UserID      uuid.UUID    `json:"user_id" db:"user_id"`
	Name        string       `json:"name" db:"name"`
	Notes       string       `json:"notes,omitempty" db:"notes"`
	RoutePoints []RoutePoint `json:"route_points"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt   *time.Time   `json:"updated_at,omitempty" db:"updated_at"`
}

// PlaceIDsInOrder returns the place IDs of the route sorted by point order.
func (r *Route) PlaceIDsInOrder() []int64 {
	points := make([]RoutePoint, len(r.RoutePoints))
	copy(points, r.RoutePoints)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Order < points[j].Order
	})

	ids := make([]int64, len(points))
	for i, p := range points {
		ids[i] = p.PlaceID
	}
	return ids
}

// EnrichedTrip is a route with its points resolved into full place records,
// in original point order, plus the summed leg distance.
type EnrichedTrip struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Places      []Place    `json:"places"`
	DistanceKm  float64    `json:"distance_km"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// CreateRouteRequest is the payload for creating a trip.
type CreateRouteRequest struct {
	Name        string       `json:"name"`
	Notes       string       `json:"notes"`
	RoutePoints []RoutePoint `json:"route_points"`
}

// UnmarshalJSON accepts both route_points and the camelCase routePoints form.
func (req *CreateRouteRequest) UnmarshalJSON(data []byte) error {
	var w struct {
		Name             string        `json:"name"`
		Notes            string        `json:"notes"`
		RoutePoints      []RoutePoint  `json:"route_points"`
		RoutePointsCamel *[]RoutePoint `json:"routePoints"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	req.Name = w.Name
	req.Notes = w.Notes
	req.RoutePoints = w.RoutePoints
	if w.RoutePointsCamel != nil {
		req.RoutePoints = *w.RoutePointsCamel
	}
	return nil
}

// UpdateRouteRequest is the partial payload for updating a trip. Nil fields
// are left unchanged; in particular a nil RoutePoints preserves the existing
// ordered point list.
type UpdateRouteRequest struct {
	Name        *string       `json:"name"`
	Notes       *string       `json:"notes"`
	RoutePoints *[]RoutePoint `json:"route_points"`
}

// UnmarshalJSON accepts both route_points and the camelCase routePoints form.
func (req *UpdateRouteRequest) UnmarshalJSON(data []byte) error {
	var w struct {
		Name             *string       `json:"name"`
		Notes            *string       `json:"notes"`
		RoutePoints      *[]RoutePoint `json:"route_points"`
		RoutePointsCamel *[]RoutePoint `json:"routePoints"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	req.Name = w.Name
	req.Notes = w.Notes
	req.RoutePoints = w.RoutePoints
	if w.RoutePointsCamel != nil {
		req.RoutePoints = w.RoutePointsCamel
	}
	return nil
}

// TripEvent is the payload published to NSQ on trip lifecycle changes.
type TripEvent struct {
	TripID    int64     `json:"trip_id"`
	UserID    uuid.UUID `json:"user_id"`
	Name      string    `json:"name"`
	Timestamp time.Time `json:"timestamp"`
}
