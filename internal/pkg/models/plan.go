package models

// PlanRequest describes a point-to-point planning request forwarded to the
// external routing engine.
type PlanRequest struct {
	FromLatitude  float64 `json:"from_latitude"`
	FromLongitude float64 `json:"from_longitude"`
	ToLatitude    float64 `json:"to_latitude"`
	ToLongitude   float64 `json:"to_longitude"`
	ArriveBy      bool    `json:"arrive_by"`
}

// PlanResult is the normalized answer from the routing engine. When the
// engine answers with something that is not JSON, ClientFallback is set and
// the caller estimates the distance itself instead.
type PlanResult struct {
	DistanceKm     float64 `json:"distance_km"`
	DurationMin    int     `json:"duration_min"`
	ClientFallback bool    `json:"client_fallback"`
}
