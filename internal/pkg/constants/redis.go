package constants

// Redis key formats
const (
	// Places service
	KeyPlacesGeo = "places:geo" // Geo set of all catalog place coordinates

	// Trips service, key-value storage mode
	KeyTripCounter = "trips:next_id"  // Counter feeding new trip IDs
	KeyUserTrips   = "trips:user:%s"  // Format: trips:user:{user_id}
	KeyTripOwner   = "trips:owner:%d" // Format: trips:owner:{trip_id}
)
