package apperrors

import "errors"

// Domain error taxonomy. Collaborator failures (database, place lookup,
// routing engine) are re-classified into one of these at the boundary where
// they occur; handlers map them onto HTTP status codes.
var (
	// ErrUnauthenticated means no identity is present for an operation that
	// requires one.
	ErrUnauthenticated = errors.New("no authenticated identity")

	// ErrForbidden means an identity is present but does not own the resource.
	ErrForbidden = errors.New("identity does not own this resource")

	// ErrTripNotFound covers both a missing trip and a trip owned by another
	// user on read paths, so existence of other users' trips is never leaked.
	ErrTripNotFound = errors.New("trip not found")

	// ErrPlaceNotFound means the place catalog has no record for the ID.
	ErrPlaceNotFound = errors.New("place not found")

	// ErrInvalidInput means caller-supplied data violates a required shape,
	// e.g. an empty trip name or duplicate point orders.
	ErrInvalidInput = errors.New("invalid input")

	// ErrLookupUnavailable means the place-lookup backend is unreachable,
	// as opposed to individual places being missing.
	ErrLookupUnavailable = errors.New("place lookup unavailable")

	// ErrIncompletePlaceData means a place record lacks usable coordinates.
	ErrIncompletePlaceData = errors.New("place has no usable coordinates")

	// ErrInvalidCoordinate means a latitude/longitude pair is outside the
	// valid [-90,90]/[-180,180] ranges.
	ErrInvalidCoordinate = errors.New("coordinate out of range")

	// ErrPersistenceFailure means the backing store failed for a reason not
	// covered by the taxonomy above.
	ErrPersistenceFailure = errors.New("persistence failure")
)
