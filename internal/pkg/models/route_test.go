package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlaceIDsInOrder(t *testing.T) {
	route := Route{RoutePoints: []RoutePoint{
		{PlaceID: 7, Order: 3},
		{PlaceID: 14, Order: 1},
		{PlaceID: 2, Order: 2},
	}}

	assert.Equal(t, []int64{14, 2, 7}, route.PlaceIDsInOrder())
	// The route's own point slice keeps its stored order.
	assert.Equal(t, int64(7), route.RoutePoints[0].PlaceID)
}

func TestPlaceIDsInOrderEmpty(t *testing.T) {
	route := Route{}
	assert.Empty(t, route.PlaceIDsInOrder())
}
