package gateway

import "github.com/mpawlak/wedrownik/internal/pkg/models"

const (
	topicTripCreated = "trip.created"
	topicTripUpdated = "trip.updated"
	topicTripDeleted = "trip.deleted"
)

// Publisher is the slice of the NSQ producer the events gateway needs
type Publisher interface {
	Publish(topic string, message interface{}) error
}

// TripEventsGateway publishes trip lifecycle events to NSQ. A nil publisher
// turns the gateway into a no-op, for deployments without NSQ.
type TripEventsGateway struct {
	publisher Publisher
}

// NewTripEventsGateway creates a new trip events gateway
func NewTripEventsGateway(publisher Publisher) *TripEventsGateway {
	return &TripEventsGateway{publisher: publisher}
}

// TripCreated publishes a trip creation event
func (g *TripEventsGateway) TripCreated(event models.TripEvent) error {
	return g.publish(topicTripCreated, event)
}

// TripUpdated publishes a trip update event
func (g *TripEventsGateway) TripUpdated(event models.TripEvent) error {
	return g.publish(topicTripUpdated, event)
}

// TripDeleted publishes a trip deletion event
func (g *TripEventsGateway) TripDeleted(event models.TripEvent) error {
	return g.publish(topicTripDeleted, event)
}

func (g *TripEventsGateway) publish(topic string, event models.TripEvent) error {
	if g.publisher == nil {
		return nil
	}
	return g.publisher.Publish(topic, event)
}
