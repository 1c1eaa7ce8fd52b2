package gateway

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mpawlak/wedrownik/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingPublisher struct {
	topics   []string
	payloads []interface{}
}

func (p *recordingPublisher) Publish(topic string, message interface{}) error {
	p.topics = append(p.topics, topic)
	p.payloads = append(p.payloads, message)
	return nil
}

func TestTripEventsGatewayTopics(t *testing.T) {
	publisher := &recordingPublisher{}
	gw := NewTripEventsGateway(publisher)
	event := models.TripEvent{
		TripID:    42,
		UserID:    uuid.New(),
		Name:      "Tatry",
		Timestamp: time.Now(),
	}

	require.NoError(t, gw.TripCreated(event))
	require.NoError(t, gw.TripUpdated(event))
	require.NoError(t, gw.TripDeleted(event))

	assert.Equal(t, []string{"trip.created", "trip.updated", "trip.deleted"}, publisher.topics)
	require.Len(t, publisher.payloads, 3)
	assert.Equal(t, event, publisher.payloads[0])
}

func TestTripEventsGatewayNilPublisher(t *testing.T) {
	gw := NewTripEventsGateway(nil)

	assert.NoError(t, gw.TripCreated(models.TripEvent{TripID: 1}))
	assert.NoError(t, gw.TripUpdated(models.TripEvent{TripID: 1}))
	assert.NoError(t, gw.TripDeleted(models.TripEvent{TripID: 1}))
}
