package live

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/madhangowdaa/mak-backend/internal/models"
)

func TestPublishReachesEverySubscriber(t *testing.T) {
	hub := NewHub()
	a, cancelA := hub.Subscribe()
	b, cancelB := hub.Subscribe()
	defer cancelB()
	require.Equal(t, 2, hub.Subscribers())

	rec := &models.ContentRecord{ID: models.ExternalID(7), Kind: models.KindMovie}
	hub.Publish(Changed(EventClick, rec, map[string]int64{"clicks": 3}))

	for _, ch := range []<-chan Event{a, b} {
		ev := <-ch
		assert.Equal(t, EventClick, ev.Type)
		assert.Equal(t, models.KindMovie, ev.Kind)
		assert.Equal(t, models.ExternalID(7), *ev.ID)
		assert.False(t, ev.At.IsZero())
	}

	cancelA()
	cancelA()
	_, open := <-a
	assert.False(t, open)
	assert.Equal(t, 1, hub.Subscribers())
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	hub.buffer = 1
	ch, cancel := hub.Subscribe()
	defer cancel()

	hub.Publish(Event{Type: EventTop10})
	hub.Publish(Event{Type: EventTrending})

	assert.Equal(t, EventTop10, (<-ch).Type)
	assert.Empty(t, ch)
}

func TestNilHub(t *testing.T) {
	var hub *Hub
	hub.Publish(Event{Type: EventTop10})
	assert.Zero(t, hub.Subscribers())
}
