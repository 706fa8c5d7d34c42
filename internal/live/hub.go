// Package live fans catalog changes out to connected websocket clients.
package live

import (
	"log"
	"sync"
	"time"

	"github.com/madhangowdaa/mak-backend/internal/models"
)

const (
	EventHello    = "hello"
	EventClick    = "click"
	EventTop10    = "top10"
	EventTrending = "trending"
	EventUpcoming = "upcoming"
)

// Event is one change pushed to subscribers.
type Event struct {
	Type string            `json:"type"`
	Kind models.Kind       `json:"kind,omitempty"`
	ID   *models.ContentID `json:"id,omitempty" swaggertype:"string"`
	Data any               `json:"data,omitempty"`
	At   time.Time         `json:"at"`
}

// DefaultBuffer is how many events a subscriber may fall behind before new
// ones are dropped for it.
const DefaultBuffer = 64

// Hub is a publish/subscribe point. A nil *Hub accepts and drops events.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	buffer int
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan Event]struct{}), buffer: DefaultBuffer}
}

// Subscribe returns a channel of future events and a cancel func that
// closes it.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, h.buffer)
	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, ch)
			h.mu.Unlock()
			close(ch)
		})
	}
}

// Publish never blocks; a subscriber with a full buffer misses the event.
func (h *Hub) Publish(ev Event) {
	if h == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- ev:
		default:
			log.Printf("[live] suscriptor atrasado, evento %s descartado", ev.Type)
		}
	}
}

func (h *Hub) Subscribers() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Changed is the event for a record-level change.
func Changed(typ string, rec *models.ContentRecord, data any) Event {
	id := rec.ID
	return Event{Type: typ, Kind: rec.Kind, ID: &id, Data: data}
}
