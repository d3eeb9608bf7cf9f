package storage

import (
	"sync"
	"time"
)

// ExternalOrigin marks changes detected by polling rather than reported by a writer
const ExternalOrigin = "external"

// ChangeEvent announces that the value under Key was replaced
type ChangeEvent struct {
	Key    string    `json:"key"`
	Origin string    `json:"origin"`
	At     time.Time `json:"at"`
}

// Hub fans change events out to subscribers. Notification is advisory:
// Publish never blocks, and a subscriber whose buffer is full misses the
// event. Subscribers are expected to reload on any event they receive.
type Hub struct {
	mu   sync.Mutex
	subs map[int]chan ChangeEvent
	next int
	now  func() time.Time
}

// NewHub creates a hub with no subscribers
func NewHub() *Hub {
	return &Hub{subs: make(map[int]chan ChangeEvent), now: time.Now}
}

// Subscribe registers a subscriber. The returned cancel func unregisters it
// and closes the channel; calling it more than once is safe.
func (h *Hub) Subscribe(buffer int) (<-chan ChangeEvent, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan ChangeEvent, buffer)

	h.mu.Lock()
	id := h.next
	h.next++
	h.subs[id] = ch
	h.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
			close(ch)
		})
	}
	return ch, cancel
}

// Publish delivers an event to every subscriber without blocking
func (h *Hub) Publish(key, origin string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	event := ChangeEvent{Key: key, Origin: origin, At: h.now().UTC()}
	for _, ch := range h.subs {
		select {
		case ch <- event:
		default:
		}
	}
}

// Subscribers returns the number of registered subscribers
func (h *Hub) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}
