package sse

import (
	"sync"
)

// Event represents an SSE event to be sent to subscribers
type Event struct {
	Username string
	Event    string
	Data     interface{}
}

const subscriberBuffer = 10

// Hub fans dashboard events out to connected admin sessions. Sessions are
// keyed by username; one admin may hold several open tabs.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan Event]struct{}
}

// NewHub creates a new SSE Hub instance
func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Subscribe registers a new subscriber and returns the event channel and cleanup function
func (h *Hub) Subscribe(username string) (chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, subscriberBuffer)

	if h.subscribers[username] == nil {
		h.subscribers[username] = make(map[chan Event]struct{})
	}
	h.subscribers[username][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[username], ch)
			close(ch)
			if len(h.subscribers[username]) == 0 {
				delete(h.subscribers, username)
			}
		})
	}

	return ch, cleanup
}

// Publish sends an event to every session of one user
func (h *Hub) Publish(username string, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	event.Username = username
	for ch := range h.subscribers[username] {
		send(ch, event)
	}
}

// Broadcast sends an event to every connected session and returns how
// many channels accepted it.
func (h *Hub) Broadcast(event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for username, subs := range h.subscribers {
		eventCopy := event
		eventCopy.Username = username
		for ch := range subs {
			if send(ch, eventCopy) {
				delivered++
			}
		}
	}
	return delivered
}

// send never blocks; a slow client misses the update and picks up the next one.
func send(ch chan Event, event Event) bool {
	select {
	case ch <- event:
		return true
	default:
		return false
	}
}

// SubscriberCount returns the number of active subscribers for a user
func (h *Hub) SubscriberCount(username string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[username])
}

// TotalSubscribers returns the total number of active subscribers across all users
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
