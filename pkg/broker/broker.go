package broker

import (
	"sync"
)

// Event is a lightweight notification pushed to connected admin dashboards
// (e.g. a new order landing while the orders tab is open).
type Event struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// Broker fans events out to all subscribed admin clients. Slow clients are
// skipped rather than blocked; the dashboard reloads its data on the next
// event anyway.
type Broker struct {
	clients map[chan Event]bool
	mutex   sync.RWMutex
}

func New() *Broker {
	return &Broker{
		clients: make(map[chan Event]bool),
	}
}

// Subscribe registers a new client and returns its event channel.
func (b *Broker) Subscribe() chan Event {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	clientChan := make(chan Event, 10) // buffered to prevent blocking
	b.clients[clientChan] = true
	return clientChan
}

// Unsubscribe removes a client and closes its channel.
func (b *Broker) Unsubscribe(clientChan chan Event) {
	b.mutex.Lock()
	defer b.mutex.Unlock()

	if _, ok := b.clients[clientChan]; ok {
		delete(b.clients, clientChan)
		close(clientChan)
	}
}

// Publish delivers an event to every connected client.
func (b *Broker) Publish(event Event) {
	b.mutex.RLock()
	defer b.mutex.RUnlock()

	for clientChan := range b.clients {
		select {
		case clientChan <- event:
		default:
			// client not ready, skip to avoid blocking
		}
	}
}

// ClientCount reports how many dashboards are connected.
func (b *Broker) ClientCount() int {
	b.mutex.RLock()
	defer b.mutex.RUnlock()
	return len(b.clients)
}
