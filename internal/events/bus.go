// Package events provides a small synchronous publish/subscribe bus used by
// the entity stores to broadcast create/update/delete notifications.
package events

import "sync"

// Handler receives the payload published on a topic.
type Handler func(payload interface{})

type subscriber struct {
	id      int
	handler Handler
}

// Bus dispatches payloads to subscribers by topic. Delivery is synchronous
// and in subscription order. The zero value is not usable; call NewBus.
type Bus struct {
	mu     sync.Mutex
	nextID int
	topics map[string][]subscriber
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[string][]subscriber)}
}

// Subscribe registers a handler for a topic and returns a subscription id
// for later removal.
func (b *Bus) Subscribe(topic string, handler Handler) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.topics[topic] = append(b.topics[topic], subscriber{id: b.nextID, handler: handler})
	return b.nextID
}

// Unsubscribe removes a subscription. Removing an unknown id is a no-op.
func (b *Bus) Unsubscribe(topic string, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.topics[topic]
	for i, s := range subs {
		if s.id == id {
			b.topics[topic] = append(subs[:i], subs[i+1:]...)
			return
		}
	}
}

// Publish delivers a payload to every subscriber of the topic.
func (b *Bus) Publish(topic string, payload interface{}) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.topics[topic]))
	copy(subs, b.topics[topic])
	b.mu.Unlock()

	for _, s := range subs {
		s.handler(payload)
	}
}
