// Package events provides a topic-keyed publish/subscribe bus used to fan
// out frame ticks and other notifications to registered handlers.
package events

import "sync"

// Handler receives values published to a topic.
type Handler func(data any)

type subscription struct {
	handler Handler
	active  bool
}

// Bus delivers published values to subscribers in registration order.
//
// Dispatch snapshots the subscriber list, so a handler may unsubscribe
// itself (or others) during its own notification without breaking the
// remaining deliveries. A handler unsubscribed mid-dispatch is not
// notified again within that dispatch.
type Bus struct {
	mu     sync.Mutex
	topics map[string][]*subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{topics: make(map[string][]*subscription)}
}

// Subscribe registers a handler for a topic.
// Returns an unsubscribe function; calling it more than once is a no-op.
func (b *Bus) Subscribe(topic string, h Handler) func() {
	sub := &subscription{handler: h, active: true}
	b.mu.Lock()
	b.topics[topic] = append(b.topics[topic], sub)
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		if !sub.active {
			return
		}
		sub.active = false
		subs := b.topics[topic]
		for i, s := range subs {
			if s == sub {
				b.topics[topic] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
		if len(b.topics[topic]) == 0 {
			delete(b.topics, topic)
		}
	}
}

// Publish delivers data to every handler subscribed to the topic,
// in registration order.
func (b *Bus) Publish(topic string, data any) {
	b.mu.Lock()
	subs := b.topics[topic]
	snapshot := make([]*subscription, len(subs))
	copy(snapshot, subs)
	b.mu.Unlock()

	for _, sub := range snapshot {
		b.mu.Lock()
		alive := sub.active
		b.mu.Unlock()
		if alive {
			sub.handler(data)
		}
	}
}

// HasSubscribers reports whether any handler is registered for the topic.
func (b *Bus) HasSubscribers(topic string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.topics[topic]) > 0
}
