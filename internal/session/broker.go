package session

import "sync"

// Broker fans out authentication events to all subscribers.
type Broker struct {
	mu          sync.RWMutex
	next        int
	subscribers map[int]func(Event)
}

var _ Source = (*Broker)(nil)

func NewBroker() *Broker {
	return &Broker{subscribers: make(map[int]func(Event))}
}

func (b *Broker) Subscribe(fn func(Event)) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.next
	b.next++
	b.subscribers[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subscribers, id)
		})
	}
}

// Publish delivers the event to all current subscribers.
func (b *Broker) Publish(e Event) {
	b.mu.RLock()
	subscribers := make([]func(Event), 0, len(b.subscribers))
	for _, fn := range b.subscribers {
		subscribers = append(subscribers, fn)
	}
	b.mu.RUnlock()

	for _, fn := range subscribers {
		fn(e)
	}
}

// Len returns the number of subscribers.
func (b *Broker) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subscribers)
}
