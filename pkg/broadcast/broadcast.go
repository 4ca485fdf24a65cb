package broadcast

import (
	"context"
	"sync"
)

// Message wraps a value of type T.
type Message[T any] struct {
	Data T
}

// Subscriber receives messages from a Broadcaster.
type Subscriber[T any] interface {
	// Receive returns the channel messages are delivered on. The channel is
	// closed once the subscriber is closed or the broadcaster shuts down.
	Receive(ctx context.Context) <-chan Message[T]

	// Close detaches the subscriber and closes its channel.
	// It is idempotent.
	Close() error
}

// Broadcaster sends messages to multiple subscribers.
type Broadcaster[T any] interface {
	// Subscribe registers a subscriber. It is detached automatically when
	// ctx is cancelled.
	Subscribe(ctx context.Context) Subscriber[T]

	// Broadcast delivers msg to every active subscriber.
	Broadcast(ctx context.Context, msg Message[T]) error

	// Close shuts down the broadcaster and closes all subscribers.
	Close() error
}

// subscriber holds at most one undelivered message. A newer message
// replaces an unread one, so slow readers always see the latest value
// and never block the sender.
type subscriber[T any] struct {
	ch     chan Message[T]
	done   chan struct{}
	closed bool
	mu     sync.Mutex

	detach func(*subscriber[T])
}

func newSubscriber[T any](detach func(*subscriber[T])) *subscriber[T] {
	return &subscriber[T]{
		ch:     make(chan Message[T], 1),
		done:   make(chan struct{}),
		detach: detach,
	}
}

func (s *subscriber[T]) Receive(ctx context.Context) <-chan Message[T] {
	return s.ch
}

func (s *subscriber[T]) Close() error {
	if s.detach != nil {
		s.detach(s)
		return nil
	}
	s.shutdown()
	return nil
}

func (s *subscriber[T]) shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.closed = true
		close(s.ch)
		close(s.done)
	}
}

func (s *subscriber[T]) send(msg Message[T]) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return false
	}

	select {
	case s.ch <- msg:
		return true
	default:
	}

	// Buffer is full: drop the stale message and retry. Sends are
	// serialized by mu, so the second attempt always has room.
	select {
	case <-s.ch:
	default:
	}
	s.ch <- msg
	return true
}
