package broadcast

import (
	"context"
	"sync"
)

// Subject is an in-memory Broadcaster that remembers the latest value.
// New subscribers first receive the current value, then every later one.
// All methods are safe for concurrent use.
type Subject[T any] struct {
	current     T
	subscribers map[*subscriber[T]]struct{}
	closed      bool
	mu          sync.RWMutex
	cleanupWg   sync.WaitGroup
}

// NewSubject creates a subject holding initial as its current value.
func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{
		current:     initial,
		subscribers: make(map[*subscriber[T]]struct{}),
	}
}

// Current returns the latest published value.
func (s *Subject[T]) Current() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Subscribe registers a subscriber and immediately queues the current value
// for it. If the subject is closed the returned subscriber is already closed.
func (s *Subject[T]) Subscribe(ctx context.Context) Subscriber[T] {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		sub := newSubscriber[T](nil)
		sub.shutdown()
		return sub
	}

	sub := newSubscriber(s.unsubscribe)
	s.subscribers[sub] = struct{}{}
	sub.send(Message[T]{Data: s.current})

	if ctx.Done() != nil {
		s.cleanupWg.Add(1)
		go func() {
			defer s.cleanupWg.Done()
			select {
			case <-ctx.Done():
				s.unsubscribe(sub)
			case <-sub.done:
			}
		}()
	}

	return sub
}

// Publish stores v as the current value and delivers it to all subscribers.
// It returns ErrClosed after Close.
func (s *Subject[T]) Publish(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}

	s.current = v
	s.fanOut(v)
	return nil
}

// Update atomically replaces the current value with fn(current) and
// publishes the result.
func (s *Subject[T]) Update(fn func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.current, ErrClosed
	}

	s.current = fn(s.current)
	s.fanOut(s.current)
	return s.current, nil
}

// Broadcast implements Broadcaster. It is Publish with a wrapped value.
func (s *Subject[T]) Broadcast(_ context.Context, msg Message[T]) error {
	return s.Publish(msg.Data)
}

// Len returns the number of active subscribers.
func (s *Subject[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.subscribers)
}

// Close shuts down the subject and closes all subscribers.
// It is safe to call Close multiple times.
func (s *Subject[T]) Close() error {
	s.mu.Lock()

	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true

	for sub := range s.subscribers {
		sub.shutdown()
	}
	clear(s.subscribers)
	s.mu.Unlock()

	s.cleanupWg.Wait()
	return nil
}

func (s *Subject[T]) fanOut(v T) {
	msg := Message[T]{Data: v}
	for sub := range s.subscribers {
		if !sub.send(msg) {
			delete(s.subscribers, sub)
		}
	}
}

func (s *Subject[T]) unsubscribe(sub *subscriber[T]) {
	s.mu.Lock()
	delete(s.subscribers, sub)
	s.mu.Unlock()

	sub.shutdown()
}

var _ Broadcaster[int] = (*Subject[int])(nil)
