// Package broadcast provides a type-safe observable value with subscriber
// management.
//
// A Subject holds the latest value of type T. Subscribers get the current
// value as soon as they subscribe and every published value after that.
// Delivery never blocks the publisher: each subscriber buffers one message,
// and a newer value replaces an unread one.
//
// Basic usage:
//
//	subject := broadcast.NewSubject(0)
//	defer subject.Close()
//
//	sub := subject.Subscribe(ctx)
//	defer sub.Close()
//
//	_ = subject.Publish(1)
//
//	for msg := range sub.Receive(ctx) {
//		fmt.Println(msg.Data)
//	}
//
// Subscribers are detached when:
//   - their context is cancelled
//   - Close is called on them
//   - the subject is closed
package broadcast
