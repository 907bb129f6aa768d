package rx

import "github.com/google/uuid"

// Subscription is the handle returned by Observable.Subscribe.
type Subscription struct {
	id          uuid.UUID
	unsubscribe func()
	closed      func() bool
}

// Unsubscribe stops delivery to the subscriber and releases the producer's
// resources. Repeated calls have no further effect.
func (s *Subscription) Unsubscribe() {
	s.unsubscribe()
}

// Closed reports whether the subscription has terminated, either through
// Unsubscribe or because the stream completed or failed.
func (s *Subscription) Closed() bool {
	return s.closed()
}

// ID returns the subscription identifier, as it appears in log records.
func (s *Subscription) ID() uuid.UUID {
	return s.id
}
