package rx

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
)

// Handlers is the set of callbacks supplied by a subscriber.
// Any slot may be nil; a nil slot silently drops the corresponding signal.
type Handlers[T any] struct {
	// Next receives each value pushed by the producer.
	Next func(T)
	// Error receives the failure that terminates the stream.
	Error func(error)
	// Complete is called once when the stream ends without failure.
	Complete func()
}

func (h Handlers[T]) bind() Handlers[T] {
	if h.Next == nil {
		h.Next = func(T) {}
	}
	if h.Error == nil {
		h.Error = func(error) {}
	}
	if h.Complete == nil {
		h.Complete = func() {}
	}
	return h
}

// Observer gates delivery from a producer to the Handlers of one subscription.
//
// An Observer starts active. Error, Complete and Unsubscribe move it to the
// terminal state, after which no handler is invoked again. The teardown
// returned by the producer runs at most once, on the first Unsubscribe after
// the producer has returned it, or on Error or Complete if the producer
// terminates the stream after returning.
//
// Observers are created by Observable.Subscribe and handed to the producer;
// they are not constructed directly.
type Observer[T any] struct {
	id       uuid.UUID
	handlers Handlers[T]
	log      Logger
	args     []any

	closed atomic.Bool

	mu       sync.Mutex
	teardown Teardown
	released bool
}

func newObserver[T any](handlers Handlers[T], cfg Config) *Observer[T] {
	id := uuid.New()
	return &Observer[T]{
		id:       id,
		handlers: handlers.bind(),
		log:      cfg.Logger,
		args:     appendArgs(cfg.args(), []any{"subscription", id.String()}),
	}
}

// ID returns the identifier of the subscription this observer serves.
func (o *Observer[T]) ID() uuid.UUID {
	return o.id
}

// Closed reports whether the observer has reached the terminal state.
// Producers that push over time should stop once Closed returns true.
func (o *Observer[T]) Closed() bool {
	return o.closed.Load()
}

// Next delivers value to the Next handler unless the observer is terminal.
func (o *Observer[T]) Next(value T) {
	if o.closed.Load() {
		return
	}
	o.handlers.Next(value)
}

// Error delivers err to the Error handler and terminates the observer.
// Calls after the terminal transition are ignored.
func (o *Observer[T]) Error(err error) {
	if !o.closed.CompareAndSwap(false, true) {
		return
	}
	o.log.Warn(msgError, appendArgs(o.args, []any{"error", err})...)
	o.handlers.Error(err)
	o.release()
}

// Complete calls the Complete handler and terminates the observer.
// Calls after the terminal transition are ignored.
func (o *Observer[T]) Complete() {
	if !o.closed.CompareAndSwap(false, true) {
		return
	}
	o.log.Debug(msgComplete, o.args...)
	o.handlers.Complete()
	o.release()
}

// Unsubscribe terminates the observer without invoking any handler and runs
// the teardown if it has not run yet. It is safe to call repeatedly.
func (o *Observer[T]) Unsubscribe() {
	if o.closed.CompareAndSwap(false, true) {
		o.log.Debug(msgUnsubscribe, o.args...)
	}
	o.release()
}

// attach stores the teardown returned by the producer.
// If the producer already terminated the stream, the teardown waits for the
// next Unsubscribe.
func (o *Observer[T]) attach(teardown Teardown) {
	o.mu.Lock()
	o.teardown = teardown
	o.mu.Unlock()
}

func (o *Observer[T]) release() {
	o.mu.Lock()
	if o.released || o.teardown == nil {
		o.mu.Unlock()
		return
	}
	teardown := o.teardown
	o.released = true
	o.mu.Unlock()

	teardown()
}
