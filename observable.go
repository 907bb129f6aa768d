package rx

import "slices"

// Teardown releases what a producer acquired for one subscription.
// A nil Teardown means there is nothing to release.
type Teardown func()

// Producer drives an Observer and returns the Teardown for the subscription.
//
// A producer either pushes a finite number of values followed by exactly one
// Complete, pushes values followed by exactly one Error, or pushes without
// terminating. In the last case only Unsubscribe stops delivery, and a
// producer that pushes from another goroutine must stop once Observer.Closed
// reports true.
type Producer[T any] func(*Observer[T]) Teardown

// Observable describes how to produce a sequence of values for a subscriber.
// It is immutable and may be subscribed to any number of times; each
// subscription gets its own Observer and its own producer invocation.
type Observable[T any] struct {
	produce Producer[T]
	cfg     Config
}

// New creates an Observable from produce. The producer is not invoked until
// Subscribe is called.
// Panics with ErrNilProducer if produce is nil.
func New[T any](produce Producer[T], cfg Config) *Observable[T] {
	if produce == nil {
		panic(ErrNilProducer)
	}
	return &Observable[T]{
		produce: produce,
		cfg:     cfg.parse(),
	}
}

// Subscribe binds handlers to a fresh Observer, runs the producer with it and
// returns the Subscription controlling it.
//
// The producer runs on the calling goroutine, so a synchronous producer has
// delivered everything before Subscribe returns.
func (o *Observable[T]) Subscribe(handlers Handlers[T]) *Subscription {
	obs := newObserver(handlers, o.cfg)
	obs.log.Debug(msgSubscribe, obs.args...)
	obs.attach(o.produce(obs))
	return &Subscription{
		id:          obs.id,
		unsubscribe: obs.Unsubscribe,
		closed:      obs.Closed,
	}
}

// From returns an Observable that delivers every element of values in order
// and then completes. Its teardown only logs that the subscription ended,
// since the values are already in memory.
//
// values is copied; later changes to the slice are not observed.
func From[T any](values []T, cfg Config) *Observable[T] {
	values = slices.Clone(values)
	cfg = cfg.parse()
	return New(func(o *Observer[T]) Teardown {
		for _, v := range values {
			if o.Closed() {
				break
			}
			o.Next(v)
		}
		o.Complete()
		return func() {
			cfg.Logger.Info(msgTeardown, appendArgs(cfg.args(), []any{"subscription", o.ID().String()})...)
		}
	}, cfg)
}

// Of is the variadic form of From.
func Of[T any](cfg Config, values ...T) *Observable[T] {
	return From(values, cfg)
}

// Throw returns an Observable that delivers no values and fails with err.
func Throw[T any](err error, cfg Config) *Observable[T] {
	return New(func(o *Observer[T]) Teardown {
		o.Error(err)
		return nil
	}, cfg)
}

// Never returns an Observable that delivers nothing and never terminates.
// Only Unsubscribe ends its subscriptions.
func Never[T any](cfg Config) *Observable[T] {
	return New(func(*Observer[T]) Teardown {
		return nil
	}, cfg)
}
