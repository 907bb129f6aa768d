// Package rx provides a minimal push-based observable.
//
// An [Observable] wraps a [Producer]. Each call to [Observable.Subscribe]
// creates an [Observer] for the supplied [Handlers], runs the producer with it
// on the calling goroutine, and returns a [Subscription] whose Unsubscribe
// stops delivery and runs the producer's [Teardown].
//
// # Quick Start
//
//	requests := rx.From([]string{"a", "b"}, rx.Config{Name: "requests"})
//	sub := requests.Subscribe(rx.Handlers[string]{
//		Next:     func(v string) { fmt.Println(v) },
//		Complete: func() { fmt.Println("done") },
//	})
//	sub.Unsubscribe()
//
// # Delivery Rules
//
// An observer is active until the producer calls Error or Complete, or the
// subscriber calls Unsubscribe. From then on every Next, Error and Complete is
// dropped. Error and Complete handlers run at most once between them, and the
// teardown runs at most once.
//
// Delivery is synchronous. A producer that pushes from another goroutine owns
// that goroutine and must stop it in its teardown or once [Observer.Closed]
// reports true.
//
// # Logging
//
// Lifecycle records go to the [Logger] in [Config], or to the logger set with
// [SetDefaultLogger], which defaults to slog.Default().
package rx
