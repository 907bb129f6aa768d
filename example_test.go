package rx_test

import (
	"errors"
	"fmt"

	"github.com/fxsml/rx"
)

func ExampleFrom() {
	requests := rx.From([]string{"POST /user", "GET /user/3f5h67s4s"}, rx.Config{DisableLogging: true})

	sub := requests.Subscribe(rx.Handlers[string]{
		Next:     func(r string) { fmt.Println("handled", r) },
		Error:    func(err error) { fmt.Println("failed", err) },
		Complete: func() { fmt.Println("complete") },
	})
	sub.Unsubscribe()

	fmt.Println("closed:", sub.Closed())
	// Output:
	// handled POST /user
	// handled GET /user/3f5h67s4s
	// complete
	// closed: true
}

func ExampleNew() {
	ticks := rx.New(func(o *rx.Observer[int]) rx.Teardown {
		for i := 1; !o.Closed(); i++ {
			if i > 3 {
				o.Error(errors.New("source exhausted"))
				break
			}
			o.Next(i)
		}
		return func() { fmt.Println("released") }
	}, rx.Config{DisableLogging: true})

	sub := ticks.Subscribe(rx.Handlers[int]{
		Next:  func(v int) { fmt.Println("tick", v) },
		Error: func(err error) { fmt.Println("error:", err) },
	})
	sub.Unsubscribe()
	// Output:
	// tick 1
	// tick 2
	// tick 3
	// error: source exhausted
	// released
}
