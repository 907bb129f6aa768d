package fixture

import (
	"fmt"
	"io"

	"github.com/fxsml/rx"
)

// HandleRequest handles a mock request. Every request succeeds.
func HandleRequest(Request) Response {
	return Response{Status: StatusOK}
}

// HandleError maps a stream failure to a server error.
func HandleError(error) Response {
	return Response{Status: StatusInternalServerError}
}

// Handlers returns rx handlers that run HandleRequest and HandleError and
// report each outcome as a line on out.
func Handlers(out io.Writer) rx.Handlers[Request] {
	return rx.Handlers[Request]{
		Next: func(r Request) {
			resp := HandleRequest(r)
			fmt.Fprintf(out, "%s -> %d\n", r, resp.Status)
		},
		Error: func(err error) {
			resp := HandleError(err)
			fmt.Fprintf(out, "error: %v -> %d\n", err, resp.Status)
		},
		Complete: func() {
			fmt.Fprintln(out, "complete")
		},
	}
}
