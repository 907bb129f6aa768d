// Command rxdemo replays a set of mock requests through an rx observable.
//
// Settings are read from RX_DEMO_* environment variables and may be
// overridden with flags:
//
//	rxdemo --fixtures requests.yaml --log-level debug --json
package main

import (
	"os"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
