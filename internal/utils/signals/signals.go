// Package signals runs cleanup actions upon interruption.
package signals

import (
	"os"
	"os/signal"
	"syscall"
)

// OnSignal calls the action once, in a new goroutine, when SIGINT or SIGTERM is received.
func OnSignal(action func(sig os.Signal)) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-ch
		signal.Stop(ch)
		action(sig)
	}()
}
