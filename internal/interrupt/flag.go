// Package interrupt provides the cooperative cancellation flag polled between
// directories, and the signal shim that sets it.
package interrupt

import (
	"os"
	"os/signal"
	"sync/atomic"
)

// Flag is set asynchronously and read at poll points. The zero value is an
// unset flag.
type Flag struct {
	set atomic.Bool
}

// Set raises the flag.
func (f *Flag) Set() { f.set.Store(true) }

// Clear lowers the flag.
func (f *Flag) Clear() { f.set.Store(false) }

// IsSet reports whether the flag is raised. A nil flag is never set.
func (f *Flag) IsSet() bool {
	return f != nil && f.set.Load()
}

// Notify sets f whenever the process receives an interrupt until the
// returned stop function is called. stop clears f and leaves interrupts
// ignored, so a late Ctrl-C cannot kill the process after the command ends.
func Notify(f *Flag) (stop func()) {
	f.Clear()
	sigChan := make(chan os.Signal, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	signal.Notify(sigChan, os.Interrupt)

	go func() {
		defer close(exited)
		for {
			select {
			case <-sigChan:
				f.Set()
			case <-done:
				return
			}
		}
	}()

	return func() {
		signal.Stop(sigChan)
		close(done)
		<-exited
		signal.Ignore(os.Interrupt)
		f.Clear()
	}
}
