package console

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// faultOnce guards the one-time installation of the fault observer.
// The observer persists for the program lifetime; later sessions
// reuse it.
var faultOnce sync.Once

// installFaultObserver registers a process-wide observer for fatal
// signals. When one arrives while a Session is still active, the
// terminal is restored first, then the signal is re-raised with its
// default disposition so exit status and diagnostics are unchanged.
func installFaultObserver() {
	faultOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch,
			syscall.SIGINT,
			syscall.SIGTERM,
			syscall.SIGHUP,
			syscall.SIGQUIT,
		)

		go func() {
			sig := <-ch
			restoreActive()

			signal.Stop(ch)
			if p, err := os.FindProcess(os.Getpid()); err == nil {
				_ = p.Signal(sig)
			}
		}()
	})
}

// HandlePanic restores the terminal if a Session is still active, then
// re-panics so the runtime prints its diagnostic to a terminal back in
// normal mode and outer deferred handlers still run. Use it as the
// first deferred call of any goroutine that owns a Session:
//
//	defer console.HandlePanic()
//
// When no panic is in flight it does nothing. The Session's own Release
// will not restore a second time.
func HandlePanic() {
	r := recover()
	if r == nil {
		return
	}
	restoreActive()
	panic(r)
}

// restoreActive performs terminal restoration for the session currently
// holding the console slot, if any. Both teardown paths agree on
// "already restored" through the session's latch, so running this
// concurrently with Release never double-resets.
func restoreActive() {
	s := active.Load()
	if s == nil {
		return
	}
	if s.restored.CompareAndSwap(false, true) {
		s.dev.Reset()
	}
}
