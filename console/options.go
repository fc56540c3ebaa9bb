package console

// Options configures session acquisition.
type Options struct {
	// RestoreOnFault installs a process-wide observer, once, on the
	// first successful acquisition: if the process receives a fatal
	// signal while a Session is active, the terminal is restored before
	// the signal is re-raised. Combine with a deferred HandlePanic to
	// cover panics as well.
	//
	// When unset, Release is solely responsible for restoration and
	// diagnostics printed during an abnormal termination may be
	// visually corrupted.
	RestoreOnFault bool
}

// DefaultOptions returns the default acquisition options.
func DefaultOptions() Options {
	return Options{
		RestoreOnFault: true,
	}
}
