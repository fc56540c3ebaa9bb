// Package console manages exclusive access to an interactive terminal.
//
// A Session is the single live handle granting console access: at most one
// Session exists per process at any time. Acquire switches the terminal
// into raw/application mode through a Device and Release restores it,
// exactly once, no matter how many release triggers fire.
//
// The package cooperates with abnormal termination: with
// Options.RestoreOnFault set, a process-wide observer (installed once, on
// the first successful Acquire) restores the terminal before fatal-signal
// delivery, and HandlePanic does the same for panics before re-panicking
// so the runtime's diagnostic prints to a sane terminal.
//
// Architecture:
//
//	┌─────────────────────────────────────────┐
//	│   Session (exclusivity, lifecycle)      │
//	├─────────────────────────────────────────┤
//	│   sentinel normalization, NUL checks    │
//	├─────────────────────────────────────────┤
//	│   Device abstraction                    │
//	├─────────────────────────────────────────┤
//	│   backend.Terminal │ backend.ANSI │ ... │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	dev, _ := backend.NewTerminal()
//	sess, err := console.Acquire(dev, console.DefaultOptions())
//	if err != nil {
//		// another session is already active
//	}
//	defer sess.Release()
package console
