package console

import "errors"

// Package errors.
var (
	// ErrSessionActive indicates another Session currently owns the
	// console. Acquisition never blocks waiting for release; callers
	// decide whether to retry.
	ErrSessionActive = errors.New("only one console session may exist at once")

	// ErrTextContainsNUL indicates text passed to DrawText contains an
	// embedded NUL byte, which cannot be represented in the underlying
	// drawing call.
	ErrTextContainsNUL = errors.New("text contains NUL byte")
)
