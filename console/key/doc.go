// Package key defines the key-code space reported by a console session.
//
// A Code identifies a single input event:
//
//   - Printable ASCII keys carry their ASCII value (the named letter
//     constants use the lowercase codes)
//   - Arrow keys occupy a contiguous band so a single range test
//     identifies them
//   - The remaining named keys (F1-F12, Escape, Delete, Enter, Tab) sit
//     outside the ASCII range
//
// Classification is derived from the value, never stored: IsASCII is a
// range test, and the numeric/alphanumeric predicates are defined only
// for ASCII codes.
package key
