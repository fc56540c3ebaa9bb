// Package backend provides console.Device implementations.
//
// Three devices are available:
//
//   - Terminal: the production driver, built on tcell
//   - ANSI: a direct-ANSI Unix driver that bypasses terminfo, emitting
//     raw escape sequences and parsing stdin itself
//   - Null: an in-memory device for headless use and tests
//
// All devices follow the raw sentinel convention of console.Device:
// negative values mean "no event", never an error.
package backend
