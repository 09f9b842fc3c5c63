// Package handler provides the Handler interface and the Stats counters
// shared by its implementations.
//
// A Handler receives decoded records and writes their formatted text to
// an output. Lines that could not be decoded are passed to HandleRaw so
// that they can be echoed in their original position in the stream.
//
// Implementations live in subpackages:
//
//   - consolehandler writes to an io.Writer, either synchronously or
//     through a bounded queue drained by a single background goroutine.
//     Both variants preserve input order.
//   - filehandler appends to a file with size-based rotation.
//   - multihandler fans records out to several handlers.
package handler
