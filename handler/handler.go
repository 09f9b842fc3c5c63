package handler

import (
	"errors"

	"github.com/philipp01105/prettylog/core"
)

// ErrClosed is returned by handlers used after Close.
var ErrClosed = errors.New("handler: closed")

// Handler defines the interface for record handlers
type Handler interface {
	// Handle formats and writes a decoded record
	Handle(rec *core.Record) error

	// HandleRaw writes a line that could not be decoded, followed by a newline
	HandleRaw(line []byte) error

	// Close flushes pending output and releases resources
	Close() error
}

// StatsProvider is implemented by handlers that track Stats.
type StatsProvider interface {
	Stats() Snapshot
}
