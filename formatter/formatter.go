package formatter

import (
	"bytes"
	"io"
	"sync"
	"time"

	"github.com/philipp01105/prettylog/core"
)

// Formatter defines the interface for record formatters
type Formatter interface {
	// Format renders a record. It never fails.
	Format(rec *core.Record) string
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate string allocation.
type WriterFormatter interface {
	// FormatTo formats a record and writes it directly to the writer
	FormatTo(rec *core.Record, w io.Writer) error
}

// BufferFormatter is an optional interface that formatters can implement
// to format directly into a caller-provided buffer, avoiding internal
// buffer pool overhead.
type BufferFormatter interface {
	// FormatRecord formats a record into the given buffer.
	FormatRecord(rec *core.Record, buf *bytes.Buffer)
}

// Config holds formatter configuration
type Config struct {
	// Color enables ANSI styling
	Color bool
	// Location is the display time zone (nil for time.Local)
	Location *time.Location
}

// Format renders rec in the local time zone.
func Format(rec *core.Record, color bool) string {
	return NewPrettyFormatter(Config{Color: color}).Format(rec)
}

// FormatLine decodes a raw JSON line and renders it.
func FormatLine(line []byte, color bool) (string, error) {
	rec, err := core.Decode(line)
	if err != nil {
		return "", err
	}
	return Format(rec, color), nil
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
