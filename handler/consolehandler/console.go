package consolehandler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
	"github.com/philipp01105/prettylog/handler"
)

// lockedWriter wraps an io.Writer with a mutex, acquiring the lock only
// for Write calls. Uses the handler's main mu to serialize all writes.
type lockedWriter struct {
	mu *sync.Mutex // points to handler's mu
	w  io.Writer
}

func (lw *lockedWriter) Write(p []byte) (n int, err error) {
	lw.mu.Lock()
	n, err = lw.w.Write(p)
	lw.mu.Unlock()
	return
}

// consoleBase contains shared fields and methods for console handlers.
type consoleBase struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	stats           *handler.Stats
	mu              sync.Mutex // protects syncBuf and writer (single lock)
	lw              lockedWriter
	syncBuf         bytes.Buffer
	bufPool         sync.Pool
	closed          chan struct{}
}

func (b *consoleBase) init(cfg ConsoleConfig) {
	b.writer = cfg.Writer
	b.formatter = cfg.Formatter
	b.stats = handler.NewStats()
	b.closed = make(chan struct{})

	// Cache optional formatter interfaces once
	b.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	b.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	b.lw = lockedWriter{mu: &b.mu, w: b.writer}
	b.syncBuf.Grow(256)
	b.bufPool = sync.Pool{
		New: func() interface{} {
			buf := new(bytes.Buffer)
			buf.Grow(256)
			return buf
		},
	}
}

// write formats and writes a record.
// Uses TryLock on mu to format into the handler-owned buffer when
// uncontended. When contended and bufferFormatter is available, formats
// into a pooled buffer outside the lock, then writes under mu.
func (b *consoleBase) write(rec *core.Record) error {
	if b.bufferFormatter != nil {
		if b.mu.TryLock() {
			b.syncBuf.Reset()
			b.bufferFormatter.FormatRecord(rec, &b.syncBuf)
			_, err := b.writer.Write(b.syncBuf.Bytes())
			b.mu.Unlock()
			return b.count(err, b.stats.IncrementFormatted)
		}

		buf := b.bufPool.Get().(*bytes.Buffer)
		buf.Reset()
		b.bufferFormatter.FormatRecord(rec, buf)
		b.mu.Lock()
		_, err := b.writer.Write(buf.Bytes())
		b.mu.Unlock()
		b.bufPool.Put(buf)
		return b.count(err, b.stats.IncrementFormatted)
	}

	if b.writerFormatter != nil {
		err := b.writerFormatter.FormatTo(rec, &b.lw)
		return b.count(err, b.stats.IncrementFormatted)
	}

	_, err := io.WriteString(&b.lw, b.formatter.Format(rec))
	return b.count(err, b.stats.IncrementFormatted)
}

// writeRaw echoes an undecodable line.
func (b *consoleBase) writeRaw(line []byte) error {
	b.mu.Lock()
	b.syncBuf.Reset()
	b.syncBuf.Write(line)
	b.syncBuf.WriteByte('\n')
	_, err := b.writer.Write(b.syncBuf.Bytes())
	b.mu.Unlock()
	return b.count(err, b.stats.IncrementEchoed)
}

func (b *consoleBase) count(err error, success func()) error {
	if err != nil {
		b.stats.IncrementFailed()
		return err
	}
	success()
	return nil
}

func (b *consoleBase) isClosed() bool {
	select {
	case <-b.closed:
		return true
	default:
		return false
	}
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() handler.Snapshot {
	return b.stats.GetSnapshot()
}

// ConsoleConfig holds configuration for console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: PrettyFormatter without color)
	Formatter formatter.Formatter
	// Async enables the background writer goroutine
	Async bool
	// BufferSize is the size of the async queue (default: 1024)
	BufferSize int
	// DrainTimeout is the timeout for draining queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// applyConsoleDefaults fills in zero-value fields with defaults.
func applyConsoleDefaults(cfg *ConsoleConfig) {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPrettyFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1024
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}
}

// NewConsoleHandler creates a new console handler.
// Returns a SyncConsoleHandler when Async is false, or an AsyncConsoleHandler
// when Async is true. Both implement Handler and StatsProvider.
func NewConsoleHandler(cfg ConsoleConfig) handler.Handler {
	applyConsoleDefaults(&cfg)
	if cfg.Async {
		return newAsyncConsoleHandler(cfg)
	}
	return newSyncConsoleHandler(cfg)
}
