package consolehandler

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/multierr"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/handler"
)

// item is one queued unit of output: a record, or a raw line when rec is nil.
type item struct {
	rec *core.Record
	raw []byte
}

// AsyncConsoleHandler writes records from a dedicated background
// goroutine. Output order equals the order of Handle/HandleRaw calls.
type AsyncConsoleHandler struct {
	consoleBase
	queue        chan item
	wg           sync.WaitGroup
	drainTimeout time.Duration
	closeOnce    sync.Once
	closeErr     error
	drainErr     error // set by process before it exits

	errMu    sync.Mutex
	writeErr error // first write error seen by process
}

// newAsyncConsoleHandler creates a new asynchronous console handler.
func newAsyncConsoleHandler(cfg ConsoleConfig) *AsyncConsoleHandler {
	h := &AsyncConsoleHandler{drainTimeout: cfg.DrainTimeout}
	h.init(cfg)

	h.queue = make(chan item, cfg.BufferSize)
	h.wg.Add(1)
	go h.process()

	return h
}

// Handle queues a record, blocking while the queue is full.
func (h *AsyncConsoleHandler) Handle(rec *core.Record) error {
	return h.enqueue(item{rec: rec})
}

// HandleRaw queues a raw line. The line is copied.
func (h *AsyncConsoleHandler) HandleRaw(line []byte) error {
	return h.enqueue(item{raw: append([]byte(nil), line...)})
}

func (h *AsyncConsoleHandler) enqueue(it item) error {
	if h.isClosed() {
		return handler.ErrClosed
	}
	select {
	case h.queue <- it:
		return nil
	case <-h.closed:
		return handler.ErrClosed
	}
}

// process is the single consumer of the queue
func (h *AsyncConsoleHandler) process() {
	defer h.wg.Done()

	for {
		select {
		case it := <-h.queue:
			h.processItem(it)
		case <-h.closed:
			h.drain()
			return
		}
	}
}

// drain writes what is left in the queue, giving up after drainTimeout.
func (h *AsyncConsoleHandler) drain() {
	deadline := time.After(h.drainTimeout)
	for {
		select {
		case it := <-h.queue:
			h.processItem(it)
		case <-deadline:
			h.drainErr = fmt.Errorf("consolehandler: drain timed out with %d records pending", len(h.queue))
			return
		default:
			return
		}
	}
}

func (h *AsyncConsoleHandler) processItem(it item) {
	var err error
	if it.rec != nil {
		err = h.write(it.rec)
	} else {
		err = h.writeRaw(it.raw)
	}
	if err != nil {
		h.setErr(err)
	}
}

func (h *AsyncConsoleHandler) setErr(err error) {
	h.errMu.Lock()
	if h.writeErr == nil {
		h.writeErr = err
	}
	h.errMu.Unlock()
}

// Err returns the first write error seen by the background goroutine.
func (h *AsyncConsoleHandler) Err() error {
	h.errMu.Lock()
	defer h.errMu.Unlock()
	return h.writeErr
}

// Close stops accepting records, drains the queue with a timeout and
// returns the first write error, if any. Close is idempotent.
func (h *AsyncConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		h.wg.Wait()
		h.closeErr = multierr.Append(h.Err(), h.drainErr)
	})
	return h.closeErr
}
