package consolehandler

import (
	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/handler"
)

// SyncConsoleHandler formats and writes each record before Handle returns.
type SyncConsoleHandler struct {
	consoleBase
}

// newSyncConsoleHandler creates a new synchronous console handler.
func newSyncConsoleHandler(cfg ConsoleConfig) *SyncConsoleHandler {
	h := &SyncConsoleHandler{}
	h.init(cfg)
	return h
}

// Handle formats and writes a record synchronously.
func (h *SyncConsoleHandler) Handle(rec *core.Record) error {
	if h.isClosed() {
		return handler.ErrClosed
	}
	return h.write(rec)
}

// HandleRaw writes line followed by a newline.
func (h *SyncConsoleHandler) HandleRaw(line []byte) error {
	if h.isClosed() {
		return handler.ErrClosed
	}
	return h.writeRaw(line)
}

// Close closes the handler.
func (h *SyncConsoleHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if !h.isClosed() {
		close(h.closed)
	}
	return nil
}
