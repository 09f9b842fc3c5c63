package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/handler"
)

// MultiHandler sends records to multiple handlers
type MultiHandler struct {
	handlers []handler.Handler
}

// NewMultiHandler creates a new multi-handler
func NewMultiHandler(handlers ...handler.Handler) *MultiHandler {
	return &MultiHandler{handlers: handlers}
}

// Handle sends rec to every handler. A failing child does not stop the
// others; their errors are combined.
func (h *MultiHandler) Handle(rec *core.Record) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Handle(rec))
	}
	return err
}

// HandleRaw sends line to every handler
func (h *MultiHandler) HandleRaw(line []byte) error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.HandleRaw(line))
	}
	return err
}

// Stats sums the statistics of the children that provide them
func (h *MultiHandler) Stats() handler.Snapshot {
	var total handler.Snapshot
	for _, child := range h.handlers {
		sp, ok := child.(handler.StatsProvider)
		if !ok {
			continue
		}
		s := sp.Stats()
		total.FormattedTotal += s.FormattedTotal
		total.EchoedTotal += s.EchoedTotal
		total.FailedTotal += s.FailedTotal
	}
	return total
}

// Close closes all handlers
func (h *MultiHandler) Close() error {
	var err error
	for _, child := range h.handlers {
		err = multierr.Append(err, child.Close())
	}
	return err
}
