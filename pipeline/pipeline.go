// Package pipeline connects input lines to a handler.
//
// Each line is decoded independently. Decoded records go to the
// handler; lines that fail to decode are treated according to the
// Processor's Policy: echoed unchanged (the default), skipped, or
// reported as an error that stops processing. One bad line never stops
// the stream unless Abort is selected.
package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/handler"
	"github.com/philipp01105/prettylog/source"
)

// Policy selects what happens to lines that fail to decode
type Policy uint8

const (
	// Echo writes the line unchanged
	Echo Policy = iota
	// Skip drops the line with a warning
	Skip
	// Abort stops processing with a *LineError
	Abort
)

// String returns the string representation of the policy
func (p Policy) String() string {
	switch p {
	case Echo:
		return "echo"
	case Skip:
		return "skip"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// ParsePolicy converts a policy name to a Policy
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "echo":
		return Echo, nil
	case "skip":
		return Skip, nil
	case "abort":
		return Abort, nil
	default:
		return Echo, fmt.Errorf("unknown error policy %q (want echo, skip or abort)", s)
	}
}

// LineError is returned under the Abort policy
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Result counts what a Processor has seen
type Result struct {
	Lines   int
	Decoded int
	Failed  int
	Blank   int
}

// Processor feeds lines to a handler. It is not safe for concurrent use;
// run one Processor per input.
type Processor struct {
	handler handler.Handler
	log     *zap.Logger
	policy  Policy
	result  Result
}

// New creates a Processor. A nil logger discards diagnostics.
func New(h handler.Handler, log *zap.Logger, policy Policy) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{handler: h, log: log, policy: policy}
}

// Process handles one input line.
func (p *Processor) Process(line []byte) error {
	p.result.Lines++
	n := p.result.Lines

	if len(bytes.TrimSpace(line)) == 0 {
		p.result.Blank++
		if p.policy == Echo {
			return p.handler.HandleRaw(line)
		}
		return nil
	}

	rec, err := core.Decode(line)
	if err != nil {
		p.result.Failed++
		switch p.policy {
		case Abort:
			return &LineError{Line: n, Err: err}
		case Skip:
			p.log.Warn("skipping undecodable line", zap.Int("line", n), zap.Error(err))
			return nil
		default:
			p.log.Debug("echoing undecodable line", zap.Int("line", n), zap.Error(err))
			return p.handler.HandleRaw(line)
		}
	}

	p.result.Decoded++
	return p.handler.Handle(rec)
}

// Run processes every line of r.
func (p *Processor) Run(ctx context.Context, r io.Reader) error {
	return source.Lines(ctx, r, p.Process)
}

// Follow processes path and keeps processing lines appended to it until
// ctx is done.
func (p *Processor) Follow(ctx context.Context, path string) error {
	return source.Follow(ctx, path, p.Process)
}

// Result returns the counters accumulated so far
func (p *Processor) Result() Result {
	return p.result
}
