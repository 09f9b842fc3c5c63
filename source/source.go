// Package source reads the input lines handed to the pipeline.
//
// Lines scans any reader once. Follow keeps reading a file as it grows,
// like tail -f, using filesystem notifications instead of polling.
package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"time"
)

// MaxLineSize is the longest accepted input line.
const MaxLineSize = 4 << 20

// LineFunc is called for each line, without its terminator. The slice is
// only valid until the function returns.
type LineFunc func(line []byte) error

// Open returns stdin for "" or "-", otherwise the named file.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// IsStdin reports whether path names standard input.
func IsStdin(path string) bool {
	return path == "" || path == "-"
}

// deadliner is implemented by *os.File
type deadliner interface {
	SetReadDeadline(t time.Time) error
}

// Lines calls fn for every line of r until EOF, the first error returned
// by fn, or cancellation of ctx.
//
// A read blocked waiting for input is interrupted on cancellation only
// when r supports read deadlines, as pipes and sockets do. A terminal in
// blocking mode does not; there cancellation takes effect at the next
// line.
func Lines(ctx context.Context, r io.Reader, fn LineFunc) error {
	if d, ok := r.(deadliner); ok {
		stop := context.AfterFunc(ctx, func() {
			_ = d.SetReadDeadline(time.Now())
		})
		defer stop()
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(trimCR(sc.Bytes())); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, os.ErrDeadlineExceeded) {
			return ctxErr
		}
		return err
	}
	return nil
}

func trimCR(line []byte) []byte {
	return bytes.TrimSuffix(line, []byte{'\r'})
}
