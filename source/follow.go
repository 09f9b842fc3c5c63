package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
)

// follower tracks the read position in a followed file.
type follower struct {
	f       *os.File
	r       *bufio.Reader
	offset  int64
	partial []byte
}

// Follow reads path to the end and then keeps reading appended lines
// until ctx is done or the file is removed or renamed. A truncated file
// is read again from the start. An unterminated last line is delivered
// when Follow returns.
func Follow(ctx context.Context, path string, fn LineFunc) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()
	if err := w.Add(path); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	fl := &follower{f: f, r: bufio.NewReaderSize(f, 64*1024)}
	for {
		if err := fl.readAvailable(fn); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			if err := fl.readAvailable(fn); err != nil {
				return err
			}
			return fl.flush(fn, ctx.Err())
		case ev, ok := <-w.Events:
			if !ok {
				return fl.flush(fn, nil)
			}
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				if err := fl.readAvailable(fn); err != nil {
					return err
				}
				return fl.flush(fn, nil)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return fl.flush(fn, nil)
			}
			return fmt.Errorf("watch %s: %w", path, err)
		}
	}
}

// readAvailable delivers every complete line currently in the file.
func (fl *follower) readAvailable(fn LineFunc) error {
	if err := fl.checkTruncate(); err != nil {
		return err
	}

	for {
		chunk, err := fl.r.ReadBytes('\n')
		fl.offset += int64(len(chunk))
		if len(chunk) > 0 {
			if chunk[len(chunk)-1] != '\n' {
				fl.partial = append(fl.partial, chunk...)
				if len(fl.partial) > MaxLineSize {
					return bufio.ErrTooLong
				}
			} else {
				line := chunk[:len(chunk)-1]
				if len(fl.partial) > 0 {
					line = append(fl.partial, line...)
					fl.partial = fl.partial[:0]
				}
				if err := fn(trimCR(line)); err != nil {
					return err
				}
			}
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// checkTruncate rewinds when the file shrank below the read offset.
func (fl *follower) checkTruncate() error {
	fi, err := fl.f.Stat()
	if err != nil {
		return err
	}
	if fi.Size() >= fl.offset {
		return nil
	}
	if _, err := fl.f.Seek(0, io.SeekStart); err != nil {
		return err
	}
	fl.r.Reset(fl.f)
	fl.offset = 0
	fl.partial = fl.partial[:0]
	return nil
}

// flush delivers a pending unterminated line and returns err.
func (fl *follower) flush(fn LineFunc, err error) error {
	if len(fl.partial) == 0 {
		return err
	}
	line := bytes.Clone(fl.partial)
	fl.partial = fl.partial[:0]
	if ferr := fn(trimCR(line)); ferr != nil {
		return ferr
	}
	return err
}
