package filehandler

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
	"github.com/philipp01105/prettylog/handler"
)

// backupLayout is the timestamp appended to rotated file names
const backupLayout = "2006-01-02T15-04-05.000000000"

// sizeTrackingWriter wraps an io.Writer and tracks the size of the file
// behind it
type sizeTrackingWriter struct {
	w       io.Writer
	written int64
}

func (s *sizeTrackingWriter) Write(p []byte) (n int, err error) {
	n, err = s.w.Write(p)
	s.written += int64(n)
	return
}

func (s *sizeTrackingWriter) reset(w io.Writer, size int64) {
	s.w = w
	s.written = size
}

// FileConfig holds configuration for file handler
type FileConfig struct {
	// Filename is the path to the output file
	Filename string
	// Formatter to use (default: PrettyFormatter without color)
	Formatter formatter.Formatter
	// MaxSize is the size in bytes after which the file is rotated (0 = never)
	MaxSize int64
	// MaxBackups is the number of rotated files to keep (0 = keep all)
	MaxBackups int
}

// FileHandler appends formatted records to a file.
type FileHandler struct {
	filename        string
	file            *os.File
	bufWriter       *bufio.Writer
	sizeWriter      *sizeTrackingWriter
	formatter       formatter.Formatter
	bufferFormatter formatter.BufferFormatter
	mu              sync.Mutex
	buf             bytes.Buffer
	maxSize         int64
	maxBackups      int
	stats           *handler.Stats
	closed          bool
}

// NewFileHandler opens (or creates) cfg.Filename for appending, creating
// missing parent directories.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewPrettyFormatter(formatter.Config{})
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Filename), 0755); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(cfg.Filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}

	sw := &sizeTrackingWriter{w: file, written: info.Size()}
	h := &FileHandler{
		filename:   cfg.Filename,
		file:       file,
		sizeWriter: sw,
		bufWriter:  bufio.NewWriterSize(sw, 4096),
		formatter:  cfg.Formatter,
		maxSize:    cfg.MaxSize,
		maxBackups: cfg.MaxBackups,
		stats:      handler.NewStats(),
	}
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)
	h.buf.Grow(256)
	return h, nil
}

// Handle formats and writes a record.
func (h *FileHandler) Handle(rec *core.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return handler.ErrClosed
	}

	h.buf.Reset()
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatRecord(rec, &h.buf)
	} else {
		h.buf.WriteString(h.formatter.Format(rec))
	}
	return h.count(h.writeLocked(h.buf.Bytes()), h.stats.IncrementFormatted)
}

// HandleRaw writes line followed by a newline.
func (h *FileHandler) HandleRaw(line []byte) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return handler.ErrClosed
	}

	h.buf.Reset()
	h.buf.Write(line)
	h.buf.WriteByte('\n')
	return h.count(h.writeLocked(h.buf.Bytes()), h.stats.IncrementEchoed)
}

func (h *FileHandler) writeLocked(p []byte) error {
	if err := h.rotateIfNeeded(); err != nil {
		return err
	}
	_, err := h.bufWriter.Write(p)
	return err
}

// size is the file size including output still buffered
func (h *FileHandler) size() int64 {
	return h.sizeWriter.written + int64(h.bufWriter.Buffered())
}

func (h *FileHandler) count(err error, success func()) error {
	if err != nil {
		h.stats.IncrementFailed()
		return err
	}
	success()
	return nil
}

// rotateIfNeeded rotates the file once it has reached maxSize
func (h *FileHandler) rotateIfNeeded() error {
	if h.maxSize <= 0 || h.size() < h.maxSize {
		return nil
	}
	return h.rotate()
}

// rotate performs the actual file rotation
func (h *FileHandler) rotate() error {
	if err := h.bufWriter.Flush(); err != nil {
		return err
	}
	if err := h.file.Sync(); err != nil {
		return err
	}
	if err := h.file.Close(); err != nil {
		return err
	}

	if err := os.Rename(h.filename, h.backupName()); err != nil {
		// keep writing to the original file
		file, openErr := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if openErr != nil {
			return fmt.Errorf("rotation failed: %v, reopen failed: %v", err, openErr)
		}
		h.file = file
		h.sizeWriter.reset(file, h.sizeWriter.written)
		h.bufWriter.Reset(h.sizeWriter)
		return err
	}

	if h.maxBackups > 0 {
		h.cleanupOldBackups()
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	h.file = file
	h.sizeWriter.reset(file, 0)
	h.bufWriter.Reset(h.sizeWriter)
	return nil
}

// backupName returns an unused name for the rotated file. Names sort in
// rotation order.
func (h *FileHandler) backupName() string {
	name := fmt.Sprintf("%s.%s", h.filename, time.Now().UTC().Format(backupLayout))
	candidate := name
	for i := 1; ; i++ {
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
		candidate = fmt.Sprintf("%s-%d", name, i)
	}
}

// cleanupOldBackups removes the oldest backups beyond maxBackups
func (h *FileHandler) cleanupOldBackups() {
	backups := h.backups()
	if len(backups) <= h.maxBackups {
		return
	}
	for _, file := range backups[:len(backups)-h.maxBackups] {
		if err := os.Remove(file); err != nil {
			return
		}
	}
}

// backup is a rotated file found next to the output file
type backup struct {
	path string
	at   time.Time
	seq  int
}

// backups lists the files produced by rotate, oldest first. Other files
// sharing the name prefix are ignored.
func (h *FileHandler) backups() []string {
	dir := filepath.Dir(h.filename)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	prefix := filepath.Base(h.filename) + "."
	var found []backup
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), prefix) {
			continue
		}
		at, seq, ok := parseBackupSuffix(strings.TrimPrefix(e.Name(), prefix))
		if !ok {
			continue
		}
		found = append(found, backup{path: filepath.Join(dir, e.Name()), at: at, seq: seq})
	}

	sort.Slice(found, func(i, j int) bool {
		if !found[i].at.Equal(found[j].at) {
			return found[i].at.Before(found[j].at)
		}
		return found[i].seq < found[j].seq
	})
	paths := make([]string, len(found))
	for i, b := range found {
		paths[i] = b.path
	}
	return paths
}

// parseBackupSuffix accepts exactly what backupName appends: a timestamp
// in backupLayout, optionally followed by -N.
func parseBackupSuffix(suffix string) (time.Time, int, bool) {
	if len(suffix) < len(backupLayout) {
		return time.Time{}, 0, false
	}
	at, err := time.Parse(backupLayout, suffix[:len(backupLayout)])
	if err != nil {
		return time.Time{}, 0, false
	}
	rest := suffix[len(backupLayout):]
	if rest == "" {
		return at, 0, true
	}
	if rest[0] != '-' {
		return time.Time{}, 0, false
	}
	seq, err := strconv.Atoi(rest[1:])
	if err != nil || seq < 1 || strconv.Itoa(seq) != rest[1:] {
		return time.Time{}, 0, false
	}
	return at, seq, true
}

// Stats returns a snapshot of the current statistics
func (h *FileHandler) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes, syncs and closes the file.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return nil
	}
	h.closed = true

	if err := h.bufWriter.Flush(); err != nil {
		_ = h.file.Close()
		return err
	}
	if err := h.file.Sync(); err != nil {
		_ = h.file.Close()
		return err
	}
	return h.file.Close()
}
