package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/philipp01105/prettylog/core"
)

// timestampLayout is ISO-8601 extended with milliseconds; a zero offset
// renders as "Z".
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// PrettyFormatter formats records as human-readable text
type PrettyFormatter struct {
	Config
}

// NewPrettyFormatter creates a new pretty formatter
func NewPrettyFormatter(cfg Config) *PrettyFormatter {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	return &PrettyFormatter{Config: cfg}
}

// Format formats a record as text
func (f *PrettyFormatter) Format(rec *core.Record) string {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf)
	return buf.String()
}

// FormatTo formats a record and writes it directly to the writer
func (f *PrettyFormatter) FormatTo(rec *core.Record, w io.Writer) error {
	buf := getBuffer()

	f.FormatRecord(rec, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// FormatRecord writes the formatted record into the given buffer
func (f *PrettyFormatter) FormatRecord(rec *core.Record, buf *bytes.Buffer) {
	buf.WriteByte('[')
	buf.Write(rec.Time.In(f.Location).AppendFormat(buf.AvailableBuffer(), timestampLayout))
	buf.WriteString("] ")

	buf.WriteString(FormatLevel(rec.Level, f.Color))
	buf.WriteString(": ")

	writeSource(buf, rec)
	buf.WriteString(": ")

	buf.WriteString(Paint(rec.Message, StyleCyan, f.Color))

	writeExtras(buf, rec.Extras, f.Color)
}

// writeSource writes "name/pid on hostname", dropping the name or the
// " on hostname" clause when the record lacks them. The pid is always
// present.
func writeSource(buf *bytes.Buffer, rec *core.Record) {
	if rec.Name != nil {
		buf.WriteString(*rec.Name)
		buf.WriteByte('/')
	}
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), uint64(rec.PIDOrZero()), 10))
	if rec.Hostname != nil {
		buf.WriteString(" on ")
		buf.WriteString(*rec.Hostname)
	}
}
