package formatter

import (
	"bytes"
	"strings"

	"github.com/philipp01105/prettylog/core"
)

// maxInlineLen is the longest display value, in bytes, still shown inline.
const maxInlineLen = 50

const (
	detailIndent    = "    "
	detailSeparator = "\n    --\n"
)

// IsDetail reports whether a display value goes into the detail block
// rather than the inline group.
func IsDetail(stringified string) bool {
	return len(stringified) > maxInlineLen || strings.IndexByte(stringified, '\n') >= 0
}

// FormatExtras renders the extras block: the inline group, a newline, and
// the detail group.
func FormatExtras(fields []core.Field, color bool) string {
	var buf bytes.Buffer
	writeExtras(&buf, fields, color)
	return buf.String()
}

func writeExtras(buf *bytes.Buffer, fields []core.Field, color bool) {
	var inline, details []string
	for _, f := range fields {
		val := f.StringValue()
		if !IsDetail(val) {
			inline = append(inline, Paint(f.Key, StyleBold, color)+"="+val)
			continue
		}
		if f.Type == core.StringType {
			// Details show strings verbatim, never quoted
			val = f.Str
		}
		details = append(details, indent(Paint(f.Key, StyleBold, color)+": "+val))
	}

	if len(inline) > 0 {
		buf.WriteString(" (")
		buf.WriteString(strings.Join(inline, ","))
		buf.WriteByte(')')
	}
	buf.WriteByte('\n')
	if len(details) > 0 {
		buf.WriteString(strings.Join(details, detailSeparator))
		buf.WriteByte('\n')
	}
}

// indent prefixes every line of s with four spaces.
func indent(s string) string {
	return detailIndent + strings.Join(lines(s), "\n"+detailIndent)
}

// lines splits s on newlines. A final newline does not start an extra
// line and a trailing carriage return is dropped from each line.
func lines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	parts := strings.Split(s, "\n")
	for i, p := range parts {
		parts[i] = strings.TrimSuffix(p, "\r")
	}
	return parts
}
