package formatter

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/prettylog/core"
)

const simpleLine = `{"v":0,"level":30,"name":"myservice","hostname":"example.com","pid":123,"time":"2012-02-08T22:56:52.856Z","msg":"My message"}`

var ansi = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func decode(t *testing.T, line string) *core.Record {
	t.Helper()
	rec, err := core.DecodeString(line)
	if err != nil {
		t.Fatalf("Decode(%s) error = %v", line, err)
	}
	return rec
}

func utc(color bool) *PrettyFormatter {
	return NewPrettyFormatter(Config{Color: color, Location: time.UTC})
}

func TestPrettyFormatter_Simple(t *testing.T) {
	got := utc(false).Format(decode(t, simpleLine))
	want := "[2012-02-08T22:56:52.856Z]  INFO: myservice/123 on example.com: My message\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestPrettyFormatter_SimpleWithColor(t *testing.T) {
	got := utc(true).Format(decode(t, simpleLine))
	want := "[2012-02-08T22:56:52.856Z] \x1b[32m INFO\x1b[0m: myservice/123 on example.com: \x1b[36mMy message\x1b[0m\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestPrettyFormatter_ColorOnlyChangesStyling(t *testing.T) {
	lines := []string{
		simpleLine,
		`{"level":60,"time":0,"msg":"boom","err":{"message":"x","stack":"a\nb"},"count":5}`,
		`{"level":10,"time":0,"msg":"trace","tag":"a b"}`,
		`{"level":99,"time":0,"msg":"odd"}`,
	}
	for _, line := range lines {
		rec := decode(t, line)
		plain := utc(false).Format(rec)
		colored := utc(true).Format(rec)
		if stripANSI(colored) != plain {
			t.Errorf("colored output differs in text:\n%q\n%q", stripANSI(colored), plain)
		}
	}
}

func TestPrettyFormatter_Source(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{
			name: "Name and hostname",
			line: `{"level":30,"name":"svc","hostname":"h1","pid":7,"time":0,"msg":"m"}`,
			want: "[1970-01-01T00:00:00.000Z]  INFO: svc/7 on h1: m\n",
		},
		{
			name: "Name only",
			line: `{"level":30,"name":"svc","pid":7,"time":0,"msg":"m"}`,
			want: "[1970-01-01T00:00:00.000Z]  INFO: svc/7: m\n",
		},
		{
			name: "Hostname only",
			line: `{"level":30,"hostname":"h1","pid":7,"time":0,"msg":"m"}`,
			want: "[1970-01-01T00:00:00.000Z]  INFO: 7 on h1: m\n",
		},
		{
			name: "Neither, pid defaults to zero",
			line: `{"level":30,"time":0,"msg":"m"}`,
			want: "[1970-01-01T00:00:00.000Z]  INFO: 0: m\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := utc(false).Format(decode(t, tt.line)); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPrettyFormatter_MillisTimestamps(t *testing.T) {
	tests := []struct {
		millis string
		loc    *time.Location
		want   string
	}{
		{"1328741812856", time.UTC, "[2012-02-08T22:56:52.856Z]"},
		{"1328741812001", time.UTC, "[2012-02-08T22:56:52.001Z]"},
		{"1328741812999", time.UTC, "[2012-02-08T22:56:52.999Z]"},
		{"-1", time.UTC, "[1969-12-31T23:59:59.999Z]"},
		{"1328741812856", time.FixedZone("CET", 3600), "[2012-02-08T23:56:52.856+01:00]"},
		{"1328741812856", time.FixedZone("EST", -5*3600), "[2012-02-08T17:56:52.856-05:00]"},
	}

	for _, tt := range tests {
		t.Run(tt.millis+"@"+tt.loc.String(), func(t *testing.T) {
			rec := decode(t, `{"level":30,"time":`+tt.millis+`,"msg":"m"}`)
			got := NewPrettyFormatter(Config{Location: tt.loc}).Format(rec)
			if !strings.HasPrefix(got, tt.want) {
				t.Errorf("Format() = %q, want prefix %q", got, tt.want)
			}
		})
	}
}

func TestPrettyFormatter_Idempotent(t *testing.T) {
	line := `{"level":50,"time":"2012-02-08T22:56:52.856Z","msg":"m","a":1,"b":"x y","c":{"d":[1,2,3]}}`
	f := utc(true)
	first := f.Format(decode(t, line))
	second := f.Format(decode(t, line))
	if first != second {
		t.Errorf("Format() not deterministic:\n%q\n%q", first, second)
	}
}

func TestPrettyFormatter_FormatTo(t *testing.T) {
	var buf bytes.Buffer
	rec := decode(t, simpleLine)
	if err := utc(false).FormatTo(rec, &buf); err != nil {
		t.Fatalf("FormatTo() error = %v", err)
	}
	if buf.String() != utc(false).Format(rec) {
		t.Errorf("FormatTo() = %q, want Format() output", buf.String())
	}
}

func TestPrettyFormatter_DefaultsToLocal(t *testing.T) {
	f := NewPrettyFormatter(Config{})
	if f.Location != time.Local {
		t.Errorf("Location = %v, want Local", f.Location)
	}
}

func TestPrettyFormatter_Concurrent(t *testing.T) {
	rec := decode(t, `{"level":40,"time":0,"msg":"m","k":"v","obj":{"a":"b"}}`)
	f := utc(true)
	want := f.Format(rec)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := f.Format(rec); got != want {
					t.Errorf("concurrent Format() = %q, want %q", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestFormatLine(t *testing.T) {
	out, err := FormatLine([]byte(simpleLine), false)
	if err != nil {
		t.Fatalf("FormatLine() error = %v", err)
	}
	if !strings.Contains(out, " INFO: myservice/123 on example.com: My message\n") {
		t.Errorf("FormatLine() = %q", out)
	}

	_, err = FormatLine([]byte(`{"level":30,"time":false,"msg":"m"}`), false)
	if !errors.Is(err, core.ErrInvalidTimestamp) {
		t.Errorf("FormatLine() error = %v, want %v", err, core.ErrInvalidTimestamp)
	}
}

func BenchmarkPrettyFormatter(b *testing.B) {
	rec, _ := core.DecodeString(`{"v":0,"level":30,"name":"myservice","hostname":"example.com","pid":123,` +
		`"time":"2012-02-08T22:56:52.856Z","msg":"My message","req_id":"abc","req":{"method":"GET","url":"/"}}`)
	f := NewPrettyFormatter(Config{Color: true, Location: time.UTC})

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Format(rec)
	}
}
