package consolehandler_test

import (
	"os"
	"time"

	"github.com/philipp01105/prettylog/core"
	"github.com/philipp01105/prettylog/formatter"
	"github.com/philipp01105/prettylog/handler/consolehandler"
)

// Create a synchronous console handler writing to stdout.
func ExampleNewConsoleHandler() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:    os.Stdout,
		Formatter: formatter.NewPrettyFormatter(formatter.Config{Location: time.UTC}),
	})
	defer h.Close()

	rec, _ := core.DecodeString(`{"level":50,"name":"api","pid":7,"time":0,"msg":"request failed"}`)
	_ = h.Handle(rec)
	_ = h.HandleRaw([]byte("plain text line"))
	// Output:
	// [1970-01-01T00:00:00.000Z] ERROR: api/7: request failed
	// plain text line
}

// Create an async console handler with a custom buffer size.
func ExampleNewConsoleHandler_async() {
	h := consolehandler.NewConsoleHandler(consolehandler.ConsoleConfig{
		Writer:     os.Stdout,
		Async:      true,
		BufferSize: 4096,
		Formatter:  formatter.NewPrettyFormatter(formatter.Config{Location: time.UTC}),
	})

	rec, _ := core.DecodeString(`{"level":20,"time":0,"msg":"queued"}`)
	_ = h.Handle(rec)
	h.Close()
	// Output:
	// [1970-01-01T00:00:00.000Z] DEBUG: 0: queued
}
