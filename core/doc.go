// Package core defines the record model shared by every prettylog package.
//
// A Record is one decoded bunyan/pino log line: the fixed schema fields
// (v, level, name, hostname, pid, time, msg) plus an ordered list of
// extra Fields for everything else. Decode turns a raw JSON line into a
// Record and is the only place where input shapes are inspected. The
// time field may be an RFC 3339 string or integer epoch milliseconds;
// both are normalized to a UTC time.Time during decoding so that
// downstream code never looks at the original encoding again.
//
// Decoding borrows parsers from a fastjson.ParserPool. Everything a
// Record references is copied out of the parser before it is returned
// to the pool, so Records are safe to keep and to share between
// goroutines.
//
// Level is the closed set of bunyan severities. Codes outside the set
// are valid input and are rendered by the formatter as a numeric
// fallback label.
package core
