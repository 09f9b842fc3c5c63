package core

import (
	"errors"
	"fmt"
	"time"
)

var (
	minTime = time.Date(0, time.January, 1, 0, 0, 0, 0, time.UTC)
	maxTime = time.Date(9999, time.December, 31, 23, 59, 59, 999999999, time.UTC)
)

var errTimeRange = errors.New("instant outside years 0000-9999")

type timeKind uint8

const (
	timeText timeKind = iota + 1
	timeMillis
)

// rawTime is the wire shape of the time field: either an RFC 3339 string
// or integer milliseconds since the Unix epoch.
type rawTime struct {
	kind   timeKind
	text   string
	millis int64
}

// resolve normalizes the wire value to a UTC instant.
func (t rawTime) resolve() (time.Time, error) {
	var ts time.Time
	switch t.kind {
	case timeText:
		parsed, err := time.Parse(time.RFC3339Nano, t.text)
		if err != nil {
			return time.Time{}, err
		}
		ts = parsed.UTC()
	case timeMillis:
		ts = time.UnixMilli(t.millis).UTC()
	default:
		return time.Time{}, fmt.Errorf("unsupported time encoding")
	}

	if ts.Before(minTime) || ts.After(maxTime) {
		return time.Time{}, errTimeRange
	}
	return ts, nil
}
