package core

import "time"

// Record represents one decoded log line
type Record struct {
	// Version is the bunyan log format version ("v"), informational only
	Version *uint8
	Level   Level
	// Name is the name of the logger that produced the record
	Name     *string
	Hostname *string
	PID      *uint32
	// Time is always a valid UTC instant
	Time    time.Time
	Message string
	// Extras holds every non-schema key in input order. Keys are unique.
	Extras []Field
}

// PIDOrZero returns the pid, or 0 when the record carries none.
func (r *Record) PIDOrZero() uint32 {
	if r.PID == nil {
		return 0
	}
	return *r.PID
}

// Extra returns the extra field with the given key.
func (r *Record) Extra(key string) (Field, bool) {
	for _, f := range r.Extras {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}
