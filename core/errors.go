package core

import (
	"errors"
	"fmt"
)

// Decode error kinds. DecodeError matches these with errors.Is.
var (
	ErrMalformedJSON           = errors.New("malformed json")
	ErrMissingOrInvalidLevel   = errors.New("missing or invalid level")
	ErrInvalidTimestamp        = errors.New("invalid timestamp")
	ErrMissingOrInvalidMessage = errors.New("missing or invalid message")
	// ErrInvalidField is a reserved optional key with the wrong JSON type.
	// It also matches ErrMalformedJSON.
	ErrInvalidField error = &subKind{msg: "invalid field", parent: ErrMalformedJSON}
)

// subKind is an error kind that refines a broader one
type subKind struct {
	msg    string
	parent error
}

func (k *subKind) Error() string { return k.msg }
func (k *subKind) Unwrap() error { return k.parent }

// DecodeError describes why a line could not be decoded into a Record.
type DecodeError struct {
	// Kind is one of the Err* sentinels above
	Kind error
	// Key is the JSON key at fault, empty for ErrMalformedJSON
	Key string
	// Err is the underlying diagnostic, if any
	Err error
}

func (e *DecodeError) Error() string {
	msg := e.Kind.Error()
	if e.Key != "" {
		msg = fmt.Sprintf("field %q: %s", e.Key, msg)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind sentinel and the underlying diagnostic.
func (e *DecodeError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func decodeErr(kind error, key string, err error) *DecodeError {
	return &DecodeError{Kind: kind, Key: key, Err: err}
}
