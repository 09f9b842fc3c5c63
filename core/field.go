package core

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FieldType represents the JSON type of an extra field value
type FieldType uint8

const (
	StringType FieldType = iota
	NumberType
	BoolType
	NullType
	ObjectType
	ArrayType
)

// String returns the JSON name of the type
func (t FieldType) String() string {
	switch t {
	case StringType:
		return "string"
	case NumberType:
		return "number"
	case BoolType:
		return "bool"
	case NullType:
		return "null"
	case ObjectType:
		return "object"
	case ArrayType:
		return "array"
	default:
		return "unknown"
	}
}

// Field is one extra key/value pair of a record.
//
// String values keep their decoded content in Str. Every other type keeps
// its compact JSON text in Raw; numbers are kept exactly as written in the
// input.
type Field struct {
	Key  string
	Type FieldType
	Str  string
	Raw  []byte
}

// String builds a string field.
func String(key, val string) Field {
	return Field{Key: key, Type: StringType, Str: val}
}

// RawJSON builds a non-string field from its JSON text.
func RawJSON(key string, typ FieldType, raw string) Field {
	return Field{Key: key, Type: typ, Raw: []byte(raw)}
}

// StringValue returns the display form of the field value.
//
// Strings are returned as-is unless they are empty or contain a space, in
// which case they are wrapped in double quotes. All other values are
// rendered as JSON indented with two spaces.
func (f Field) StringValue() string {
	if f.Type == StringType {
		if f.Str == "" || strings.IndexByte(f.Str, ' ') >= 0 {
			return `"` + f.Str + `"`
		}
		return f.Str
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, f.Raw, "", "  "); err != nil {
		// Raw is not strictly valid JSON (e.g. control bytes quoted Go-style)
		return string(f.Raw)
	}
	return buf.String()
}
