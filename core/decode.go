package core

import (
	"fmt"
	"math"

	"github.com/valyala/fastjson"
)

var parserPool fastjson.ParserPool

// schema holds the values of the reserved keys seen in one object.
type schema struct {
	version, level, name, hostname, pid, time, msg *fastjson.Value
}

// DecodeString is Decode for a string line.
func DecodeString(line string) (*Record, error) {
	return Decode([]byte(line))
}

// Decode parses a single JSON object into a Record.
//
// The returned error is always a *DecodeError. A record either decodes
// fully or not at all.
func Decode(line []byte) (*Record, error) {
	p := parserPool.Get()
	defer parserPool.Put(p)

	v, err := p.ParseBytes(line)
	if err != nil {
		return nil, decodeErr(ErrMalformedJSON, "", err)
	}
	obj, err := v.Object()
	if err != nil {
		return nil, decodeErr(ErrMalformedJSON, "", err)
	}

	var (
		s      schema
		extras []Field
		seen   map[string]int
	)
	obj.Visit(func(key []byte, v *fastjson.Value) {
		switch string(key) {
		case "v":
			s.version = v
		case "level":
			s.level = v
		case "name":
			s.name = v
		case "hostname":
			s.hostname = v
		case "pid":
			s.pid = v
		case "time":
			s.time = v
		case "msg":
			s.msg = v
		default:
			k := string(key)
			if i, ok := seen[k]; ok {
				// Last occurrence wins, first position is kept
				extras[i] = newField(k, v)
				return
			}
			if seen == nil {
				seen = make(map[string]int)
			}
			seen[k] = len(extras)
			extras = append(extras, newField(k, v))
		}
	})

	rec := &Record{Extras: extras}
	if err := s.apply(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// apply validates the reserved keys and stores them in rec. Checks run in
// schema order so the first offending key is reported.
func (s *schema) apply(rec *Record) error {
	if !isNull(s.version) {
		n, err := uintValue(s.version, math.MaxUint8)
		if err != nil {
			return decodeErr(ErrInvalidField, "v", err)
		}
		v := uint8(n)
		rec.Version = &v
	}

	if s.level == nil {
		return decodeErr(ErrMissingOrInvalidLevel, "level", nil)
	}
	n, err := uintValue(s.level, math.MaxUint8)
	if err != nil {
		return decodeErr(ErrMissingOrInvalidLevel, "level", err)
	}
	rec.Level = Level(n)

	if rec.Name, err = optString(s.name); err != nil {
		return decodeErr(ErrInvalidField, "name", err)
	}
	if rec.Hostname, err = optString(s.hostname); err != nil {
		return decodeErr(ErrInvalidField, "hostname", err)
	}
	if !isNull(s.pid) {
		n, err := uintValue(s.pid, math.MaxUint32)
		if err != nil {
			return decodeErr(ErrInvalidField, "pid", err)
		}
		pid := uint32(n)
		rec.PID = &pid
	}

	if s.time == nil {
		return decodeErr(ErrInvalidTimestamp, "time", nil)
	}
	raw, err := timeValue(s.time)
	if err != nil {
		return decodeErr(ErrInvalidTimestamp, "time", err)
	}
	if rec.Time, err = raw.resolve(); err != nil {
		return decodeErr(ErrInvalidTimestamp, "time", err)
	}

	if s.msg == nil {
		return decodeErr(ErrMissingOrInvalidMessage, "msg", nil)
	}
	msg, err := s.msg.StringBytes()
	if err != nil {
		return decodeErr(ErrMissingOrInvalidMessage, "msg", err)
	}
	rec.Message = string(msg)
	return nil
}

func isNull(v *fastjson.Value) bool {
	return v == nil || v.Type() == fastjson.TypeNull
}

// uintValue reads v as an unsigned JSON integer no larger than max.
func uintValue(v *fastjson.Value, max uint64) (uint64, error) {
	if v.Type() != fastjson.TypeNumber {
		return 0, fmt.Errorf("want integer, got %s", v.Type())
	}
	n, err := v.Uint64()
	if err != nil {
		return 0, err
	}
	if n > max {
		return 0, fmt.Errorf("%d out of range [0, %d]", n, max)
	}
	return n, nil
}

func optString(v *fastjson.Value) (*string, error) {
	if isNull(v) {
		return nil, nil
	}
	b, err := v.StringBytes()
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// timeValue resolves the time key into its wire shape.
func timeValue(v *fastjson.Value) (rawTime, error) {
	switch v.Type() {
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return rawTime{kind: timeText, text: string(b)}, nil
	case fastjson.TypeNumber:
		ms, err := v.Int64()
		if err != nil {
			return rawTime{}, fmt.Errorf("want integer milliseconds: %w", err)
		}
		return rawTime{kind: timeMillis, millis: ms}, nil
	default:
		return rawTime{}, fmt.Errorf("want string or integer, got %s", v.Type())
	}
}

// newField copies v out of the parser so the field outlives it.
func newField(key string, v *fastjson.Value) Field {
	f := Field{Key: key}
	switch v.Type() {
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		f.Type = StringType
		f.Str = string(b)
		return f
	case fastjson.TypeNumber:
		f.Type = NumberType
	case fastjson.TypeTrue, fastjson.TypeFalse:
		f.Type = BoolType
	case fastjson.TypeNull:
		f.Type = NullType
	case fastjson.TypeObject:
		f.Type = ObjectType
	case fastjson.TypeArray:
		f.Type = ArrayType
	}
	f.Raw = v.MarshalTo(nil)
	return f
}
