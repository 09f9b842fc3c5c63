package core

import (
	"strings"
	"testing"
)

func TestField_StringValue(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{
			name:  "Plain string",
			field: String("user", "alice"),
			want:  "alice",
		},
		{
			name:  "Empty string",
			field: String("user", ""),
			want:  `""`,
		},
		{
			name:  "String with space",
			field: String("path", "GET /"),
			want:  `"GET /"`,
		},
		{
			name:  "String with tab is not quoted",
			field: String("path", "a\tb"),
			want:  "a\tb",
		},
		{
			name:  "Integer",
			field: RawJSON("count", NumberType, "5"),
			want:  "5",
		},
		{
			name:  "Float keeps input text",
			field: RawJSON("ratio", NumberType, "1.50"),
			want:  "1.50",
		},
		{
			name:  "Bool",
			field: RawJSON("ok", BoolType, "true"),
			want:  "true",
		},
		{
			name:  "Null",
			field: RawJSON("parent", NullType, "null"),
			want:  "null",
		},
		{
			name:  "Empty object",
			field: RawJSON("obj", ObjectType, "{}"),
			want:  "{}",
		},
		{
			name:  "Empty array",
			field: RawJSON("arr", ArrayType, "[]"),
			want:  "[]",
		},
		{
			name:  "Object is indented",
			field: RawJSON("req", ObjectType, `{"method":"GET","tags":[1,2]}`),
			want: strings.Join([]string{
				`{`,
				`  "method": "GET",`,
				`  "tags": [`,
				`    1,`,
				`    2`,
				`  ]`,
				`}`,
			}, "\n"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.StringValue(); got != tt.want {
				t.Errorf("Field.StringValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestField_StringValueIdempotent(t *testing.T) {
	f := RawJSON("req", ObjectType, `{"a":{"b":[true,null]}}`)
	if a, b := f.StringValue(), f.StringValue(); a != b {
		t.Errorf("StringValue() not stable: %q != %q", a, b)
	}
}

func TestFieldType_String(t *testing.T) {
	if got := ObjectType.String(); got != "object" {
		t.Errorf("FieldType.String() = %v, want object", got)
	}
	if got := FieldType(99).String(); got != "unknown" {
		t.Errorf("FieldType.String() = %v, want unknown", got)
	}
}

func BenchmarkFieldStringValue(b *testing.B) {
	fields := []Field{
		String("user", "alice"),
		String("path", "GET /index.html"),
		RawJSON("count", NumberType, "42"),
		RawJSON("req", ObjectType, `{"method":"GET","url":"/"}`),
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, f := range fields {
			_ = f.StringValue()
		}
	}
}
