package card

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type valueKind int

const (
	absent valueKind = iota
	number
	text
	raw
)

// Value is an optional card statistic. It is either absent (written as null),
// a float, a symbolic string such as "CC", or a JSON value copied verbatim.
type Value struct {
	kind valueKind
	num  float64
	str  string
	raw  json.RawMessage
}

// Number returns a numeric value
func Number(f float64) Value {
	return Value{kind: number, num: f}
}

// Text returns a string value
func Text(s string) Value {
	return Value{kind: text, str: s}
}

// Raw returns a value holding msg verbatim. Empty or null messages are absent,
// and JSON floats are re-read so they print like any other number.
func Raw(msg json.RawMessage) Value {
	msg = bytes.TrimSpace(msg)
	if len(msg) == 0 || bytes.Equal(msg, []byte("null")) {
		return Value{}
	}
	if isFloatLiteral(msg) {
		if f, err := strconv.ParseFloat(string(msg), 64); err == nil {
			return Number(f)
		}
	}
	if msg[0] == '"' {
		var s string
		if err := json.Unmarshal(msg, &s); err == nil {
			return Text(s)
		}
	}
	return Value{kind: raw, raw: append(json.RawMessage(nil), msg...)}
}

// IsAbsent reports whether the value is missing
func (v Value) IsAbsent() bool {
	return v.kind == absent
}

// Float returns the numeric value, if there is one
func (v Value) Float() (float64, bool) {
	return v.num, v.kind == number
}

// AsText returns the string value, if there is one
func (v Value) AsText() (string, bool) {
	return v.str, v.kind == text
}

// String renders the value for display
func (v Value) String() string {
	switch v.kind {
	case number:
		return formatFloat(v.num)
	case text:
		return v.str
	case raw:
		return string(v.raw)
	}
	return "-"
}

// MarshalJSON implements json.Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case number:
		if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
			return nil, fmt.Errorf("unsupported stat value: %v", v.num)
		}
		return []byte(formatFloat(v.num)), nil
	case text:
		return marshalString(v.str)
	case raw:
		return v.raw, nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	}
	if !json.Valid(data) {
		return fmt.Errorf("invalid stat value: %s", data)
	}
	*v = Raw(data)
	return nil
}

// formatFloat prints the shortest representation of f. Integral values keep
// a trailing ".0" and magnitudes below 1e-4 or from 1e16 up use an exponent.
func formatFloat(f float64) string {
	if f == 0 {
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, _ := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if exp < -4 || exp >= 16 {
		return sci
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func isFloatLiteral(msg []byte) bool {
	if msg[0] != '-' && (msg[0] < '0' || msg[0] > '9') {
		return false
	}
	return bytes.ContainsAny(msg, ".eE")
}

func marshalString(s string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
