package cell

import (
	"fmt"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	// KindText is UTF-8 text. It is the zero Kind so the zero Value is "".
	KindText Kind = iota
	// KindInt is a 64-bit signed integer.
	KindInt
	// KindFloat is a single-precision float.
	KindFloat
	// KindDouble is a double-precision float.
	KindDouble
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Value is a tagged union over {int64, float32, float64, string}.
//
// Build one with Int, Float, Double or Text. The zero Value is empty text.
type Value struct {
	kind Kind
	i    int64
	f32  float32
	f64  float64
	s    string
}

// Int returns an integer Value.
func Int(n int64) Value { return Value{kind: KindInt, i: n} }

// Float returns a single-precision Value.
func Float(f float32) Value { return Value{kind: KindFloat, f32: f} }

// Double returns a double-precision Value.
func Double(f float64) Value { return Value{kind: KindDouble, f64: f} }

// Text returns a text Value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// AsInt returns the integer payload and true if v is an integer.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float32 payload and true if v is a float.
func (v Value) AsFloat() (float32, bool) { return v.f32, v.kind == KindFloat }

// AsDouble returns the float64 payload and true if v is a double.
func (v Value) AsDouble() (float64, bool) { return v.f64, v.kind == KindDouble }

// AsText returns the text payload and true if v is text.
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// Native returns the payload as an untyped Go value (int64, float32,
// float64 or string). Formatters that hand values to encoders use it.
func (v Value) Native() interface{} {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f32
	case KindDouble:
		return v.f64
	default:
		return v.s
	}
}

// String implements fmt.Stringer using Stringify.
func (v Value) String() string { return Stringify(v) }

// Stringify converts v to its display text.
func Stringify(v Value) string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(float64(v.f32), 'g', -1, 32)
	case KindDouble:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	default:
		return v.s
	}
}
