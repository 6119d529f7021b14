package cell

import (
	"math"
	"testing"
)

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"zero value", Value{}, ""},
		{"int", Int(30), "30"},
		{"negative int", Int(-42), "-42"},
		{"max int64", Int(math.MaxInt64), "9223372036854775807"},
		{"float", Float(2.5), "2.5"},
		{"float single precision", Float(0.1), "0.1"},
		{"double", Double(2.5), "2.5"},
		{"double whole", Double(3), "3"},
		{"double large", Double(1e21), "1e+21"},
		{"double negative", Double(-0.125), "-0.125"},
		{"text", Text("Bob"), "Bob"},
		{"text with spaces", Text("  padded  "), "  padded  "},
		{"text unicode", Text("héllo"), "héllo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.v); got != tt.want {
				t.Errorf("Stringify() = %q, want %q", got, tt.want)
			}
			if got := tt.v.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_Accessors(t *testing.T) {
	if n, ok := Int(7).AsInt(); !ok || n != 7 {
		t.Errorf("Int(7).AsInt() = %d, %v", n, ok)
	}
	if _, ok := Int(7).AsDouble(); ok {
		t.Error("Int(7).AsDouble() should not succeed")
	}
	if f, ok := Float(1.5).AsFloat(); !ok || f != 1.5 {
		t.Errorf("Float(1.5).AsFloat() = %v, %v", f, ok)
	}
	if _, ok := Float(1.5).AsDouble(); ok {
		t.Error("Float(1.5).AsDouble() should not succeed")
	}
	if f, ok := Double(1.5).AsDouble(); !ok || f != 1.5 {
		t.Errorf("Double(1.5).AsDouble() = %v, %v", f, ok)
	}
	if s, ok := Text("x").AsText(); !ok || s != "x" {
		t.Errorf("Text(\"x\").AsText() = %q, %v", s, ok)
	}
	if _, ok := Text("1").AsInt(); ok {
		t.Error("Text(\"1\").AsInt() should not succeed")
	}
}

func TestValue_Kind(t *testing.T) {
	tests := []struct {
		v    Value
		kind Kind
		name string
	}{
		{Int(1), KindInt, "int"},
		{Float(1), KindFloat, "float"},
		{Double(1), KindDouble, "double"},
		{Text("a"), KindText, "text"},
		{Value{}, KindText, "text"},
	}

	for _, tt := range tests {
		if got := tt.v.Kind(); got != tt.kind {
			t.Errorf("Kind() = %v, want %v", got, tt.kind)
		}
		if got := tt.v.Kind().String(); got != tt.name {
			t.Errorf("Kind().String() = %q, want %q", got, tt.name)
		}
	}
}

func TestValue_Native(t *testing.T) {
	if got, ok := Int(3).Native().(int64); !ok || got != 3 {
		t.Errorf("Int(3).Native() = %#v", Int(3).Native())
	}
	if got, ok := Float(3).Native().(float32); !ok || got != 3 {
		t.Errorf("Float(3).Native() = %#v", Float(3).Native())
	}
	if got, ok := Double(3).Native().(float64); !ok || got != 3 {
		t.Errorf("Double(3).Native() = %#v", Double(3).Native())
	}
	if got, ok := Text("3").Native().(string); !ok || got != "3" {
		t.Errorf("Text(\"3\").Native() = %#v", Text("3").Native())
	}
}
