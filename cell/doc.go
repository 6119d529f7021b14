// Package cell defines the typed scalar stored in every table cell.
//
// A Value holds exactly one of four variants: a 64-bit signed integer, a
// 32-bit float, a 64-bit float, or UTF-8 text. Values are immutable and
// carry no implicit conversion between variants; the only bridge is the
// display string produced by Stringify.
//
// # Basic Usage
//
//	v := cell.Int(30)
//	fmt.Println(cell.Stringify(v)) // 30
//
//	if n, ok := v.AsInt(); ok {
//	    fmt.Println(n + 1)
//	}
//
// # Formatting
//
// Integers print as decimal digits. Floats and doubles use the shortest
// representation that round-trips at their own precision, so
// cell.Float(2.5) and cell.Double(2.5) both print as "2.5". Text prints
// unchanged.
package cell
