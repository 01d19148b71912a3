// SPDX-License-Identifier: MIT

// Package table: value model.
// This file contains ONLY the cell-level types (Kind, Value, Key) and their
// ordering. Schemas live in schema.go, records in table.go.
package table

import (
	"cmp"
	"math"
	"strconv"
	"time"
)

// Kind is the static type of a column and of the values stored in it.
type Kind uint8

const (
	// Invalid is the zero Kind; it is never a legal column kind.
	Invalid Kind = iota
	// Number holds a finite float64.
	Number
	// String holds arbitrary text.
	String
	// Time holds a time.Time instant (or a time-of-day on the zero date).
	Time
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case String:
		return "string"
	case Time:
		return "time"
	default:
		return "invalid"
	}
}

// valid reports whether k is one of the three legal column kinds.
func (k Kind) valid() bool { return k == Number || k == String || k == Time }

// Layouts used by Value.String for Time values. Values on the zero date
// (year 0, January 1) are clock readings and render as ClockLayout.
const (
	TimeLayout  = time.DateTime
	ClockLayout = time.TimeOnly
)

// Value is a single cell: exactly one of number, string or time, tagged by kind.
// The zero Value has Kind Invalid and is rejected by every constructor.
type Value struct {
	kind Kind
	num  float64
	str  string
	tm   time.Time
}

// NumberValue returns a Number value. Finiteness is checked when the value
// enters a Table, not here.
func NumberValue(f float64) Value { return Value{kind: Number, num: f} }

// StringValue returns a String value.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// TimeValue returns a Time value.
func TimeValue(t time.Time) Value { return Value{kind: Time, tm: t} }

// Kind returns the value's variant.
func (v Value) Kind() Kind { return v.kind }

// Float returns the number and true for Number values.
func (v Value) Float() (float64, bool) { return v.num, v.kind == Number }

// Text returns the string and true for String values.
func (v Value) Text() (string, bool) { return v.str, v.kind == String }

// Time returns the instant and true for Time values.
func (v Value) Time() (time.Time, bool) { return v.tm, v.kind == Time }

// IsValid reports whether v carries one of the legal kinds.
func (v Value) IsValid() bool { return v.kind.valid() }

// finite reports whether v is not a NaN/±Inf number.
func (v Value) finite() bool {
	return v.kind != Number || !(math.IsNaN(v.num) || math.IsInf(v.num, 0))
}

// String renders v for display and for use as a column name.
// Numbers use the shortest representation that round-trips ('f' format, so
// 1001400 stays "1001400" instead of "1.0014e+06").
func (v Value) String() string {
	switch v.kind {
	case Number:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case String:
		return v.str
	case Time:
		if y, m, d := v.tm.Date(); y == 0 && m == time.January && d == 1 {
			return v.tm.Format(ClockLayout)
		}
		return v.tm.Format(TimeLayout)
	default:
		return "<invalid>"
	}
}

// Equal reports whether a and b have the same kind and compare equal.
func (v Value) Equal(o Value) bool { return v.kind == o.kind && Compare(v, o) == 0 }

// Key is a comparable projection of a Value, suitable as a map key.
// Two values have equal keys iff Equal reports true.
type Key struct {
	kind Kind
	num  float64
	str  string
	ns   int64
}

// Key returns the comparable projection of v. Time values are keyed by their
// UnixNano instant, so equal instants in different locations share a key.
func (v Value) Key() Key {
	k := Key{kind: v.kind, num: v.num, str: v.str}
	if k.num == 0 {
		k.num = 0 // fold -0 into +0
	}
	if v.kind == Time {
		k.ns = v.tm.UnixNano()
	}

	return k
}

// Compare orders two values: -1 if a < b, 0 if equal, +1 if a > b.
// Values of the same kind compare naturally (numeric, lexicographic,
// chronological); values of different kinds are ordered by Kind.
// Complexity: O(1) for numbers and times, O(len) for strings.
func Compare(a, b Value) int {
	if a.kind != b.kind {
		return cmp.Compare(a.kind, b.kind)
	}
	switch a.kind {
	case Number:
		return cmp.Compare(a.num, b.num)
	case String:
		return cmp.Compare(a.str, b.str)
	case Time:
		return a.tm.Compare(b.tm)
	default:
		return 0
	}
}

// CompareTuples orders two equal-length value tuples lexicographically.
// Shorter tuples sort first when one is a prefix of the other.
func CompareTuples(a, b []Value) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}

	return cmp.Compare(len(a), len(b))
}
