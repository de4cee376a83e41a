package validation

import (
	"fmt"
	"strings"
)

// Value is a bound field value resolved from the submission payload. Present
// is false when the field's path did not resolve to anything; rules treat an
// absent value as empty rather than crashing.
type Value struct {
	Raw     any
	Present bool
}

// Absent is the zero Value, returned when path resolution fails.
var Absent = Value{}

// Bound wraps a resolved payload value.
func Bound(raw any) Value {
	return Value{Raw: raw, Present: true}
}

// String renders the value as a string. Absent and nil values yield "".
func (v Value) String() string {
	if !v.Present || v.Raw == nil {
		return ""
	}
	if s, ok := v.Raw.(string); ok {
		return s
	}
	return fmt.Sprint(v.Raw)
}

// Trimmed returns the string form with surrounding whitespace removed.
func (v Value) Trimmed() string {
	return strings.TrimSpace(v.String())
}

// Truthy reports whether the trimmed value is non-empty and not "0",
// matching checkbox semantics.
func (v Value) Truthy() bool {
	t := v.Trimmed()
	return t != "" && t != "0"
}
