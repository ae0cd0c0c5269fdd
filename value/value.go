/*
File    : loxgo/value/value.go
Author  : amaji
*/

// Package value defines the runtime value model of loxgo: the handful of
// Go-native types an evaluated expression can produce (nil, bool,
// float64, string), plus the Callable contract shared by native and
// user-defined functions. There is no wrapper interface around literal
// values — they are represented directly as `any` holding one of the
// four Go types above, keeping arithmetic/comparison dispatch a plain Go
// type switch instead of an extra layer of method calls.
package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Callable is implemented by anything that can appear on the left of a
// call expression: user-defined functions and native functions supplied
// by the host program. Concrete implementations (eval.Function,
// eval.NativeFunction) live in package eval, which is the only package
// that needs to run one; Callable is declared here purely so that
// Stringify/TypeName can recognize a callable value without importing
// eval (which itself imports value — that would be a cycle).
type Callable interface {
	Arity() int
	String() string
}

// IsTruthy implements loxgo's truthiness rule: everything is truthy
// except `nil` and the boolean `false`. Notably 0 and "" are truthy.
func IsTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements `==`/`!=` value equality. nil is only equal to nil;
// numbers, strings and booleans compare by Go equality.
func IsEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a runtime value the way `print` and the REPL display
// it. Numbers print without a trailing ".0" when integral (unlike the
// NUMBER token's own canonical literal form, which always keeps it) and
// without exponent notation for ordinary magnitudes.
func Stringify(v any) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		text := strconv.FormatFloat(val, 'f', -1, 64)
		if strings.HasSuffix(text, ".0") {
			text = strings.TrimSuffix(text, ".0")
		}
		return text
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case Callable:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// TypeName names a runtime value's type for diagnostics, e.g. the
// "Operand must be a number." class of runtime errors.
func TypeName(v any) string {
	if v == nil {
		return "nil"
	}
	switch v.(type) {
	case float64:
		return "number"
	case string:
		return "string"
	case bool:
		return "boolean"
	case Callable:
		return "function"
	default:
		return "unknown"
	}
}
