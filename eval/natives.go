/*
File    : loxgo/eval/natives.go
Author  : amaji
*/
package eval

import "time"

// defineNatives registers the host-provided functions available to
// every program without a declaration: just `clock`, for timing loops
// in test scripts.
func (e *Evaluator) defineNatives() {
	e.Globals.Define("clock", &NativeFunction{
		Name:    "clock",
		NumArgs: 0,
		Fn: func(arguments []any) (any, error) {
			return float64(time.Now().UnixNano()) / 1e9, nil
		},
	})
}
