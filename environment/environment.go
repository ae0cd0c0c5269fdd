/*
File    : loxgo/environment/environment.go
Author  : amaji
*/
package environment

import "fmt"

// Environment defines a lexical scope boundary for variable lifetime and
// accessibility.
//
// Environment implements a hierarchical scope chain that enables lexical
// scoping and closures. Each scope maintains its own variable bindings
// and can access variables from parent scopes. This structure supports:
//   - Variable shadowing: inner scopes can redeclare a name from an outer one
//   - Closures: a function captures its defining Environment by reference,
//     so later mutations made through the closure are visible to anyone
//     else still holding that same *Environment
//   - Block scoping: every block gets its own child Environment
//
// A function captures its defining *Environment directly (a pointer), not
// a snapshot of it. This is the one point where this implementation
// deliberately breaks from a scope-copy-at-capture-time design: a copy
// would let two closures created from the same scope diverge on writes,
// which is wrong for the shared-mutable-upvalue semantics this language
// requires (see eval.Function).
type Environment struct {
	Values map[string]any
	Parent *Environment
}

// NewEnvironment creates a new Environment with the given parent.
// parent == nil creates the global environment.
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		Values: make(map[string]any),
		Parent: parent,
	}
}

// Define binds name to value in THIS environment, overwriting any
// existing binding of the same name in this scope (shadowing is legal:
// `var a = 1; var a = 2;` redeclares rather than erroring).
func (e *Environment) Define(name string, value any) {
	e.Values[name] = value
}

// Get looks up name in this environment and, failing that, in every
// enclosing environment. It returns an error naming the variable if the
// lookup fails anywhere in the chain.
func (e *Environment) Get(name string) (any, error) {
	if value, ok := e.Values[name]; ok {
		return value, nil
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign updates an existing binding of name to value, searching
// outward from this environment. Unlike Define it never creates a new
// binding: assigning to a name that was never declared anywhere in the
// chain is an error.
func (e *Environment) Assign(name string, value any) error {
	if _, ok := e.Values[name]; ok {
		e.Values[name] = value
		return nil
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
