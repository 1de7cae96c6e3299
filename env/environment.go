// Package env implements the lexically-scoped environment chain KS
// evaluates against: a binding table per block/call activation, linked to
// its enclosing scope by a parent pointer.
package env

import "github.com/ksgo/ks/value"

// Environment is one scope's binding table plus a link to its parent. The
// global scope's Parent is nil. Closures keep a live pointer to the
// Environment active when their declaration executed — not a copy — so
// mutations made by the enclosing scope after the function value was
// constructed stay visible through the closure.
type Environment struct {
	vars   map[string]value.Value
	Parent *Environment
}

// New creates a child environment of parent (nil for the global scope).
func New(parent *Environment) *Environment {
	return &Environment{vars: make(map[string]value.Value), Parent: parent}
}

// Define creates or overwrites a binding in this scope only. Used for
// every variable and function declaration: it always targets the current
// (innermost) scope, shadowing any outer binding of the same name.
func (e *Environment) Define(name string, v value.Value) {
	e.vars[name] = v
}

// Get resolves name by walking the parent chain; the first scope that
// defines it wins.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.vars[name]; ok {
		return v, true
	}
	if e.Parent != nil {
		return e.Parent.Get(name)
	}
	return nil, false
}

// Assign mutates the innermost scope that already defines name; it never
// creates a new binding. Reports false if name is undefined anywhere in
// the chain.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.vars[name]; ok {
		e.vars[name] = v
		return true
	}
	if e.Parent != nil {
		return e.Parent.Assign(name, v)
	}
	return false
}
