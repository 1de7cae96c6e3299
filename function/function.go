// Package function holds the Function runtime value. It lives in its own
// package — separate from value — because a Function needs both ast
// (its declaration) and env (its captured scope), and value cannot import
// either without creating value <-> ast <-> env <-> function cycle. value's
// Value interface is satisfied here by duck typing, the same split the
// teacher repo uses to keep its function type out of objects.
package function

import (
	"fmt"

	"github.com/ksgo/ks/ast"
	"github.com/ksgo/ks/env"
	"github.com/ksgo/ks/value"
)

// Function is a closure: a declaration plus the environment that was
// active when the declaration executed. Calling it creates a fresh child
// of Env, not of the call site — that is exactly what makes it lexically
// scoped rather than dynamically scoped.
type Function struct {
	Name   string
	Params []string
	Body   *ast.Block
	Env    *env.Environment
}

func (f *Function) Type() value.Type { return value.FunctionType }

// String returns an implementation-defined non-empty label, per the
// value semantics' stringify contract for functions.
func (f *Function) String() string {
	if f.Name == "" {
		return "<function>"
	}
	return fmt.Sprintf("<function %s>", f.Name)
}
