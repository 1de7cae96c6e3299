// Package eval walks an ast.Program and executes it against an
// env.Environment, producing gorun's printed output as its only visible
// side effect (besides returning a RuntimeError on failure).
package eval

import (
	"fmt"
	"io"

	"github.com/ksgo/ks/ast"
	"github.com/ksgo/ks/env"
	"github.com/ksgo/ks/function"
	"github.com/ksgo/ks/value"
)

// RuntimeError is raised for undefined names, bad arity, non-callable call
// targets, division by zero, unsupported operator/type combinations, and a
// bare return outside a function.
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("[%d] RuntimeError: %s", e.Line, e.Message)
}

func runtimeErr(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, args...)}
}

// control tags the outcome of executing a statement: either it ran to
// completion (signalNone) or it is unwinding a return (signalReturn). This
// is the "threaded Result" strategy for non-local return: every statement
// executor checks and re-propagates it instead of relying on panic/recover,
// so environment restoration on the way out is just the ordinary return
// path: a child environment is dropped once its executor returns.
type control int

const (
	signalNone control = iota
	signalReturn
)

// Interpreter executes a Program against a global Environment, writing
// gorun output to Out.
type Interpreter struct {
	Out    io.Writer
	Global *env.Environment
}

// New creates an Interpreter with a fresh global environment.
func New(out io.Writer) *Interpreter {
	return &Interpreter{Out: out, Global: env.New(nil)}
}

// Interpret executes every top-level statement of prog in order against
// the interpreter's global environment, stopping at the first
// RuntimeError. A return signal that escapes every statement (no
// enclosing call) is itself reported as a RuntimeError.
func (in *Interpreter) Interpret(prog *ast.Program) error {
	for _, stmt := range prog.Statements {
		sig, _, err := in.execStmt(stmt, in.Global)
		if err != nil {
			return err
		}
		if sig == signalReturn {
			return runtimeErr(stmt.Pos(), "return outside function")
		}
	}
	return nil
}

// execStmt executes one statement, returning a control signal (propagated
// by callers up through blocks/loops/ifs) and any RuntimeError.
func (in *Interpreter) execStmt(stmt ast.Stmt, e *env.Environment) (control, value.Value, error) {
	switch s := stmt.(type) {
	case *ast.VarDecl:
		return in.execVarDecl(s, e)
	case *ast.FuncDecl:
		return in.execFuncDecl(s, e)
	case *ast.ExprStmt:
		_, err := in.evalExpr(s.Expr, e)
		return signalNone, nil, err
	case *ast.Block:
		return in.execBlock(s, env.New(e))
	case *ast.If:
		return in.execIf(s, e)
	case *ast.While:
		return in.execWhile(s, e)
	case *ast.For:
		return in.execFor(s, e)
	case *ast.Return:
		return in.execReturn(s, e)
	case *ast.Gorun:
		return in.execGorun(s, e)
	default:
		return signalNone, nil, runtimeErr(stmt.Pos(), "unknown statement type %T", stmt)
	}
}

func (in *Interpreter) execVarDecl(s *ast.VarDecl, e *env.Environment) (control, value.Value, error) {
	var v value.Value = value.Null{}
	if s.Init != nil {
		var err error
		v, err = in.evalExpr(s.Init, e)
		if err != nil {
			return signalNone, nil, err
		}
	}
	e.Define(s.Name, v)
	return signalNone, nil, nil
}

func (in *Interpreter) execFuncDecl(s *ast.FuncDecl, e *env.Environment) (control, value.Value, error) {
	fn := &function.Function{Name: s.Name, Params: s.Params, Body: s.Body, Env: e}
	e.Define(s.Name, fn)
	return signalNone, nil, nil
}

// execBlock runs each inner statement in e (a fresh child environment the
// caller constructs), stopping at the first error or return signal.
// Environment restoration is implicit: e is discarded by the caller once
// this returns, whatever the outcome.
func (in *Interpreter) execBlock(b *ast.Block, e *env.Environment) (control, value.Value, error) {
	for _, stmt := range b.Statements {
		sig, v, err := in.execStmt(stmt, e)
		if err != nil {
			return signalNone, nil, err
		}
		if sig == signalReturn {
			return signalReturn, v, nil
		}
	}
	return signalNone, nil, nil
}

func (in *Interpreter) execIf(s *ast.If, e *env.Environment) (control, value.Value, error) {
	cond, err := in.evalExpr(s.Cond, e)
	if err != nil {
		return signalNone, nil, err
	}
	if value.Truthy(cond) {
		return in.execStmt(s.Then, e)
	}
	if s.Else != nil {
		return in.execStmt(s.Else, e)
	}
	return signalNone, nil, nil
}

func (in *Interpreter) execWhile(s *ast.While, e *env.Environment) (control, value.Value, error) {
	for {
		cond, err := in.evalExpr(s.Cond, e)
		if err != nil {
			return signalNone, nil, err
		}
		if !value.Truthy(cond) {
			return signalNone, nil, nil
		}
		sig, v, err := in.execStmt(s.Body, e)
		if err != nil {
			return signalNone, nil, err
		}
		if sig == signalReturn {
			return signalReturn, v, nil
		}
	}
}

// execFor creates the loop's enclosing scope once (so Init's bindings are
// visible to Cond/Step/Body across iterations), then loops. The scope is
// discarded when the loop exits.
func (in *Interpreter) execFor(s *ast.For, e *env.Environment) (control, value.Value, error) {
	loopEnv := env.New(e)

	if s.Init != nil {
		sig, v, err := in.execStmt(s.Init, loopEnv)
		if err != nil {
			return signalNone, nil, err
		}
		if sig == signalReturn {
			return signalReturn, v, nil
		}
	}

	for {
		if s.Cond != nil {
			cond, err := in.evalExpr(s.Cond, loopEnv)
			if err != nil {
				return signalNone, nil, err
			}
			if !value.Truthy(cond) {
				return signalNone, nil, nil
			}
		}

		sig, v, err := in.execStmt(s.Body, loopEnv)
		if err != nil {
			return signalNone, nil, err
		}
		if sig == signalReturn {
			return signalReturn, v, nil
		}

		if s.Step != nil {
			if _, err := in.evalExpr(s.Step, loopEnv); err != nil {
				return signalNone, nil, err
			}
		}
	}
}

func (in *Interpreter) execReturn(s *ast.Return, e *env.Environment) (control, value.Value, error) {
	var v value.Value = value.Null{}
	if s.Value != nil {
		var err error
		v, err = in.evalExpr(s.Value, e)
		if err != nil {
			return signalNone, nil, err
		}
	}
	return signalReturn, v, nil
}

func (in *Interpreter) execGorun(s *ast.Gorun, e *env.Environment) (control, value.Value, error) {
	v, err := in.evalExpr(s.Expr, e)
	if err != nil {
		return signalNone, nil, err
	}
	fmt.Fprintln(in.Out, Stringify(v))
	return signalNone, nil, nil
}

// Stringify is the canonical string form used by gorun and by '+'
// coercion: null -> "null", booleans -> "true"/"false", integers -> decimal
// digits, floats -> decimal with a trailing ".0" stripped when integral,
// strings -> themselves, functions -> their label.
func Stringify(v value.Value) string {
	return v.String()
}
