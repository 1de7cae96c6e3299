package eval

import (
	"math"

	"github.com/ksgo/ks/ast"
	"github.com/ksgo/ks/env"
	"github.com/ksgo/ks/function"
	"github.com/ksgo/ks/value"
)

func (in *Interpreter) evalExpr(expr ast.Expr, e *env.Environment) (value.Value, error) {
	switch x := expr.(type) {
	case *ast.Literal:
		return evalLiteral(x), nil
	case *ast.Identifier:
		return in.evalIdentifier(x, e)
	case *ast.Assignment:
		return in.evalAssignment(x, e)
	case *ast.Unary:
		return in.evalUnary(x, e)
	case *ast.Binary:
		return in.evalBinary(x, e)
	case *ast.Call:
		return in.evalCall(x, e)
	default:
		return nil, runtimeErr(expr.Pos(), "unknown expression type %T", expr)
	}
}

func evalLiteral(l *ast.Literal) value.Value {
	switch l.Kind {
	case ast.IntegerLiteral:
		return value.Integer{Value: l.Int}
	case ast.FloatLiteral:
		return value.Float{Value: l.Float}
	case ast.StringLiteral:
		return value.String{Value: l.Str}
	case ast.BooleanLiteral:
		return value.Boolean{Value: l.Bool}
	case ast.NullLiteral:
		return value.Null{}
	default:
		return value.Null{}
	}
}

func (in *Interpreter) evalIdentifier(id *ast.Identifier, e *env.Environment) (value.Value, error) {
	v, ok := e.Get(id.Name)
	if !ok {
		return nil, runtimeErr(id.Line, "undefined variable %q", id.Name)
	}
	return v, nil
}

func (in *Interpreter) evalAssignment(a *ast.Assignment, e *env.Environment) (value.Value, error) {
	v, err := in.evalExpr(a.Value, e)
	if err != nil {
		return nil, err
	}
	if !e.Assign(a.Target, v) {
		return nil, runtimeErr(a.Line, "undefined variable %q", a.Target)
	}
	return v, nil
}

func (in *Interpreter) evalUnary(u *ast.Unary, e *env.Environment) (value.Value, error) {
	operand, err := in.evalExpr(u.Operand, e)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case "-":
		if !value.IsNumber(operand) {
			return nil, runtimeErr(u.Line, "unary '-' requires a number")
		}
		if i, ok := operand.(value.Integer); ok {
			return value.Integer{Value: -i.Value}, nil
		}
		return value.Float{Value: -value.AsFloat(operand)}, nil
	case "!":
		return value.Boolean{Value: !value.Truthy(operand)}, nil
	default:
		return nil, runtimeErr(u.Line, "unknown unary operator %q", u.Op)
	}
}

// evalBinary evaluates Left always, but only evaluates Right for && and ||
// when short-circuiting does not already decide the result — the one
// place in this evaluator where evaluation order is not simply
// left-then-right.
func (in *Interpreter) evalBinary(b *ast.Binary, e *env.Environment) (value.Value, error) {
	if b.Op == "&&" || b.Op == "||" {
		return in.evalShortCircuit(b, e)
	}

	left, err := in.evalExpr(b.Left, e)
	if err != nil {
		return nil, err
	}
	right, err := in.evalExpr(b.Right, e)
	if err != nil {
		return nil, err
	}

	switch b.Op {
	case "+":
		return evalAdd(left, right), nil
	case "-", "*", "%":
		return evalArith(b.Line, b.Op, left, right)
	case "/":
		return evalDiv(b.Line, left, right)
	case "==":
		return value.Boolean{Value: value.Equal(left, right)}, nil
	case "!=":
		return value.Boolean{Value: !value.Equal(left, right)}, nil
	case "<", "<=", ">", ">=":
		return evalOrder(b.Line, b.Op, left, right)
	default:
		return nil, runtimeErr(b.Line, "unknown binary operator %q", b.Op)
	}
}

// evalShortCircuit implements && and ||. Each short-circuits to a
// truthiness-normalized boolean of the decisive left operand (false for a
// falsy && left, true for a truthy || left) without evaluating the right
// operand at all. When a right operand must be evaluated, && still
// normalizes the result to a boolean (it is a boolean guard), while ||
// returns the right operand's value unchanged — the common "default value"
// idiom (`null || "fallback"` yields "fallback", not true).
func (in *Interpreter) evalShortCircuit(b *ast.Binary, e *env.Environment) (value.Value, error) {
	left, err := in.evalExpr(b.Left, e)
	if err != nil {
		return nil, err
	}
	leftTruthy := value.Truthy(left)

	if b.Op == "&&" {
		if !leftTruthy {
			return value.Boolean{Value: false}, nil
		}
		right, err := in.evalExpr(b.Right, e)
		if err != nil {
			return nil, err
		}
		return value.Boolean{Value: value.Truthy(right)}, nil
	}

	// b.Op == "||"
	if leftTruthy {
		return value.Boolean{Value: true}, nil
	}
	return in.evalExpr(b.Right, e)
}

// evalAdd implements '+': string concatenation if either operand is a
// string (via canonical stringify), otherwise numeric addition.
func evalAdd(left, right value.Value) value.Value {
	_, leftIsStr := left.(value.String)
	_, rightIsStr := right.(value.String)
	if leftIsStr || rightIsStr {
		return value.String{Value: Stringify(left) + Stringify(right)}
	}
	li, lok := left.(value.Integer)
	ri, rok := right.(value.Integer)
	if lok && rok {
		return value.Integer{Value: li.Value + ri.Value}
	}
	return value.Float{Value: value.AsFloat(left) + value.AsFloat(right)}
}

func evalArith(line int, op string, left, right value.Value) (value.Value, error) {
	if !value.IsNumber(left) || !value.IsNumber(right) {
		return nil, runtimeErr(line, "operator %q requires numbers", op)
	}
	li, lok := left.(value.Integer)
	ri, rok := right.(value.Integer)
	if lok && rok {
		switch op {
		case "-":
			return value.Integer{Value: li.Value - ri.Value}, nil
		case "*":
			return value.Integer{Value: li.Value * ri.Value}, nil
		case "%":
			if ri.Value == 0 {
				return nil, runtimeErr(line, "Division by zero")
			}
			return value.Integer{Value: li.Value % ri.Value}, nil
		}
	}
	lf, rf := value.AsFloat(left), value.AsFloat(right)
	switch op {
	case "-":
		return value.Float{Value: lf - rf}, nil
	case "*":
		return value.Float{Value: lf * rf}, nil
	case "%":
		if rf == 0 {
			return nil, runtimeErr(line, "Division by zero")
		}
		return value.Float{Value: math.Mod(lf, rf)}, nil
	}
	return nil, runtimeErr(line, "unknown arithmetic operator %q", op)
}

// evalDiv implements '/': always floating-point division; a zero
// right-hand side is a RuntimeError regardless of operand types.
func evalDiv(line int, left, right value.Value) (value.Value, error) {
	if !value.IsNumber(left) || !value.IsNumber(right) {
		return nil, runtimeErr(line, "operator '/' requires numbers")
	}
	rf := value.AsFloat(right)
	if rf == 0 {
		return nil, runtimeErr(line, "Division by zero")
	}
	return value.Float{Value: value.AsFloat(left) / rf}, nil
}

// evalOrder implements <, <=, >, >=: defined only between two numbers or
// two strings.
func evalOrder(line int, op string, left, right value.Value) (value.Value, error) {
	if value.IsNumber(left) && value.IsNumber(right) {
		lf, rf := value.AsFloat(left), value.AsFloat(right)
		return value.Boolean{Value: compareFloats(op, lf, rf)}, nil
	}
	ls, lok := left.(value.String)
	rs, rok := right.(value.String)
	if lok && rok {
		return value.Boolean{Value: compareStrings(op, ls.Value, rs.Value)}, nil
	}
	return nil, runtimeErr(line, "operator %q requires two numbers or two strings", op)
}

func compareFloats(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	}
	return false
}

func compareStrings(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case "<=":
		return l <= r
	case ">":
		return l > r
	case ">=":
		return l >= r
	}
	return false
}

// evalCall implements Call(callee, args): evaluate callee, require it to
// be a function value; evaluate args strictly left-to-right; check arity;
// bind a fresh environment whose parent is the function's captured
// environment (not the call site's); execute the body.
func (in *Interpreter) evalCall(c *ast.Call, e *env.Environment) (value.Value, error) {
	calleeVal, err := in.evalExpr(c.Callee, e)
	if err != nil {
		return nil, err
	}
	fn, ok := calleeVal.(*function.Function)
	if !ok {
		return nil, runtimeErr(c.Line, "Can only call functions")
	}

	args := make([]value.Value, len(c.Args))
	for i, argExpr := range c.Args {
		v, err := in.evalExpr(argExpr, e)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(args) != len(fn.Params) {
		return nil, runtimeErr(c.Line, "Expected %d arguments but got %d", len(fn.Params), len(args))
	}

	callEnv := env.New(fn.Env)
	for i, param := range fn.Params {
		callEnv.Define(param, args[i])
	}

	sig, v, err := in.execBlock(fn.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if sig == signalReturn {
		return v, nil
	}
	return value.Null{}, nil
}
