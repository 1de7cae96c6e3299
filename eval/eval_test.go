package eval

import (
	"bytes"
	"testing"

	"github.com/ksgo/ks/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, src string) (string, error) {
	t.Helper()
	prog, err := parser.Parse(src)
	require.NoError(t, err)

	var buf bytes.Buffer
	in := New(&buf)
	err = in.Interpret(prog)
	return buf.String(), err
}

func TestClosureCounter(t *testing.T) {
	out, err := run(t, `
		func make() { let n = 0; func inc() { n = n + 1; return n; } return inc; }
		let f = make();
		gorun(f());
		gorun(f());
		gorun(f());
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestMixedArithmeticAndStringConcat(t *testing.T) {
	out, err := run(t, `
		gorun(1 + 2);
		gorun("x=" + 3);
		gorun(7 / 2);
		gorun(7 % 2);
	`)
	require.NoError(t, err)
	assert.Equal(t, "3\nx=3\n3.5\n1\n", out)
}

func TestShortCircuitAndTruthiness(t *testing.T) {
	out, err := run(t, `
		gorun(0 && "unused");
		gorun(null || "fallback");
		gorun(!null);
	`)
	require.NoError(t, err)
	assert.Equal(t, "true\nfallback\ntrue\n", out)
}

func TestForLoopMutableState(t *testing.T) {
	out, err := run(t, `
		let s = 0;
		for (let i = 0; i < 5; i = i + 1) { s = s + i; }
		gorun(s);
	`)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func TestDivisionByZero(t *testing.T) {
	_, err := run(t, `gorun(1/0);`)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
	assert.Contains(t, rtErr.Message, "Division by zero")
}

func TestScopeShadowing(t *testing.T) {
	out, err := run(t, `
		let x = 1;
		{ let x = 2; gorun(x); }
		gorun(x);
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestAssignmentMutatesOuterScope(t *testing.T) {
	out, err := run(t, `
		let x = 1;
		{ x = 2; }
		gorun(x);
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestUndefinedAssignmentIsRuntimeError(t *testing.T) {
	_, err := run(t, `x = 1;`)
	require.Error(t, err)
}

func TestArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `func f(a) { return a; } gorun(f(1, 2));`)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
	assert.Contains(t, rtErr.Message, "Expected 1 arguments but got 2")
}

func TestReturnOutsideFunctionIsRuntimeError(t *testing.T) {
	_, err := run(t, `return 1;`)
	require.Error(t, err)
}

func TestCallNonFunctionIsRuntimeError(t *testing.T) {
	_, err := run(t, `let x = 1; gorun(x());`)
	require.Error(t, err)
	var rtErr *RuntimeError
	require.ErrorAs(t, err, &rtErr)
	assert.Contains(t, rtErr.Message, "Can only call functions")
}
