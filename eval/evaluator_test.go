/*
File    : loxgo/eval/evaluator_test.go
Author  : amaji
*/
package eval

import (
	"bytes"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaji/loxgo/lexer"
	"github.com/amaji/loxgo/parser"
)

// run lexes, parses and interprets src as a full program, capturing
// everything `print` writes.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens := lex.ConsumeTokens()
	require.False(t, lex.HadError, "unexpected lex errors: %v", lex.Errors)

	statements, err := parser.NewParser(tokens).ParseProgram()
	require.NoError(t, err, "unexpected parse error")

	var out bytes.Buffer
	ev := NewEvaluator()
	ev.SetWriter(&out)
	err = ev.Interpret(statements)
	return out.String(), err
}

// evalExpr lexes, parses and evaluates src as a single expression.
func evalExpr(t *testing.T, src string) (any, error) {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens := lex.ConsumeTokens()
	require.False(t, lex.HadError, "unexpected lex errors: %v", lex.Errors)

	expr, err := parser.NewParser(tokens).ParseExpression()
	require.NoError(t, err, "unexpected parse error")

	return NewEvaluator().Evaluate(expr)
}

func TestEvaluator_Arithmetic(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
	}{
		{"1 + 1", 2},
		{"2 * 15", 30},
		{"10 - 4", 6},
		{"9 / 2", 4.5},
		{"(1 + 2) * -3", -9},
	}

	for _, tt := range tests {
		v, err := evalExpr(t, tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, v, tt.input)
	}
}

func TestEvaluator_Comparisons(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"1 < 2", true},
		{"2 <= 2", true},
		{"3 > 2", true},
		{"2 >= 3", false},
		{"1 == 1", true},
		{"1 != 2", true},
		{`"a" == "a"`, true},
		{`"a" == 1`, false},
	}

	for _, tt := range tests {
		v, err := evalExpr(t, tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, v, tt.input)
	}
}

func TestEvaluator_UnaryOperators(t *testing.T) {
	v, err := evalExpr(t, "-5")
	require.NoError(t, err)
	assert.Equal(t, -5.0, v)

	v, err = evalExpr(t, "!false")
	require.NoError(t, err)
	assert.Equal(t, true, v)

	v, err = evalExpr(t, "!nil")
	require.NoError(t, err)
	assert.Equal(t, true, v)
}

func TestEvaluator_StringConcatenation(t *testing.T) {
	v, err := evalExpr(t, `"foo" + "bar"`)
	require.NoError(t, err)
	assert.Equal(t, "foobar", v)
}

func TestEvaluator_TruthinessRules(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"!nil", true},
		{"!false", true},
		{"!true", false},
		{"!0", false},
		{`!""`, false},
	}

	for _, tt := range tests {
		v, err := evalExpr(t, tt.input)
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.expected, v, tt.input)
	}
}

func TestEvaluator_LogicalOperatorsReturnOperandValue(t *testing.T) {
	v, err := evalExpr(t, `"a" or "b"`)
	require.NoError(t, err)
	assert.Equal(t, "a", v)

	v, err = evalExpr(t, `nil and 1`)
	require.NoError(t, err)
	assert.Nil(t, v)

	v, err = evalExpr(t, `false or "b"`)
	require.NoError(t, err)
	assert.Equal(t, "b", v)
}

func TestEvaluator_LogicalShortCircuits(t *testing.T) {
	// The right operand must never run: an undefined-variable read on
	// the right side would be a runtime error if it were evaluated.
	_, err := evalExpr(t, `false and undefinedVar`)
	assert.NoError(t, err)

	_, err = evalExpr(t, `true or undefinedVar`)
	assert.NoError(t, err)
}

func TestEvaluator_VariableScopingAndShadowing(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		{ var a = 2; print a; }
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestEvaluator_Assignment(t *testing.T) {
	out, err := run(t, `
		var a = 1;
		a = a + 1;
		print a;
	`)
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)
}

func TestEvaluator_IfElse(t *testing.T) {
	out, err := run(t, `
		if (1 < 2) print "yes"; else print "no";
	`)
	require.NoError(t, err)
	assert.Equal(t, "yes\n", out)
}

func TestEvaluator_WhileLoop(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) { print i; i = i + 1; }
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEvaluator_ForLoop(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) print i;
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestEvaluator_FunctionCallAndReturn(t *testing.T) {
	out, err := run(t, `
		fun add(a, b) { return a + b; }
		print add(1, 2);
	`)
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestEvaluator_BareReturnYieldsNil(t *testing.T) {
	out, err := run(t, `
		fun f() { return; }
		print f();
	`)
	require.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestEvaluator_FallingOffEndReturnsNil(t *testing.T) {
	out, err := run(t, `
		fun f() { var x = 1; }
		print f();
	`)
	require.NoError(t, err)
	assert.Equal(t, "nil\n", out)
}

func TestEvaluator_ClosureCapturesSharedMutableState(t *testing.T) {
	// The classic counter-closure regression test: two calls to the same
	// closure must observe each other's mutations to the captured `n`.
	out, err := run(t, `
		fun make(n) {
			fun inc() {
				n = n + 1;
				return n;
			}
			return inc;
		}
		var f = make(10);
		print f();
		print f();
	`)
	require.NoError(t, err)
	assert.Equal(t, "11\n12\n", out)
}

func TestEvaluator_ClosureOutlivesDefiningBlock(t *testing.T) {
	out, err := run(t, `
		var counter;
		{
			var count = 0;
			fun increment() { count = count + 1; return count; }
			counter = increment;
		}
		print counter();
		print counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestEvaluator_WrongArityIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Expected 2 arguments but got 1.")
}

func TestEvaluator_CallingNonFunctionIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Can only call functions and classes.")
}

func TestEvaluator_TypeMismatchErrors(t *testing.T) {
	tests := []struct {
		input string
		msg   string
	}{
		{`1 + "x"`, "Operands must be two numbers or two strings."},
		{`-"a"`, "Operand must be a number."},
		{`1 < "x"`, "Operands must be numbers."},
	}

	for _, tt := range tests {
		_, err := evalExpr(t, tt.input)
		require.Error(t, err, tt.input)
		assert.Contains(t, err.Error(), tt.msg, tt.input)
	}
}

func TestEvaluator_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print a;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined variable 'a'.")
}

func TestEvaluator_DivisionByZeroIsNotSpeciallyHandled(t *testing.T) {
	v, err := evalExpr(t, "1 / 0")
	require.NoError(t, err)
	assert.True(t, math.IsInf(v.(float64), 1))
}

func TestEvaluator_ClockNativeIsCallableWithNoArgs(t *testing.T) {
	v, err := evalExpr(t, "clock()")
	require.NoError(t, err)
	_, ok := v.(float64)
	assert.True(t, ok)
}

func TestEvaluator_ReturnOutsideFunctionTerminatesScript(t *testing.T) {
	out, err := run(t, `
		print 1;
		return;
		print 2;
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}
