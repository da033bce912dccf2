package grammar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leonardinius/gocalc/internal/grammar"
)

func TestAdditiveShapes(t *testing.T) {
	t.Parallel()

	testcases := []struct {
		name     string
		input    string
		expected string
		rest     string
		ok       bool
	}{
		{name: "number", input: "3", expected: "3", rest: "", ok: true},
		{name: "float", input: "1.5", expected: "1.5", rest: "", ok: true},
		{name: "sum", input: "1+2", expected: "(+ 1 2)", rest: "", ok: true},
		{name: "product", input: "4*2", expected: "(* 4 2)", rest: "", ok: true},
		{name: "precedence", input: "3+4*2", expected: "(+ 3 (* 4 2))", rest: "", ok: true},
		{name: "right associative sum", input: "1+2+3", expected: "(+ 1 (+ 2 3))", rest: "", ok: true},
		{name: "right associative product", input: "2*3*4", expected: "(* 2 (* 3 4))", rest: "", ok: true},
		{name: "parens override", input: "(3+4)*2", expected: "(* (+ 3 4) 2)", rest: "", ok: true},
		{name: "nested parens", input: "((1))", expected: "1", rest: "", ok: true},
		{name: "spaces", input: " 1 + 2 * 3 ", expected: "(+ 1 (* 2 3))", rest: "", ok: true},
		{name: "trailing operator", input: "2+", expected: "2", rest: "+", ok: true},
		{name: "trailing garbage", input: "1 2", expected: "1", rest: "2", ok: true},
		{name: "not an expression", input: "sasdasd", ok: false},
		{name: "unclosed paren", input: "(1+2", ok: false},
		{name: "empty", input: "", ok: false},
	}

	printer := grammar.NewAstPrinter()
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			expr, rest, ok := grammar.Additive().Parse(tc.input)
			require.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, printer.Print(expr))
				assert.Equal(t, tc.rest, rest)
			}
		})
	}
}

func TestNumberLiteral(t *testing.T) {
	t.Parallel()

	printer := grammar.NewAstPrinter()

	// Float is tried before Natural, so the fraction is not stranded.
	expr, rest, ok := grammar.NumberLiteral().Parse("22.23+1")
	require.True(t, ok)
	assert.Equal(t, "22.23", printer.Print(expr))
	assert.Equal(t, "+1", rest)

	// A second point does not belong to the literal.
	expr, rest, ok = grammar.NumberLiteral().Parse("1.2.3")
	require.True(t, ok)
	assert.Equal(t, "1.2", printer.Print(expr))
	assert.Equal(t, ".3", rest)

	_, _, ok = grammar.NumberLiteral().Parse("x")
	assert.False(t, ok)
}

func TestUnclosedParenFailsOutright(t *testing.T) {
	t.Parallel()

	// "(1+2" is not a prefix match: the grouping rule needs ')' and the
	// number fallback needs a digit, so additive fails as a whole.
	_, rest, ok := grammar.Additive().Parse("(1+2")
	assert.False(t, ok)
	assert.Equal(t, "(1+2", rest)
}
