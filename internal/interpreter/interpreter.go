// Package interpreter drives the arithmetic grammar: it parses a whole
// input string and evaluates the resulting expression tree.
package interpreter

import (
	"github.com/leonardinius/gocalc/internal/calcerrors"
	"github.com/leonardinius/gocalc/internal/grammar"
)

type Interpreter interface {
	// Interpret parses the full input and evaluates it. It fails with
	// calcerrors.ErrParse when the grammar matches nothing, and with
	// calcerrors.ErrUnconsumedInput when the grammar matches only a
	// prefix of the input.
	Interpret(input string) (float64, error)

	// Parse parses the full input into an expression tree without
	// evaluating it. Same error contract as Interpret.
	Parse(input string) (grammar.Expr, error)

	// Evaluate folds an already-parsed expression tree to its value.
	// Division by zero is not checked; it yields ±Inf or NaN.
	Evaluate(expr grammar.Expr) float64
}

type interpreter struct{}

func NewInterpreter() Interpreter {
	return &interpreter{}
}

// Interpret implements Interpreter.
func (i *interpreter) Interpret(input string) (float64, error) {
	expr, err := i.Parse(input)
	if err != nil {
		return 0, err
	}

	return i.Evaluate(expr), nil
}

// Parse implements Interpreter.
func (i *interpreter) Parse(input string) (grammar.Expr, error) {
	expr, rest, ok := grammar.Additive().Parse(input)
	if !ok {
		return nil, calcerrors.ErrParse
	}
	if rest != "" {
		return nil, calcerrors.NewUnconsumedInputError(rest)
	}

	return expr, nil
}

// Evaluate implements Interpreter.
func (i *interpreter) Evaluate(expr grammar.Expr) float64 {
	return expr.Accept(i).(float64)
}

// VisitNumber implements grammar.Visitor.
func (i *interpreter) VisitNumber(expr *grammar.Number) any {
	return expr.Value
}

// VisitPlus implements grammar.Visitor.
func (i *interpreter) VisitPlus(expr *grammar.Plus) any {
	return i.Evaluate(expr.Left) + i.Evaluate(expr.Right)
}

// VisitMinus implements grammar.Visitor.
func (i *interpreter) VisitMinus(expr *grammar.Minus) any {
	return i.Evaluate(expr.Left) - i.Evaluate(expr.Right)
}

// VisitMult implements grammar.Visitor.
func (i *interpreter) VisitMult(expr *grammar.Mult) any {
	return i.Evaluate(expr.Left) * i.Evaluate(expr.Right)
}

// VisitDiv implements grammar.Visitor.
func (i *interpreter) VisitDiv(expr *grammar.Div) any {
	return i.Evaluate(expr.Left) / i.Evaluate(expr.Right)
}

var _ grammar.Visitor = (*interpreter)(nil)
