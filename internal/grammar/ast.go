// Package grammar defines the arithmetic expression grammar and its AST.
//
// The grammar is built from parser combinators; rules are ordered-choice
// (PEG-style), trying the left alternative first and falling back to the
// right one only on outright failure.
package grammar

// Visitor is the interface that wraps the Visit methods.
//
// A Visit method is called for the matching node in the tree.
type Visitor interface {
	VisitNumber(expr *Number) any
	VisitPlus(expr *Plus) any
	VisitMinus(expr *Minus) any
	VisitMult(expr *Mult) any
	VisitDiv(expr *Div) any
}

type Expr interface {
	Accept(v Visitor) any
}

// Number is a floating-point literal.
type Number struct {
	Value float64
}

var _ Expr = (*Number)(nil)

func (e *Number) Accept(v Visitor) any {
	return v.VisitNumber(e)
}

// Plus is an addition node.
type Plus struct {
	Left  Expr
	Right Expr
}

var _ Expr = (*Plus)(nil)

func (e *Plus) Accept(v Visitor) any {
	return v.VisitPlus(e)
}

// Minus is a subtraction node. No grammar rule produces it yet; the
// variant is reserved for a future extension of the grammar.
type Minus struct {
	Left  Expr
	Right Expr
}

var _ Expr = (*Minus)(nil)

func (e *Minus) Accept(v Visitor) any {
	return v.VisitMinus(e)
}

// Mult is a multiplication node.
type Mult struct {
	Left  Expr
	Right Expr
}

var _ Expr = (*Mult)(nil)

func (e *Mult) Accept(v Visitor) any {
	return v.VisitMult(e)
}

// Div is a division node. Like Minus it is reserved: the grammar does
// not reach it. Evaluation does not check for a zero divisor.
type Div struct {
	Left  Expr
	Right Expr
}

var _ Expr = (*Div)(nil)

func (e *Div) Accept(v Visitor) any {
	return v.VisitDiv(e)
}
