package grammar

import (
	"github.com/leonardinius/gocalc/internal/combinator"
)

// The grammar, in ordered-choice notation:
//
//	additive   = multitive '+' additive   | multitive
//	multitive  = primary '*' multitive    | primary
//	primary    = '(' additive ')'         | number
//	number     = float | natural
//
// Operator and parenthesis tokens tolerate surrounding spaces. Binary
// rules try the operator form first and fall back to the bare operand,
// so chains group to the right: "a+b+c" parses as Plus(a, Plus(b, c)).
// That is harmless for '+' and '*', which are associative; it is the
// reason no rule produces Minus or Div.

// Additive is the top-level expression rule.
func Additive() combinator.Parser[Expr] {
	sum := combinator.Bind(Multitive(), func(left Expr) combinator.Parser[Expr] {
		return combinator.Bind(combinator.Symbol('+'), func(rune) combinator.Parser[Expr] {
			// Additive is re-entered through the continuation, after
			// '+' has consumed input, so construction terminates.
			return combinator.Map(Additive(), func(right Expr) Expr {
				return &Plus{Left: left, Right: right}
			})
		})
	})
	return sum.Or(Multitive())
}

// Multitive binds tighter than Additive.
func Multitive() combinator.Parser[Expr] {
	product := combinator.Bind(Primary(), func(left Expr) combinator.Parser[Expr] {
		return combinator.Bind(combinator.Symbol('*'), func(rune) combinator.Parser[Expr] {
			return combinator.Map(Multitive(), func(right Expr) Expr {
				return &Mult{Left: left, Right: right}
			})
		})
	})
	return product.Or(Primary())
}

// Primary is a parenthesized expression or a number literal.
func Primary() combinator.Parser[Expr] {
	group := combinator.Bind(combinator.Symbol('('), func(rune) combinator.Parser[Expr] {
		return combinator.Bind(Additive(), func(inner Expr) combinator.Parser[Expr] {
			return combinator.Map(combinator.Symbol(')'), func(rune) Expr {
				return inner
			})
		})
	})
	return group.Or(NumberLiteral())
}

// NumberLiteral matches an unsigned numeric literal, spaces tolerated.
// Float goes first: Natural succeeds on the integral prefix of a float
// and ordered choice never revisits an alternative that already
// produced a success.
func NumberLiteral() combinator.Parser[Expr] {
	number := combinator.Lexeme(combinator.Float().Or(combinator.Natural()))
	return combinator.Map(number, func(v float64) Expr {
		return &Number{Value: v}
	})
}
