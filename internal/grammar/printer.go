package grammar

import (
	"strconv"
	"strings"
)

// AstPrinter renders an expression tree in prefix notation, e.g.
// "3+4*2" prints as "(+ 3 (* 4 2))". Mostly useful to make the
// right-associative grouping visible.
type AstPrinter struct{}

func NewAstPrinter() *AstPrinter {
	return &AstPrinter{}
}

func (p *AstPrinter) Print(expr Expr) string {
	return p.asStr(expr.Accept(p))
}

// VisitNumber implements Visitor.
func (p *AstPrinter) VisitNumber(expr *Number) any {
	return strconv.FormatFloat(expr.Value, 'f', -1, 64)
}

// VisitPlus implements Visitor.
func (p *AstPrinter) VisitPlus(expr *Plus) any {
	return p.parenthesize("+", expr.Left, expr.Right)
}

// VisitMinus implements Visitor.
func (p *AstPrinter) VisitMinus(expr *Minus) any {
	return p.parenthesize("-", expr.Left, expr.Right)
}

// VisitMult implements Visitor.
func (p *AstPrinter) VisitMult(expr *Mult) any {
	return p.parenthesize("*", expr.Left, expr.Right)
}

// VisitDiv implements Visitor.
func (p *AstPrinter) VisitDiv(expr *Div) any {
	return p.parenthesize("/", expr.Left, expr.Right)
}

func (p *AstPrinter) parenthesize(name string, exprs ...Expr) string {
	out := new(strings.Builder)
	_, _ = out.WriteString("(")
	_, _ = out.WriteString(name)
	for _, expr := range exprs {
		_, _ = out.WriteString(" ")
		_, _ = out.WriteString(p.asStr(expr.Accept(p)))
	}
	_, _ = out.WriteString(")")
	return out.String()
}

func (p *AstPrinter) asStr(v any) string {
	if v == nil {
		return "<nil>"
	}

	return v.(string)
}

var _ Visitor = (*AstPrinter)(nil)
