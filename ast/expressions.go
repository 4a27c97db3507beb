package ast

import (
	"fmt"

	"go.creack.net/gocalc/lexer"
)

// NumberExpr is a numeric literal.
type NumberExpr struct {
	Value float64
	Token lexer.Token // Source token, kept for positions and Dump.
}

func (NumberExpr) expr() {}

func (n NumberExpr) Dump() string {
	if n.Token.Value != "" {
		return n.Token.Value
	}
	return fmt.Sprint(n.Value)
}

// BinaryExpr is `Left Operator Right` where Operator is one of + - * /.
type BinaryExpr struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (BinaryExpr) expr() {}

func (b BinaryExpr) Dump() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.Dump(), b.Operator.Type, b.Right.Dump())
}

// PrefixExpr is a unary operation, only negation is supported.
type PrefixExpr struct {
	Operator lexer.Token
	Right    Expr
}

func (PrefixExpr) expr() {}

func (p PrefixExpr) Dump() string {
	return fmt.Sprintf("(%s%s)", p.Operator.Type, p.Right.Dump())
}
