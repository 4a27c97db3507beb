// Package ast defines the expression tree built by the parser.
package ast

// Expr is any node of an arithmetic expression tree.
// The set of implementations is closed: NumberExpr, PrefixExpr and BinaryExpr.
type Expr interface {
	Dump() string
	expr()
}
