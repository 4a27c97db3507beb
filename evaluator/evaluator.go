// Package evaluator computes the value of expression trees.
package evaluator

import (
	"errors"
	"fmt"
	"math"

	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// Evaluation error kinds.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrOverflow       = errors.New("result out of range")
)

// Error is an evaluation failure on a given operator.
type Error struct {
	Err      error
	Operator lexer.Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at position %d", e.Err, e.Operator.Pos)
}

func (e *Error) Unwrap() error { return e.Err }

// Evaluate walks the tree depth first, left operand before right operand,
// and stops at the first failure.
func Evaluate(expr ast.Expr) (float64, error) {
	switch e := expr.(type) {
	case ast.NumberExpr:
		return e.Value, nil
	case ast.PrefixExpr:
		return evaluatePrefix(e)
	case ast.BinaryExpr:
		return evaluateBinary(e)
	default:
		return 0, fmt.Errorf("unsupported expression type %T", e)
	}
}

func evaluatePrefix(e ast.PrefixExpr) (float64, error) {
	right, err := Evaluate(e.Right)
	if err != nil {
		return 0, err
	}
	if e.Operator.Type != lexer.TokMinus {
		return 0, fmt.Errorf("unsupported prefix operator %q", e.Operator.Value)
	}
	return -right, nil
}

func evaluateBinary(e ast.BinaryExpr) (float64, error) {
	left, err := Evaluate(e.Left)
	if err != nil {
		return 0, err
	}
	right, err := Evaluate(e.Right)
	if err != nil {
		return 0, err
	}

	var result float64
	switch e.Operator.Type {
	case lexer.TokPlus:
		result = left + right
	case lexer.TokMinus:
		result = left - right
	case lexer.TokStar:
		result = left * right
	case lexer.TokSlash:
		if right == 0 {
			return 0, &Error{Err: ErrDivisionByZero, Operator: e.Operator}
		}
		result = left / right
	default:
		return 0, fmt.Errorf("unsupported binary operator %q", e.Operator.Value)
	}

	// Operands are always finite, anything else is an overflow.
	if math.IsInf(result, 0) || math.IsNaN(result) {
		return 0, &Error{Err: ErrOverflow, Operator: e.Operator}
	}
	return result, nil
}
