package parser

import (
	"errors"
	"fmt"

	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/lexer"
)

// Parsing error kinds. Use errors.Is against the error returned by Parse or Eval.
var (
	ErrUnexpectedToken      = errors.New("unexpected token")
	ErrUnexpectedEnd        = errors.New("unexpected end of input")
	ErrUnmatchedParenthesis = errors.New("unmatched parenthesis")
	ErrTrailingInput        = errors.New("trailing input")
	ErrNestingTooDeep       = errors.New("expression nested too deeply")

	// Evaluation failures, reported by Eval.
	ErrDivisionByZero = evaluator.ErrDivisionByZero
	ErrOverflow       = evaluator.ErrOverflow
)

// Error is a parsing failure on a given token.
type Error struct {
	Err   error // One of the Err* kinds.
	Token lexer.Token
}

func (e *Error) Error() string {
	if e.Token.Type == lexer.TokEOF {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s %q at position %d", e.Err, e.Token.Value, e.Token.Pos)
}

func (e *Error) Unwrap() error { return e.Err }

// Pos returns the byte offset of the offending token.
func (e *Error) Pos() int { return e.Token.Pos }
