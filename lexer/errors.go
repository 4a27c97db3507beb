package lexer

import (
	"errors"
	"fmt"
)

// Lexing error kinds. Use errors.Is against the error returned by the lexer.
var (
	ErrInvalidCharacter = errors.New("invalid character")
	ErrMalformedNumber  = errors.New("malformed number")
)

// Error is a lexing failure at a given position of the input.
type Error struct {
	Err  error // One of the Err* kinds.
	Char rune  // Offending character, only for ErrInvalidCharacter.
	Pos  int   // Byte offset in the input.
}

func (e *Error) Error() string {
	if errors.Is(e.Err, ErrInvalidCharacter) {
		return fmt.Sprintf("%s %q at position %d", e.Err, e.Char, e.Pos)
	}
	return fmt.Sprintf("%s at position %d", e.Err, e.Pos)
}

func (e *Error) Unwrap() error { return e.Err }
