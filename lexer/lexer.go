// Package lexer provides a lexical analyzer for arithmetic expressions.
package lexer

import (
	"iter"
	"strings"
	"unicode"
	"unicode/utf8"
)

const eof = -1

const (
	digits      = "0123456789"
	hexDigits   = digits + "abcdefABCDEF"
)

type Lexer struct {
	input string

	curToken Token
	err      *Error

	pos   int // Current position in input.
	width int // Width of the last rune read.
	start int // Position of the start of the current token.
}

// New creates a new Lexer for the given input line.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// NextToken lexes and returns the next token.
// Once the input is exhausted, or after an error, it keeps returning TokEOF.
func (l *Lexer) NextToken() (Token, error) {
	l.curToken = Token{Type: TokEOF, Pos: l.pos}
	l.err = nil
	state := lexText
	for {
		state = state(l)
		if state == nil {
			if l.err != nil {
				return l.curToken, l.err
			}
			return l.curToken, nil
		}
	}
}

// Tokens returns the lazy token sequence of the input, without the final EOF.
// The sequence stops after yielding the first error.
// Each iteration starts over from the beginning of the input.
func Tokens(input string) iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		l := New(input)
		for {
			tok, err := l.NextToken()
			if err != nil {
				yield(tok, err)
				return
			}
			if tok.Type == TokEOF || !yield(tok, nil) {
				return
			}
		}
	}
}

// Lex tokenizes the whole input. The last token is always TokEOF.
func Lex(input string) ([]Token, error) {
	l := New(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == TokEOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, n := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = n
	l.pos += n
	return r
}

// backup steps back one rune. Can only be called once per call of next.
func (l *Lexer) backup() {
	l.pos -= l.width
	l.width = 0
}

func (l *Lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *Lexer) accept(valid string) bool {
	if strings.ContainsRune(valid, l.next()) {
		return true
	}
	l.backup()
	return false
}

func (l *Lexer) acceptRun(valid string) bool {
	accepted := false
	for strings.ContainsRune(valid, l.next()) {
		accepted = true
	}
	l.backup()
	return accepted
}

// skipSpace ignores any run of Unicode white space.
func (l *Lexer) skipSpace() {
	for unicode.IsSpace(l.next()) {
	}
	l.backup()
	l.ignore()
}

func (l *Lexer) thisToken(tt TokenType) Token {
	t := Token{
		Type:  tt,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = l.pos
	return t
}

func (l *Lexer) emitToken(t Token) stateFn {
	l.curToken = t
	return nil
}

func (l *Lexer) emit(tt TokenType) stateFn {
	return l.emitToken(l.thisToken(tt))
}

func (l *Lexer) emitNumber(num float64) stateFn {
	tok := l.thisToken(TokNumber)
	tok.Num = num
	return l.emitToken(tok)
}

func (l *Lexer) ignore() {
	l.start = l.pos
}

// errorf records the error at the start of the current token and drains the input.
func (l *Lexer) errorf(err error, char rune) stateFn {
	l.err = &Error{
		Err:  err,
		Char: char,
		Pos:  l.start,
	}
	l.curToken = Token{
		Type:  TokError,
		Value: l.input[l.start:l.pos],
		Pos:   l.start,
	}
	l.start = 0
	l.pos = 0
	l.input = l.input[:0]
	return nil
}
