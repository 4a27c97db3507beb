package lexer

import (
	"math"
	"strconv"
)

type stateFn func(*Lexer) stateFn

// List of runes that just advance one and emit a token.
var singles = map[rune]TokenType{
	'+': TokPlus,
	'-': TokMinus,
	'*': TokStar,
	'/': TokSlash,
	'(': TokParenLeft,
	')': TokParenRight,
}

func lexText(l *Lexer) stateFn {
	l.skipSpace()

	switch r := l.peek(); {
	case r == eof:
		return l.emit(TokEOF)
	case r >= '0' && r <= '9':
		return lexNumber
	case r == '.':
		// Fractional part without an integer part, i.e. `.5`.
		l.next()
		return l.errorf(ErrMalformedNumber, 0)
	default:
		l.next()
		if tok, ok := singles[r]; ok {
			return l.emit(tok)
		}
		return l.errorf(ErrInvalidCharacter, r)
	}
}

func lexNumber(l *Lexer) stateFn {
	if l.accept("0") && l.accept("xX") {
		return lexHexNumber
	}
	l.acceptRun(digits)
	if l.accept(".") && !l.acceptRun(digits) {
		return l.errorf(ErrMalformedNumber, 0)
	}
	num, err := strconv.ParseFloat(l.input[l.start:l.pos], 64)
	if err != nil { // Only out of range, the syntax is already validated.
		return l.errorf(ErrMalformedNumber, 0)
	}
	return l.emitNumber(num)
}

func lexHexNumber(l *Lexer) stateFn {
	digitsStart := l.pos
	if !l.acceptRun(hexDigits) {
		return l.errorf(ErrMalformedNumber, 0)
	}
	// Accumulate as float so literals wider than 64 bits still widen.
	var num float64
	for _, r := range l.input[digitsStart:l.pos] {
		num = num*16 + float64(hexValue(r))
	}
	if math.IsInf(num, 0) {
		return l.errorf(ErrMalformedNumber, 0)
	}
	return l.emitNumber(num)
}

func hexValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	default:
		return int(r-'A') + 10
	}
}
