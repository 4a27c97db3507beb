// Package parser turns arithmetic expressions into expression trees.
package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/evaluator"
	"go.creack.net/gocalc/lexer"
)

type parser struct {
	tokens []lexer.Token
	pos    int // Index of the next token to read.

	curToken lexer.Token

	depth int // Current parseExpr recursion depth.

	nudLookupTable          lookupTable[nudHandler]
	ledLookupTable          lookupTable[ledHandler]
	bindingPowerLookupTable lookupTable[bindingPower]
}

func newParser(tokens []lexer.Token) *parser {
	p := &parser{
		tokens:                  tokens,
		nudLookupTable:          lookupTable[nudHandler]{},
		ledLookupTable:          lookupTable[ledHandler]{},
		bindingPowerLookupTable: lookupTable[bindingPower]{},
	}
	p.createTokenLookups()
	p.nextToken()
	return p
}

// Parse lexes the whole input, then parses it into an expression tree.
// Lexing errors are returned as is, before any parsing happens.
// The whole input must be consumed, leftover tokens are an ErrTrailingInput.
func Parse(input string) (ast.Expr, error) {
	tokens, err := lexer.Lex(input)
	if err != nil {
		return nil, err
	}
	return newParser(tokens).parse()
}

// Eval parses and evaluates the input.
func Eval(input string) (float64, error) {
	expr, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return evaluator.Evaluate(expr)
}

func (p *parser) parse() (expr ast.Expr, err error) {
	defer func() {
		if r := recover(); r != nil {
			perr, ok := r.(*Error)
			if !ok {
				panic(r)
			}
			expr, err = nil, perr
		}
	}()

	expr = parseExpr(p, bpDefault)
	if p.curToken.Type != lexer.TokEOF {
		p.fail(ErrTrailingInput, p.curToken)
	}
	return expr, nil
}

func (p *parser) nextToken() lexer.Token {
	if p.pos < len(p.tokens) {
		p.curToken = p.tokens[p.pos]
		p.pos++
	} else {
		p.curToken = lexer.Token{Type: lexer.TokEOF, Pos: p.curToken.Pos}
	}
	return p.curToken
}

// expect checks if the current token is of the expected type.
func (p *parser) expect(kind ...lexer.TokenType) lexer.Token {
	if p.curToken.Type.IsOneOf(kind...) {
		return p.curToken
	}
	p.unexpected()
	return p.curToken
}

// unexpected fails on the current token.
func (p *parser) unexpected() {
	if p.curToken.Type == lexer.TokEOF {
		p.fail(ErrUnexpectedEnd, p.curToken)
	}
	p.fail(ErrUnexpectedToken, p.curToken)
}

// fail aborts the parsing. The error is recovered by parse.
func (p *parser) fail(err error, tok lexer.Token) {
	panic(&Error{Err: err, Token: tok})
}
