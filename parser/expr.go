package parser

import (
	"go.creack.net/gocalc/ast"
	"go.creack.net/gocalc/lexer"
)

// Maximum nesting of groups and prefixes, keeps the recursion bounded.
const maxDepth = 10000

func parseExpr(p *parser, bp bindingPower) ast.Expr {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		p.fail(ErrNestingTooDeep, p.curToken)
	}

	// Parse the primary expression, always start with nud.
	nudFn, exists := p.nudLookupTable[p.curToken.Type]
	if !exists {
		p.unexpected()
	}
	left := nudFn(p)

	// While we have tokens with a higher binding power, parse them using led.
	for p.bindingPowerLookupTable[p.curToken.Type] > bp {
		ledFn := p.ledLookupTable[p.curToken.Type]
		left = ledFn(p, left, p.bindingPowerLookupTable[p.curToken.Type])
	}

	return left
}

func parsePrimaryExpr(p *parser) ast.Expr {
	tok := p.expect(lexer.TokNumber)
	p.nextToken()
	return ast.NumberExpr{
		Value: tok.Num,
		Token: tok,
	}
}

func parseGroupingExpr(p *parser) ast.Expr {
	open := p.expect(lexer.TokParenLeft)
	p.nextToken()
	inner := parseExpr(p, bpDefault)

	if p.curToken.Type == lexer.TokEOF {
		p.fail(ErrUnmatchedParenthesis, open)
	}
	p.expect(lexer.TokParenRight)
	p.nextToken()
	return inner
}

func parsePrefixExpr(p *parser) ast.Expr {
	operator := p.expect(lexer.TokMinus)
	p.nextToken()
	right := parseExpr(p, bpPrefix)

	return ast.PrefixExpr{
		Operator: operator,
		Right:    right,
	}
}

func parseBinaryExpr(p *parser, left ast.Expr, bp bindingPower) ast.Expr {
	operator := p.curToken
	p.nextToken()
	right := parseExpr(p, bp)

	return ast.BinaryExpr{
		Left:     left,
		Operator: operator,
		Right:    right,
	}
}
