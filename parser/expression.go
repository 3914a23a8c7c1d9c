package parser

import (
	"github.com/pontaoski/mash/ast"
	"github.com/pontaoski/mash/errors"
	"github.com/pontaoski/mash/types"
)

// Precedence, loosest first:
//
//	or, and, |, ^, &, == !=, < <= > >= is, + -, * / %, ** (right), unary, postfix
//
// Factor operands are power expressions and power operands are unary
// expressions, so -2 ** 2 is (-2) ** 2.

func (p *Parser) expression() ast.Expr {
	return p.logicOr()
}

// tupleOrExpression parses the comma-aware right-hand side of an
// assignment; any comma makes a Tuple.
func (p *Parser) tupleOrExpression() ast.Expr {
	first := p.expression()
	if !p.check(types.COMMA) {
		return first
	}

	items := []ast.Expr{first}
	for p.match(types.COMMA) {
		if p.atStatementEnd() || p.check(types.COLON) {
			break
		}
		items = append(items, p.expression())
	}
	return ast.Tuple{Items: items}
}

func (p *Parser) binary(operand func() ast.Expr, ops ...types.TokenKind) ast.Expr {
	expr := operand()
	for p.match(ops...) {
		op := p.previous().Kind
		expr = ast.Binary{Left: expr, Op: op, Right: operand()}
	}
	return expr
}

func (p *Parser) logicOr() ast.Expr  { return p.binary(p.logicAnd, types.OR) }
func (p *Parser) logicAnd() ast.Expr { return p.binary(p.bitOr, types.AND) }
func (p *Parser) bitOr() ast.Expr    { return p.binary(p.bitXor, types.PIPE) }
func (p *Parser) bitXor() ast.Expr   { return p.binary(p.bitAnd, types.CARET) }
func (p *Parser) bitAnd() ast.Expr   { return p.binary(p.equality, types.AMPERSAND) }

func (p *Parser) equality() ast.Expr {
	return p.binary(p.comparison, types.EQUALEQUAL, types.NOTEQUAL)
}

func (p *Parser) comparison() ast.Expr {
	return p.binary(p.term, types.LESS, types.LESSEQUAL, types.GREATER, types.GREATEREQUAL, types.IS)
}

func (p *Parser) term() ast.Expr {
	return p.binary(p.factor, types.PLUS, types.MINUS)
}

func (p *Parser) factor() ast.Expr {
	return p.binary(p.power, types.STAR, types.SLASH, types.PERCENT)
}

func (p *Parser) power() ast.Expr {
	expr := p.unary()
	if p.match(types.STARSTAR) {
		return ast.Binary{Left: expr, Op: types.STARSTAR, Right: p.power()}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(types.MINUS, types.NOT, types.TILDE) {
		op := p.previous().Kind
		return ast.Unary{Op: op, Operand: p.unary()}
	}
	return p.call()
}

// call applies calls, attribute gets and indexing left to right.
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.match(types.LPAREN):
			expr = ast.Call{Callee: expr, Args: p.exprList(types.RPAREN, "after arguments")}
		case p.match(types.DOT):
			name := p.expect(types.IDENT, "after '.'").Text()
			expr = ast.Get{Object: expr, Name: name}
		case p.match(types.LBRACKET):
			index := p.expression()
			p.expect(types.RBRACKET, "after index")
			expr = ast.Index{Object: expr, Index: index}
		default:
			return expr
		}
	}
}

func (p *Parser) primary() ast.Expr {
	tok := p.peek()

	switch tok.Kind {
	case types.INT, types.FLOAT, types.STRING:
		p.advance()
		return ast.Literal{Value: tok.Literal}
	case types.IDENT:
		p.advance()
		return ast.Variable{Name: tok.Text()}
	case types.LPAREN:
		p.advance()
		return p.parenthesized()
	case types.LBRACKET:
		p.advance()
		return ast.List{Items: p.exprList(types.RBRACKET, "after list elements")}
	case types.LBRACE:
		p.advance()
		return p.dict()
	case types.LAMBDA:
		p.advance()
		return p.lambda()
	}

	panic(errors.ExpectedExpression{Got: tok.Kind, Location: tok.Location})
}

// parenthesized is called past '('. () is the empty tuple, (x) a grouping,
// and any comma, trailing or not, makes a tuple.
func (p *Parser) parenthesized() ast.Expr {
	if p.match(types.RPAREN) {
		return ast.Tuple{Items: []ast.Expr{}}
	}

	first := p.expression()
	items := []ast.Expr{first}
	comma := false

	for p.match(types.COMMA) {
		comma = true
		if p.check(types.RPAREN) {
			break
		}
		items = append(items, p.expression())
	}
	p.expect(types.RPAREN, "after expression")

	if comma {
		return ast.Tuple{Items: items}
	}
	return ast.Grouping{Inner: first}
}

func (p *Parser) exprList(closer types.TokenKind, context string) []ast.Expr {
	items := []ast.Expr{}
	for !p.check(closer) {
		items = append(items, p.expression())
		if !p.match(types.COMMA) {
			break
		}
	}
	p.expect(closer, context)
	return items
}

func (p *Parser) dict() ast.Expr {
	pairs := []ast.DictPair{}
	for !p.check(types.RBRACE) {
		key := p.expression()
		p.expect(types.COLON, "between dict key and value")
		pairs = append(pairs, ast.DictPair{Key: key, Value: p.expression()})
		if !p.match(types.COMMA) {
			break
		}
	}
	p.expect(types.RBRACE, "after dict entries")
	return ast.Dict{Pairs: pairs}
}

func (p *Parser) lambda() ast.Expr {
	params := p.parameters(types.COLON, "in lambda parameters")
	p.expect(types.COLON, "after lambda parameters")
	return ast.Lambda{Params: params, Body: p.expression()}
}
