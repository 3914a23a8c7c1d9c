package parser

import (
	"runtime"

	"github.com/pontaoski/mash/ast"
	"github.com/pontaoski/mash/errors"
	"github.com/pontaoski/mash/lexer"
	"github.com/pontaoski/mash/types"
)

// Parser walks a fully tokenized source with a cursor. Productions report
// malformed input by panicking with a diagnostic error; the statement loop
// recovers it, reports it to the sink and resumes one token further on.
type Parser struct {
	tokens  []types.Token
	current int
	sink    errors.Sink
}

// NewParser returns a parser over tokens. A stream that does not end in EOF
// gets one appended. A nil sink discards diagnostics.
func NewParser(tokens []types.Token, sink errors.Sink) *Parser {
	if sink == nil {
		sink = errors.Discard
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != types.EOF {
		var at types.Span
		if len(tokens) > 0 {
			end := tokens[len(tokens)-1].Location.To
			at = types.SingleCharSpan(end)
		}
		tokens = append(tokens[:len(tokens):len(tokens)], types.Token{Kind: types.EOF, Location: at})
	}
	return &Parser{tokens: tokens, sink: sink}
}

func Parse(tokens []types.Token, sink errors.Sink) []ast.Stmt {
	return NewParser(tokens, sink).Parse()
}

// ParseSource tokenizes and parses src. A fatal tokenizer error is returned
// as is and no statements are produced.
func ParseSource(src, filename string, sink errors.Sink) ([]ast.Stmt, error) {
	tokens, err := lexer.Analyze(src, filename, sink)
	if err != nil {
		return nil, err
	}
	return Parse(tokens, sink), nil
}

// Parse returns the top-level statements in source order.
func (p *Parser) Parse() []ast.Stmt {
	stmts := []ast.Stmt{}

	for !p.atEnd() {
		if p.match(types.NEWLINE) {
			continue
		}

		if stmt, ok := p.recoverDeclaration(); ok {
			stmts = append(stmts, stmt)
		} else {
			p.advance()
		}
	}

	return stmts
}

func (p *Parser) recoverDeclaration() (stmt ast.Stmt, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isRuntime := r.(runtime.Error); isRuntime {
				panic(r)
			}
			err, isErr := r.(error)
			if !isErr {
				panic(r)
			}
			p.sink.Report(err)
			stmt, ok = nil, false
		}
	}()

	return p.declaration(), true
}

func (p *Parser) declaration() ast.Stmt {
	switch {
	case p.match(types.DEF):
		return p.functionDef()
	case p.match(types.CLASS):
		return p.classDef()
	case p.match(types.IMPORT):
		return p.importStatement()
	case p.match(types.FROM):
		return p.fromImportStatement()
	}

	return p.statement()
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(types.DEL):
		target := p.targetList()
		p.endStatement("after del")
		return ast.Del{Target: target}
	case p.match(types.RAISE):
		var value ast.Expr
		if !p.atStatementEnd() {
			value = p.expression()
		}
		p.endStatement("after raise")
		return ast.Raise{Value: value}
	case p.match(types.TRY):
		return p.tryStatement()
	case p.match(types.RETURN):
		var value ast.Expr
		if !p.atStatementEnd() {
			value = p.tupleOrExpression()
		}
		p.endStatement("after return")
		return ast.Return{Value: value}
	case p.match(types.PRINT):
		value := p.tupleOrExpression()
		p.endStatement("after print")
		return ast.Print{Value: value}
	case p.match(types.PASS):
		p.endStatement("after pass")
		return ast.Pass{}
	case p.match(types.BREAK):
		p.endStatement("after break")
		return ast.Break{}
	case p.match(types.CONTINUE):
		p.endStatement("after continue")
		return ast.Continue{}
	case p.match(types.FOR):
		return p.forStatement()
	case p.match(types.IF):
		return p.ifStatement("if")
	case p.match(types.WHILE):
		return p.whileStatement()
	case p.match(types.GLOBAL):
		names := []string{p.expect(types.IDENT, "in global statement").Text()}
		for p.match(types.COMMA) {
			names = append(names, p.expect(types.IDENT, "in global statement").Text())
		}
		p.endStatement("after global")
		return ast.Global{Names: names}
	}

	return p.assignmentOrExpression()
}

func (p *Parser) functionDef() ast.Stmt {
	name := p.expect(types.IDENT, "after def").Text()
	p.expect(types.LPAREN, "after function name")
	params := p.parameters(types.RPAREN, "in parameter list")
	p.expect(types.RPAREN, "after parameters")
	body := p.block("function")

	return ast.FunctionDef{Name: name, Params: params, Body: body}
}

func (p *Parser) classDef() ast.Stmt {
	name := p.expect(types.IDENT, "after class").Text()

	var base ast.Expr
	if p.match(types.LPAREN) {
		if !p.check(types.RPAREN) {
			base = p.expression()
		}
		p.expect(types.RPAREN, "after base class")
	}

	return ast.ClassDef{Name: name, Base: base, Body: p.block("class")}
}

func (p *Parser) importStatement() ast.Stmt {
	names := []string{p.dottedName("after import")}
	for p.match(types.COMMA) {
		names = append(names, p.dottedName("after ','"))
	}
	p.endStatement("after import")

	return ast.Import{Names: names}
}

func (p *Parser) fromImportStatement() ast.Stmt {
	module := p.dottedName("after from")
	p.expect(types.IMPORT, "after module name")

	var names []string
	if p.match(types.STAR) {
		names = []string{"*"}
	} else {
		names = []string{p.expect(types.IDENT, "after import").Text()}
		for p.match(types.COMMA) {
			names = append(names, p.expect(types.IDENT, "after ','").Text())
		}
	}
	p.endStatement("after from import")

	return ast.FromImport{Module: module, Names: names}
}

func (p *Parser) dottedName(context string) string {
	name := p.expect(types.IDENT, context).Text()
	for p.match(types.DOT) {
		name += "." + p.expect(types.IDENT, "after '.'").Text()
	}
	return name
}

func (p *Parser) tryStatement() ast.Stmt {
	body := p.block("try")

	var excepts []ast.ExceptClause
	for p.match(types.EXCEPT) {
		var kind ast.Expr
		if !p.check(types.COLON) {
			kind = p.expression()
		}
		excepts = append(excepts, ast.ExceptClause{Type: kind, Body: p.block("except")})
	}

	return ast.Try{Body: body, Excepts: excepts}
}

// ifStatement parses past the if or elif keyword. An elif chain nests: the
// elif becomes the only statement of the else branch.
func (p *Parser) ifStatement(keyword string) ast.Stmt {
	condition := p.expression()
	then := p.block(keyword)

	var otherwise []ast.Stmt
	switch {
	case p.match(types.ELIF):
		otherwise = []ast.Stmt{p.ifStatement("elif")}
	case p.match(types.ELSE):
		otherwise = p.block("else")
	}

	return ast.If{Condition: condition, Then: then, Else: otherwise}
}

func (p *Parser) whileStatement() ast.Stmt {
	condition := p.expression()
	return ast.While{Condition: condition, Body: p.block("while")}
}

func (p *Parser) forStatement() ast.Stmt {
	target := p.targetList()
	p.expect(types.IN, "after loop target")
	iterable := p.tupleOrExpression()

	return ast.For{Target: target, Iterable: iterable, Body: p.block("for")}
}

// block parses ':' NEWLINE INDENT declaration* DEDENT. The result is never
// nil, so an absent else branch stays distinguishable from an empty one.
func (p *Parser) block(what string) []ast.Stmt {
	p.expect(types.COLON, "after "+what+" header")
	p.expect(types.NEWLINE, "after ':'")
	p.expect(types.INDENT, "to open "+what+" block")

	body := []ast.Stmt{}
	for !p.check(types.DEDENT) && !p.atEnd() {
		if p.match(types.NEWLINE) {
			continue
		}
		body = append(body, p.declaration())
	}

	p.expect(types.DEDENT, "to close "+what+" block")
	return body
}

func (p *Parser) parameters(closer types.TokenKind, context string) []string {
	params := []string{}
	seen := map[string]bool{}

	for !p.check(closer) {
		tok := p.expect(types.IDENT, context)
		name := tok.Text()
		if seen[name] {
			panic(errors.DuplicateParameter{Name: name, Location: tok.Location})
		}
		seen[name] = true
		params = append(params, name)

		if !p.match(types.COMMA) {
			break
		}
	}

	return params
}

// assignmentOrExpression parses a comma list of expressions and decides
// from the following '=' whether it was an assignment target list.
func (p *Parser) assignmentOrExpression() ast.Stmt {
	var exprs []ast.Expr
	var spans []types.Span
	trailing := false

	for {
		from := p.peek().Location.From
		exprs = append(exprs, p.expression())
		spans = append(spans, types.Span{From: from, To: p.previous().Location.To})

		if !p.match(types.COMMA) {
			break
		}
		if p.check(types.EQUAL) || p.atStatementEnd() {
			trailing = true
			break
		}
	}

	if p.match(types.EQUAL) {
		targets := make([]ast.Target, 0, len(exprs))
		for i, expr := range exprs {
			targets = append(targets, p.toTarget(expr, spans[i]))
		}
		value := p.tupleOrExpression()
		p.endStatement("after assignment")

		if len(targets) == 1 && !trailing {
			return ast.Assign{Target: targets[0], Value: value}
		}
		return ast.Assign{Target: ast.TupleTarget{Items: targets}, Value: value}
	}

	p.endStatement("after expression")
	if len(exprs) == 1 && !trailing {
		return ast.ExpressionStmt{Expr: exprs[0]}
	}
	return ast.ExpressionStmt{Expr: ast.Tuple{Items: exprs}}
}

func (p *Parser) toTarget(expr ast.Expr, at types.Span) ast.Target {
	switch e := expr.(type) {
	case ast.Variable:
		return ast.NameTarget{Name: e.Name}
	case ast.Get:
		return ast.AttributeTarget{Object: e.Object, Name: e.Name}
	case ast.Tuple:
		items := make([]ast.Target, 0, len(e.Items))
		for _, item := range e.Items {
			items = append(items, p.toTarget(item, at))
		}
		return ast.TupleTarget{Items: items}
	}

	panic(errors.InvalidTarget{Location: at})
}

// targetList parses the targets of for and del. A single target is
// returned bare.
func (p *Parser) targetList() ast.Target {
	targets := []ast.Target{p.target()}
	for p.match(types.COMMA) {
		targets = append(targets, p.target())
	}

	if len(targets) == 1 {
		return targets[0]
	}
	return ast.TupleTarget{Items: targets}
}

func (p *Parser) target() ast.Target {
	if p.match(types.LPAREN) {
		items := []ast.Target{}
		for !p.check(types.RPAREN) {
			items = append(items, p.target())
			if !p.match(types.COMMA) {
				break
			}
		}
		p.expect(types.RPAREN, "after target tuple")
		return ast.TupleTarget{Items: items}
	}

	if p.match(types.IDENT) {
		name := p.previous().Text()
		if p.match(types.DOT) {
			attr := p.expect(types.IDENT, "after '.'").Text()
			return ast.AttributeTarget{Object: ast.Variable{Name: name}, Name: attr}
		}
		return ast.NameTarget{Name: name}
	}

	tok := p.peek()
	panic(errors.ExpectedOneOfKindGotKind{
		Expected: []types.TokenKind{types.IDENT, types.LPAREN},
		Got:      tok.Kind,
		Location: tok.Location,
	})
}

func (p *Parser) endStatement(context string) {
	if p.match(types.NEWLINE, types.SEMICOLON) {
		return
	}
	if p.check(types.DEDENT) || p.atEnd() {
		return
	}
	p.expect(types.NEWLINE, context)
}

func (p *Parser) atStatementEnd() bool {
	switch p.peek().Kind {
	case types.NEWLINE, types.SEMICOLON, types.DEDENT, types.EOF:
		return true
	}
	return false
}

func (p *Parser) peek() types.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() types.Token {
	return p.tokens[p.current-1]
}

func (p *Parser) atEnd() bool {
	return p.peek().Kind == types.EOF
}

func (p *Parser) advance() types.Token {
	tok := p.peek()
	if !p.atEnd() {
		p.current++
	}
	return tok
}

func (p *Parser) check(kind types.TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...types.TokenKind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) expect(kind types.TokenKind, context string) types.Token {
	if p.check(kind) {
		return p.advance()
	}

	tok := p.peek()
	panic(errors.ExpectedKindGotKind{
		Expected: kind,
		Got:      tok.Kind,
		Context:  context,
		Location: tok.Location,
	})
}
