package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/ztrue/tracerr"

	"github.com/pontaoski/mash/errors"
	"github.com/pontaoski/mash/types"
)

// TabWidth is the indentation width a tab counts for.
const TabWidth = 4

type Lexer struct {
	reader *bufio.Reader
	sink   errors.Sink

	src   []rune
	start types.Position
	pos   types.Position

	indents []int
	tokens  []types.Token
	done    bool
	err     error
}

// NewLexer returns a lexer over the whole of reader. A nil sink discards
// diagnostics.
func NewLexer(reader io.Reader, filename string, sink errors.Sink) *Lexer {
	if sink == nil {
		sink = errors.Discard
	}
	return &Lexer{
		reader:  bufio.NewReader(reader),
		sink:    sink,
		pos:     types.Position{Line: 1, Column: 1, Filename: filename},
		indents: []int{0},
	}
}

// Analyze tokenizes src in one pass.
func Analyze(src, filename string, sink errors.Sink) ([]types.Token, error) {
	return NewLexer(strings.NewReader(src), filename, sink).Analyze()
}

// Analyze consumes the reader and returns the token sequence, always ending
// in exactly one EOF. Recoverable problems go to the sink. Inconsistent
// indentation stops tokenizing: the tokens so far are returned, closed with
// EOF, together with an errors.InconsistentIndentation. Later calls return
// the same tokens and error without lexing again.
func (l *Lexer) Analyze() ([]types.Token, error) {
	if l.done {
		return l.tokens, l.err
	}
	if err := l.load(); err != nil {
		l.done, l.err = true, tracerr.Wrap(err)
		return nil, l.err
	}

	for !l.atEnd() {
		l.start = l.pos
		if err := l.lex(); err != nil {
			l.start = l.pos
			l.add(types.EOF, nil)
			l.done, l.err = true, tracerr.Wrap(err)
			return l.tokens, l.err
		}
	}

	l.start = l.pos
	for len(l.indents) > 1 {
		l.indents = l.indents[:len(l.indents)-1]
		l.add(types.DEDENT, nil)
	}
	l.add(types.EOF, nil)
	l.done = true

	return l.tokens, nil
}

func (l *Lexer) load() error {
	if l.src != nil {
		return nil
	}
	l.src = []rune{}
	for {
		r, _, err := l.reader.ReadRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		l.src = append(l.src, r)
	}
}

func (l *Lexer) lex() error {
	r := l.advance()

	switch r {
	case '*':
		l.addEither('*', types.STARSTAR, types.STAR)
	case '<':
		l.addEither('=', types.LESSEQUAL, types.LESS)
	case '>':
		l.addEither('=', types.GREATEREQUAL, types.GREATER)
	case '=':
		l.addEither('=', types.EQUALEQUAL, types.EQUAL)
	case '!':
		l.addEither('=', types.NOTEQUAL, types.NOT)
	case '#':
		for !l.atEnd() && l.peek() != '\n' {
			l.advance()
		}
	case '"', '\'':
		l.lexString(r)
	case '\n':
		l.add(types.NEWLINE, nil)
		return l.indentation()
	default:
		if kind, ok := singles[r]; ok {
			l.add(kind, nil)
			return nil
		}

		switch {
		case isDigit(r):
			l.lexNumber()
		case firstChar(r):
			l.lexIdent()
		case unicode.IsSpace(r):
		default:
			l.sink.Report(errors.UnexpectedCharacter{
				Char:     r,
				Location: l.span(),
			})
		}
	}

	return nil
}

var singles = map[rune]types.TokenKind{
	'+':  types.PLUS,
	'-':  types.MINUS,
	'/':  types.SLASH,
	'%':  types.PERCENT,
	'&':  types.AMPERSAND,
	'|':  types.PIPE,
	'^':  types.CARET,
	'~':  types.TILDE,
	'(':  types.LPAREN,
	')':  types.RPAREN,
	'[':  types.LBRACKET,
	']':  types.RBRACKET,
	'{':  types.LBRACE,
	'}':  types.RBRACE,
	',':  types.COMMA,
	':':  types.COLON,
	'.':  types.DOT,
	';':  types.SEMICOLON,
	'\\': types.BACKSLASH,
}

// indentation runs after a newline: it measures the next line's leading
// whitespace and moves the indent stack to it. Blank and comment-only lines
// leave the stack alone.
func (l *Lexer) indentation() error {
	width := 0

measure:
	for !l.atEnd() {
		switch r := l.peek(); {
		case r == ' ':
			width++
		case r == '\t':
			width += TabWidth
		case r == '\n':
			break measure
		case unicode.IsSpace(r):
		default:
			break measure
		}
		l.advance()
	}

	l.start = l.pos
	if l.atEnd() || l.peek() == '\n' || l.peek() == '#' {
		return nil
	}

	top := l.indents[len(l.indents)-1]
	switch {
	case width > top:
		l.indents = append(l.indents, width)
		l.add(types.INDENT, nil)
	case width < top:
		for width < l.indents[len(l.indents)-1] {
			l.indents = l.indents[:len(l.indents)-1]
			l.add(types.DEDENT, nil)
		}
		if l.indents[len(l.indents)-1] != width {
			return errors.InconsistentIndentation{
				Width:    width,
				Location: l.span(),
			}
		}
	}

	return nil
}

func (l *Lexer) lexNumber() {
	for !l.atEnd() && isDigit(l.peek()) {
		l.advance()
	}

	kind := types.INT
	if l.peek() == '.' && isDigit(l.peekNext()) {
		kind = types.FLOAT
		l.advance()
		for !l.atEnd() && isDigit(l.peek()) {
			l.advance()
		}
	}

	text := l.text()
	if kind == types.FLOAT {
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			l.sink.Report(errors.InvalidNumber{Text: text, Location: l.span()})
			return
		}
		l.add(types.FLOAT, types.Float(f))
		return
	}

	i, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		l.sink.Report(errors.InvalidNumber{Text: text, Location: l.span()})
		return
	}
	l.add(types.INT, types.Int(i))
}

func (l *Lexer) lexIdent() {
	for !l.atEnd() && otherChar(l.peek()) {
		l.advance()
	}

	text := l.text()
	if kind, ok := types.LookupKeyword(text); ok {
		l.add(kind, nil)
		return
	}
	l.add(types.IDENT, types.Identifier(text))
}

// lexString is called past the opening quote. A newline or end of input
// before the closing quote abandons the token; the newline itself is left
// for the main loop.
func (l *Lexer) lexString(quote rune) {
	var lit strings.Builder

	for {
		if l.atEnd() || l.peek() == '\n' {
			l.sink.Report(errors.UnterminatedString{Location: l.span()})
			return
		}

		r := l.advance()
		if r == quote {
			break
		}
		if r != '\\' {
			lit.WriteRune(r)
			continue
		}

		if l.atEnd() {
			l.sink.Report(errors.UnterminatedString{Location: l.span()})
			return
		}

		escStart := l.pos
		escStart.Offset--
		escStart.Column--
		switch e := l.advance(); e {
		case 'n':
			lit.WriteRune('\n')
		case 't':
			lit.WriteRune('\t')
		case 'r':
			lit.WriteRune('\r')
		case '\\', '"', '\'':
			lit.WriteRune(e)
		default:
			l.sink.Report(errors.UnknownEscape{
				Char:     e,
				Location: types.Span{From: escStart, To: l.pos},
			})
			lit.WriteRune(e)
		}
	}

	l.add(types.STRING, types.String(lit.String()))
}

func (l *Lexer) addEither(next rune, long, short types.TokenKind) {
	if l.match(next) {
		l.add(long, nil)
		return
	}
	l.add(short, nil)
}

func (l *Lexer) add(kind types.TokenKind, lit types.LiteralValue) {
	l.tokens = append(l.tokens, types.Token{
		Kind:     kind,
		Literal:  lit,
		Location: l.span(),
	})
}

func (l *Lexer) span() types.Span {
	return types.Span{From: l.start, To: l.pos}
}

func (l *Lexer) text() string {
	return string(l.src[l.start.Offset:l.pos.Offset])
}

func (l *Lexer) atEnd() bool {
	return l.pos.Offset >= len(l.src)
}

func (l *Lexer) advance() rune {
	r := l.src[l.pos.Offset]
	l.pos.Offset++
	if r == '\n' {
		l.pos.Line++
		l.pos.Column = 1
	} else {
		l.pos.Column++
	}
	return r
}

func (l *Lexer) match(expected rune) bool {
	if l.atEnd() || l.src[l.pos.Offset] != expected {
		return false
	}
	l.advance()
	return true
}

func (l *Lexer) peek() rune {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos.Offset]
}

func (l *Lexer) peekNext() rune {
	if l.pos.Offset+1 >= len(l.src) {
		return 0
	}
	return l.src[l.pos.Offset+1]
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func firstChar(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func otherChar(r rune) bool {
	return firstChar(r) || unicode.IsDigit(r)
}
