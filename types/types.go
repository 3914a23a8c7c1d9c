package types

import (
	"fmt"
	"strconv"
)

type Position struct {
	Offset   int
	Line     int
	Column   int
	Filename string
}

type Span struct {
	From Position
	To   Position
}

type TokenKind int

const (
	EOF TokenKind = iota

	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	STARSTAR
	LESS
	GREATER
	EQUAL
	EQUALEQUAL
	NOTEQUAL
	LESSEQUAL
	GREATEREQUAL
	AMPERSAND
	PIPE
	CARET
	TILDE

	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	COMMA
	COLON
	DOT
	SEMICOLON
	BACKSLASH

	IDENT
	STRING
	INT
	FLOAT

	AND
	OR
	NOT
	IF
	ELIF
	ELSE
	WHILE
	FOR
	IN
	BREAK
	CONTINUE
	RETURN
	DEF
	CLASS
	PASS
	IMPORT
	FROM
	PRINT
	GLOBAL
	DEL
	TRY
	EXCEPT
	RAISE
	IS
	LAMBDA

	INDENT
	DEDENT
	NEWLINE
)

var kindNames = map[TokenKind]string{
	EOF:          "EOF",
	PLUS:         "PLUS",
	MINUS:        "MINUS",
	STAR:         "STAR",
	SLASH:        "SLASH",
	PERCENT:      "PERCENT",
	STARSTAR:     "STARSTAR",
	LESS:         "LESS",
	GREATER:      "GREATER",
	EQUAL:        "EQUAL",
	EQUALEQUAL:   "EQUALEQUAL",
	NOTEQUAL:     "NOTEQUAL",
	LESSEQUAL:    "LESSEQUAL",
	GREATEREQUAL: "GREATEREQUAL",
	AMPERSAND:    "AMPERSAND",
	PIPE:         "PIPE",
	CARET:        "CARET",
	TILDE:        "TILDE",
	LPAREN:       "LPAREN",
	RPAREN:       "RPAREN",
	LBRACKET:     "LBRACKET",
	RBRACKET:     "RBRACKET",
	LBRACE:       "LBRACE",
	RBRACE:       "RBRACE",
	COMMA:        "COMMA",
	COLON:        "COLON",
	DOT:          "DOT",
	SEMICOLON:    "SEMICOLON",
	BACKSLASH:    "BACKSLASH",
	IDENT:        "IDENT",
	STRING:       "STRING",
	INT:          "INT",
	FLOAT:        "FLOAT",
	AND:          "AND",
	OR:           "OR",
	NOT:          "NOT",
	IF:           "IF",
	ELIF:         "ELIF",
	ELSE:         "ELSE",
	WHILE:        "WHILE",
	FOR:          "FOR",
	IN:           "IN",
	BREAK:        "BREAK",
	CONTINUE:     "CONTINUE",
	RETURN:       "RETURN",
	DEF:          "DEF",
	CLASS:        "CLASS",
	PASS:         "PASS",
	IMPORT:       "IMPORT",
	FROM:         "FROM",
	PRINT:        "PRINT",
	GLOBAL:       "GLOBAL",
	DEL:          "DEL",
	TRY:          "TRY",
	EXCEPT:       "EXCEPT",
	RAISE:        "RAISE",
	IS:           "IS",
	LAMBDA:       "LAMBDA",
	INDENT:       "INDENT",
	DEDENT:       "DEDENT",
	NEWLINE:      "NEWLINE",
}

var kindSymbols = map[TokenKind]string{
	PLUS:         "+",
	MINUS:        "-",
	STAR:         "*",
	SLASH:        "/",
	PERCENT:      "%",
	STARSTAR:     "**",
	LESS:         "<",
	GREATER:      ">",
	EQUAL:        "=",
	EQUALEQUAL:   "==",
	NOTEQUAL:     "!=",
	LESSEQUAL:    "<=",
	GREATEREQUAL: ">=",
	AMPERSAND:    "&",
	PIPE:         "|",
	CARET:        "^",
	TILDE:        "~",
	LPAREN:       "(",
	RPAREN:       ")",
	LBRACKET:     "[",
	RBRACKET:     "]",
	LBRACE:       "{",
	RBRACE:       "}",
	COMMA:        ",",
	COLON:        ":",
	DOT:          ".",
	SEMICOLON:    ";",
	BACKSLASH:    "\\",
}

func (t TokenKind) String() string {
	if name, ok := kindNames[t]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(t))
}

// Symbol returns how the kind is spelled in source. Keywords are spelled as
// themselves; literal and structural kinds fall back to String.
func (t TokenKind) Symbol() string {
	if sym, ok := kindSymbols[t]; ok {
		return sym
	}
	if kw, ok := keywordSpellings[t]; ok {
		return kw
	}
	return t.String()
}

// IsStructural reports whether the kind is synthesised from layout rather
// than spelled in the source.
func (t TokenKind) IsStructural() bool {
	switch t {
	case INDENT, DEDENT, NEWLINE, EOF:
		return true
	}
	return false
}

func (p Position) String() string {
	if p.Filename == "" {
		p.Filename = "<unknown>"
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%d:%d", s.From, s.To.Line, s.To.Column)
}

func SingleCharSpan(p Position) Span {
	return Span{p, p}
}

type LiteralValue interface {
	is_LiteralValue()
}

type Identifier string

func (v Identifier) is_LiteralValue() {}

type String string

func (v String) is_LiteralValue() {}

type Int int64

func (v Int) is_LiteralValue() {}

type Float float64

func (v Float) is_LiteralValue() {}

func (v Identifier) String() string { return string(v) }
func (v String) String() string     { return strconv.Quote(string(v)) }
func (v Int) String() string        { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string      { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

type Token struct {
	Kind     TokenKind
	Literal  LiteralValue
	Location Span
}

// Text returns the identifier name carried by an IDENT token.
func (t Token) Text() string {
	if id, ok := t.Literal.(Identifier); ok {
		return string(id)
	}
	return ""
}
