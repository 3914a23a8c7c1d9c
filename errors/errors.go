package errors

import (
	"fmt"

	"github.com/pontaoski/mash/types"
)

type ExpectedKindGotKind struct {
	Expected types.TokenKind
	Got      types.TokenKind
	Context  string
	Location types.Span
}

func (e ExpectedKindGotKind) Error() string {
	if e.Context == "" {
		return fmt.Sprintf("expected '%s', got %s. %s", e.Expected.Symbol(), e.Got, e.Location)
	}
	return fmt.Sprintf("expected '%s' %s, got %s. %s", e.Expected.Symbol(), e.Context, e.Got, e.Location)
}

type ExpectedOneOfKindGotKind struct {
	Expected []types.TokenKind
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedOneOfKindGotKind) Error() string {
	return fmt.Sprintf("got a %s, expected one of %s. %s", e.Got, e.Expected, e.Location)
}

type ExpectedExpression struct {
	Got      types.TokenKind
	Location types.Span
}

func (e ExpectedExpression) Error() string {
	return fmt.Sprintf("expected expression, got %s. %s", e.Got, e.Location)
}

type InvalidTarget struct {
	Location types.Span
}

func (e InvalidTarget) Error() string {
	return fmt.Sprintf("invalid assignment target. %s", e.Location)
}

type DuplicateParameter struct {
	Name     string
	Location types.Span
}

func (e DuplicateParameter) Error() string {
	return fmt.Sprintf("parameter %s specified more than once. %s", e.Name, e.Location)
}

type UnexpectedCharacter struct {
	Char     rune
	Location types.Span
}

func (e UnexpectedCharacter) Error() string {
	return fmt.Sprintf("unexpected character %q. %s", e.Char, e.Location)
}

type UnterminatedString struct {
	Location types.Span
}

func (e UnterminatedString) Error() string {
	return fmt.Sprintf("unterminated string. %s", e.Location)
}

type UnknownEscape struct {
	Char     rune
	Location types.Span
}

func (e UnknownEscape) Error() string {
	return fmt.Sprintf("unknown escape sequence \\%c. %s", e.Char, e.Location)
}

type InvalidNumber struct {
	Text     string
	Location types.Span
}

func (e InvalidNumber) Error() string {
	return fmt.Sprintf("number %s out of range. %s", e.Text, e.Location)
}

// InconsistentIndentation is fatal: the dedent width matches no enclosing
// block, so no further block structure can be trusted.
type InconsistentIndentation struct {
	Width    int
	Location types.Span
}

func (e InconsistentIndentation) Error() string {
	return fmt.Sprintf("inconsistent indentation: width %d matches no enclosing block. %s", e.Width, e.Location)
}
