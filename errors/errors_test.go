package errors

import (
	"testing"

	"github.com/pontaoski/mash/types"
)

func span(line, from, to int) types.Span {
	return types.Span{
		From: types.Position{Line: line, Column: from, Filename: "t.py"},
		To:   types.Position{Line: line, Column: to, Filename: "t.py"},
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{
			ExpectedKindGotKind{Expected: types.COLON, Got: types.NEWLINE, Context: "after if condition", Location: span(1, 5, 6)},
			"expected ':' after if condition, got NEWLINE. t.py:1:5-1:6",
		},
		{
			ExpectedKindGotKind{Expected: types.RPAREN, Got: types.EOF, Location: span(3, 1, 1)},
			"expected ')', got EOF. t.py:3:1-3:1",
		},
		{
			UnknownEscape{Char: 'q', Location: span(1, 2, 4)},
			`unknown escape sequence \q. t.py:1:2-1:4`,
		},
		{
			InconsistentIndentation{Width: 2, Location: span(4, 3, 3)},
			"inconsistent indentation: width 2 matches no enclosing block. t.py:4:3-4:3",
		},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
	}
}

func TestDiagnostics(t *testing.T) {
	var d Diagnostics
	if d.Err() != nil {
		t.Fatalf("empty diagnostics should have no error")
	}

	var seen int
	sink := Tee(&d, SinkFunc(func(error) { seen++ }), Discard)
	sink.Report(UnterminatedString{Location: span(1, 1, 3)})
	sink.Report(InvalidTarget{Location: span(2, 1, 2)})

	if d.Len() != 2 || seen != 2 {
		t.Fatalf("got %d collected and %d seen, want 2 and 2", d.Len(), seen)
	}

	want := "unterminated string. t.py:1:1-1:3\ninvalid assignment target. t.py:2:1-2:2"
	if got := d.Err().Error(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	d.Reset()
	if d.Len() != 0 {
		t.Errorf("reset left %d diagnostics", d.Len())
	}
}
