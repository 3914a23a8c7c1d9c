package types

var keywords = map[string]TokenKind{
	"and":      AND,
	"or":       OR,
	"not":      NOT,
	"if":       IF,
	"elif":     ELIF,
	"else":     ELSE,
	"while":    WHILE,
	"for":      FOR,
	"in":       IN,
	"break":    BREAK,
	"continue": CONTINUE,
	"return":   RETURN,
	"def":      DEF,
	"class":    CLASS,
	"pass":     PASS,
	"import":   IMPORT,
	"from":     FROM,
	"print":    PRINT,
	"global":   GLOBAL,
	"del":      DEL,
	"try":      TRY,
	"except":   EXCEPT,
	"raise":    RAISE,
	"is":       IS,
	"lambda":   LAMBDA,
}

var keywordSpellings = func() map[TokenKind]string {
	m := make(map[TokenKind]string, len(keywords))
	for text, kind := range keywords {
		m[kind] = text
	}
	return m
}()

// LookupKeyword reports the keyword kind spelled by text. The table is
// read-only after package init, so it is safe for concurrent lexers.
func LookupKeyword(text string) (TokenKind, bool) {
	kind, ok := keywords[text]
	return kind, ok
}
