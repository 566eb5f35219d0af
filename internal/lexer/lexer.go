package lexer

import (
	"fmt"
	"regexp"

	"github.com/JC-LL/clite/internal/compiler_errors"
)

type LexError struct {
	Line int
	Text string
}

func (e *LexError) Error() string {
	return e.GetMessage()
}

func (e *LexError) GetMessage() string {
	return fmt.Sprintf("lex error line %d: unexpected character '%s'", e.Line, e.Text)
}

func (e *LexError) GetLine() int {
	return e.Line
}

type rule struct {
	kind    TokenKind
	pattern *regexp.Regexp
}

func newRule(kind TokenKind, pattern string) rule {
	return rule{
		kind:    kind,
		pattern: regexp.MustCompile(`^(?:` + pattern + `)`),
	}
}

// keyword matches word only when it is not the prefix of a longer identifier.
func keyword(kind TokenKind, word string) rule {
	return newRule(kind, word+`\b`)
}

// rules are tried in order; the first match wins.
var rules = []rule{
	newRule(SPACE, `[ \t\r]+`),
	newRule(NEWLINE, `\n`),

	keyword(INT, "int"),
	keyword(BOOL, "bool"),
	keyword(FLOAT, "float"),
	keyword(CHAR, "char"),
	keyword(MAIN, "main"),
	keyword(IF, "if"),
	keyword(ELSE, "else"),
	keyword(WHILE, "while"),

	newRule(INT_LIT, `[0-9]+`),
	keyword(TRUE_LIT, "true"),
	keyword(FALSE_LIT, "false"),
	newRule(CHAR_LIT, `'[[:ascii:]]'`),

	newRule(DEQ, `==`),
	newRule(DBAR, `\|\|`),
	newRule(DAMPER, `&&`),

	newRule(EQ, `=`),
	newRule(NEQ, `!=`),
	newRule(ADD, `\+`),
	newRule(SUB, `-`),
	newRule(MUL, `\*`),
	newRule(DIV, `/`),
	newRule(MOD, `%`),
	newRule(EXCL, `!`),
	newRule(GTE, `>=`),
	newRule(GT, `>`),
	newRule(LTE, `<=`),
	newRule(LT, `<`),

	newRule(LPAREN, `\(`),
	newRule(RPAREN, `\)`),
	newRule(LBRACE, `\{`),
	newRule(RBRACE, `\}`),
	newRule(LBRACK, `\[`),
	newRule(RBRACK, `\]`),
	newRule(COMMA, `,`),
	newRule(SEMICOLON, `;`),

	newRule(IDENT, `[a-zA-Z][a-zA-Z0-9]*`),
}

// Observer is told about every lexeme the lexer matches, whitespace included.
type Observer func(kind TokenKind, text string)

type Lexer struct {
	buf  string
	pos  int
	line int

	observer Observer

	eh compiler_errors.ErrorHandler
}

func NewLexer(src string, eh compiler_errors.ErrorHandler) *Lexer {
	return &Lexer{
		buf:  src,
		pos:  0,
		line: 1,

		eh: eh,
	}
}

func (l *Lexer) SetObserver(o Observer) {
	l.observer = o
}

// Tokenize splits the whole input into tokens. Whitespace and newlines are
// dropped; newlines only advance the line counter.
func (l *Lexer) Tokenize() (_ []Token, err error) {
	defer compiler_errors.Recover(&err)

	tokens := make([]Token, 0)
	for l.hasChars() {
		kind, text := l.match()
		l.pos += len(text)

		if l.observer != nil {
			l.observer(kind, text)
		}

		switch kind {
		case NEWLINE:
			l.line++
		case SPACE:
		default:
			tokens = append(tokens, Token{
				Kind:  kind,
				Value: text,
				Line:  l.line,
			})
		}
	}

	return tokens, nil
}

func (l *Lexer) match() (TokenKind, string) {
	rest := l.buf[l.pos:]
	for _, r := range rules {
		if m := r.pattern.FindString(rest); m != "" {
			return r.kind, m
		}
	}

	l.eh.AddError(&LexError{
		Line: l.line,
		Text: l.unexpected(),
	})
	l.eh.FailNow()
	panic("unreachable")
}

func (l *Lexer) unexpected() string {
	for i := range l.buf[l.pos:] {
		if i > 0 {
			return l.buf[l.pos : l.pos+i]
		}
	}

	return l.buf[l.pos:]
}

func (l *Lexer) hasChars() bool { return l.pos < len(l.buf) }

// Tokenize is a convenience wrapper for a one-shot lexer.
func Tokenize(src string) ([]Token, error) {
	return NewLexer(src, compiler_errors.NewErrorHandler()).Tokenize()
}
