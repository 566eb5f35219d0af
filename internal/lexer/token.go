package lexer

import (
	"fmt"
)

type TokenKind int

// Kinds are declared in lexing priority order; see rules in lexer.go.
const (
	SPACE TokenKind = iota
	NEWLINE

	INT
	BOOL
	FLOAT
	CHAR
	MAIN
	IF
	ELSE
	WHILE

	INT_LIT
	TRUE_LIT
	FALSE_LIT
	CHAR_LIT

	DEQ    // ==
	DBAR   // ||
	DAMPER // &&

	EQ    // =
	NEQ   // !=
	ADD   // +
	SUB   // -
	MUL   // *
	DIV   // /
	MOD   // %
	EXCL  // !
	GTE   // >=
	GT    // >
	LTE   // <=
	LT    // <

	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACK    // [
	RBRACK    // ]
	COMMA     // ,
	SEMICOLON // ;

	IDENT

	// EOF is never produced by Tokenize; the scanner returns it once the
	// token sequence is exhausted.
	EOF
)

func (tk TokenKind) String() string {
	switch tk {
	case SPACE:
		return "space"
	case NEWLINE:
		return "newline"
	case INT:
		return "int"
	case BOOL:
		return "bool"
	case FLOAT:
		return "float"
	case CHAR:
		return "char"
	case MAIN:
		return "main"
	case IF:
		return "if"
	case ELSE:
		return "else"
	case WHILE:
		return "while"
	case INT_LIT:
		return "intLit"
	case TRUE_LIT:
		return "trueLit"
	case FALSE_LIT:
		return "falseLit"
	case CHAR_LIT:
		return "charLit"
	case DEQ:
		return "deq"
	case DBAR:
		return "dbar"
	case DAMPER:
		return "damper"
	case EQ:
		return "eq"
	case NEQ:
		return "neq"
	case ADD:
		return "add"
	case SUB:
		return "sub"
	case MUL:
		return "mul"
	case DIV:
		return "div"
	case MOD:
		return "mod"
	case EXCL:
		return "excl"
	case GTE:
		return "gte"
	case GT:
		return "gt"
	case LTE:
		return "lte"
	case LT:
		return "lt"
	case LPAREN:
		return "lparen"
	case RPAREN:
		return "rparen"
	case LBRACE:
		return "lbrace"
	case RBRACE:
		return "rbrace"
	case LBRACK:
		return "lbrack"
	case RBRACK:
		return "rbrack"
	case COMMA:
		return "comma"
	case SEMICOLON:
		return "semicolon"
	case IDENT:
		return "ident"
	case EOF:
		return "EOF"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// IsType reports whether tk names one of the four base types.
func (tk TokenKind) IsType() bool {
	switch tk {
	case INT, BOOL, FLOAT, CHAR:
		return true
	}

	return false
}

type Token struct {
	Kind  TokenKind
	Value string
	Line  int
}

func (t *Token) hasActualValue() bool {
	switch t.Kind {
	case INT_LIT, TRUE_LIT, FALSE_LIT, CHAR_LIT, IDENT:
		return true
	}

	return false
}

func (t *Token) String() string {
	if !t.hasActualValue() {
		return fmt.Sprintf("%s() line %d", t.Kind, t.Line)
	}

	return fmt.Sprintf("%s(%s) line %d", t.Kind, t.Value, t.Line)
}
