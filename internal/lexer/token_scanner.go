package lexer

type TokenScanner interface {
	Peek() *Token
	Read() *Token
	HasTokens() bool
	Upcoming(n int) []Token
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
	eof Token
}

func NewTokenScanner(tokens []Token) TokenScanner {
	line := 1
	if len(tokens) > 0 {
		line = tokens[len(tokens)-1].Line
	}

	return &SimpleTokenScanner{
		tokens: tokens,
		eof: Token{
			Kind:  EOF,
			Value: EOF.String(),
			Line:  line,
		},
	}
}

// Peek returns the next token without consuming it, or the EOF sentinel.
func (s *SimpleTokenScanner) Peek() *Token {
	if !s.HasTokens() {
		return &s.eof
	}

	return &s.tokens[s.pos]
}

func (s *SimpleTokenScanner) Read() *Token {
	token := s.Peek()
	if s.HasTokens() {
		s.pos++
	}

	return token
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)
}

// Upcoming returns at most n tokens from the cursor on, without consuming them.
func (s *SimpleTokenScanner) Upcoming(n int) []Token {
	end := min(s.pos+n, len(s.tokens))

	return s.tokens[s.pos:end]
}
