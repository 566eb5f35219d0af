package parser

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/JC-LL/clite/internal/ast"
	"github.com/JC-LL/clite/internal/compiler_errors"
	"github.com/JC-LL/clite/internal/lexer"
	"github.com/JC-LL/clite/internal/trace"
)

type SyntaxError struct {
	Line     int
	Expected string
	Got      string
}

func (e *SyntaxError) Error() string {
	return e.GetMessage()
}

func (e *SyntaxError) GetMessage() string {
	return fmt.Sprintf("syntax error line %d: expecting %s. Got '%s'", e.Line, e.Expected, e.Got)
}

func (e *SyntaxError) GetLine() int {
	return e.Line
}

const DefaultPreview = 11

type Option func(*Parser)

// WithTracer reports every grammar rule the parser enters to t.
func WithTracer(t trace.Tracer) Option {
	return func(p *Parser) {
		p.tracer = t
	}
}

// WithPreview sets how many upcoming lexemes accompany a traced rule.
func WithPreview(n int) Option {
	return func(p *Parser) {
		if n >= 0 {
			p.preview = n
		}
	}
}

type Parser struct {
	scanner lexer.TokenScanner
	eh      compiler_errors.ErrorHandler

	curr *lexer.Token

	tracer  trace.Tracer
	preview int
	depth   int
}

var (
	typeKinds       = []lexer.TokenKind{lexer.INT, lexer.BOOL, lexer.FLOAT, lexer.CHAR}
	stmtStarters    = []lexer.TokenKind{lexer.IF, lexer.WHILE, lexer.LBRACE, lexer.SEMICOLON, lexer.IDENT}
	equalityOps     = []lexer.TokenKind{lexer.DEQ, lexer.NEQ}
	relationOps     = []lexer.TokenKind{lexer.LT, lexer.LTE, lexer.GT, lexer.GTE}
	additionOps     = []lexer.TokenKind{lexer.ADD, lexer.SUB}
	multiplyOps     = []lexer.TokenKind{lexer.MUL, lexer.DIV, lexer.MOD}
	unaryOps        = []lexer.TokenKind{lexer.SUB, lexer.EXCL}
	stmtExpectation = "if, while, { or ident"
)

func NewParser(scanner lexer.TokenScanner, eh compiler_errors.ErrorHandler, opts ...Option) *Parser {
	p := &Parser{
		scanner: scanner,
		eh:      eh,
		curr:    scanner.Peek(),
		preview: DefaultPreview,
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Parse tokenizes src and builds its AST. The first lexical or syntax error
// aborts the parse; no partial tree is returned.
func Parse(src string, opts ...Option) (*ast.Program, error) {
	eh := compiler_errors.NewErrorHandler()

	p := &Parser{
		eh:      eh,
		preview: DefaultPreview,
	}
	for _, opt := range opts {
		opt(p)
	}

	l := lexer.NewLexer(src, eh)
	if p.tracer != nil {
		l.SetObserver(func(_ lexer.TokenKind, text string) {
			p.tracer.Lexeme(text)
		})
	}

	tokens, err := l.Tokenize()
	if err != nil {
		return nil, err
	}

	p.scanner = lexer.NewTokenScanner(tokens)
	p.curr = p.scanner.Peek()

	return p.Parse()
}

func (p *Parser) Parse() (_ *ast.Program, err error) {
	defer compiler_errors.Recover(&err)

	return p.parseProgram(), nil
}

func (p *Parser) parseProgram() *ast.Program {
	p.enter("program")
	defer p.leave()

	startToken := p.expect(lexer.INT)
	p.expect(lexer.MAIN)
	p.expect(lexer.LPAREN)
	p.expect(lexer.RPAREN)
	p.expect(lexer.LBRACE)

	declarations := p.parseDeclarations()
	stmts := p.parseStmts()

	p.expect(lexer.RBRACE)
	p.expect(lexer.EOF)

	return &ast.Program{
		StartToken: startToken,

		Declarations: declarations,
		Stmts:        stmts,
	}
}

func (p *Parser) parseDeclarations() []*ast.VarDecl {
	p.enter("declarations")
	defer p.leave()

	declarations := make([]*ast.VarDecl, 0)
	for p.isCurrAny(typeKinds...) {
		declarations = append(declarations, p.parseDeclaration()...)
	}

	return declarations
}

// parseDeclaration handles `int a, t[10];`, yielding one VarDecl per name.
func (p *Parser) parseDeclaration() []*ast.VarDecl {
	p.enter("declaration")
	defer p.leave()

	baseType := p.parseBaseType()

	declarations := []*ast.VarDecl{p.parseDeclarator(baseType)}
	for p.curr.Kind == lexer.COMMA {
		p.read()
		declarations = append(declarations, p.parseDeclarator(baseType))
	}

	p.expect(lexer.SEMICOLON)

	return declarations
}

func (p *Parser) parseDeclarator(baseType ast.BaseType) *ast.VarDecl {
	name := p.parseIdentExpr()

	var varType ast.TypeNode = &ast.BaseTypeNode{Type: baseType}
	if p.curr.Kind == lexer.LBRACK {
		p.read()

		sizeToken := p.expect(lexer.INT_LIT)
		size, err := strconv.Atoi(sizeToken.Value)
		if err != nil {
			p.fail(sizeToken, "array size")
		}

		p.expect(lexer.RBRACK)

		varType = &ast.ArrayTypeNode{
			Size:      size,
			InnerType: varType,
		}
	}

	return &ast.VarDecl{
		Name: name,
		Type: varType,
	}
}

func (p *Parser) parseBaseType() ast.BaseType {
	p.enter("type")
	defer p.leave()

	p.expectAny("type", typeKinds...)

	switch p.read().Kind {
	case lexer.INT:
		return ast.IntType
	case lexer.BOOL:
		return ast.BoolType
	case lexer.FLOAT:
		return ast.FloatType
	default:
		return ast.CharType
	}
}

// parseStmts keeps going on a stray `;` so that it is reported as a bad
// statement rather than as a missing `}`.
func (p *Parser) parseStmts() []ast.Stmt {
	p.enter("statements")
	defer p.leave()

	stmts := make([]ast.Stmt, 0)
	for p.isCurrAny(stmtStarters...) {
		stmts = append(stmts, p.parseStmt())
	}

	return stmts
}

func (p *Parser) parseStmt() ast.Stmt {
	p.enter("statement")
	defer p.leave()

	switch p.curr.Kind {
	case lexer.IF:
		return p.parseIfStmt()
	case lexer.WHILE:
		return p.parseWhileStmt()
	case lexer.LBRACE:
		return p.parseBlockStmt()
	case lexer.IDENT:
		return p.parseAssignStmt()
	}

	p.fail(p.curr, stmtExpectation)
	panic("unreachable")
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	p.enter("if")
	defer p.leave()

	startToken := p.expect(lexer.IF)
	cond := p.parseCondition()
	then := p.parseStmt()

	ifStmt := &ast.IfStmt{
		StartToken: startToken,

		Cond: cond,
		Then: then,
	}

	if p.curr.Kind == lexer.ELSE {
		p.read()
		ifStmt.Else = p.parseStmt()
	}

	return ifStmt
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	p.enter("while")
	defer p.leave()

	startToken := p.expect(lexer.WHILE)
	cond := p.parseCondition()
	body := p.parseStmt()

	return &ast.WhileStmt{
		StartToken: startToken,

		Cond: cond,
		Body: body,
	}
}

func (p *Parser) parseCondition() ast.Expr {
	p.expect(lexer.LPAREN)
	cond := p.parseExpr()
	p.expect(lexer.RPAREN)

	return cond
}

func (p *Parser) parseBlockStmt() *ast.BlockStmt {
	p.enter("block")
	defer p.leave()

	startToken := p.expect(lexer.LBRACE)
	stmts := p.parseStmts()
	p.expect(lexer.RBRACE)

	return &ast.BlockStmt{
		StartToken: startToken,

		Stmts: stmts,
	}
}

func (p *Parser) parseAssignStmt() *ast.AssignStmt {
	p.enter("assignment")
	defer p.leave()

	target := p.parseTarget()
	p.expect(lexer.EQ)
	value := p.parseExpr()
	p.expect(lexer.SEMICOLON)

	return &ast.AssignStmt{
		Target: target,
		Value:  value,
	}
}

// parseTarget parses `x` or `x[e]`.
func (p *Parser) parseTarget() ast.Expr {
	ident := p.parseIdentExpr()
	if p.curr.Kind != lexer.LBRACK {
		return ident
	}

	p.read()
	index := p.parseExpr()
	p.expect(lexer.RBRACK)

	return &ast.IndexExpr{
		StartToken: ident.StartToken,

		Base:  ident,
		Index: index,
	}
}

func (p *Parser) parseExpr() ast.Expr {
	p.enter("expression")
	defer p.leave()

	return p.parseBinaryExpr(p.parseConjunction, true, lexer.DBAR)
}

func (p *Parser) parseConjunction() ast.Expr {
	p.enter("conjunction")
	defer p.leave()

	return p.parseBinaryExpr(p.parseEquality, true, lexer.DAMPER)
}

func (p *Parser) parseEquality() ast.Expr {
	p.enter("equality")
	defer p.leave()

	return p.parseBinaryExpr(p.parseRelation, false, equalityOps...)
}

func (p *Parser) parseRelation() ast.Expr {
	p.enter("relation")
	defer p.leave()

	return p.parseBinaryExpr(p.parseAddition, false, relationOps...)
}

func (p *Parser) parseAddition() ast.Expr {
	p.enter("addition")
	defer p.leave()

	return p.parseBinaryExpr(p.parseTerm, true, additionOps...)
}

func (p *Parser) parseTerm() ast.Expr {
	p.enter("term")
	defer p.leave()

	return p.parseBinaryExpr(p.parseFactor, true, multiplyOps...)
}

// parseBinaryExpr parses operand (op operand)* when chain is set and
// operand (op operand)? otherwise. Chains associate to the left. With no
// operator the lone operand is returned as is.
func (p *Parser) parseBinaryExpr(operand func() ast.Expr, chain bool, ops ...lexer.TokenKind) ast.Expr {
	left := operand()

	for p.isCurrAny(ops...) {
		op := p.read()
		right := operand()

		left = &ast.BinaryExpr{
			StartToken: left.FirstToken(),

			Left:  left,
			Op:    op,
			Right: right,
		}

		if !chain {
			break
		}
	}

	return left
}

func (p *Parser) parseFactor() ast.Expr {
	p.enter("factor")
	defer p.leave()

	if !p.isCurrAny(unaryOps...) {
		return p.parsePrimaryExpr()
	}

	op := p.read()
	operand := p.parsePrimaryExpr()

	return &ast.UnaryExpr{
		StartToken: op,

		Op:      op,
		Operand: operand,
	}
}

func (p *Parser) parsePrimaryExpr() ast.Expr {
	p.enter("primary")
	defer p.leave()

	switch p.curr.Kind {
	case lexer.IDENT:
		return p.parseTarget()
	case lexer.INT_LIT:
		return p.parseIntExpr()
	case lexer.TRUE_LIT, lexer.FALSE_LIT:
		return p.parseBoolExpr()
	case lexer.CHAR_LIT:
		return p.parseCharExpr()
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.INT, lexer.BOOL, lexer.FLOAT, lexer.CHAR:
		return p.parseCastExpr()
	}

	p.fail(p.curr, "primary")
	panic("unreachable")
}

func (p *Parser) parseParenExpr() *ast.ParenExpr {
	startToken := p.expect(lexer.LPAREN)
	expr := p.parseExpr()
	p.expect(lexer.RPAREN)

	return &ast.ParenExpr{
		StartToken: startToken,

		Expr: expr,
	}
}

func (p *Parser) parseCastExpr() *ast.CastExpr {
	startToken := p.curr
	castType := p.parseBaseType()

	p.expect(lexer.LPAREN)
	expr := p.parseExpr()
	p.expect(lexer.RPAREN)

	return &ast.CastExpr{
		StartToken: startToken,

		Type: &ast.BaseTypeNode{Type: castType},
		Expr: expr,
	}
}

func (p *Parser) parseIdentExpr() *ast.IdentExpr {
	token := p.expect(lexer.IDENT)

	return &ast.IdentExpr{
		StartToken: token,

		Value: token.Value,
	}
}

func (p *Parser) parseIntExpr() *ast.IntExpr {
	token := p.expect(lexer.INT_LIT)

	value, err := strconv.ParseInt(token.Value, 10, 64)
	if err != nil {
		p.fail(token, "integer literal within 64 bits")
	}

	return &ast.IntExpr{
		StartToken: token,

		Value: value,
	}
}

func (p *Parser) parseBoolExpr() *ast.BoolExpr {
	p.expectAny("boolean literal", lexer.TRUE_LIT, lexer.FALSE_LIT)
	token := p.read()

	return &ast.BoolExpr{
		StartToken: token,

		Value: token.Kind == lexer.TRUE_LIT,
	}
}

func (p *Parser) parseCharExpr() *ast.CharExpr {
	token := p.expect(lexer.CHAR_LIT)

	return &ast.CharExpr{
		StartToken: token,

		Value: token.Value[1],
	}
}

func (p *Parser) read() *lexer.Token {
	token := p.scanner.Read()
	p.curr = p.scanner.Peek()
	return token
}

// expect consumes the current token when it is of the given kind.
func (p *Parser) expect(kind lexer.TokenKind) *lexer.Token {
	if p.curr.Kind != kind {
		p.fail(p.curr, kind.String())
	}

	return p.read()
}

func (p *Parser) expectAny(what string, kinds ...lexer.TokenKind) {
	if p.isCurrAny(kinds...) {
		return
	}

	p.fail(p.curr, what)
}

func (p *Parser) isCurrAny(kinds ...lexer.TokenKind) bool {
	return slices.Contains(kinds, p.curr.Kind)
}

func (p *Parser) fail(token *lexer.Token, expected string) {
	p.eh.AddError(&SyntaxError{
		Line:     token.Line,
		Expected: expected,
		Got:      token.Value,
	})
	p.eh.FailNow()
}

func (p *Parser) enter(rule string) {
	if p.tracer != nil {
		upcoming := p.scanner.Upcoming(p.preview)
		texts := make([]string, len(upcoming))
		for i, token := range upcoming {
			texts[i] = token.Value
		}
		p.tracer.Rule(p.depth, rule, texts)
	}

	p.depth++
}

func (p *Parser) leave() {
	p.depth--
}
