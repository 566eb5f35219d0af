package ast

import "github.com/JC-LL/clite/internal/lexer"

type IdentExpr struct {
	StartToken *lexer.Token

	Value string
}

type IntExpr struct {
	StartToken *lexer.Token

	Value int64
}

type BoolExpr struct {
	StartToken *lexer.Token

	Value bool
}

type CharExpr struct {
	StartToken *lexer.Token

	Value byte
}

// ParenExpr keeps explicit parentheses from the source.
type ParenExpr struct {
	StartToken *lexer.Token

	Expr Expr
}

type IndexExpr struct {
	StartToken *lexer.Token

	Base  *IdentExpr
	Index Expr
}

type CastExpr struct {
	StartToken *lexer.Token

	Type TypeNode
	Expr Expr
}

type UnaryExpr struct {
	StartToken *lexer.Token

	Op      *lexer.Token
	Operand Expr
}

type BinaryExpr struct {
	StartToken *lexer.Token

	Left  Expr
	Op    *lexer.Token
	Right Expr
}

func (*IdentExpr) AstNode()  {}
func (*IntExpr) AstNode()    {}
func (*BoolExpr) AstNode()   {}
func (*CharExpr) AstNode()   {}
func (*ParenExpr) AstNode()  {}
func (*IndexExpr) AstNode()  {}
func (*CastExpr) AstNode()   {}
func (*UnaryExpr) AstNode()  {}
func (*BinaryExpr) AstNode() {}

func (e *IdentExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *IntExpr) FirstToken() *lexer.Token    { return e.StartToken }
func (e *BoolExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *CharExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *ParenExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *IndexExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *CastExpr) FirstToken() *lexer.Token   { return e.StartToken }
func (e *UnaryExpr) FirstToken() *lexer.Token  { return e.StartToken }
func (e *BinaryExpr) FirstToken() *lexer.Token { return e.StartToken }

func (*IdentExpr) ExprNode()  {}
func (*IntExpr) ExprNode()    {}
func (*BoolExpr) ExprNode()   {}
func (*CharExpr) ExprNode()   {}
func (*ParenExpr) ExprNode()  {}
func (*IndexExpr) ExprNode()  {}
func (*CastExpr) ExprNode()   {}
func (*UnaryExpr) ExprNode()  {}
func (*BinaryExpr) ExprNode() {}
