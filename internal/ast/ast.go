package ast

import "github.com/JC-LL/clite/internal/lexer"

type AstNode interface {
	AstNode()
	FirstToken() *lexer.Token
}

// Program is the single `int main() { ... }` body of a CLite source.
type Program struct {
	StartToken *lexer.Token

	Declarations []*VarDecl
	Stmts        []Stmt
}

type VarDecl struct {
	Name *IdentExpr
	Type TypeNode
}

type Stmt interface {
	AstNode
	StmtNode()
}

type Expr interface {
	AstNode
	ExprNode()
}

func (*Program) AstNode() {}
func (*VarDecl) AstNode() {}

func (p *Program) FirstToken() *lexer.Token { return p.StartToken }
func (v *VarDecl) FirstToken() *lexer.Token { return v.Name.StartToken }
