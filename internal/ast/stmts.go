package ast

import "github.com/JC-LL/clite/internal/lexer"

// AssignStmt stores Value into Target, which is an *IdentExpr or an *IndexExpr.
type AssignStmt struct {
	Target Expr
	Value  Expr
}

type IfStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Then Stmt
	Else Stmt
}

type WhileStmt struct {
	StartToken *lexer.Token

	Cond Expr
	Body Stmt
}

type BlockStmt struct {
	StartToken *lexer.Token

	Stmts []Stmt
}

func (*AssignStmt) AstNode() {}
func (*IfStmt) AstNode()     {}
func (*WhileStmt) AstNode()  {}
func (*BlockStmt) AstNode()  {}

func (s *AssignStmt) FirstToken() *lexer.Token { return s.Target.FirstToken() }
func (s *IfStmt) FirstToken() *lexer.Token     { return s.StartToken }
func (s *WhileStmt) FirstToken() *lexer.Token  { return s.StartToken }
func (s *BlockStmt) FirstToken() *lexer.Token  { return s.StartToken }

func (*AssignStmt) StmtNode() {}
func (*IfStmt) StmtNode()     {}
func (*WhileStmt) StmtNode()  {}
func (*BlockStmt) StmtNode()  {}
