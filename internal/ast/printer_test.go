package ast

import (
	"bytes"
	"testing"

	"github.com/JC-LL/clite/internal/lexer"
)

func ident(name string) *IdentExpr {
	return &IdentExpr{StartToken: &lexer.Token{Kind: lexer.IDENT, Value: name}, Value: name}
}

func op(kind lexer.TokenKind, text string) *lexer.Token {
	return &lexer.Token{Kind: kind, Value: text}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node AstNode
		want string
	}{
		{name: "ident", node: ident("a"), want: "a"},
		{name: "int", node: &IntExpr{Value: -7}, want: "-7"},
		{name: "bool", node: &BoolExpr{Value: true}, want: "true"},
		{name: "char", node: &CharExpr{Value: 'q'}, want: "'q'"},
		{
			name: "binary",
			node: &BinaryExpr{Left: ident("a"), Op: op(lexer.ADD, "+"), Right: &IntExpr{Value: 1}},
			want: "(+ a 1)",
		},
		{
			name: "unary",
			node: &UnaryExpr{Op: op(lexer.EXCL, "!"), Operand: ident("b")},
			want: "(! b)",
		},
		{name: "paren", node: &ParenExpr{Expr: ident("c")}, want: "(paren c)"},
		{name: "index", node: &IndexExpr{Base: ident("t"), Index: &IntExpr{Value: 3}}, want: "(index t 3)"},
		{
			name: "cast",
			node: &CastExpr{Type: &BaseTypeNode{Type: FloatType}, Expr: ident("i")},
			want: "(cast float i)",
		},
		{name: "declaration", node: &VarDecl{Name: ident("z"), Type: &ArrayTypeNode{Size: 100, InnerType: &BaseTypeNode{Type: BoolType}}}, want: "(var z bool[100])"},
		{name: "assign", node: &AssignStmt{Target: ident("x"), Value: &IntExpr{Value: 0}}, want: "(= x 0)"},
		{name: "if", node: &IfStmt{Cond: ident("c"), Then: &BlockStmt{}}, want: "(if c (block))"},
		{name: "if else", node: &IfStmt{Cond: ident("c"), Then: &BlockStmt{}, Else: &BlockStmt{}}, want: "(if c (block) (block))"},
		{name: "while", node: &WhileStmt{Cond: &BoolExpr{Value: false}, Body: &BlockStmt{}}, want: "(while false (block))"},
		{
			name: "block",
			node: &BlockStmt{Stmts: []Stmt{&AssignStmt{Target: ident("a"), Value: ident("b")}}},
			want: "(block (= a b))",
		},
		{name: "empty program", node: &Program{}, want: "(program (decls) (stmts))"},
		{
			name: "program",
			node: &Program{
				Declarations: []*VarDecl{{Name: ident("a"), Type: &BaseTypeNode{Type: IntType}}},
				Stmts:        []Stmt{&AssignStmt{Target: ident("a"), Value: &IntExpr{Value: 42}}},
			},
			want: "(program (decls (var a int)) (stmts (= a 42)))",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.node); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	Fprint(&buf, &WhileStmt{Cond: ident("go"), Body: &BlockStmt{}})

	if buf.String() != "(while go (block))" {
		t.Errorf("Fprint wrote %q", buf.String())
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		node TypeNode
		want string
	}{
		{&BaseTypeNode{Type: IntType}, "int"},
		{&BaseTypeNode{Type: BoolType}, "bool"},
		{&BaseTypeNode{Type: FloatType}, "float"},
		{&BaseTypeNode{Type: CharType}, "char"},
		{&ArrayTypeNode{Size: 4, InnerType: &BaseTypeNode{Type: CharType}}, "char[4]"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.node.TypeName(); got != tt.want {
				t.Errorf("TypeName() = %q, want %q", got, tt.want)
			}
		})
	}
}
