package ast

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders node as a compact S-expression, e.g. (+ a (* b c)).
func String(node AstNode) string {
	var sb strings.Builder
	Fprint(&sb, node)
	return sb.String()
}

func Fprint(w io.Writer, node AstNode) {
	p := &printer{w: w}
	p.node(node)
}

type printer struct {
	w io.Writer
}

func (p *printer) print(s string) {
	io.WriteString(p.w, s)
}

func (p *printer) list(head string, nodes ...AstNode) {
	p.print("(" + head)
	for _, n := range nodes {
		p.print(" ")
		p.node(n)
	}
	p.print(")")
}

func (p *printer) node(node AstNode) {
	switch n := node.(type) {
	case *Program:
		p.print("(program (decls")
		for _, d := range n.Declarations {
			p.print(" ")
			p.node(d)
		}
		p.print(") ")
		p.stmts("stmts", n.Stmts)
		p.print(")")

	case *VarDecl:
		p.print(fmt.Sprintf("(var %s %s)", n.Name.Value, n.Type.TypeName()))

	case *AssignStmt:
		p.list("=", n.Target, n.Value)
	case *IfStmt:
		if n.Else == nil {
			p.list("if", n.Cond, n.Then)
			return
		}
		p.list("if", n.Cond, n.Then, n.Else)
	case *WhileStmt:
		p.list("while", n.Cond, n.Body)
	case *BlockStmt:
		p.stmts("block", n.Stmts)

	case *IdentExpr:
		p.print(n.Value)
	case *IntExpr:
		p.print(strconv.FormatInt(n.Value, 10))
	case *BoolExpr:
		p.print(strconv.FormatBool(n.Value))
	case *CharExpr:
		p.print("'" + string(n.Value) + "'")
	case *ParenExpr:
		p.list("paren", n.Expr)
	case *IndexExpr:
		p.list("index", n.Base, n.Index)
	case *CastExpr:
		p.list("cast "+n.Type.TypeName(), n.Expr)
	case *UnaryExpr:
		p.list(n.Op.Value, n.Operand)
	case *BinaryExpr:
		p.list(n.Op.Value, n.Left, n.Right)

	default:
		panic(fmt.Sprintf("ast.Fprint: unexpected node %T", node))
	}
}

func (p *printer) stmts(head string, stmts []Stmt) {
	nodes := make([]AstNode, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	p.list(head, nodes...)
}
