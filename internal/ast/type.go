package ast

import "fmt"

type TypeNode interface {
	TypeNode()
	TypeName() string
}

type BaseType int

const (
	IntType BaseType = iota
	BoolType
	FloatType
	CharType
)

func (b BaseType) String() string {
	switch b {
	case IntType:
		return "int"
	case BoolType:
		return "bool"
	case FloatType:
		return "float"
	case CharType:
		return "char"
	default:
		panic(fmt.Sprintf("BaseType.String(): received illegal base type: %d", b))
	}
}

type BaseTypeNode struct {
	Type BaseType
}

type ArrayTypeNode struct {
	Size      int
	InnerType TypeNode
}

func (*BaseTypeNode) TypeNode()  {}
func (*ArrayTypeNode) TypeNode() {}

func (t *BaseTypeNode) TypeName() string {
	return t.Type.String()
}
func (t *ArrayTypeNode) TypeName() string {
	return fmt.Sprintf("%s[%d]", t.InnerType.TypeName(), t.Size)
}
