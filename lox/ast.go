package lox

// Expr is the closed set of expression nodes the parser can build. Every
// node owns its children; trees are immutable once constructed.
type Expr interface {
	exprNode()
}

// BinaryExpr keeps the whole operator token so runtime errors can report
// the source line and lexeme.
type BinaryExpr struct {
	Left     Expr
	Operator Token
	Right    Expr
}

func (e *BinaryExpr) exprNode() {}

type UnaryExpr struct {
	Operator Token
	Right    Expr
}

func (e *UnaryExpr) exprNode() {}

type GroupingExpr struct {
	Expr Expr
}

func (e *GroupingExpr) exprNode() {}

type NumberLiteral struct {
	Value float64
}

func (e *NumberLiteral) exprNode() {}

type StringLiteral struct {
	Value string
}

func (e *StringLiteral) exprNode() {}

type BoolLiteral struct {
	Value bool
}

func (e *BoolLiteral) exprNode() {}

type NilLiteral struct{}

func (e *NilLiteral) exprNode() {}
