package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// Display renders an expression tree in parenthesized prefix form:
// operators first, grouped subtrees tagged with "group".
func Display(expr Expr) string {
	switch e := expr.(type) {
	case *BinaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Left, e.Right)
	case *UnaryExpr:
		return parenthesize(e.Operator.Lexeme, e.Right)
	case *GroupingExpr:
		return parenthesize("group", e.Expr)
	case *NumberLiteral:
		return strconv.FormatFloat(e.Value, 'g', -1, 64)
	case *StringLiteral:
		return e.Value
	case *BoolLiteral:
		if e.Value {
			return "true"
		}
		return "false"
	case *NilLiteral:
		return "nil"
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}

func parenthesize(name string, exprs ...Expr) string {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		b.WriteString(Display(e))
	}
	b.WriteString(")")
	return b.String()
}
