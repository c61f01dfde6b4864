package lox

import "fmt"

// ParseError reports the first token the grammar could not match. The
// parser aborts on it; there is no recovery or synchronization.
type ParseError struct {
	Token   Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Token.Line, e.Message)
}

// UnsupportedOperatorError reports an operator applied to operand shapes
// it does not define. The token carries line and lexeme for rendering.
type UnsupportedOperatorError struct {
	Token Token
}

func (e *UnsupportedOperatorError) Error() string {
	return fmt.Sprintf("unsupported operation %q at line %d", e.Token.Lexeme, e.Token.Line)
}

// RuntimeError covers runtime failures not tied to a single operator
// dispatch. The evaluator's current operations never raise it; it is the
// extension surface for hosts that add their own.
type RuntimeError struct {
	Token   Token
	Message string
}

func (e *RuntimeError) Error() string {
	if e.Token.Lexeme == "" {
		return e.Message
	}
	return fmt.Sprintf("%s at line %d", e.Message, e.Token.Line)
}
