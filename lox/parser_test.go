package lox

import (
	"errors"
	"testing"
)

func parseSource(t *testing.T, source string) Expr {
	t.Helper()
	expr, err := ParseExpression(Scan(source))
	if err != nil {
		t.Fatalf("parse %q failed: %v", source, err)
	}
	return expr
}

func TestParseExpressionDisplayForms(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{"1", "1"},
		{"1 + 2", "(+ 1 2)"},
		{"(1 + 2)", "(group (+ 1 2))"},
		{"1 - 2", "(- 1 2)"},
		{"1 * 2", "(* 1 2)"},
		{"1 / 2", "(/ 1 2)"},
		{"1 + 2 * 3", "(+ 1 (* 2 3))"},
		{"(1 + 2) * 3", "(* (group (+ 1 2)) 3)"},
		{"1 + 2 * 3 - 4", "(- (+ 1 (* 2 3)) 4)"},
		{"1 + (2 * 3) - (4 * 5)", "(- (+ 1 (group (* 2 3))) (group (* 4 5)))"},
		{`"hi" + "there"`, "(+ hi there)"},
		{"true == false", "(== true false)"},
		{"nil", "nil"},
	}

	for _, tc := range tests {
		if got := Display(parseSource(t, tc.source)); got != tc.want {
			t.Fatalf("parse %q: got %q, want %q", tc.source, got, tc.want)
		}
	}
}

func TestParseLeftAssociativity(t *testing.T) {
	if got := Display(parseSource(t, "1 - 2 - 3")); got != "(- (- 1 2) 3)" {
		t.Fatalf("subtraction should fold left, got %q", got)
	}
	if got := Display(parseSource(t, "1 == 2 != 3")); got != "(!= (== 1 2) 3)" {
		t.Fatalf("equality should fold left, got %q", got)
	}
}

func TestParseUnaryIsRightAssociative(t *testing.T) {
	if got := Display(parseSource(t, "--1")); got != "(- (- 1))" {
		t.Fatalf("unary chain should nest right, got %q", got)
	}
	if got := Display(parseSource(t, "!!true")); got != "(! (! true))" {
		t.Fatalf("bang chain should nest right, got %q", got)
	}
}

func TestParseComparisonBindsTighterThanEquality(t *testing.T) {
	if got := Display(parseSource(t, "1 < 2 == true")); got != "(== (< 1 2) true)" {
		t.Fatalf("unexpected tree: %q", got)
	}
}

func TestParseMissingRightParen(t *testing.T) {
	_, err := ParseExpression(Scan("(1 + 2"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Message != "Expect ')' after expression." {
		t.Fatalf("unexpected message: %q", parseErr.Message)
	}
}

func TestParseExpectExpression(t *testing.T) {
	// Statement keywords scan fine but primary rejects them: this core
	// parses single expressions only.
	tests := []string{"+", "", "1 +", "var", "print"}
	for _, source := range tests {
		_, err := ParseExpression(Scan(source))
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("parse %q: expected *ParseError, got %v", source, err)
		}
		if parseErr.Message != "Expect expression." {
			t.Fatalf("parse %q: unexpected message %q", source, parseErr.Message)
		}
	}
}

func TestParseNumberLiteralFromLexeme(t *testing.T) {
	expr := parseSource(t, "123.456")
	num, ok := expr.(*NumberLiteral)
	if !ok {
		t.Fatalf("expected *NumberLiteral, got %T", expr)
	}
	if num.Value != 123.456 {
		t.Fatalf("unexpected value: %v", num.Value)
	}
}

func TestParseErrorMentionsLine(t *testing.T) {
	_, err := ParseExpression(Scan("1 +\n(2"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Token.Line != 2 {
		t.Fatalf("expected failure on line 2, got %d", parseErr.Token.Line)
	}
}
