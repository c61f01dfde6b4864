package main

import (
	"errors"
	"fmt"
	"os"

	"loxscript/lox"
)

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	value, err := interpret(string(source))
	if err != nil {
		return errors.New(formatLangError(err))
	}
	fmt.Println(value.String())
	return nil
}

// interpret runs one source unit through scan, parse and evaluate with
// fresh instances; the core is single-use per unit.
func interpret(source string) (lox.Value, error) {
	expr, err := lox.ParseExpression(lox.Scan(source))
	if err != nil {
		return lox.NewNil(), err
	}
	return lox.NewInterpreter().Evaluate(expr)
}

// formatLangError renders core errors the way the language reports them:
// operator errors as a tagged "[line N]" message, parse errors verbatim.
func formatLangError(err error) string {
	var unsupported *lox.UnsupportedOperatorError
	if errors.As(err, &unsupported) {
		return fmt.Sprintf("Unsupported operation\n[line %d]", unsupported.Token.Line)
	}
	var runtimeErr *lox.RuntimeError
	if errors.As(err, &runtimeErr) {
		return fmt.Sprintf("%s\n[line %d]", runtimeErr.Message, runtimeErr.Token.Line)
	}
	return err.Error()
}
