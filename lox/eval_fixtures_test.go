package lox

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

type evalFixture struct {
	Cases []evalCase `yaml:"cases"`
}

type evalCase struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Want   string `yaml:"want"`
	Error  string `yaml:"error"`
}

func TestEvalFixtures(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "eval_cases.yaml"))
	if err != nil {
		t.Fatalf("read fixture manifest: %v", err)
	}

	var fixture evalFixture
	if err := yaml.Unmarshal(data, &fixture); err != nil {
		t.Fatalf("decode fixture manifest: %v", err)
	}
	if len(fixture.Cases) == 0 {
		t.Fatalf("fixture manifest is empty")
	}

	for _, tc := range fixture.Cases {
		t.Run(tc.Name, func(t *testing.T) {
			expr, err := ParseExpression(Scan(tc.Source))
			if tc.Error == "parse" {
				var parseErr *ParseError
				if !errors.As(err, &parseErr) {
					t.Fatalf("expected parse error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("parse failed: %v", err)
			}

			value, err := NewInterpreter().Evaluate(expr)
			if tc.Error == "unsupported" {
				var unsupported *UnsupportedOperatorError
				if !errors.As(err, &unsupported) {
					t.Fatalf("expected unsupported-operator error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("evaluate failed: %v", err)
			}
			if got := value.String(); got != tc.Want {
				t.Fatalf("got %q, want %q", got, tc.Want)
			}
		})
	}
}
