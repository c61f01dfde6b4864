package lox

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Scanner converts source text into a token sequence in a single
// left-to-right pass. It is single-use: one Scanner per source unit.
type Scanner struct {
	source string

	start   int
	current int
	line    int

	tokens  []Token
	skipped []SkippedSpan
}

// SkippedSpan records input the scanner dropped without emitting a token:
// an unexpected character or an unterminated string literal. The scanner
// itself stays total; a diagnostics layer may inspect these after scanning.
type SkippedSpan struct {
	Line   int
	Text   string
	Reason string
}

const (
	skipReasonUnexpectedChar     = "unexpected character"
	skipReasonUnterminatedString = "unterminated string"
)

func NewScanner(source string) *Scanner {
	return &Scanner{source: source, line: 1}
}

// Scan tokenizes source in one shot. The returned sequence always ends
// with exactly one EOF token, whatever the input.
func Scan(source string) []Token {
	return NewScanner(source).ScanTokens()
}

// ScanTokens runs the scan to completion and returns the token sequence,
// terminated by an EOF token.
func (s *Scanner) ScanTokens() []Token {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, Token{Type: tokenEOF, Lexeme: "", Line: s.line})
	return s.tokens
}

// Skipped reports the input spans dropped during scanning.
func (s *Scanner) Skipped() []SkippedSpan {
	return s.skipped
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(tokenLeftParen)
	case ')':
		s.addToken(tokenRightParen)
	case '{':
		s.addToken(tokenLeftBrace)
	case '}':
		s.addToken(tokenRightBrace)
	case ',':
		s.addToken(tokenComma)
	case '.':
		s.addToken(tokenDot)
	case '-':
		s.addToken(tokenMinus)
	case '+':
		s.addToken(tokenPlus)
	case ';':
		s.addToken(tokenSemicolon)
	case '*':
		s.addToken(tokenStar)
	case '!':
		if s.match('=') {
			s.addToken(tokenBangEqual)
		} else {
			s.addToken(tokenBang)
		}
	case '=':
		if s.match('=') {
			s.addToken(tokenEqualEqual)
		} else {
			s.addToken(tokenEqual)
		}
	case '<':
		if s.match('=') {
			s.addToken(tokenLessEqual)
		} else {
			s.addToken(tokenLess)
		}
	case '>':
		if s.match('=') {
			s.addToken(tokenGreaterEqual)
		} else {
			s.addToken(tokenGreater)
		}
	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else {
			s.addToken(tokenSlash)
		}
	case '"':
		s.scanString()
	case ' ', '\t', '\r':
		// insignificant
	case '\n':
		s.line++
	default:
		switch {
		case unicode.IsDigit(c):
			s.scanNumber()
		case unicode.IsLetter(c):
			s.scanIdentifier()
		default:
			s.skip(skipReasonUnexpectedChar)
		}
	}
}

func (s *Scanner) scanString() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}

	if s.isAtEnd() {
		s.skip(skipReasonUnterminatedString)
		return
	}

	// closing quote
	s.advance()

	value := s.source[s.start+1 : s.current-1]
	s.addLiteralToken(tokenString, NewStringLiteral(value))
}

func (s *Scanner) scanNumber() {
	for unicode.IsDigit(s.peek()) {
		s.advance()
	}

	// A fractional part needs a digit after the dot; a trailing dot is
	// left for the next token.
	if s.peek() == '.' && unicode.IsDigit(s.peekNext()) {
		s.advance()
		for unicode.IsDigit(s.peek()) {
			s.advance()
		}
	}

	value, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)
	s.addLiteralToken(tokenNumber, NewNumberLiteral(value))
}

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	text := s.source[s.start:s.current]
	s.addToken(lookupKeyword(text))
}

func (s *Scanner) addToken(tt TokenType) {
	s.addLiteralToken(tt, nil)
}

func (s *Scanner) addLiteralToken(tt TokenType, literal *Literal) {
	text := s.source[s.start:s.current]
	s.tokens = append(s.tokens, Token{Type: tt, Lexeme: text, Literal: literal, Line: s.line})
}

func (s *Scanner) skip(reason string) {
	s.skipped = append(s.skipped, SkippedSpan{
		Line:   s.line,
		Text:   s.source[s.start:s.current],
		Reason: reason,
	})
}

func (s *Scanner) advance() rune {
	r, w := utf8.DecodeRuneInString(s.source[s.current:])
	s.current += w
	return r
}

func (s *Scanner) match(expected rune) bool {
	if s.isAtEnd() {
		return false
	}
	r, w := utf8.DecodeRuneInString(s.source[s.current:])
	if r != expected {
		return false
	}
	s.current += w
	return true
}

func (s *Scanner) peek() rune {
	if s.isAtEnd() {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current:])
	return r
}

func (s *Scanner) peekNext() rune {
	if s.current >= len(s.source) {
		return 0
	}
	_, w := utf8.DecodeRuneInString(s.source[s.current:])
	if s.current+w >= len(s.source) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s.source[s.current+w:])
	return r
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

func isAlphaNumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
