package lox

import "strconv"

// Parser builds one expression from a scanned token sequence under the
// precedence grammar
//
//	expression  → equality
//	equality    → comparison ( ("!=" | "==") comparison )*
//	comparison  → term ( (">" | ">=" | "<" | "<=") term )*
//	term        → factor ( ("-" | "+") factor )*
//	factor      → unary ( ("/" | "*") unary )*
//	unary       → ("!" | "-") unary | primary
//	primary     → NUMBER | STRING | "true" | "false" | "nil" | "(" expression ")"
//
// Binary levels fold left, so "a - b - c" parses as "(a-b)-c". It is
// single-use: one Parser per token sequence.
type Parser struct {
	tokens  []Token
	current int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// ParseExpression parses tokens into a single expression tree. The first
// grammar mismatch aborts the whole parse with a *ParseError.
func ParseExpression(tokens []Token) (Expr, error) {
	return NewParser(tokens).Expression()
}

func (p *Parser) Expression() (Expr, error) {
	return p.equality()
}

func (p *Parser) equality() (Expr, error) {
	left, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for {
		operator, ok := p.match(tokenBangEqual, tokenEqualEqual)
		if !ok {
			return left, nil
		}
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: operator, Right: right}
	}
}

func (p *Parser) comparison() (Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for {
		operator, ok := p.match(tokenGreater, tokenGreaterEqual, tokenLess, tokenLessEqual)
		if !ok {
			return left, nil
		}
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: operator, Right: right}
	}
}

func (p *Parser) term() (Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}

	for {
		operator, ok := p.match(tokenMinus, tokenPlus)
		if !ok {
			return left, nil
		}
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: operator, Right: right}
	}
}

func (p *Parser) factor() (Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}

	for {
		operator, ok := p.match(tokenSlash, tokenStar)
		if !ok {
			return left, nil
		}
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		left = &BinaryExpr{Left: left, Operator: operator, Right: right}
	}
}

func (p *Parser) unary() (Expr, error) {
	if operator, ok := p.match(tokenBang, tokenMinus); ok {
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpr{Operator: operator, Right: right}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	if token, ok := p.match(tokenNumber); ok {
		// The scanner validated the lexeme shape, so this cannot fail
		// for well-formed tokens.
		value, _ := strconv.ParseFloat(token.Lexeme, 64)
		return &NumberLiteral{Value: value}, nil
	}
	if token, ok := p.match(tokenString); ok {
		return &StringLiteral{Value: token.Literal.Str()}, nil
	}
	if _, ok := p.match(tokenTrue); ok {
		return &BoolLiteral{Value: true}, nil
	}
	if _, ok := p.match(tokenFalse); ok {
		return &BoolLiteral{Value: false}, nil
	}
	if _, ok := p.match(tokenNil); ok {
		return &NilLiteral{}, nil
	}
	if _, ok := p.match(tokenLeftParen); ok {
		expr, err := p.Expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(tokenRightParen, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &GroupingExpr{Expr: expr}, nil
	}

	return nil, &ParseError{Token: p.peek(), Message: "Expect expression."}
}

func (p *Parser) consume(tt TokenType, message string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, &ParseError{Token: p.peek(), Message: message}
}

func (p *Parser) match(types ...TokenType) (Token, bool) {
	for _, tt := range types {
		if p.check(tt) {
			return p.advance(), true
		}
	}
	return Token{}, false
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	token := p.tokens[p.current]
	if !p.isAtEnd() {
		p.current++
	}
	return token
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == tokenEOF
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}
