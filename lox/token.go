package lox

// TokenType identifies the lexical category of a token.
type TokenType string

const (
	tokenLeftParen  TokenType = "("
	tokenRightParen TokenType = ")"
	tokenLeftBrace  TokenType = "{"
	tokenRightBrace TokenType = "}"
	tokenComma      TokenType = ","
	tokenDot        TokenType = "."
	tokenMinus      TokenType = "-"
	tokenPlus       TokenType = "+"
	tokenSemicolon  TokenType = ";"
	tokenSlash      TokenType = "/"
	tokenStar       TokenType = "*"

	tokenBang         TokenType = "!"
	tokenBangEqual    TokenType = "!="
	tokenEqual        TokenType = "="
	tokenEqualEqual   TokenType = "=="
	tokenGreater      TokenType = ">"
	tokenGreaterEqual TokenType = ">="
	tokenLess         TokenType = "<"
	tokenLessEqual    TokenType = "<="

	tokenIdentifier TokenType = "IDENT"
	tokenString     TokenType = "STRING"
	tokenNumber     TokenType = "NUMBER"

	tokenAnd    TokenType = "AND"
	tokenClass  TokenType = "CLASS"
	tokenElse   TokenType = "ELSE"
	tokenFalse  TokenType = "FALSE"
	tokenFun    TokenType = "FUN"
	tokenFor    TokenType = "FOR"
	tokenIf     TokenType = "IF"
	tokenNil    TokenType = "NIL"
	tokenOr     TokenType = "OR"
	tokenPrint  TokenType = "PRINT"
	tokenReturn TokenType = "RETURN"
	tokenSuper  TokenType = "SUPER"
	tokenThis   TokenType = "THIS"
	tokenTrue   TokenType = "TRUE"
	tokenVar    TokenType = "VAR"
	tokenWhile  TokenType = "WHILE"

	tokenEOF TokenType = "EOF"
)

// Token captures one lexeme and its decoded payload for the parser.
// Tokens are built once by the scanner and never mutated afterwards.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal *Literal
	Line    int
}

// LiteralKind tags the payload carried by a string or number token.
type LiteralKind int

const (
	LiteralNumber LiteralKind = iota
	LiteralString
)

// Literal carries the decoded value of a string or number token.
// Tokens of any other type carry none.
type Literal struct {
	kind LiteralKind
	num  float64
	str  string
}

func NewNumberLiteral(n float64) *Literal {
	return &Literal{kind: LiteralNumber, num: n}
}

func NewStringLiteral(s string) *Literal {
	return &Literal{kind: LiteralString, str: s}
}

func (l *Literal) Kind() LiteralKind { return l.kind }

func (l *Literal) Number() float64 {
	if l.kind != LiteralNumber {
		return 0
	}
	return l.num
}

func (l *Literal) Str() string {
	if l.kind != LiteralString {
		return ""
	}
	return l.str
}

func lookupKeyword(ident string) TokenType {
	switch ident {
	case "and":
		return tokenAnd
	case "class":
		return tokenClass
	case "else":
		return tokenElse
	case "false":
		return tokenFalse
	case "fun":
		return tokenFun
	case "for":
		return tokenFor
	case "if":
		return tokenIf
	case "nil":
		return tokenNil
	case "or":
		return tokenOr
	case "print":
		return tokenPrint
	case "return":
		return tokenReturn
	case "super":
		return tokenSuper
	case "this":
		return tokenThis
	case "true":
		return tokenTrue
	case "var":
		return tokenVar
	case "while":
		return tokenWhile
	}
	return tokenIdentifier
}
