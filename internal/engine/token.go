package engine

import "fmt"

// TokenType classifies a scanned display-string token.
type TokenType int

const (
	TokenNumber TokenType = iota
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
)

// Token is one atomic unit of a display string: an operand numeral or a single
// operator character.
type Token struct {
	Type    TokenType
	Literal string
	Pos     int // byte offset in the display string
}

func (t Token) String() string {
	return fmt.Sprintf("Token(%d, %q, %d)", t.Type, t.Literal, t.Pos)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isOperator(ch byte) bool {
	return ch == '+' || ch == '-' || ch == '*' || ch == '/'
}

func operatorType(ch byte) TokenType {
	switch ch {
	case '+':
		return TokenPlus
	case '-':
		return TokenMinus
	case '*':
		return TokenStar
	}
	return TokenSlash
}
