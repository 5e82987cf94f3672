// Package engine implements the calculator core: keystroke sanitization of a
// single display string, left-to-right evaluation of the finished string, and
// canonical formatting of the numeric result. All functions are pure and safe
// for concurrent use.
package engine

import (
	"fmt"
	"strconv"
)

// Evaluate parses a finished display string and computes a single numeric
// result. Evaluation is strictly left to right with no operator precedence,
// matching the running-accumulator model of a handheld calculator: "2+3*4"
// is (2+3)*4 = 20.
//
// Failures are reported through the sentinels ErrDivisionByZero and
// ErrInvalidExpression. The input is not assumed to be sanitizer-clean; any
// malformed string yields ErrInvalidExpression rather than a panic.
func Evaluate(display string) (float64, error) {
	tokens, err := tokenize(display)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, fmt.Errorf("%w: empty display", ErrInvalidExpression)
	}
	if tokens[0].Type != TokenNumber {
		return 0, fmt.Errorf("%w: expression starts with %q", ErrInvalidExpression, tokens[0].Literal)
	}
	if tokens[len(tokens)-1].Type != TokenNumber {
		return 0, fmt.Errorf("%w: trailing operator %q", ErrInvalidExpression, tokens[len(tokens)-1].Literal)
	}

	// Well-formed token sequences alternate operand, operator, operand, ...
	acc, err := parseOperand(tokens[0])
	if err != nil {
		return 0, err
	}
	for i := 1; i+1 < len(tokens); i += 2 {
		op := tokens[i]
		if op.Type == TokenNumber {
			return 0, fmt.Errorf("%w: expected operator at offset %d", ErrInvalidExpression, op.Pos)
		}
		operand, err := parseOperand(tokens[i+1])
		if err != nil {
			return 0, err
		}
		acc, err = apply(op.Type, acc, operand)
		if err != nil {
			return 0, err
		}
	}
	if len(tokens)%2 == 0 {
		return 0, fmt.Errorf("%w: dangling token", ErrInvalidExpression)
	}
	return acc, nil
}

// tokenize scans a display string left to right. Runs of digits and '.'
// accumulate into one operand token; every operator character is its own
// token. A '-' at position 0 folds into the first operand as its sign.
func tokenize(display string) ([]Token, error) {
	var tokens []Token
	i := 0
	for i < len(display) {
		ch := display[i]
		switch {
		case isDigit(ch) || ch == '.' || (ch == '-' && i == 0):
			start := i
			i++
			for i < len(display) && (isDigit(display[i]) || display[i] == '.') {
				i++
			}
			tokens = append(tokens, Token{Type: TokenNumber, Literal: display[start:i], Pos: start})
		case isOperator(ch):
			tokens = append(tokens, Token{Type: operatorType(ch), Literal: string(ch), Pos: i})
			i++
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrInvalidExpression, ch, i)
		}
	}
	return tokens, nil
}

func parseOperand(t Token) (float64, error) {
	if t.Type != TokenNumber {
		return 0, fmt.Errorf("%w: expected numeral at offset %d", ErrInvalidExpression, t.Pos)
	}
	v, err := strconv.ParseFloat(t.Literal, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad numeral %q", ErrInvalidExpression, t.Literal)
	}
	return v, nil
}

func apply(op TokenType, acc, operand float64) (float64, error) {
	switch op {
	case TokenPlus:
		return acc + operand, nil
	case TokenMinus:
		return acc - operand, nil
	case TokenStar:
		return acc * operand, nil
	case TokenSlash:
		if operand == 0 {
			return 0, ErrDivisionByZero
		}
		return acc / operand, nil
	}
	return 0, fmt.Errorf("%w: unknown operator", ErrInvalidExpression)
}
