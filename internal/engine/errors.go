package engine

import "errors"

// Evaluation failure discriminants. Both are stable sentinels: callers decide
// behavior with errors.Is, never by inspecting message text.
var (
	// ErrDivisionByZero reports a '/' whose right operand is exactly zero.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrInvalidExpression reports a malformed display string: empty input,
	// trailing operator, doubled operator, or an unparsable numeral.
	ErrInvalidExpression = errors.New("invalid expression")
)
