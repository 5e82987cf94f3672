package engine

import "strings"

// Sanitize returns the display string after one keystroke. The character is
// appended unless doing so would break a display invariant, in which case
// current is returned unchanged. Rejections are silent: the user is still
// typing, so a bad keystroke is absorbed rather than surfaced as an error.
//
// Invariants enforced on the display:
//   - no two consecutive operator characters
//   - at most one '.' per operand segment
//   - an operator never opens the display, except '-' as the sign of the
//     first operand
//   - an operator never follows a segment that has no digits yet (a bare
//     "." or "-.")
//
// Characters outside the calculator alphabet are rejected outright. Deleting
// the last character and clearing the display are plain string edits the
// caller performs itself.
func Sanitize(current string, next byte) string {
	switch {
	case isDigit(next):
		return current + string(next)

	case next == '.':
		if strings.IndexByte(activeSegment(current), '.') >= 0 {
			return current
		}
		return current + string(next)

	case isOperator(next):
		if current == "" {
			if next == '-' {
				// leading sign on the first operand
				return current + string(next)
			}
			return current
		}
		if isOperator(current[len(current)-1]) {
			return current
		}
		if !hasDigit(activeSegment(current)) {
			return current
		}
		return current + string(next)
	}
	return current
}

// activeSegment returns the operand currently being typed: the substring after
// the last operator character. A '-' at position 0 is a sign, not a segment
// boundary.
func activeSegment(display string) string {
	for i := len(display) - 1; i > 0; i-- {
		if isOperator(display[i]) {
			return display[i+1:]
		}
	}
	return strings.TrimPrefix(display, "-")
}

func hasDigit(s string) bool {
	for i := 0; i < len(s); i++ {
		if isDigit(s[i]) {
			return true
		}
	}
	return false
}
