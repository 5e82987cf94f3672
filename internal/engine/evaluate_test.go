package engine

import (
	"errors"
	"math/rand"
	"testing"
)

func TestEvaluateLeftToRight(t *testing.T) {
	tests := []struct {
		display string
		want    float64
	}{
		{"5", 5},
		{"2+3", 5},
		{"10-3", 7},
		{"4*5", 20},
		{"20/4", 5},
		// no precedence: each operator applies to the running accumulator
		{"2+3*4", 20},
		{"2+3*4-1", 19},
		{"10-2-3", 5},
		{"100/4/5", 5},
		{"1.5+2.5", 4},
		{"-5+3", -2},
		{"-2*3", -6},
		{".5+.5", 1},
		{"5.", 5},
		{"-.5*4", -2},
		{"0*9", 0},
	}

	for _, tc := range tests {
		got, err := Evaluate(tc.display)
		if err != nil {
			t.Errorf("Evaluate(%q) error: %v", tc.display, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Evaluate(%q) = %v, want %v", tc.display, got, tc.want)
		}
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	for _, display := range []string{"5/0", "5/0.0", "1+2/0", "5/0*3", "0/0"} {
		_, err := Evaluate(display)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Evaluate(%q) error = %v, want ErrDivisionByZero", display, err)
		}
		if errors.Is(err, ErrInvalidExpression) {
			t.Errorf("Evaluate(%q) must not also match ErrInvalidExpression", display)
		}
	}
}

func TestEvaluateInvalidExpression(t *testing.T) {
	for _, display := range []string{
		"",
		"5/",
		"5+",
		"+5",
		"-",
		".",
		"5++3",
		"5*/3",
		"1.2.3",
		"5..",
		"5+.+2",
		"abc",
		"5 + 3",
	} {
		_, err := Evaluate(display)
		if !errors.Is(err, ErrInvalidExpression) {
			t.Errorf("Evaluate(%q) error = %v, want ErrInvalidExpression", display, err)
		}
		if errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Evaluate(%q) must not also match ErrDivisionByZero", display)
		}
	}
}

// Division by zero and malformed input must stay distinguishable: "5/0" and
// "5/" look alike on the display but carry different discriminants.
func TestEvaluateErrorDiscriminants(t *testing.T) {
	_, divErr := Evaluate("5/0")
	_, badErr := Evaluate("5/")

	if !errors.Is(divErr, ErrDivisionByZero) || errors.Is(divErr, ErrInvalidExpression) {
		t.Errorf("Evaluate(\"5/0\") error = %v, want pure ErrDivisionByZero", divErr)
	}
	if !errors.Is(badErr, ErrInvalidExpression) || errors.Is(badErr, ErrDivisionByZero) {
		t.Errorf("Evaluate(\"5/\") error = %v, want pure ErrInvalidExpression", badErr)
	}
}

// Every display the sanitizer can build that ends in a digit must evaluate
// without ErrInvalidExpression. Division by zero is still allowed: the
// sanitizer knows nothing about operand values.
func TestSanitizedDisplaysAlwaysEvaluate(t *testing.T) {
	const alphabet = "0123456789.+-*/"

	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 2000; trial++ {
		display := ""
		for k := 0; k < 12; k++ {
			display = Sanitize(display, alphabet[rng.Intn(len(alphabet))])
		}
		if display == "" || !isDigit(display[len(display)-1]) {
			continue
		}

		_, err := Evaluate(display)
		if errors.Is(err, ErrInvalidExpression) {
			t.Fatalf("sanitized display %q evaluated to ErrInvalidExpression", display)
		}
	}
}
