package engine

import (
	"math"
	"testing"
)

// Package-level so the addition happens at runtime with float64 rounding;
// the constant expression 0.1+0.2 would fold to a different float.
var pointOne, pointTwo = 0.1, 0.2

func TestFormatTrimsFloatingPointNoise(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{pointOne + pointTwo, "0.3"},
		{0.30000000000000004, "0.3"},
		{1.0 / 3.0, "0.3333333333"},
		{10.0 / 3.0, "3.3333333333"},
		{2.675, "2.675"},
		{1.5, "1.5"},
		{-0.25, "-0.25"},
	}

	for _, tc := range tests {
		if got := Format(tc.value); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatIntegralValuesHaveNoFraction(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{4.0, "4"},
		{-7.0, "-7"},
		{0.0, "0"},
		{20.0, "20"},
		{1000000.0, "1000000"},
	}

	for _, tc := range tests {
		if got := Format(tc.value); got != tc.want {
			t.Errorf("Format(%v) = %q, want %q", tc.value, got, tc.want)
		}
	}
}

func TestFormatUnrepresentableValues(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if got := Format(v); got != "Error" {
			t.Errorf("Format(%v) = %q, want %q", v, got, "Error")
		}
	}
}

func TestFormatResult(t *testing.T) {
	if got := FormatResult(5, nil); got != "5" {
		t.Errorf("FormatResult(5, nil) = %q, want %q", got, "5")
	}

	if got := FormatResult(0, ErrDivisionByZero); got != "Error" {
		t.Errorf("FormatResult on ErrDivisionByZero = %q, want %q", got, "Error")
	}

	if got := FormatResult(0, ErrInvalidExpression); got != "Error" {
		t.Errorf("FormatResult on ErrInvalidExpression = %q, want %q", got, "Error")
	}
}

func TestEvaluateThenFormat(t *testing.T) {
	tests := []struct {
		display string
		want    string
	}{
		{"0.1+0.2", "0.3"},
		{"8/2", "4"},
		{"2+3*4", "20"},
		{"5/0", "Error"},
		{"5/", "Error"},
	}

	for _, tc := range tests {
		got := FormatResult(Evaluate(tc.display))
		if got != tc.want {
			t.Errorf("FormatResult(Evaluate(%q)) = %q, want %q", tc.display, got, tc.want)
		}
	}
}
