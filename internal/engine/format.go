package engine

import (
	"math"

	"github.com/shopspring/decimal"
)

// maxFractionDigits caps the rendered fraction so binary floating-point noise
// never reaches the display: 0.1+0.2 renders "0.3", not 0.30000000000000004.
const maxFractionDigits = 10

// errorDisplay is the literal the display shows for every failure variant.
const errorDisplay = "Error"

// Format renders a numeric result as a canonical display string: trailing
// zeros stripped, no ".0" on integral values, fraction capped at
// maxFractionDigits. NaN and ±Inf are unrepresentable on the display and
// render as "Error".
func Format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errorDisplay
	}
	return decimal.NewFromFloat(v).Round(maxFractionDigits).String()
}

// FormatResult renders an Evaluate outcome. Every error variant collapses to
// the literal "Error"; a caller that wants a more specific message branches
// on the error with errors.Is before formatting.
func FormatResult(v float64, err error) string {
	if err != nil {
		return errorDisplay
	}
	return Format(v)
}
