// Package money holds the rounding and formatting rules shared by the tax
// calculator and the PDF renderer. Amounts are plain float64; the rounding
// function below is the single place where cent values are decided, and its
// exact behaviour is load-bearing: totals on already issued quotations must
// not shift when they are re-rendered.
package money

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// epsilon nudges values like 2.005 (stored as 2.00499...) over the half-cent
// boundary before flooring, so they round up as a human would expect.
const epsilon = 1e-9

// Round2 rounds v to two decimal places, half up, with epsilon correction.
func Round2(v float64) float64 {
	return math.Floor(v*100+0.5+epsilon) / 100
}

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatINR renders an amount with Indian digit grouping and two decimals,
// e.g. 1234567.5 -> "12,34,567.50".
func FormatINR(v float64) string {
	return inr.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
