// Package tax implements the GST arithmetic for quotation lines (domain
// service). India intra-state supplies split the nominal GST rate 50/50 into
// CGST and SGST; the two halves are computed independently but are always
// equal by construction.
//
// Rounding happens in two explicit passes: once per line and once per
// aggregate. Summing rounded lines and rounding the sums can differ by a
// cent from rounding a single running total; issued documents were produced
// this way, so the two-pass order is part of the contract.
package tax

import (
	"github.com/suryatek/quotation-api/internal/domain/entity"
	"github.com/suryatek/quotation-api/pkg/money"
)

// LineAmounts are the derived amounts for one line item.
type LineAmounts struct {
	Taxable float64
	CGST    float64
	SGST    float64
	Total   float64
}

// CalculateLine derives taxable amount, CGST, SGST and line total from the
// base fields. Never fails; callers coerce malformed input to zero first.
func CalculateLine(qty, unitPrice, gstRate float64) LineAmounts {
	taxable := money.Round2(qty * unitPrice)
	half := gstRate / 2
	cgst := money.Round2(taxable * half / 100)
	sgst := money.Round2(taxable * half / 100)
	return LineAmounts{
		Taxable: taxable,
		CGST:    cgst,
		SGST:    sgst,
		Total:   money.Round2(taxable + cgst + sgst),
	}
}

// Apply recomputes and overwrites the derived fields of item from its base
// fields (qty, unit price, GST rate).
func Apply(item *entity.LineItem) {
	a := CalculateLine(item.Qty, item.UnitPrice, item.GSTRate)
	item.Taxable = a.Taxable
	item.CGST = a.CGST
	item.SGST = a.SGST
	item.Total = a.Total
}

// Summary aggregates a quotation's line items.
type Summary struct {
	Subtotal   float64
	CGSTTotal  float64
	SGSTTotal  float64
	GrandTotal float64
}

// Summarize sums the already-calculated line amounts. Each sum is rounded
// independently, and the grand total is the rounded sum of the three rounded
// aggregates.
func Summarize(items []entity.LineItem) Summary {
	var subtotal, cgst, sgst float64
	for _, it := range items {
		subtotal += it.Taxable
		cgst += it.CGST
		sgst += it.SGST
	}
	s := Summary{
		Subtotal:  money.Round2(subtotal),
		CGSTTotal: money.Round2(cgst),
		SGSTTotal: money.Round2(sgst),
	}
	s.GrandTotal = money.Round2(s.Subtotal + s.CGSTTotal + s.SGSTTotal)
	return s
}
