// Package document folds resolved line items into the totals printed on
// a delivery challan, invoice or purchase order.
package document

import (
	"github.com/shopspring/decimal"

	"github.com/medilinx/billing-engine/internal/tax"
)

// Totals aggregates an ordered sequence of resolved lines. Built fresh
// per render and never persisted.
type Totals struct {
	TaxableValue decimal.Decimal
	CGSTAmount   decimal.Decimal
	SGSTAmount   decimal.Decimal
	IGSTAmount   decimal.Decimal
	NetAmount    decimal.Decimal

	// Effective rates are the SUM of each line's display rate, not a
	// weighted average. The PDF templates print this figure in the
	// total row; keep it bit-for-bit compatible.
	EffectiveCGSTRate decimal.Decimal
	EffectiveSGSTRate decimal.Decimal
	EffectiveIGSTRate decimal.Decimal
}

// Aggregate sums the money fields across lines in input order. An empty
// input yields all-zero totals.
func Aggregate(lines []tax.ResolvedLineItem) Totals {
	t := Totals{
		TaxableValue:      decimal.Zero,
		CGSTAmount:        decimal.Zero,
		SGSTAmount:        decimal.Zero,
		IGSTAmount:        decimal.Zero,
		NetAmount:         decimal.Zero,
		EffectiveCGSTRate: decimal.Zero,
		EffectiveSGSTRate: decimal.Zero,
		EffectiveIGSTRate: decimal.Zero,
	}
	for _, line := range lines {
		t.TaxableValue = t.TaxableValue.Add(line.TaxableValue)
		t.CGSTAmount = t.CGSTAmount.Add(line.CGSTAmount)
		t.SGSTAmount = t.SGSTAmount.Add(line.SGSTAmount)
		t.IGSTAmount = t.IGSTAmount.Add(line.IGSTAmount)
		t.NetAmount = t.NetAmount.Add(line.NetAmount)
		t.EffectiveCGSTRate = t.EffectiveCGSTRate.Add(line.CGSTRate)
		t.EffectiveSGSTRate = t.EffectiveSGSTRate.Add(line.SGSTRate)
		t.EffectiveIGSTRate = t.EffectiveIGSTRate.Add(line.IGSTRate)
	}
	return t
}

// Submittable returns the indexes, in input order, of the lines that
// belong in an order-submission payload: anything whose resolved
// quantity came out non-positive is dropped.
func Submittable(lines []tax.ResolvedLineItem) []int {
	out := make([]int, 0, len(lines))
	for i, line := range lines {
		if line.FinalQty.Sign() > 0 {
			out = append(out, i)
		}
	}
	return out
}
