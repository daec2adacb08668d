// Package tax implements the GST line computation shared by every
// document type in the order-to-cash flow (purchase orders, supply
// orders, delivery challans, invoices, credit notes).
package tax

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Quantity carries the fulfilment inputs for a line. Pending is taken
// as given: zero pending means the line is fully fulfilled. Normalize
// defaults pending to requested only when the record omits it.
type Quantity struct {
	Requested decimal.Decimal
	Pending   decimal.Decimal
	Available decimal.Decimal
}

// Scheme is a proportional discount applied to the taxable base before
// tax amounts are computed.
type Scheme struct {
	DiscountPct decimal.Decimal
}

// LineItemInput is one taxable unit of sale, purchase or transfer.
// Quantity is nil for single-unit lines where UnitPrice is already the
// final per-line base.
type LineItemInput struct {
	UnitPrice          decimal.Decimal
	Quantity           *Quantity
	CGSTPct            decimal.Decimal
	SGSTPct            decimal.Decimal
	IGSTPct            decimal.Decimal
	BillDiscountAmount decimal.Decimal
	Scheme             *Scheme
}

// ResolvedLineItem is a LineItemInput with its full monetary breakdown.
// Amounts retain full precision; round at the display edge only.
type ResolvedLineItem struct {
	LineItemInput

	FinalQty     decimal.Decimal
	TaxableValue decimal.Decimal
	CGSTAmount   decimal.Decimal
	SGSTAmount   decimal.Decimal
	IGSTAmount   decimal.Decimal
	NetAmount    decimal.Decimal

	// Display rates derived back from the computed amounts. Zero when
	// the taxable value is zero.
	CGSTRate decimal.Decimal
	SGSTRate decimal.Decimal
	IGSTRate decimal.Decimal
}

// Engine computes line breakdowns. The zero value preserves the legacy
// behaviour of letting a large bill discount drive the net amount below
// zero (a credit); ClampNegativeNet floors it at zero instead.
type Engine struct {
	ClampNegativeNet bool
}

// ComputeLine resolves the quantity, applies the scheme discount to the
// taxable base, recomputes every tax amount from its original rate and
// derives the net amount. It is total: degenerate inputs produce
// all-zero outputs, never errors.
func (e Engine) ComputeLine(in LineItemInput) ResolvedLineItem {
	qty := decimal.NewFromInt(1)
	if in.Quantity != nil {
		qty = ResolveQuantity(*in.Quantity)
	}

	base := in.UnitPrice.Mul(qty)
	taxable := base
	if in.Scheme != nil {
		taxable = base.Mul(hundred.Sub(in.Scheme.DiscountPct)).Div(hundred)
	}

	// Tax amounts always come from the rates, never from stale
	// amount-to-base ratios of a pre-discount computation.
	cgst := taxable.Mul(in.CGSTPct).Div(hundred)
	sgst := taxable.Mul(in.SGSTPct).Div(hundred)
	igst := taxable.Mul(in.IGSTPct).Div(hundred)

	net := taxable.Add(cgst).Add(sgst).Add(igst).Sub(in.BillDiscountAmount)
	if e.ClampNegativeNet && net.IsNegative() {
		net = decimal.Zero
	}

	return ResolvedLineItem{
		LineItemInput: in,
		FinalQty:      qty,
		TaxableValue:  taxable,
		CGSTAmount:    cgst,
		SGSTAmount:    sgst,
		IGSTAmount:    igst,
		NetAmount:     net,
		CGSTRate:      displayRate(cgst, taxable),
		SGSTRate:      displayRate(sgst, taxable),
		IGSTRate:      displayRate(igst, taxable),
	}
}

// ResolveQuantity picks the binding constraint between pending and
// available stock: min(pending, available) when both are positive,
// zero otherwise. Lines resolving to zero are excluded from submission
// payloads by the caller.
func ResolveQuantity(q Quantity) decimal.Decimal {
	if q.Available.Sign() <= 0 || q.Pending.Sign() <= 0 {
		return decimal.Zero
	}
	if q.Available.GreaterThanOrEqual(q.Pending) {
		return q.Pending
	}
	return q.Available
}

func displayRate(amount, base decimal.Decimal) decimal.Decimal {
	if base.IsZero() {
		return decimal.Zero
	}
	return amount.Mul(hundred).Div(base)
}

// Round2 rounds a currency value to two decimal places, half up. Used
// only when producing display output.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
