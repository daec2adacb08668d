package tax

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidRate is returned when a tax percentage falls outside [0, 100].
	ErrInvalidRate = errors.New("tax rate outside the 0-100 range")
	// ErrInvalidQuantity is returned for negative quantity inputs.
	ErrInvalidQuantity = errors.New("quantity must not be negative")
	// ErrInvalidAmount is returned for negative currency inputs.
	ErrInvalidAmount = errors.New("amount must not be negative")
)

// RawLine is the boundary shape fed by the record-fetching collaborators.
// Tax may arrive as a percentage or, in the warehouse flows, as a
// precomputed amount; nil means the field was absent from the record.
type RawLine struct {
	UnitPrice decimal.Decimal

	RequestedQty *decimal.Decimal
	PendingQty   *decimal.Decimal
	AvailableQty *decimal.Decimal

	CGSTPct    *decimal.Decimal
	SGSTPct    *decimal.Decimal
	IGSTPct    *decimal.Decimal
	CGSTAmount *decimal.Decimal
	SGSTAmount *decimal.Decimal
	IGSTAmount *decimal.Decimal

	BillDiscountAmount *decimal.Decimal
	SchemeDiscountPct  *decimal.Decimal
}

// Normalize validates a raw record and converts it into a LineItemInput.
// When only tax amounts are supplied, rates are derived against the
// original pre-discount base (rate = 0 when that base is zero).
func Normalize(raw RawLine) (LineItemInput, error) {
	if raw.UnitPrice.IsNegative() {
		return LineItemInput{}, ErrInvalidAmount
	}
	for _, q := range []*decimal.Decimal{raw.RequestedQty, raw.PendingQty, raw.AvailableQty} {
		if q != nil && q.IsNegative() {
			return LineItemInput{}, ErrInvalidQuantity
		}
	}
	if raw.BillDiscountAmount != nil && raw.BillDiscountAmount.IsNegative() {
		return LineItemInput{}, ErrInvalidAmount
	}
	if raw.SchemeDiscountPct != nil && !withinRate(*raw.SchemeDiscountPct) {
		return LineItemInput{}, ErrInvalidRate
	}

	in := LineItemInput{UnitPrice: raw.UnitPrice}

	if raw.RequestedQty != nil || raw.PendingQty != nil || raw.AvailableQty != nil {
		q := Quantity{}
		if raw.RequestedQty != nil {
			q.Requested = *raw.RequestedQty
		}
		if raw.PendingQty != nil {
			q.Pending = *raw.PendingQty
		} else {
			// A fresh order still has its full requested quantity
			// pending. An explicit zero means fully fulfilled.
			q.Pending = q.Requested
		}
		if raw.AvailableQty != nil {
			q.Available = *raw.AvailableQty
		}
		in.Quantity = &q
	}

	base := raw.UnitPrice
	if in.Quantity != nil {
		base = raw.UnitPrice.Mul(ResolveQuantity(*in.Quantity))
	}

	var err error
	if in.CGSTPct, err = resolveRate(raw.CGSTPct, raw.CGSTAmount, base); err != nil {
		return LineItemInput{}, err
	}
	if in.SGSTPct, err = resolveRate(raw.SGSTPct, raw.SGSTAmount, base); err != nil {
		return LineItemInput{}, err
	}
	if in.IGSTPct, err = resolveRate(raw.IGSTPct, raw.IGSTAmount, base); err != nil {
		return LineItemInput{}, err
	}

	if raw.BillDiscountAmount != nil {
		in.BillDiscountAmount = *raw.BillDiscountAmount
	}
	if raw.SchemeDiscountPct != nil {
		in.Scheme = &Scheme{DiscountPct: *raw.SchemeDiscountPct}
	}
	return in, nil
}

func resolveRate(pct, amount *decimal.Decimal, base decimal.Decimal) (decimal.Decimal, error) {
	if pct != nil {
		if !withinRate(*pct) {
			return decimal.Zero, ErrInvalidRate
		}
		return *pct, nil
	}
	if amount == nil {
		return decimal.Zero, nil
	}
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	if base.IsZero() {
		return decimal.Zero, nil
	}
	return amount.Mul(hundred).Div(base), nil
}

func withinRate(pct decimal.Decimal) bool {
	return !pct.IsNegative() && pct.LessThanOrEqual(hundred)
}
