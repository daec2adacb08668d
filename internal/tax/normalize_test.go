package tax

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func ptr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestNormalizeRatesPassThrough(t *testing.T) {
	in, err := Normalize(RawLine{
		UnitPrice: dec("500"),
		CGSTPct:   ptr("6"),
		SGSTPct:   ptr("6"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.CGSTPct.Equal(dec("6")) || !in.SGSTPct.Equal(dec("6")) {
		t.Fatalf("rates = %s/%s, want 6/6", in.CGSTPct, in.SGSTPct)
	}
}

func TestNormalizeDerivesRateFromAmount(t *testing.T) {
	in, err := Normalize(RawLine{
		UnitPrice:  dec("500"),
		CGSTAmount: ptr("30"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.CGSTPct.Equal(dec("6")) {
		t.Fatalf("derived cgst pct = %s, want 6", in.CGSTPct)
	}
}

func TestNormalizeDerivesRateFromPreDiscountBase(t *testing.T) {
	// The scheme scales the taxable base later; rate derivation must use
	// the original base.
	in, err := Normalize(RawLine{
		UnitPrice:         dec("1000"),
		CGSTAmount:        ptr("60"),
		SchemeDiscountPct: ptr("10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.CGSTPct.Equal(dec("6")) {
		t.Fatalf("derived cgst pct = %s, want 6", in.CGSTPct)
	}
	if in.Scheme == nil || !in.Scheme.DiscountPct.Equal(dec("10")) {
		t.Fatalf("scheme not carried: %+v", in.Scheme)
	}
}

func TestNormalizeAmountAgainstZeroBase(t *testing.T) {
	in, err := Normalize(RawLine{
		UnitPrice:  decimal.Zero,
		IGSTAmount: ptr("10"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.IGSTPct.Equal(decimal.Zero) {
		t.Fatalf("zero base must derive zero rate, got %s", in.IGSTPct)
	}
}

func TestNormalizeQuantityBase(t *testing.T) {
	// Rate derivation uses unitPrice × resolved quantity as the base.
	in, err := Normalize(RawLine{
		UnitPrice:    dec("100"),
		PendingQty:   ptr("5"),
		AvailableQty: ptr("3"),
		IGSTAmount:   ptr("36"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !in.IGSTPct.Equal(dec("12")) {
		t.Fatalf("derived igst pct = %s, want 12", in.IGSTPct)
	}
}

func TestNormalizeExplicitZeroPending(t *testing.T) {
	// Zero pending on the record means the line is fully fulfilled;
	// available stock must not resurrect it.
	in, err := Normalize(RawLine{
		UnitPrice:    dec("100"),
		RequestedQty: ptr("10"),
		PendingQty:   ptr("0"),
		AvailableQty: ptr("5"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := Engine{}.ComputeLine(in)
	if !line.FinalQty.Equal(decimal.Zero) {
		t.Fatalf("final qty = %s, want 0", line.FinalQty)
	}
	if !line.NetAmount.Equal(decimal.Zero) {
		t.Fatalf("net amount = %s, want 0", line.NetAmount)
	}
}

func TestNormalizeAbsentPendingDefaultsToRequested(t *testing.T) {
	in, err := Normalize(RawLine{
		UnitPrice:    dec("100"),
		RequestedQty: ptr("10"),
		AvailableQty: ptr("5"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := Engine{}.ComputeLine(in)
	if !line.FinalQty.Equal(dec("5")) {
		t.Fatalf("final qty = %s, want 5", line.FinalQty)
	}
}

func TestNormalizeValidation(t *testing.T) {
	tests := []struct {
		name string
		raw  RawLine
		want error
	}{
		{"rate above 100", RawLine{UnitPrice: dec("10"), CGSTPct: ptr("120")}, ErrInvalidRate},
		{"negative rate", RawLine{UnitPrice: dec("10"), SGSTPct: ptr("-1")}, ErrInvalidRate},
		{"negative quantity", RawLine{UnitPrice: dec("10"), PendingQty: ptr("-2")}, ErrInvalidQuantity},
		{"negative unit price", RawLine{UnitPrice: dec("-10")}, ErrInvalidAmount},
		{"negative bill discount", RawLine{UnitPrice: dec("10"), BillDiscountAmount: ptr("-5")}, ErrInvalidAmount},
		{"scheme above 100", RawLine{UnitPrice: dec("10"), SchemeDiscountPct: ptr("101")}, ErrInvalidRate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Normalize(tt.raw)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Normalize error = %v, want %v", err, tt.want)
			}
		})
	}
}
