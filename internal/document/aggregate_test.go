package document

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/medilinx/billing-engine/internal/tax"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func resolve(t *testing.T, in tax.LineItemInput) tax.ResolvedLineItem {
	t.Helper()
	return tax.Engine{}.ComputeLine(in)
}

func TestAggregateSumsExactly(t *testing.T) {
	lines := []tax.ResolvedLineItem{
		resolve(t, tax.LineItemInput{UnitPrice: dec("1000"), CGSTPct: dec("6"), SGSTPct: dec("6")}),
		resolve(t, tax.LineItemInput{UnitPrice: dec("123.45"), IGSTPct: dec("12")}),
		resolve(t, tax.LineItemInput{UnitPrice: dec("250"), CGSTPct: dec("9"), SGSTPct: dec("9")}),
	}
	totals := Aggregate(lines)

	wantNet := decimal.Zero
	wantTaxable := decimal.Zero
	for _, line := range lines {
		wantNet = wantNet.Add(line.NetAmount)
		wantTaxable = wantTaxable.Add(line.TaxableValue)
	}
	if !totals.NetAmount.Equal(wantNet) {
		t.Fatalf("net total = %s, want %s", totals.NetAmount, wantNet)
	}
	if !totals.TaxableValue.Equal(wantTaxable) {
		t.Fatalf("taxable total = %s, want %s", totals.TaxableValue, wantTaxable)
	}
}

func TestAggregateEffectiveRateIsSumOfLineRates(t *testing.T) {
	// The total row on the printed documents shows the SUM of line
	// rates, not a weighted average. 6% + 9% reads 15 even though the
	// blended rate would be lower.
	lines := []tax.ResolvedLineItem{
		resolve(t, tax.LineItemInput{UnitPrice: dec("1000"), CGSTPct: dec("6"), SGSTPct: dec("6")}),
		resolve(t, tax.LineItemInput{UnitPrice: dec("2000"), CGSTPct: dec("9"), SGSTPct: dec("9")}),
	}
	totals := Aggregate(lines)
	if !totals.EffectiveCGSTRate.Equal(dec("15")) {
		t.Fatalf("effective cgst rate = %s, want 15", totals.EffectiveCGSTRate)
	}
	if !totals.EffectiveIGSTRate.Equal(decimal.Zero) {
		t.Fatalf("effective igst rate = %s, want 0", totals.EffectiveIGSTRate)
	}
}

func TestAggregateEmpty(t *testing.T) {
	totals := Aggregate(nil)
	if !totals.NetAmount.Equal(decimal.Zero) || !totals.TaxableValue.Equal(decimal.Zero) {
		t.Fatalf("empty aggregate not zero: %+v", totals)
	}
}

func TestSubmittableDropsZeroQuantityLines(t *testing.T) {
	inStock := resolve(t, tax.LineItemInput{
		UnitPrice: dec("100"),
		Quantity:  &tax.Quantity{Requested: dec("10"), Pending: dec("5"), Available: dec("3")},
	})
	outOfStock := resolve(t, tax.LineItemInput{
		UnitPrice: dec("100"),
		Quantity:  &tax.Quantity{Requested: dec("10"), Pending: dec("5"), Available: dec("0")},
	})

	got := Submittable([]tax.ResolvedLineItem{outOfStock, inStock})
	if len(got) != 1 {
		t.Fatalf("submittable lines = %d, want 1", len(got))
	}
	if got[0] != 1 {
		t.Fatalf("submittable index = %d, want 1", got[0])
	}
}
