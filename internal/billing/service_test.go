package billing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/medilinx/billing-engine/internal/billing"
	"github.com/medilinx/billing-engine/internal/tax"
)

func d(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestComputeDocumentNegativeNetSkipsWords(t *testing.T) {
	svc := &billing.Service{Engine: tax.Engine{}}

	result, err := svc.ComputeDocument([]tax.RawLine{{
		UnitPrice:          decimal.RequireFromString("100"),
		BillDiscountAmount: d("500"),
	}})
	require.NoError(t, err)
	require.True(t, result.Totals.NetAmount.Equal(decimal.RequireFromString("-400")))
	require.Empty(t, result.AmountInWords)
}

func TestComputeDocumentClampedEngine(t *testing.T) {
	svc := &billing.Service{Engine: tax.Engine{ClampNegativeNet: true}}

	result, err := svc.ComputeDocument([]tax.RawLine{{
		UnitPrice:          decimal.RequireFromString("100"),
		BillDiscountAmount: d("500"),
	}})
	require.NoError(t, err)
	require.True(t, result.Totals.NetAmount.Equal(decimal.Zero))
	require.Equal(t, "RUPEES ZERO AND ZERO PAISA ONLY", result.AmountInWords)
}

func TestComputeDocumentPropagatesValidation(t *testing.T) {
	svc := &billing.Service{Engine: tax.Engine{}}

	_, err := svc.ComputeDocument([]tax.RawLine{{
		UnitPrice: decimal.RequireFromString("100"),
		CGSTPct:   d("130"),
	}})
	require.ErrorIs(t, err, tax.ErrInvalidRate)
}
