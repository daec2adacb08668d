package words

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestToIndianWords(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		want   string
	}{
		{"zero", "0", "RUPEES ZERO AND ZERO PAISA ONLY"},
		{"rounds away to nothing", "0.004", "RUPEES ZERO AND ZERO PAISA ONLY"},
		{"under twenty", "14", "RUPEES FOURTEEN ONLY"},
		{"tens boundary", "40", "RUPEES FORTY ONLY"},
		{"compound tens", "45", "RUPEES FORTY FIVE ONLY"},
		{"plain hundred", "100", "RUPEES ONE HUNDRED ONLY"},
		{"hundred with paisa", "100.50", "RUPEES ONE HUNDRED AND FIFTY PAISA ONLY"},
		{"paisa only", "0.50", "RUPEES ZERO AND FIFTY PAISA ONLY"},
		{"lakh grouping", "744220.00", "RUPEES SEVEN LAKH FORTY FOUR THOUSAND TWO HUNDRED AND TWENTY ONLY"},
		{"exact crore", "10000000", "RUPEES ONE CRORE ONLY"},
		{"crore above ninety nine", "1250000000", "RUPEES ONE HUNDRED AND TWENTY FIVE CRORE ONLY"},
		{"all groups", "12345678.89", "RUPEES ONE CRORE TWENTY THREE LAKH FORTY FIVE THOUSAND SIX HUNDRED AND SEVENTY EIGHT AND EIGHTY NINE PAISA ONLY"},
		{"paisa rounds up to a rupee", "1.999", "RUPEES TWO ONLY"},
		{"zero paisa clause omitted", "120.00", "RUPEES ONE HUNDRED AND TWENTY ONLY"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToIndianWords(decimal.RequireFromString(tt.amount))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToIndianWords(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestToIndianWordsNegative(t *testing.T) {
	_, err := ToIndianWords(decimal.RequireFromString("-1"))
	if !errors.Is(err, ErrInvalidAmount) {
		t.Fatalf("error = %v, want ErrInvalidAmount", err)
	}
}
