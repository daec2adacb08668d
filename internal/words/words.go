// Package words renders currency totals as the Indian-numbering English
// phrase printed on invoices and challans.
package words

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned for negative amounts; a printed document
// never carries a negative total in words.
var ErrInvalidAmount = errors.New("amount must be a non-negative value")

var ones = []string{
	"", "ONE", "TWO", "THREE", "FOUR", "FIVE", "SIX", "SEVEN", "EIGHT", "NINE",
	"TEN", "ELEVEN", "TWELVE", "THIRTEEN", "FOURTEEN", "FIFTEEN", "SIXTEEN",
	"SEVENTEEN", "EIGHTEEN", "NINETEEN",
}

var tens = []string{"", "", "TWENTY", "THIRTY", "FORTY", "FIFTY", "SIXTY", "SEVENTY", "EIGHTY", "NINETY"}

// ToIndianWords converts a non-negative currency amount into its
// crore/lakh/thousand words form, e.g. 744220 becomes
// "RUPEES SEVEN LAKH FORTY FOUR THOUSAND TWO HUNDRED AND TWENTY ONLY".
// A non-zero paisa fraction is appended as its own clause; zero paisa is
// omitted, except for the literal zero amount.
func ToIndianWords(amount decimal.Decimal) (string, error) {
	if amount.IsNegative() {
		return "", ErrInvalidAmount
	}
	if amount.IsZero() {
		return "RUPEES ZERO AND ZERO PAISA ONLY", nil
	}

	rupees := amount.Floor().IntPart()
	paisa := amount.Sub(amount.Floor()).Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if paisa == 100 {
		rupees++
		paisa = 0
	}
	// Sub-paisa amounts round away to nothing; print the zero literal.
	if rupees == 0 && paisa == 0 {
		return "RUPEES ZERO AND ZERO PAISA ONLY", nil
	}

	rupeeWords := convert(rupees)
	if rupeeWords == "" {
		rupeeWords = "ZERO"
	}

	var b strings.Builder
	b.WriteString("RUPEES ")
	b.WriteString(rupeeWords)
	if paisa > 0 {
		b.WriteString(" AND ")
		b.WriteString(convert(paisa))
		b.WriteString(" PAISA")
	}
	b.WriteString(" ONLY")
	return b.String(), nil
}

func convert(n int64) string {
	if n == 0 {
		return ""
	}

	crore := n / 10_000_000
	lakh := (n % 10_000_000) / 100_000
	thousand := (n % 100_000) / 1_000
	hundred := (n % 1_000) / 100
	rest := n % 100

	var result string
	if crore > 0 {
		result += convert(crore) + " CRORE "
	}
	if lakh > 0 {
		result += under100(lakh) + " LAKH "
	}
	if thousand > 0 {
		result += under100(thousand) + " THOUSAND "
	}
	if hundred > 0 {
		result += ones[hundred] + " HUNDRED "
	}
	if rest > 0 {
		if result != "" {
			result += "AND "
		}
		result += under100(rest)
	}
	return strings.TrimSpace(result)
}

func under100(n int64) string {
	if n < 20 {
		return ones[n]
	}
	if n%10 == 0 {
		return tens[n/10]
	}
	return tens[n/10] + " " + ones[n%10]
}
