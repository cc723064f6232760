package exchange

import (
	"github.com/shopspring/decimal"
)

// Pair is one directed conversion in the rate table.
type Pair struct {
	Base   string
	Target string
}

// DeriveTable expands one fetch of pivot-based quotes into the full
// directed table for the supported currencies: pivot→X quotes, X→pivot
// inverses, X→Y cross rates through the pivot (rate(A,B) =
// quote(B) / quote(A)) and explicit X→X identity pairs. Currencies the
// provider did not quote, or quoted non-positive, are left out.
func DeriveTable(pivot string, supported []string, quotes map[string]decimal.Decimal) map[Pair]decimal.Decimal {
	one := decimal.NewFromInt(1)

	tracked := make(map[string]decimal.Decimal)
	for _, currency := range supported {
		if quote, ok := quotes[currency]; ok && quote.IsPositive() {
			tracked[currency] = quote
		}
	}
	tracked[pivot] = one

	table := make(map[Pair]decimal.Decimal)

	for currency, quote := range tracked {
		table[Pair{pivot, currency}] = quote
		table[Pair{currency, pivot}] = one.Div(quote)
	}

	for a, quoteA := range tracked {
		for b, quoteB := range tracked {
			if a == b || a == pivot || b == pivot {
				continue
			}
			table[Pair{a, b}] = quoteB.Div(quoteA)
		}
	}

	for currency := range tracked {
		table[Pair{currency, currency}] = one
	}

	return table
}
