package exchange

import (
	"testing"

	"github.com/shopspring/decimal"
)

func quotes() map[string]decimal.Decimal {
	return map[string]decimal.Decimal{
		"USD": decimal.NewFromInt(1),
		"DOP": decimal.RequireFromString("58.5"),
		"EUR": decimal.RequireFromString("0.92"),
		"JPY": decimal.RequireFromString("147.2"),
	}
}

func TestDeriveTablePivotQuotes(t *testing.T) {
	table := DeriveTable("USD", []string{"USD", "DOP", "EUR"}, quotes())

	if rate := table[Pair{"USD", "EUR"}]; !rate.Equal(decimal.RequireFromString("0.92")) {
		t.Errorf("USD->EUR = %s, want 0.92", rate)
	}
	if rate := table[Pair{"USD", "DOP"}]; !rate.Equal(decimal.RequireFromString("58.5")) {
		t.Errorf("USD->DOP = %s, want 58.5", rate)
	}
}

func TestDeriveTableInverse(t *testing.T) {
	table := DeriveTable("USD", []string{"USD", "EUR"}, quotes())

	want := decimal.NewFromInt(1).Div(decimal.RequireFromString("0.92"))
	if rate := table[Pair{"EUR", "USD"}]; !rate.Equal(want) {
		t.Errorf("EUR->USD = %s, want %s", rate, want)
	}
}

func TestDeriveTableCrossRates(t *testing.T) {
	table := DeriveTable("USD", []string{"USD", "DOP", "EUR"}, quotes())

	dop := decimal.RequireFromString("58.5")
	eur := decimal.RequireFromString("0.92")

	if rate := table[Pair{"DOP", "EUR"}]; !rate.Equal(eur.Div(dop)) {
		t.Errorf("DOP->EUR = %s, want %s", rate, eur.Div(dop))
	}
	if rate := table[Pair{"EUR", "DOP"}]; !rate.Equal(dop.Div(eur)) {
		t.Errorf("EUR->DOP = %s, want %s", rate, dop.Div(eur))
	}
}

func TestDeriveTableIdentity(t *testing.T) {
	table := DeriveTable("USD", []string{"USD", "DOP", "EUR"}, quotes())

	one := decimal.NewFromInt(1)
	for _, currency := range []string{"USD", "DOP", "EUR"} {
		if rate := table[Pair{currency, currency}]; !rate.Equal(one) {
			t.Errorf("%s->%s = %s, want 1", currency, currency, rate)
		}
	}
}

func TestDeriveTableSkipsUnquotedCurrencies(t *testing.T) {
	table := DeriveTable("USD", []string{"USD", "EUR", "GBP"}, quotes())

	if _, ok := table[Pair{"USD", "GBP"}]; ok {
		t.Error("expected no USD->GBP pair when the provider gave no GBP quote")
	}
	if _, ok := table[Pair{"USD", "JPY"}]; ok {
		t.Error("expected unsupported JPY to stay out of the table")
	}
}

func TestDeriveTableSkipsNonPositiveQuotes(t *testing.T) {
	table := DeriveTable("USD", []string{"USD", "BAD"}, map[string]decimal.Decimal{
		"BAD": decimal.Zero,
	})

	if _, ok := table[Pair{"USD", "BAD"}]; ok {
		t.Error("expected zero quote to be dropped")
	}
}
