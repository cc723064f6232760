package entities

import (
	"github.com/shopspring/decimal"

	"github.com/monetra/monetra/ledger"
)

// TransferEntity is the caller-facing view of a completed transfer: the
// source leg plus, for cross-currency transfers, what the destination
// actually received.
type TransferEntity struct {
	Transaction     *TransactionEntity `json:"transaction"`
	Destination     *TransactionEntity `json:"destination"`
	ConvertedAmount *decimal.Decimal   `json:"converted_amount,omitempty"`
	ToCurrency      string             `json:"to_currency,omitempty"`
}

func TransferToEntity(result *ledger.TransferResult) *TransferEntity {
	entity := &TransferEntity{
		Transaction: TransactionToEntity(result.Source),
		Destination: TransactionToEntity(result.Destination),
	}

	if result.Converted {
		amount := result.DestAmount
		entity.ConvertedAmount = &amount
		entity.ToCurrency = result.DestCurrency
	}

	return entity
}
