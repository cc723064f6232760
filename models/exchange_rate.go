package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is one directed currency pair in the durable rate table.
// Identity pairs (base == target, rate 1) are stored explicitly so every
// lookup is a plain pair fetch. Rows are refreshed in place by the
// exchange service and read-only to everyone else.
type ExchangeRate struct {
	ID             int64           `json:"id" gorm:"primaryKey"`
	BaseCurrency   string          `json:"base_currency" gorm:"uniqueIndex:idx_exchange_rates_pair"`
	TargetCurrency string          `json:"target_currency" gorm:"uniqueIndex:idx_exchange_rates_pair"`
	Rate           decimal.Decimal `json:"rate"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
