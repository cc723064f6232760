package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/types"
)

// Transaction is an immutable ledger row. Rows are only ever created by
// the ledger engines and removed by account-delete cascade. BalanceAfter
// snapshots the account's active balance as of this row.
// LinkedTransactionID is set on transfer legs only and points at the
// counterpart leg on the other account.
type Transaction struct {
	ID                  int64                     `json:"id" gorm:"primaryKey"`
	UUID                uuid.UUID                 `json:"uuid" gorm:"default:gen_random_uuid()"`
	AccountID           int64                     `json:"account_id" gorm:"index"`
	Type                types.TransactionType     `json:"type"`
	Amount              decimal.Decimal           `json:"amount"`
	Description         string                    `json:"description"`
	Category            types.TransactionCategory `json:"category" gorm:"default:other"`
	BalanceAfter        decimal.Decimal           `json:"balance_after"`
	LinkedTransactionID sql.NullInt64             `json:"linked_transaction_id"`
	CreatedAt           time.Time                 `json:"created_at"`
}

func (t *Transaction) Account() *Account {
	var account Account

	config.DataBase.First(&account, "id = ?", t.AccountID)

	return &account
}

// LinkedAccountName resolves the name of the account on the other side
// of a transfer, empty for plain transactions.
func (t *Transaction) LinkedAccountName() string {
	if !t.LinkedTransactionID.Valid {
		return ""
	}

	var linked Transaction
	if err := config.DataBase.First(&linked, "id = ?", t.LinkedTransactionID.Int64).Error; err != nil {
		return ""
	}

	return linked.Account().Name
}
