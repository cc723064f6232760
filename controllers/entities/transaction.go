package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/monetra/monetra/models"
	"github.com/monetra/monetra/types"
)

type TransactionEntity struct {
	ID                  int64                     `json:"id"`
	UUID                uuid.UUID                 `json:"uuid"`
	AccountID           int64                     `json:"account_id"`
	Type                types.TransactionType     `json:"type"`
	Amount              decimal.Decimal           `json:"amount"`
	Description         string                    `json:"description"`
	Category            types.TransactionCategory `json:"category"`
	BalanceAfter        decimal.Decimal           `json:"balance_after"`
	LinkedTransactionID *int64                    `json:"linked_transaction_id,omitempty"`
	LinkedAccountName   string                    `json:"linked_account_name,omitempty"`
	CreatedAt           time.Time                 `json:"created_at"`
}

func TransactionToEntity(t *models.Transaction) *TransactionEntity {
	entity := &TransactionEntity{
		ID:           t.ID,
		UUID:         t.UUID,
		AccountID:    t.AccountID,
		Type:         t.Type,
		Amount:       t.Amount,
		Description:  t.Description,
		Category:     t.Category,
		BalanceAfter: t.BalanceAfter,
		CreatedAt:    t.CreatedAt,
	}

	if t.LinkedTransactionID.Valid {
		entity.LinkedTransactionID = &t.LinkedTransactionID.Int64
		entity.LinkedAccountName = t.LinkedAccountName()
	}

	return entity
}
