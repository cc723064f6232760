package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/models"
	"github.com/monetra/monetra/types"
)

// Converter turns an amount in one currency into another. Satisfied by
// *exchange.Service.
type Converter interface {
	Convert(amount decimal.Decimal, from, to string) (decimal.Decimal, error)
}

// Engine applies ledger events to accounts. Every balance mutation and
// its transaction row are written inside one database transaction with
// the account row locked FOR UPDATE, so concurrent operations on the
// same account serialize instead of losing updates.
type Engine struct {
	db              *gorm.DB
	rates           Converter
	defaultCategory types.TransactionCategory
}

func NewEngine(db *gorm.DB, rates Converter, defaultCategory types.TransactionCategory) *Engine {
	return &Engine{
		db:              db,
		rates:           rates,
		defaultCategory: defaultCategory,
	}
}

// Apply records one transaction on one account owned by memberID and
// returns the persisted row, with BalanceAfter matching the account's
// updated active balance. A commit failure is retried once against
// freshly read state; validation failures are returned immediately.
func (e *Engine) Apply(memberID, accountID int64, txType types.TransactionType, amount decimal.Decimal, description string, category types.TransactionCategory) (*models.Transaction, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if len(category) == 0 {
		category = e.defaultCategory
	}

	entry, err := e.applyOnce(memberID, accountID, txType, amount, description, category)
	if errors.Is(err, ErrCommitFailed) {
		config.Logger.Warnf("ledger: retrying %s on account %d: %v", txType, accountID, err)
		entry, err = e.applyOnce(memberID, accountID, txType, amount, description, category)
	}

	return entry, err
}

func (e *Engine) applyOnce(memberID, accountID int64, txType types.TransactionType, amount decimal.Decimal, description string, category types.TransactionCategory) (*models.Transaction, error) {
	var entry *models.Transaction

	err := e.db.Transaction(func(tx *gorm.DB) error {
		var account models.Account

		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND member_id = ?", accountID, memberID).
			First(&account)
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, result.Error)
		}

		if !models.IsValidTransactionType(txType, account.Type) {
			return ErrInvalidTransactionType
		}

		balanceAfter := account.NextBalance(txType, amount)
		account.SetActiveBalance(balanceAfter)

		if err := tx.Save(&account).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}

		entry = &models.Transaction{
			AccountID:    account.ID,
			Type:         txType,
			Amount:       amount,
			Description:  description,
			Category:     category,
			BalanceAfter: balanceAfter,
		}
		if err := tx.Create(entry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return entry, nil
}
