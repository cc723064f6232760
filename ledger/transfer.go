package ledger

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/models"
	"github.com/monetra/monetra/types"
)

// TransferResult carries the two persisted legs. DestAmount and
// DestCurrency report what the destination actually received, which
// differs from the requested amount when the accounts hold different
// currencies.
type TransferResult struct {
	Source       *models.Transaction
	Destination  *models.Transaction
	Converted    bool
	DestAmount   decimal.Decimal
	DestCurrency string
}

// Transfer moves value between two accounts of the same member as one
// atomic unit: source withdrawal, destination deposit (asset) or payment
// (liability), two transaction rows linked to each other. Either
// everything persists or nothing does.
func (e *Engine) Transfer(memberID, fromID, toID int64, amount decimal.Decimal, description string) (*TransferResult, error) {
	if fromID == toID {
		return nil, ErrSameAccount
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	if len(description) == 0 {
		description = "Transfer"
	}

	result, err := e.transferOnce(memberID, fromID, toID, amount, description)
	if errors.Is(err, ErrCommitFailed) {
		config.Logger.Warnf("ledger: retrying transfer %d -> %d: %v", fromID, toID, err)
		result, err = e.transferOnce(memberID, fromID, toID, amount, description)
	}

	return result, err
}

func (e *Engine) transferOnce(memberID, fromID, toID int64, amount decimal.Decimal, description string) (*TransferResult, error) {
	var result *TransferResult

	err := e.db.Transaction(func(tx *gorm.DB) error {
		// Both rows are locked in ascending id order so that two
		// concurrent transfers over the same pair in opposite
		// directions cannot deadlock.
		var accounts []models.Account
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id IN ? AND member_id = ?", []int64{fromID, toID}, memberID).
			Order("id asc").
			Find(&accounts).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}
		if len(accounts) != 2 {
			return ErrNotFound
		}

		var source, dest *models.Account
		for i := range accounts {
			switch accounts[i].ID {
			case fromID:
				source = &accounts[i]
			case toID:
				dest = &accounts[i]
			}
		}

		if !source.IsAsset() {
			return ErrInvalidDirection
		}

		destAmount := amount
		converted := source.Currency != dest.Currency
		if converted {
			var err error
			destAmount, err = e.rates.Convert(amount, source.Currency, dest.Currency)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrConversionUnavailable, err)
			}
		}

		// A transfer into a liability account is a payment on it,
		// never an expense. Overpaying below zero owed is allowed.
		destType := types.TypePayment
		if dest.IsAsset() {
			destType = types.TypeDeposit
		}

		sourceAfter := source.NextBalance(types.TypeWithdrawal, amount)
		destAfter := dest.NextBalance(destType, destAmount)

		source.SetActiveBalance(sourceAfter)
		dest.SetActiveBalance(destAfter)

		if err := tx.Save(source).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}
		if err := tx.Save(dest).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}

		sourceEntry := &models.Transaction{
			AccountID:    source.ID,
			Type:         types.TypeWithdrawal,
			Amount:       amount,
			Description:  description + " → " + dest.Name,
			Category:     types.CategoryTransfer,
			BalanceAfter: sourceAfter,
		}
		destEntry := &models.Transaction{
			AccountID:    dest.ID,
			Type:         destType,
			Amount:       destAmount,
			Description:  description + " ← " + source.Name,
			Category:     types.CategoryTransfer,
			BalanceAfter: destAfter,
		}

		if err := tx.Create(sourceEntry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}
		if err := tx.Create(destEntry).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}

		// Bidirectional back-reference between the legs.
		if err := tx.Model(&models.Transaction{}).Where("id = ?", sourceEntry.ID).
			Update("linked_transaction_id", destEntry.ID).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}
		if err := tx.Model(&models.Transaction{}).Where("id = ?", destEntry.ID).
			Update("linked_transaction_id", sourceEntry.ID).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCommitFailed, err)
		}

		sourceEntry.LinkedTransactionID = sql.NullInt64{Int64: destEntry.ID, Valid: true}
		destEntry.LinkedTransactionID = sql.NullInt64{Int64: sourceEntry.ID, Valid: true}

		result = &TransferResult{
			Source:       sourceEntry,
			Destination:  destEntry,
			Converted:    converted,
			DestAmount:   destAmount,
			DestCurrency: dest.Currency,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
