package helpers

import (
	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/monetra/monetra/models/concerns"
	"github.com/monetra/monetra/types"
)

var precision_validator = &concerns.PrecisionValidator{}

type CreateTransactionParams struct {
	Type        types.TransactionType     `json:"type" form:"type" validate:"required|VaildateType"`
	Amount      decimal.Decimal           `json:"amount" form:"amount" validate:"VaildateAmount"`
	Description string                    `json:"description" form:"description"`
	Category    types.TransactionCategory `json:"category" form:"category" validate:"VaildateCategory"`
}

func (p CreateTransactionParams) Messages() map[string]string {
	return validate.MS{
		"required":         "ledger.transaction.missing_{field}",
		"VaildateType":     "ledger.transaction.invalid_type",
		"VaildateAmount":   "ledger.transaction.non_positive_amount",
		"VaildateCategory": "ledger.transaction.invalid_category",
	}
}

func (p CreateTransactionParams) VaildateType(Type types.TransactionType) bool {
	switch Type {
	case types.TypeDeposit, types.TypeWithdrawal, types.TypeExpense, types.TypePayment:
		return true
	default:
		return false
	}
}

func (p CreateTransactionParams) VaildateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive() && precision_validator.LessThanOrEqTo(Amount, 2)
}

func (p CreateTransactionParams) VaildateCategory(Category types.TransactionCategory) bool {
	if len(Category) == 0 {
		return true
	}

	for _, c := range types.TransactionCategories() {
		if c == Category {
			return true
		}
	}

	return false
}

type TransferParams struct {
	FromAccountID int64           `json:"from_account_id" form:"from_account_id" validate:"required"`
	ToAccountID   int64           `json:"to_account_id" form:"to_account_id" validate:"required"`
	Amount        decimal.Decimal `json:"amount" form:"amount" validate:"VaildateAmount"`
	Description   string          `json:"description" form:"description"`
}

func (p TransferParams) Messages() map[string]string {
	return validate.MS{
		"required":       "ledger.transfer.missing_{field}",
		"VaildateAmount": "ledger.transfer.non_positive_amount",
	}
}

func (p TransferParams) VaildateAmount(Amount decimal.Decimal) bool {
	return Amount.IsPositive() && precision_validator.LessThanOrEqTo(Amount, 2)
}
