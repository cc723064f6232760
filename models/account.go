package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/types"
)

// Account is one row per financial account. Exactly one balance column
// is authoritative for a given type: current_balance for asset accounts,
// credit_owed for credit cards, loan_current_owed for loans. All other
// type-specific columns are informational and nullable. ActiveBalance
// and SetActiveBalance are the only code that may pick the column.
type Account struct {
	ID        int64             `json:"id" gorm:"primaryKey"`
	MemberID  int64             `json:"member_id" gorm:"index"`
	Name      string            `json:"name"`
	Type      types.AccountType `json:"type"`
	Color     string            `json:"color" gorm:"default:#DDE61F"`
	Currency  string            `json:"currency" gorm:"default:USD"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`

	// cash, debit, saving, investment
	CurrentBalance decimal.Decimal `json:"current_balance" gorm:"default:0.0"`

	// credit_card
	CreditLimit decimal.NullDecimal `json:"credit_limit"`
	CreditOwed  decimal.NullDecimal `json:"credit_owed"`
	ClosingDate sql.NullInt64       `json:"closing_date"`

	// loan
	LoanInitialAmount decimal.NullDecimal `json:"loan_initial_amount"`
	LoanCurrentOwed   decimal.NullDecimal `json:"loan_current_owed"`
	MonthlyPayment    decimal.NullDecimal `json:"monthly_payment"`

	// saving, investment
	YearlyInterestRate decimal.NullDecimal `json:"yearly_interest_rate"`
}

func (a *Account) Member() *Member {
	var member Member

	config.DataBase.First(&member, "id = ?", a.MemberID)

	return &member
}

func (a *Account) IsAsset() bool {
	switch a.Type {
	case types.AccountTypeCash, types.AccountTypeDebit, types.AccountTypeSaving, types.AccountTypeInvestment:
		return true
	default:
		return false
	}
}

func (a *Account) IsLiability() bool {
	switch a.Type {
	case types.AccountTypeCreditCard, types.AccountTypeLoan:
		return true
	default:
		return false
	}
}

// ActiveBalance returns the authoritative balance for the account type.
// For liability accounts this is the owed amount; a never-touched owed
// column reads as zero.
func (a *Account) ActiveBalance() decimal.Decimal {
	switch a.Type {
	case types.AccountTypeCreditCard:
		if a.CreditOwed.Valid {
			return a.CreditOwed.Decimal
		}
		return decimal.Zero
	case types.AccountTypeLoan:
		if a.LoanCurrentOwed.Valid {
			return a.LoanCurrentOwed.Decimal
		}
		return decimal.Zero
	default:
		return a.CurrentBalance
	}
}

func (a *Account) SetActiveBalance(balance decimal.Decimal) {
	switch a.Type {
	case types.AccountTypeCreditCard:
		a.CreditOwed = decimal.NewNullDecimal(balance)
	case types.AccountTypeLoan:
		a.LoanCurrentOwed = decimal.NewNullDecimal(balance)
	default:
		a.CurrentBalance = balance
	}
}

// NextBalance computes the balance resulting from a transaction of the
// given type without mutating the account. Deposits and expenses grow
// the active balance, withdrawals and payments shrink it; the caller
// must have checked IsValidTransactionType first. No floor is applied:
// withdrawals may overdraw and payments may overpay.
func (a *Account) NextBalance(txType types.TransactionType, amount decimal.Decimal) decimal.Decimal {
	switch txType {
	case types.TypeDeposit, types.TypeExpense:
		return a.ActiveBalance().Add(amount)
	default:
		return a.ActiveBalance().Sub(amount)
	}
}

// ValidTransactionTypes returns the transaction types an account type
// accepts: deposit/withdrawal for asset accounts, expense/payment for
// credit cards, payment only for loans.
func ValidTransactionTypes(accountType types.AccountType) []types.TransactionType {
	switch accountType {
	case types.AccountTypeCash, types.AccountTypeDebit, types.AccountTypeSaving, types.AccountTypeInvestment:
		return []types.TransactionType{types.TypeDeposit, types.TypeWithdrawal}
	case types.AccountTypeCreditCard:
		return []types.TransactionType{types.TypeExpense, types.TypePayment}
	case types.AccountTypeLoan:
		return []types.TransactionType{types.TypePayment}
	default:
		return []types.TransactionType{}
	}
}

func IsValidTransactionType(txType types.TransactionType, accountType types.AccountType) bool {
	for _, t := range ValidTransactionTypes(accountType) {
		if t == txType {
			return true
		}
	}

	return false
}
