package helpers

import (
	"database/sql"

	"github.com/gookit/validate"
	"github.com/shopspring/decimal"

	"github.com/monetra/monetra/config"
	"github.com/monetra/monetra/models"
	"github.com/monetra/monetra/types"
)

type CreateAccountParams struct {
	Name     string            `json:"name" form:"name" validate:"required"`
	Type     types.AccountType `json:"type" form:"type" validate:"required|VaildateType"`
	Color    string            `json:"color" form:"color"`
	Currency string            `json:"currency" form:"currency" validate:"VaildateCurrency"`

	InitialBalance     decimal.NullDecimal `json:"initial_balance" form:"initial_balance"`
	CreditLimit        decimal.NullDecimal `json:"credit_limit" form:"credit_limit"`
	CreditOwed         decimal.NullDecimal `json:"credit_owed" form:"credit_owed"`
	ClosingDate        *int64              `json:"closing_date" form:"closing_date"`
	LoanInitialAmount  decimal.NullDecimal `json:"loan_initial_amount" form:"loan_initial_amount"`
	LoanCurrentOwed    decimal.NullDecimal `json:"loan_current_owed" form:"loan_current_owed"`
	MonthlyPayment     decimal.NullDecimal `json:"monthly_payment" form:"monthly_payment"`
	YearlyInterestRate decimal.NullDecimal `json:"yearly_interest_rate" form:"yearly_interest_rate"`
}

func (p CreateAccountParams) Messages() map[string]string {
	return validate.MS{
		"required":         "ledger.account.missing_{field}",
		"VaildateType":     "ledger.account.invalid_type",
		"VaildateCurrency": "ledger.account.unsupported_currency",
	}
}

func (p CreateAccountParams) VaildateType(Type types.AccountType) bool {
	for _, t := range types.AccountTypes() {
		if t == Type {
			return true
		}
	}

	return false
}

func (p CreateAccountParams) VaildateCurrency(Currency string) bool {
	if len(Currency) == 0 {
		return true
	}

	for _, c := range config.App.Exchange.SupportedCurrencies {
		if c == Currency {
			return true
		}
	}

	return false
}

// BuildAccount maps the params onto a fresh account row, accepting only
// the fields that mean something for the requested type.
func (p CreateAccountParams) BuildAccount(member *models.Member, err_src *Errors) *models.Account {
	account := &models.Account{
		MemberID: member.ID,
		Name:     p.Name,
		Type:     p.Type,
		Currency: p.Currency,
	}

	if len(account.Currency) == 0 {
		account.Currency = config.App.Exchange.PivotCurrency
	}
	if len(p.Color) > 0 {
		account.Color = p.Color
	}

	switch p.Type {
	case types.AccountTypeCreditCard:
		if p.InitialBalance.Valid || p.LoanInitialAmount.Valid || p.LoanCurrentOwed.Valid || p.MonthlyPayment.Valid {
			err_src.Errors = append(err_src.Errors, "ledger.account.invalid_fields_for_type")
			return nil
		}

		account.CreditLimit = p.CreditLimit
		account.CreditOwed = p.CreditOwed
		if p.ClosingDate != nil {
			account.ClosingDate = sql.NullInt64{Int64: *p.ClosingDate, Valid: true}
		}
	case types.AccountTypeLoan:
		if p.InitialBalance.Valid || p.CreditLimit.Valid || p.CreditOwed.Valid || p.ClosingDate != nil {
			err_src.Errors = append(err_src.Errors, "ledger.account.invalid_fields_for_type")
			return nil
		}

		account.LoanInitialAmount = p.LoanInitialAmount
		account.LoanCurrentOwed = p.LoanCurrentOwed
		account.MonthlyPayment = p.MonthlyPayment
	default:
		if p.CreditLimit.Valid || p.CreditOwed.Valid || p.ClosingDate != nil ||
			p.LoanInitialAmount.Valid || p.LoanCurrentOwed.Valid || p.MonthlyPayment.Valid {
			err_src.Errors = append(err_src.Errors, "ledger.account.invalid_fields_for_type")
			return nil
		}

		if p.InitialBalance.Valid {
			account.CurrentBalance = p.InitialBalance.Decimal
		}
		account.YearlyInterestRate = p.YearlyInterestRate
	}

	return account
}

type UpdateAccountParams struct {
	Name  *string `json:"name" form:"name"`
	Color *string `json:"color" form:"color"`

	CreditLimit        decimal.NullDecimal `json:"credit_limit" form:"credit_limit"`
	ClosingDate        *int64              `json:"closing_date" form:"closing_date"`
	MonthlyPayment     decimal.NullDecimal `json:"monthly_payment" form:"monthly_payment"`
	YearlyInterestRate decimal.NullDecimal `json:"yearly_interest_rate" form:"yearly_interest_rate"`
}

// ApplyTo copies only the provided informational fields onto the
// account. Balances are off limits here: they move exclusively through
// the ledger engine.
func (p UpdateAccountParams) ApplyTo(account *models.Account) {
	if p.Name != nil {
		account.Name = *p.Name
	}
	if p.Color != nil {
		account.Color = *p.Color
	}
	if p.CreditLimit.Valid {
		account.CreditLimit = p.CreditLimit
	}
	if p.ClosingDate != nil {
		account.ClosingDate = sql.NullInt64{Int64: *p.ClosingDate, Valid: true}
	}
	if p.MonthlyPayment.Valid {
		account.MonthlyPayment = p.MonthlyPayment
	}
	if p.YearlyInterestRate.Valid {
		account.YearlyInterestRate = p.YearlyInterestRate
	}
}
