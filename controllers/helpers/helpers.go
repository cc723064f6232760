package helpers

import (
	"errors"

	"github.com/gookit/validate"

	"github.com/monetra/monetra/exchange"
	"github.com/monetra/monetra/ledger"
)

type Errors struct {
	Errors []string `json:"errors"`
}

func (e Errors) Size() int {
	return len(e.Errors)
}

func Vaildate(payload interface{}, err_src *Errors) {
	v := validate.Struct(payload)
	if !v.Validate() {
		for _, errs := range v.Errors.All() {
			for _, err := range errs {
				err_src.Errors = append(err_src.Errors, err)
			}
		}
	}
}

// LedgerErrorCode maps an engine error to an HTTP status and a stable
// machine-readable code. The presentation layer owns the human copy.
func LedgerErrorCode(err error) (int, string) {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount):
		return 422, "ledger.transaction.non_positive_amount"
	case errors.Is(err, ledger.ErrInvalidTransactionType):
		return 422, "ledger.transaction.invalid_type"
	case errors.Is(err, ledger.ErrSameAccount):
		return 422, "ledger.transfer.same_account"
	case errors.Is(err, ledger.ErrInvalidDirection):
		return 422, "ledger.transfer.invalid_direction"
	case errors.Is(err, ledger.ErrConversionUnavailable):
		return 422, "ledger.transfer.conversion_unavailable"
	case errors.Is(err, ledger.ErrNotFound):
		return 404, "ledger.account.not_found"
	case errors.Is(err, exchange.ErrRateUnavailable):
		return 422, "exchange.rate.unavailable"
	default:
		return 500, "server.internal_error"
	}
}
