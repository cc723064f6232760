package ledger

import "errors"

// Validation errors are detected before any mutation and returned as-is;
// they are caller mistakes and never retried. ErrCommitFailed marks a
// failure of the atomic write itself and is the only error the engines
// retry (once, with fresh reads).
var (
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInvalidTransactionType = errors.New("transaction type not allowed for this account type")
	ErrInvalidDirection       = errors.New("transfers can only originate from asset accounts")
	ErrSameAccount            = errors.New("cannot transfer to the same account")
	ErrNotFound               = errors.New("account not found")
	ErrConversionUnavailable  = errors.New("currency conversion unavailable")
	ErrCommitFailed           = errors.New("ledger commit failed")
)
