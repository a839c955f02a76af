package ledger

import "errors"

// Processing errors. Any of these aborts the batch and rolls back every
// mutation performed so far; the HTTP boundary maps them to status codes.
var (
	ErrNoTransactions       = errors.New("notification contains no transactions")
	ErrDuplicateTransaction = errors.New("transaction already exists")
	ErrWalletNotFound       = errors.New("wallet not found")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrUnsupportedType      = errors.New("unsupported transaction type")
)
