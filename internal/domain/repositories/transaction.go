package repositories

import "context"

// TxFn is a function that runs within a transaction.
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions. Both halves of a creative
// move (remove from old folder, add to new) commit through one transaction so
// a failure never leaves the membership split.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}
