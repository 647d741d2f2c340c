package ports

import "context"

// TxManager runs fn with every store call made through ctx committed or
// rolled back together. Calls nested inside fn reuse the outer transaction.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
