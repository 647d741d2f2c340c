package memory

import "context"

type txKeyType struct{}

var txKey = txKeyType{}

type TxManager struct {
	store *Store
}

func NewTxManager(store *Store) TxManager {
	return TxManager{store: store}
}

// RunInTx serializes fn against other transactions. Writes are not rolled
// back when fn fails. A nested call joins the transaction already in ctx.
func (t TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if owner, ok := ctx.Value(txKey).(*Store); ok && owner == t.store {
		return fn(ctx)
	}
	t.store.txMu.Lock()
	defer t.store.txMu.Unlock()
	return fn(context.WithValue(ctx, txKey, t.store))
}
