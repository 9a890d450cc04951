package store

import "context"

// RunAsActor wraps ctx with the acting user and calls fn inside the provided TxRunner
func RunAsActor(ctx context.Context, tx TxRunner, userID string, fn func(ctx context.Context, q RowQuerier) error) error {
	ctx = WithActor(ctx, userID)
	return tx.Tx(ctx, func(q RowQuerier) error {
		return fn(ctx, q)
	})
}
