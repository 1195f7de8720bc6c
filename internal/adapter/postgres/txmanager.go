package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TxManager runs dispatch and shelf mutations in a single transaction.
// Repositories pick the transaction up from the context via QuerierFromCtx.
type TxManager struct {
	pool *pgxpool.Pool
	opts pgx.TxOptions
}

func NewTxManager(pool *pgxpool.Pool) *TxManager {
	return &TxManager{
		pool: pool,
		opts: pgx.TxOptions{IsoLevel: pgx.ReadCommitted},
	}
}

// RunInTx commits when fn returns nil and rolls back otherwise, including
// when fn panics. A RunInTx nested in another joins the outer transaction,
// so only the outermost call commits.
//
// Read Committed is enough: every mutation locks the rows it changes with
// SELECT ... FOR UPDATE before reading their state.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromCtx(ctx); ok {
		return fn(ctx)
	}
	return pgx.BeginTxFunc(ctx, m.pool, m.opts, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}
