package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/suryatek/quotation-api/internal/application/quotation"
	"github.com/suryatek/quotation-api/internal/domain/repository"
)

// Ensure TxRunner implements quotation.TxRunner.
var _ quotation.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside a PostgreSQL transaction.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner builds the runner on top of the pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// RunQuotation begins a transaction, runs fn with a tx-bound quotation
// repository and commits. Any error from fn or the commit rolls back.
func (r *TxRunner) RunQuotation(ctx context.Context, fn func(repo repository.QuotationRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewQuotationRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
