package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nadirsultanli/order-management-system-sub011/internal/application/inventory"
	"github.com/nadirsultanli/order-management-system-sub011/internal/application/transfer"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

// Ensure TxRunner implements the application-layer runner ports.
var _ transfer.TxRunner = (*TxRunner)(nil)
var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner executes callbacks inside one PostgreSQL transaction. It is the
// concurrency controller's transaction boundary: row locks taken by the
// repositories live until Commit or Rollback, and a bounded lock_timeout
// turns an excessive wait into a retryable conflict instead of a hang.
type TxRunner struct {
	pool        *pgxpool.Pool
	lockTimeout time.Duration
}

// NewTxRunner builds the runner. lockTimeout bounds how long a transaction
// waits for a competing row lock; zero keeps the server default.
func NewTxRunner(pool *pgxpool.Pool, lockTimeout time.Duration) *TxRunner {
	return &TxRunner{pool: pool, lockTimeout: lockTimeout}
}

// Run begins a transaction, executes fn with repositories bound to it, and
// commits, or rolls back when fn fails.
func (r *TxRunner) Run(ctx context.Context, fn func(
	balanceRepo repository.BalanceRepository,
	movementRepo repository.StockMovementRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if r.lockTimeout > 0 {
		// SET LOCAL scopes the timeout to this transaction only.
		if _, err := tx.Exec(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", r.lockTimeout.Milliseconds())); err != nil {
			return fmt.Errorf("set lock_timeout: %w", err)
		}
	}

	balanceRepo := NewBalanceRepository(tx)
	movementRepo := NewMovementRepository(tx)

	if err := fn(balanceRepo, movementRepo); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
