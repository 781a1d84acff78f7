package inventory

import (
	"context"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

// TxRunner executes a function inside a database transaction with
// repositories bound to it. Same contract as the transfer engine's runner;
// stock receipts need the balance change and the ledger row to commit
// together too.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
