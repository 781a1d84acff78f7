package transfer

import (
	"context"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

// TxRunner executes a function inside one database transaction, passing
// repositories bound to that transaction. Commit happens only when fn
// returns nil; any error rolls everything back. This is what makes a
// transfer all-or-nothing: balance mutation and ledger append share the
// same unit of work.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		balanceRepo repository.BalanceRepository,
		movementRepo repository.StockMovementRepository,
	) error) error
}
