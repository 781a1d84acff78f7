package repository

import (
	"context"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
)

// StockMovementRepository is the port for the append-only movement ledger.
// Create runs inside the same transaction that mutates the balances.
// There is no update or delete.
type StockMovementRepository interface {
	Create(ctx context.Context, movement *entity.StockMovement) error
	ListByLocation(ctx context.Context, locationID string, limit, offset int) ([]*entity.StockMovement, error)
	ListByBalance(ctx context.Context, locationID, productID string, limit, offset int) ([]*entity.StockMovement, error)
	// ListByReference returns the debit/credit pair of one transfer.
	ListByReference(ctx context.Context, referenceID string) ([]*entity.StockMovement, error)
}
