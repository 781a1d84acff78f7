package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
)

// BalanceRepository is the port for the per-(location, product) stock record.
// Used inside transactions to guarantee consistency.
type BalanceRepository interface {
	Get(ctx context.Context, locationID, productID string) (*entity.InventoryBalance, error)
	// GetForUpdate locks the balance row for the rest of the transaction
	// (SELECT FOR UPDATE). Returns domain.ErrConcurrencyConflict when the
	// lock cannot be acquired within the configured wait.
	GetForUpdate(ctx context.Context, locationID, productID string) (*entity.InventoryBalance, error)
	// ApplyDelta adds the signed amounts to the row's qty_full/qty_empty,
	// creating the row when it does not exist yet.
	ApplyDelta(ctx context.Context, locationID, productID string, qtyFullDelta, qtyEmptyDelta decimal.Decimal) error
	ListByLocation(ctx context.Context, locationID string) ([]*entity.InventoryBalance, error)
}
