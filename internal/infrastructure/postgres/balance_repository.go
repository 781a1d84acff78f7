package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

var _ repository.BalanceRepository = (*BalanceRepo)(nil)

// BalanceRepo BalanceRepository implementation over PostgreSQL (usable with
// pool or tx).
type BalanceRepo struct {
	q Querier
}

// NewBalanceRepository builds the balance adapter. Pass pool or tx (Querier).
func NewBalanceRepository(q Querier) *BalanceRepo {
	return &BalanceRepo{q: q}
}

// Get returns the current balance of (location, product). A missing row is a
// zero balance, not an error.
func (r *BalanceRepo) Get(ctx context.Context, locationID, productID string) (*entity.InventoryBalance, error) {
	query := `
		SELECT location_id, product_id, qty_full, qty_empty, qty_reserved, updated_at
		FROM inventory_balances WHERE location_id = $1 AND product_id = $2`
	var b entity.InventoryBalance
	err := r.q.QueryRow(ctx, query, locationID, productID).Scan(
		&b.LocationID, &b.ProductID, &b.QtyFull, &b.QtyEmpty, &b.QtyReserved, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroBalance(locationID, productID), nil
		}
		return nil, fmt.Errorf("get balance: %w", err)
	}
	return &b, nil
}

// GetForUpdate returns the balance with its row locked for the rest of the
// transaction (SELECT FOR UPDATE). When the lock wait exceeds the
// transaction's lock_timeout the attempt fails with ErrConcurrencyConflict.
func (r *BalanceRepo) GetForUpdate(ctx context.Context, locationID, productID string) (*entity.InventoryBalance, error) {
	query := `
		SELECT location_id, product_id, qty_full, qty_empty, qty_reserved, updated_at
		FROM inventory_balances WHERE location_id = $1 AND product_id = $2
		FOR UPDATE`
	var b entity.InventoryBalance
	err := r.q.QueryRow(ctx, query, locationID, productID).Scan(
		&b.LocationID, &b.ProductID, &b.QtyFull, &b.QtyEmpty, &b.QtyReserved, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroBalance(locationID, productID), nil
		}
		if isLockNotAvailable(err) {
			return nil, fmt.Errorf("%w: balance (%s, %s)", domain.ErrConcurrencyConflict, locationID, productID)
		}
		return nil, fmt.Errorf("get balance for update: %w", err)
	}
	return &b, nil
}

// ApplyDelta adds the signed amounts to the row, creating it on first stock.
// The additive upsert keeps concurrent credits against a row that did not
// exist at lock time from overwriting each other.
func (r *BalanceRepo) ApplyDelta(ctx context.Context, locationID, productID string, qtyFullDelta, qtyEmptyDelta decimal.Decimal) error {
	query := `
		INSERT INTO inventory_balances (location_id, product_id, qty_full, qty_empty, qty_reserved, updated_at)
		VALUES ($1, $2, $3, $4, 0, now())
		ON CONFLICT (location_id, product_id)
		DO UPDATE SET
			qty_full = inventory_balances.qty_full + EXCLUDED.qty_full,
			qty_empty = inventory_balances.qty_empty + EXCLUDED.qty_empty,
			updated_at = now()`
	_, err := r.q.Exec(ctx, query, locationID, productID, qtyFullDelta, qtyEmptyDelta)
	if err != nil {
		if isLockNotAvailable(err) {
			return fmt.Errorf("%w: balance (%s, %s)", domain.ErrConcurrencyConflict, locationID, productID)
		}
		return fmt.Errorf("apply balance delta: %w", err)
	}
	return nil
}

// ListByLocation returns every balance held at a location.
func (r *BalanceRepo) ListByLocation(ctx context.Context, locationID string) ([]*entity.InventoryBalance, error) {
	query := `
		SELECT location_id, product_id, qty_full, qty_empty, qty_reserved, updated_at
		FROM inventory_balances WHERE location_id = $1 ORDER BY product_id`
	rows, err := r.q.Query(ctx, query, locationID)
	if err != nil {
		return nil, fmt.Errorf("list balances: %w", err)
	}
	defer rows.Close()
	var list []*entity.InventoryBalance
	for rows.Next() {
		var b entity.InventoryBalance
		if err := rows.Scan(&b.LocationID, &b.ProductID, &b.QtyFull, &b.QtyEmpty, &b.QtyReserved, &b.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan balance: %w", err)
		}
		list = append(list, &b)
	}
	return list, rows.Err()
}

func zeroBalance(locationID, productID string) *entity.InventoryBalance {
	return &entity.InventoryBalance{
		LocationID:  locationID,
		ProductID:   productID,
		QtyFull:     decimal.Zero,
		QtyEmpty:    decimal.Zero,
		QtyReserved: decimal.Zero,
	}
}
