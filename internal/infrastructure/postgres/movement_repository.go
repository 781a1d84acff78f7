package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*MovementRepo)(nil)

// MovementRepo StockMovementRepository implementation over PostgreSQL
// (usable with pool or tx). Insert-only: the ledger has no update or delete.
type MovementRepo struct {
	q Querier
}

// NewMovementRepository builds the ledger adapter. Pass pool or tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

const movementColumns = `id, location_id, product_id, qty_full_delta, qty_empty_delta, reference_type, reference_id, created_at, created_by`

// Create appends one ledger row.
func (r *MovementRepo) Create(ctx context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_movements (` + movementColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	createdBy := (*string)(nil)
	if m.CreatedBy != "" {
		createdBy = &m.CreatedBy
	}
	_, err := r.q.Exec(ctx, query,
		m.ID, m.LocationID, m.ProductID, m.QtyFullDelta, m.QtyEmptyDelta,
		m.ReferenceType, m.ReferenceID, m.CreatedAt, createdBy,
	)
	if err != nil {
		return fmt.Errorf("create stock movement: %w", err)
	}
	return nil
}

// ListByLocation lists ledger rows for a location, newest first.
func (r *MovementRepo) ListByLocation(ctx context.Context, locationID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE location_id = $1
		ORDER BY created_at DESC, id LIMIT $2 OFFSET $3`
	return r.list(ctx, query, locationID, limit, offset)
}

// ListByBalance lists ledger rows for one (location, product) balance.
func (r *MovementRepo) ListByBalance(ctx context.Context, locationID, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE location_id = $1 AND product_id = $2
		ORDER BY created_at DESC, id LIMIT $3 OFFSET $4`
	return r.list(ctx, query, locationID, productID, limit, offset)
}

// ListByReference returns the rows of one transfer (debit/credit pair) or
// receipt.
func (r *MovementRepo) ListByReference(ctx context.Context, referenceID string) ([]*entity.StockMovement, error) {
	query := `
		SELECT ` + movementColumns + `
		FROM stock_movements WHERE reference_id = $1
		ORDER BY qty_full_delta, qty_empty_delta`
	return r.list(ctx, query, referenceID)
}

func (r *MovementRepo) list(ctx context.Context, query string, args ...any) ([]*entity.StockMovement, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		var createdBy *string
		if err := rows.Scan(&m.ID, &m.LocationID, &m.ProductID, &m.QtyFullDelta, &m.QtyEmptyDelta,
			&m.ReferenceType, &m.ReferenceID, &m.CreatedAt, &createdBy); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
