package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo LocationRepository implementation over PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository builds the location adapter. Pass pool or tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// Create persists a new location.
func (r *LocationRepo) Create(ctx context.Context, l *entity.Location) error {
	query := `
		INSERT INTO locations (id, kind, name, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query, l.ID, l.Kind, l.Name, l.Active, l.CreatedAt, l.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: location %s", domain.ErrDuplicate, l.ID)
		}
		return fmt.Errorf("insert location: %w", err)
	}
	return nil
}

// GetByID returns one location, or nil when it does not exist.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `
		SELECT id, kind, name, active, created_at, updated_at
		FROM locations WHERE id = $1`
	var l entity.Location
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.Kind, &l.Name, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}

// List returns locations, optionally filtered by kind, with pagination.
func (r *LocationRepo) List(ctx context.Context, kind string, limit, offset int) ([]*entity.Location, error) {
	query := `
		SELECT id, kind, name, active, created_at, updated_at
		FROM locations`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = $1 ORDER BY name LIMIT $2 OFFSET $3`
		args = append(args, kind, limit, offset)
	} else {
		query += ` ORDER BY name LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		var l entity.Location
		if err := rows.Scan(&l.ID, &l.Kind, &l.Name, &l.Active, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// SetActive updates the active flag.
func (r *LocationRepo) SetActive(ctx context.Context, id string, active bool) error {
	cmd, err := r.q.Exec(ctx, `UPDATE locations SET active = $2, updated_at = now() WHERE id = $1`, id, active)
	if err != nil {
		return fmt.Errorf("set location active: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("%w: location %s", domain.ErrNotFound, id)
	}
	return nil
}
