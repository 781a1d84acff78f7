package repository

import (
	"context"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
)

// LocationRepository is the port for the warehouse/truck directory.
type LocationRepository interface {
	Create(ctx context.Context, location *entity.Location) error
	GetByID(ctx context.Context, id string) (*entity.Location, error)
	List(ctx context.Context, kind string, limit, offset int) ([]*entity.Location, error)
	SetActive(ctx context.Context, id string, active bool) error
}
