package repository

import (
	"context"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
)

// ProductRepository is the port for the cylinder catalog.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Product, error)
}
