package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
)

// CreateProductRequest body for POST /api/products.
type CreateProductRequest struct {
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
}

// ProductDTO transport shape of a product.
type ProductDTO struct {
	ID         string          `json:"id"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ProductFromEntity maps the domain product.
func ProductFromEntity(p *entity.Product) ProductDTO {
	return ProductDTO{ID: p.ID, SKU: p.SKU, Name: p.Name, CapacityKg: p.CapacityKg, CreatedAt: p.CreatedAt}
}
