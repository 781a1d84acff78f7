package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
)

// BalanceDTO one (location, product) stock record.
type BalanceDTO struct {
	LocationID  string          `json:"location_id"`
	ProductID   string          `json:"product_id"`
	QtyFull     decimal.Decimal `json:"qty_full"`
	QtyEmpty    decimal.Decimal `json:"qty_empty"`
	QtyReserved decimal.Decimal `json:"qty_reserved"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// BalanceFromEntity maps the domain balance to its transport shape.
func BalanceFromEntity(b *entity.InventoryBalance) BalanceDTO {
	return BalanceDTO{
		LocationID:  b.LocationID,
		ProductID:   b.ProductID,
		QtyFull:     b.QtyFull,
		QtyEmpty:    b.QtyEmpty,
		QtyReserved: b.QtyReserved,
		UpdatedAt:   b.UpdatedAt,
	}
}

// MovementDTO one ledger row.
type MovementDTO struct {
	ID            string          `json:"id"`
	LocationID    string          `json:"location_id"`
	ProductID     string          `json:"product_id"`
	QtyFullDelta  decimal.Decimal `json:"qty_full_delta"`
	QtyEmptyDelta decimal.Decimal `json:"qty_empty_delta"`
	ReferenceType string          `json:"reference_type"`
	ReferenceID   string          `json:"reference_id"`
	CreatedAt     time.Time       `json:"created_at"`
	CreatedBy     string          `json:"created_by,omitempty"`
}

// MovementFromEntity maps a ledger row to its transport shape.
func MovementFromEntity(m *entity.StockMovement) MovementDTO {
	return MovementDTO{
		ID:            m.ID,
		LocationID:    m.LocationID,
		ProductID:     m.ProductID,
		QtyFullDelta:  m.QtyFullDelta,
		QtyEmptyDelta: m.QtyEmptyDelta,
		ReferenceType: m.ReferenceType,
		ReferenceID:   m.ReferenceID,
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
	}
}

// ReceiveStockRequest body for POST /api/inventory/receipts.
type ReceiveStockRequest struct {
	LocationID string          `json:"location_id"`
	ProductID  string          `json:"product_id"`
	QtyFull    decimal.Decimal `json:"qty_full"`
	QtyEmpty   decimal.Decimal `json:"qty_empty"`
}
