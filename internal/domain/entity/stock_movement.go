package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Reference types for stock movements.
const (
	ReferenceTypeTransfer = "transfer"
	ReferenceTypeReceipt  = "receipt"
)

// StockMovement is one leg of an audit ledger entry. Every committed transfer
// writes exactly two rows sharing a ReferenceID: a negative-delta row against
// the source balance and a positive-delta row against the destination.
// Rows are append-only; they are never updated or deleted.
type StockMovement struct {
	ID            string
	LocationID    string
	ProductID     string
	QtyFullDelta  decimal.Decimal // negative = outbound, positive = inbound
	QtyEmptyDelta decimal.Decimal
	ReferenceType string
	ReferenceID   string
	CreatedAt     time.Time
	CreatedBy     string // actor (user) that initiated the movement
}
