package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryBalance is the stock record for one (location, product) pair:
// the single source of truth for quantities. QtyReserved is the portion of
// QtyFull already committed to orders; a transfer may never leave
// QtyFull below QtyReserved.
type InventoryBalance struct {
	LocationID  string
	ProductID   string
	QtyFull     decimal.Decimal
	QtyEmpty    decimal.Decimal
	QtyReserved decimal.Decimal
	UpdatedAt   time.Time
}

// AvailableFull is the full stock not committed to reservations.
func (b *InventoryBalance) AvailableFull() decimal.Decimal {
	return b.QtyFull.Sub(b.QtyReserved)
}
