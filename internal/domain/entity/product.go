package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a cylinder SKU. The transfer engine references it by ID only;
// the descriptive attributes exist for the catalog screens.
type Product struct {
	ID         string
	SKU        string
	Name       string
	CapacityKg decimal.Decimal
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
