package entity

import "time"

// Location kinds.
const (
	LocationKindWarehouse = "warehouse"
	LocationKindTruck     = "truck"
)

// Location is a place that holds cylinder stock: a warehouse or a delivery truck.
// Warehouses are always usable; trucks must be active to receive stock.
type Location struct {
	ID        string
	Kind      string // warehouse, truck
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsWarehouse reports whether the location is a warehouse.
func (l *Location) IsWarehouse() bool { return l.Kind == LocationKindWarehouse }

// IsTruck reports whether the location is a truck.
func (l *Location) IsTruck() bool { return l.Kind == LocationKindTruck }

// CanReceive reports whether the location may be the destination of a transfer.
// Warehouses always can; trucks only while active.
func (l *Location) CanReceive() bool {
	if l.IsTruck() {
		return l.Active
	}
	return true
}
