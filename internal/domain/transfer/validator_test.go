package transfer_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/transfer"
)

// Reference fixture: warehouse A holds 100 full, 50 empty, 10 reserved.
func sourceBalance() *entity.InventoryBalance {
	return &entity.InventoryBalance{
		LocationID:  "wh-a",
		ProductID:   "prod-1",
		QtyFull:     decimal.NewFromInt(100),
		QtyEmpty:    decimal.NewFromInt(50),
		QtyReserved: decimal.NewFromInt(10),
	}
}

func warehouseB() *entity.Location {
	return &entity.Location{ID: "wh-b", Kind: entity.LocationKindWarehouse, Name: "Warehouse B"}
}

func request(full, empty int64) transfer.Request {
	return transfer.Request{
		FromLocationID: "wh-a",
		ToLocationID:   "wh-b",
		ProductID:      "prod-1",
		QtyFull:        decimal.NewFromInt(full),
		QtyEmpty:       decimal.NewFromInt(empty),
	}
}

func TestValidate_AdmissibleTransfer(t *testing.T) {
	res := transfer.Validate(request(20, 0), sourceBalance(), warehouseB())

	assert.True(t, res.Valid)
	assert.Empty(t, res.Failures)
	assert.NoError(t, res.Err())
	assert.True(t, res.QtyFull.Equal(decimal.NewFromInt(20)))
}

func TestValidate_NegativeQuantity(t *testing.T) {
	res := transfer.Validate(request(-5, 0), sourceBalance(), warehouseB())

	require.False(t, res.Valid)
	assert.Equal(t, transfer.CodeNegativeQuantity, res.Failures[0].Code)
	assert.ErrorIs(t, res.Err(), domain.ErrNegativeQuantity)
}

func TestValidate_EmptyRequest(t *testing.T) {
	res := transfer.Validate(request(0, 0), sourceBalance(), warehouseB())

	require.False(t, res.Valid)
	assert.Equal(t, transfer.CodeEmptyRequest, res.Failures[0].Code)
	assert.ErrorIs(t, res.Err(), domain.ErrEmptyRequest)
}

func TestValidate_SameLocation(t *testing.T) {
	req := request(20, 0)
	req.ToLocationID = req.FromLocationID

	res := transfer.Validate(req, sourceBalance(), nil)

	require.False(t, res.Valid)
	assert.Equal(t, transfer.CodeSameLocation, res.Failures[0].Code)
	assert.ErrorIs(t, res.Err(), domain.ErrSameLocation)
}

func TestValidate_InactiveTruckDestination(t *testing.T) {
	truck := &entity.Location{ID: "truck-1", Kind: entity.LocationKindTruck, Active: false}
	req := request(15, 0)
	req.ToLocationID = truck.ID

	res := transfer.Validate(req, sourceBalance(), truck)

	require.False(t, res.Valid)
	assert.Equal(t, transfer.CodeInactiveDestination, res.Failures[0].Code)
	assert.ErrorIs(t, res.Err(), domain.ErrInactiveDestination)
}

func TestValidate_ActiveTruckDestination(t *testing.T) {
	truck := &entity.Location{ID: "truck-1", Kind: entity.LocationKindTruck, Active: true}
	req := request(15, 0)
	req.ToLocationID = truck.ID

	res := transfer.Validate(req, sourceBalance(), truck)

	assert.True(t, res.Valid)
}

func TestValidate_InsufficientFullStock(t *testing.T) {
	res := transfer.Validate(request(150, 0), sourceBalance(), warehouseB())

	require.False(t, res.Valid)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, transfer.CodeInsufficientStock, res.Failures[0].Code)
	assert.Contains(t, res.Failures[0].Message, "requested 150, available 100")
	assert.ErrorIs(t, res.Err(), domain.ErrInsufficientStock)
}

func TestValidate_InsufficientEmptyStock(t *testing.T) {
	res := transfer.Validate(request(0, 60), sourceBalance(), warehouseB())

	require.False(t, res.Valid)
	assert.Equal(t, transfer.CodeInsufficientStock, res.Failures[0].Code)
	assert.Contains(t, res.Failures[0].Message, "empty stock")
}

// Both unit types short: both shortfalls must be reported, full first.
func TestValidate_BothUnitsShort(t *testing.T) {
	res := transfer.Validate(request(150, 60), sourceBalance(), warehouseB())

	require.False(t, res.Valid)
	require.Len(t, res.Failures, 2)
	assert.Contains(t, res.Failures[0].Message, "full stock")
	assert.Contains(t, res.Failures[1].Message, "empty stock")
}

// Empty shortfall and reservation breach at once: sufficiency failures rank
// first, so Err() surfaces insufficient stock, not the reservation floor.
func TestValidate_EmptyShortfallRanksBeforeReservation(t *testing.T) {
	res := transfer.Validate(request(95, 60), sourceBalance(), warehouseB())

	require.False(t, res.Valid)
	require.Len(t, res.Failures, 2)
	assert.Equal(t, transfer.CodeInsufficientStock, res.Failures[0].Code)
	assert.Contains(t, res.Failures[0].Message, "empty stock")
	assert.Equal(t, transfer.CodeReservationViolation, res.Failures[1].Code)
	assert.ErrorIs(t, res.Err(), domain.ErrInsufficientStock)
}

// 95 of 100 would leave 5 full units, below the 10 reserved.
func TestValidate_ReservationViolation(t *testing.T) {
	res := transfer.Validate(request(95, 0), sourceBalance(), warehouseB())

	require.False(t, res.Valid)
	assert.Equal(t, transfer.CodeReservationViolation, res.Failures[0].Code)
	assert.ErrorIs(t, res.Err(), domain.ErrReservationViolation)
}

// 90 of 100 lands exactly on the reserved 10: admissible, but warned about.
func TestValidate_ExactlyAtReservationFloor(t *testing.T) {
	res := transfer.Validate(request(90, 0), sourceBalance(), warehouseB())

	assert.True(t, res.Valid)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "reserved quantity")
}

// Empty units carry no reservation floor: draining all 50 empties is fine
// even with 10 full units reserved.
func TestValidate_NoReservationFloorOnEmpty(t *testing.T) {
	res := transfer.Validate(request(0, 50), sourceBalance(), warehouseB())

	assert.True(t, res.Valid)
}

// A missing source row is a zero balance, so any positive request is short.
func TestValidate_ZeroSourceBalance(t *testing.T) {
	empty := &entity.InventoryBalance{LocationID: "wh-a", ProductID: "prod-1"}

	res := transfer.Validate(request(1, 0), empty, warehouseB())

	require.False(t, res.Valid)
	assert.Equal(t, transfer.CodeInsufficientStock, res.Failures[0].Code)
}

// Negative amounts must not also surface stock failures.
func TestValidate_NegativeSkipsStockChecks(t *testing.T) {
	res := transfer.Validate(request(-200, 0), sourceBalance(), warehouseB())

	require.False(t, res.Valid)
	for _, f := range res.Failures {
		assert.NotEqual(t, transfer.CodeInsufficientStock, f.Code)
		assert.NotEqual(t, transfer.CodeReservationViolation, f.Code)
	}
}
