package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

// ReceiveStockUseCase books incoming stock (supplier delivery, customer
// empty returns) into a warehouse balance. Receipts are the way balances
// come into existence; after that only transfers move the units around.
type ReceiveStockUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
}

// NewReceiveStockUseCase builds the use case.
func NewReceiveStockUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
) *ReceiveStockUseCase {
	return &ReceiveStockUseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		productRepo:  productRepo,
	}
}

// ReceiveInput is one goods receipt.
type ReceiveInput struct {
	ActorID    string
	LocationID string
	ProductID  string
	QtyFull    decimal.Decimal
	QtyEmpty   decimal.Decimal
}

// ReceiveResult reports the booked receipt.
type ReceiveResult struct {
	ReferenceID string
	QtyFull     decimal.Decimal
	QtyEmpty    decimal.Decimal
}

// Receive credits the warehouse balance and appends a single inbound ledger
// row, atomically.
func (uc *ReceiveStockUseCase) Receive(ctx context.Context, input ReceiveInput) (*ReceiveResult, error) {
	if input.QtyFull.IsNegative() || input.QtyEmpty.IsNegative() {
		return nil, fmt.Errorf("%w: receipt quantities must not be negative", domain.ErrNegativeQuantity)
	}
	if input.QtyFull.IsZero() && input.QtyEmpty.IsZero() {
		return nil, fmt.Errorf("%w: receipt has no quantities", domain.ErrEmptyRequest)
	}

	loc, err := uc.locationRepo.GetByID(ctx, input.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: location %s", domain.ErrNotFound, input.LocationID)
	}
	if !loc.IsWarehouse() {
		return nil, fmt.Errorf("%w: receipts can only target a warehouse", domain.ErrInvalidInput)
	}
	product, err := uc.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, input.ProductID)
	}

	now := time.Now()
	referenceID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		balanceRepo repository.BalanceRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		if _, err := balanceRepo.GetForUpdate(ctx, input.LocationID, input.ProductID); err != nil {
			return err
		}
		if err := balanceRepo.ApplyDelta(ctx, input.LocationID, input.ProductID, input.QtyFull, input.QtyEmpty); err != nil {
			return err
		}
		return movementRepo.Create(ctx, &entity.StockMovement{
			LocationID:    input.LocationID,
			ProductID:     input.ProductID,
			QtyFullDelta:  input.QtyFull,
			QtyEmptyDelta: input.QtyEmpty,
			ReferenceType: entity.ReferenceTypeReceipt,
			ReferenceID:   referenceID,
			CreatedAt:     now,
			CreatedBy:     input.ActorID,
		})
	})
	if err != nil {
		return nil, err
	}

	return &ReceiveResult{ReferenceID: referenceID, QtyFull: input.QtyFull, QtyEmpty: input.QtyEmpty}, nil
}
