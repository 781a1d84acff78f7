package inventory

import (
	"context"
	"fmt"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

// QueryUseCase is the read side consumed by audit and reconciliation:
// current balances per location and the movement ledger.
type QueryUseCase struct {
	balanceRepo  repository.BalanceRepository
	movementRepo repository.StockMovementRepository
	locationRepo repository.LocationRepository
}

// NewQueryUseCase builds the use case.
func NewQueryUseCase(
	balanceRepo repository.BalanceRepository,
	movementRepo repository.StockMovementRepository,
	locationRepo repository.LocationRepository,
) *QueryUseCase {
	return &QueryUseCase{
		balanceRepo:  balanceRepo,
		movementRepo: movementRepo,
		locationRepo: locationRepo,
	}
}

// ListBalances returns every balance held at a location.
func (uc *QueryUseCase) ListBalances(ctx context.Context, locationID string) ([]*entity.InventoryBalance, error) {
	loc, err := uc.locationRepo.GetByID(ctx, locationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, fmt.Errorf("%w: location %s", domain.ErrNotFound, locationID)
	}
	return uc.balanceRepo.ListByLocation(ctx, locationID)
}

// ListMovements returns ledger rows for a location, optionally narrowed to a
// product, newest first.
func (uc *QueryUseCase) ListMovements(ctx context.Context, locationID, productID string, limit, offset int) ([]*entity.StockMovement, error) {
	if productID != "" {
		return uc.movementRepo.ListByBalance(ctx, locationID, productID, limit, offset)
	}
	return uc.movementRepo.ListByLocation(ctx, locationID, limit, offset)
}

// GetByReference returns the rows sharing one reference id; for a transfer
// that is the debit/credit pair.
func (uc *QueryUseCase) GetByReference(ctx context.Context, referenceID string) ([]*entity.StockMovement, error) {
	rows, err := uc.movementRepo.ListByReference(ctx, referenceID)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: reference %s", domain.ErrNotFound, referenceID)
	}
	return rows, nil
}
