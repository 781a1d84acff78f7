package transfer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/transfer"
)

// TransferUseCase executes stock transfers between locations as atomic units
// of work: lock both balance rows, re-validate under lock, debit source,
// credit destination, append the debit/credit ledger pair, commit.
type TransferUseCase struct {
	txRunner     TxRunner
	locationRepo repository.LocationRepository
	productRepo  repository.ProductRepository
	balanceRepo  repository.BalanceRepository
}

// NewTransferUseCase builds the use case.
func NewTransferUseCase(
	txRunner TxRunner,
	locationRepo repository.LocationRepository,
	productRepo repository.ProductRepository,
	balanceRepo repository.BalanceRepository,
) *TransferUseCase {
	return &TransferUseCase{
		txRunner:     txRunner,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		balanceRepo:  balanceRepo,
	}
}

// TransferInput is a transfer request plus the actor recorded in the ledger.
type TransferInput struct {
	ActorID        string
	FromLocationID string
	ToLocationID   string
	ProductID      string
	QtyFull        decimal.Decimal
	QtyEmpty       decimal.Decimal
}

// TransferResult is returned on a committed transfer.
type TransferResult struct {
	ReferenceID         string
	QtyFullTransferred  decimal.Decimal
	QtyEmptyTransferred decimal.Decimal
}

// ValidationOutcome is the read-only verdict of Validate, including the
// current source balance so the caller can adjust the request.
type ValidationOutcome struct {
	IsValid     bool
	Errors      []transfer.Failure
	Warnings    []string
	SourceStock *entity.InventoryBalance
}

// TransferBetweenWarehouses moves stock from one warehouse to another.
func (uc *TransferUseCase) TransferBetweenWarehouses(ctx context.Context, input TransferInput) (*TransferResult, error) {
	return uc.execute(ctx, input, entity.LocationKindWarehouse)
}

// TransferWarehouseToTruck loads stock from a warehouse onto an active truck.
func (uc *TransferUseCase) TransferWarehouseToTruck(ctx context.Context, input TransferInput) (*TransferResult, error) {
	return uc.execute(ctx, input, entity.LocationKindTruck)
}

func (uc *TransferUseCase) execute(ctx context.Context, input TransferInput, destKind string) (*TransferResult, error) {
	from, to, err := uc.resolveLocations(ctx, input)
	if err != nil {
		return nil, err
	}
	if !from.IsWarehouse() {
		return nil, fmt.Errorf("%w: source %s is not a warehouse", domain.ErrInvalidInput, from.ID)
	}
	if to.Kind != destKind {
		return nil, fmt.Errorf("%w: destination %s is a %s, expected %s", domain.ErrInvalidInput, to.ID, to.Kind, destKind)
	}
	if _, err := uc.resolveProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	req := transfer.Request{
		FromLocationID: input.FromLocationID,
		ToLocationID:   input.ToLocationID,
		ProductID:      input.ProductID,
		QtyFull:        input.QtyFull,
		QtyEmpty:       input.QtyEmpty,
	}

	now := time.Now()
	referenceID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		balanceRepo repository.BalanceRepository,
		movementRepo repository.StockMovementRepository,
	) error {
		// Lock both balance rows in sorted key order so that two transfers
		// touching the same pair in opposite directions cannot deadlock.
		locked, err := lockBalances(ctx, balanceRepo, input.ProductID, input.FromLocationID, input.ToLocationID)
		if err != nil {
			return err
		}
		source := locked[input.FromLocationID]

		// The authoritative admissibility check: any validation the caller
		// did before the lock is advisory only.
		if err := transfer.Validate(req, source, to).Err(); err != nil {
			return err
		}

		// Debit source, credit destination. Deltas keep the application
		// correct even when the destination row is created by this transfer.
		if err := balanceRepo.ApplyDelta(ctx, input.FromLocationID, input.ProductID,
			input.QtyFull.Neg(), input.QtyEmpty.Neg()); err != nil {
			return err
		}
		if err := balanceRepo.ApplyDelta(ctx, input.ToLocationID, input.ProductID,
			input.QtyFull, input.QtyEmpty); err != nil {
			return err
		}

		// Ledger pair: one outbound row, one inbound row, same reference.
		outbound := &entity.StockMovement{
			LocationID:    input.FromLocationID,
			ProductID:     input.ProductID,
			QtyFullDelta:  input.QtyFull.Neg(),
			QtyEmptyDelta: input.QtyEmpty.Neg(),
			ReferenceType: entity.ReferenceTypeTransfer,
			ReferenceID:   referenceID,
			CreatedAt:     now,
			CreatedBy:     input.ActorID,
		}
		if err := movementRepo.Create(ctx, outbound); err != nil {
			return err
		}
		inbound := &entity.StockMovement{
			LocationID:    input.ToLocationID,
			ProductID:     input.ProductID,
			QtyFullDelta:  input.QtyFull,
			QtyEmptyDelta: input.QtyEmpty,
			ReferenceType: entity.ReferenceTypeTransfer,
			ReferenceID:   referenceID,
			CreatedAt:     now,
			CreatedBy:     input.ActorID,
		}
		return movementRepo.Create(ctx, inbound)
	})
	if err != nil {
		return nil, err
	}

	return &TransferResult{
		ReferenceID:         referenceID,
		QtyFullTransferred:  input.QtyFull,
		QtyEmptyTransferred: input.QtyEmpty,
	}, nil
}

// Validate is the dry-run operation: same verdict the executor would reach
// against the current balances, plus the source stock. Never mutates.
func (uc *TransferUseCase) Validate(ctx context.Context, input TransferInput) (*ValidationOutcome, error) {
	_, to, err := uc.resolveLocations(ctx, input)
	if err != nil {
		return nil, err
	}
	if _, err := uc.resolveProduct(ctx, input.ProductID); err != nil {
		return nil, err
	}

	source, err := uc.balanceRepo.Get(ctx, input.FromLocationID, input.ProductID)
	if err != nil {
		return nil, err
	}

	res := transfer.Validate(transfer.Request{
		FromLocationID: input.FromLocationID,
		ToLocationID:   input.ToLocationID,
		ProductID:      input.ProductID,
		QtyFull:        input.QtyFull,
		QtyEmpty:       input.QtyEmpty,
	}, source, to)

	outcome := &ValidationOutcome{
		IsValid:     res.Valid,
		Errors:      res.Failures,
		Warnings:    res.Warnings,
		SourceStock: source,
	}
	if dest, err := uc.balanceRepo.Get(ctx, input.ToLocationID, input.ProductID); err == nil && dest.UpdatedAt.IsZero() {
		outcome.Warnings = append(outcome.Warnings, "destination has no balance record for this product yet; one will be created")
	}
	return outcome, nil
}

func (uc *TransferUseCase) resolveLocations(ctx context.Context, input TransferInput) (*entity.Location, *entity.Location, error) {
	from, err := uc.locationRepo.GetByID(ctx, input.FromLocationID)
	if err != nil {
		return nil, nil, err
	}
	if from == nil {
		return nil, nil, fmt.Errorf("%w: source location %s", domain.ErrNotFound, input.FromLocationID)
	}
	// A→A never resolves the destination twice.
	if input.ToLocationID == input.FromLocationID {
		return from, from, nil
	}
	to, err := uc.locationRepo.GetByID(ctx, input.ToLocationID)
	if err != nil {
		return nil, nil, err
	}
	if to == nil {
		return nil, nil, fmt.Errorf("%w: destination location %s", domain.ErrNotFound, input.ToLocationID)
	}
	return from, to, nil
}

func (uc *TransferUseCase) resolveProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %s", domain.ErrNotFound, productID)
	}
	return product, nil
}

// lockBalances acquires FOR UPDATE locks on the balance rows of productID at
// the given locations, always in ascending location-ID order regardless of
// transfer direction.
func lockBalances(ctx context.Context, balanceRepo repository.BalanceRepository, productID string, locationIDs ...string) (map[string]*entity.InventoryBalance, error) {
	ids := append([]string(nil), locationIDs...)
	sort.Strings(ids)

	locked := make(map[string]*entity.InventoryBalance, len(ids))
	for _, id := range ids {
		b, err := balanceRepo.GetForUpdate(ctx, id, productID)
		if err != nil {
			return nil, err
		}
		locked[id] = b
	}
	return locked, nil
}
