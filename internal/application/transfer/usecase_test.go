package transfer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptransfer "github.com/nadirsultanli/order-management-system-sub011/internal/application/transfer"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// In-memory fixture
//
// memStore plays the database. Its TxRunner serializes transactions with a
// mutex (the in-memory stand-in for row locks) and restores a snapshot when
// the callback fails, so rejected transfers roll back exactly like the real
// thing.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu        sync.Mutex
	locations map[string]*entity.Location
	products  map[string]*entity.Product
	balances  map[string]*entity.InventoryBalance
	movements []*entity.StockMovement
}

func newMemStore() *memStore {
	return &memStore{
		locations: map[string]*entity.Location{},
		products:  map[string]*entity.Product{},
		balances:  map[string]*entity.InventoryBalance{},
	}
}

func balKey(locationID, productID string) string { return locationID + "|" + productID }

func (s *memStore) putBalance(locationID, productID string, full, empty, reserved int64) {
	s.balances[balKey(locationID, productID)] = &entity.InventoryBalance{
		LocationID:  locationID,
		ProductID:   productID,
		QtyFull:     decimal.NewFromInt(full),
		QtyEmpty:    decimal.NewFromInt(empty),
		QtyReserved: decimal.NewFromInt(reserved),
		UpdatedAt:   time.Now(),
	}
}

func (s *memStore) balance(locationID, productID string) entity.InventoryBalance {
	if b, ok := s.balances[balKey(locationID, productID)]; ok {
		return *b
	}
	return entity.InventoryBalance{LocationID: locationID, ProductID: productID}
}

// memBalanceRepo implements repository.BalanceRepository over the store.
// Locking is provided by the surrounding TxRunner mutex.
type memBalanceRepo struct{ s *memStore }

func (r *memBalanceRepo) Get(_ context.Context, locationID, productID string) (*entity.InventoryBalance, error) {
	b := r.s.balance(locationID, productID)
	return &b, nil
}

func (r *memBalanceRepo) GetForUpdate(ctx context.Context, locationID, productID string) (*entity.InventoryBalance, error) {
	return r.Get(ctx, locationID, productID)
}

func (r *memBalanceRepo) ApplyDelta(_ context.Context, locationID, productID string, fullDelta, emptyDelta decimal.Decimal) error {
	key := balKey(locationID, productID)
	b, ok := r.s.balances[key]
	if !ok {
		b = &entity.InventoryBalance{LocationID: locationID, ProductID: productID}
		r.s.balances[key] = b
	}
	b.QtyFull = b.QtyFull.Add(fullDelta)
	b.QtyEmpty = b.QtyEmpty.Add(emptyDelta)
	b.UpdatedAt = time.Now()
	return nil
}

func (r *memBalanceRepo) ListByLocation(_ context.Context, locationID string) ([]*entity.InventoryBalance, error) {
	var out []*entity.InventoryBalance
	for _, b := range r.s.balances {
		if b.LocationID == locationID {
			copy := *b
			out = append(out, &copy)
		}
	}
	return out, nil
}

type memMovementRepo struct{ s *memStore }

func (r *memMovementRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	copy := *m
	r.s.movements = append(r.s.movements, &copy)
	return nil
}

func (r *memMovementRepo) ListByLocation(_ context.Context, locationID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.LocationID == locationID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListByBalance(_ context.Context, locationID, productID string, _, _ int) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.LocationID == locationID && m.ProductID == productID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *memMovementRepo) ListByReference(_ context.Context, referenceID string) ([]*entity.StockMovement, error) {
	var out []*entity.StockMovement
	for _, m := range r.s.movements {
		if m.ReferenceID == referenceID {
			out = append(out, m)
		}
	}
	return out, nil
}

type memLocationRepo struct{ s *memStore }

func (r *memLocationRepo) Create(_ context.Context, l *entity.Location) error {
	r.s.locations[l.ID] = l
	return nil
}

func (r *memLocationRepo) GetByID(_ context.Context, id string) (*entity.Location, error) {
	return r.s.locations[id], nil
}

func (r *memLocationRepo) List(_ context.Context, kind string, _, _ int) ([]*entity.Location, error) {
	var out []*entity.Location
	for _, l := range r.s.locations {
		if kind == "" || l.Kind == kind {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *memLocationRepo) SetActive(_ context.Context, id string, active bool) error {
	if l, ok := r.s.locations[id]; ok {
		l.Active = active
	}
	return nil
}

type memProductRepo struct{ s *memStore }

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.ID] = p
	return nil
}

func (r *memProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	return r.s.products[id], nil
}

func (r *memProductRepo) List(_ context.Context, _, _ int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

// memTxRunner serializes units of work and rolls back on error.
type memTxRunner struct{ s *memStore }

func (t *memTxRunner) Run(_ context.Context, fn func(repository.BalanceRepository, repository.StockMovementRepository) error) error {
	t.s.mu.Lock()
	defer t.s.mu.Unlock()

	// Snapshot for rollback.
	savedBalances := make(map[string]*entity.InventoryBalance, len(t.s.balances))
	for k, b := range t.s.balances {
		copy := *b
		savedBalances[k] = &copy
	}
	savedMovements := len(t.s.movements)

	if err := fn(&memBalanceRepo{t.s}, &memMovementRepo{t.s}); err != nil {
		t.s.balances = savedBalances
		t.s.movements = t.s.movements[:savedMovements]
		return err
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture wiring
// ──────────────────────────────────────────────────────────────────────────────

const (
	whA     = "11111111-1111-1111-1111-111111111111"
	whB     = "22222222-2222-2222-2222-222222222222"
	truckT  = "33333333-3333-3333-3333-333333333333"
	prodLPG = "44444444-4444-4444-4444-444444444444"
	actorID = "55555555-5555-5555-5555-555555555555"
)

// newFixture seeds warehouse A with (100 full, 50 empty, 10 reserved) of the
// test product, plus warehouse B and an inactive truck T.
func newFixture(t *testing.T) (*apptransfer.TransferUseCase, *memStore) {
	t.Helper()
	s := newMemStore()
	s.locations[whA] = &entity.Location{ID: whA, Kind: entity.LocationKindWarehouse, Name: "Warehouse A"}
	s.locations[whB] = &entity.Location{ID: whB, Kind: entity.LocationKindWarehouse, Name: "Warehouse B"}
	s.locations[truckT] = &entity.Location{ID: truckT, Kind: entity.LocationKindTruck, Name: "Truck T", Active: false}
	s.products[prodLPG] = &entity.Product{ID: prodLPG, SKU: "CYL-13", Name: "13kg cylinder"}
	s.putBalance(whA, prodLPG, 100, 50, 10)

	uc := apptransfer.NewTransferUseCase(&memTxRunner{s}, &memLocationRepo{s}, &memProductRepo{s}, &memBalanceRepo{s})
	return uc, s
}

func input(from, to string, full, empty int64) apptransfer.TransferInput {
	return apptransfer.TransferInput{
		ActorID:        actorID,
		FromLocationID: from,
		ToLocationID:   to,
		ProductID:      prodLPG,
		QtyFull:        decimal.NewFromInt(full),
		QtyEmpty:       decimal.NewFromInt(empty),
	}
}

func requireIntEqual(t *testing.T, want int64, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	require.True(t, got.Equal(decimal.NewFromInt(want)), msgAndArgs...)
}

// ──────────────────────────────────────────────────────────────────────────────
// Committed transfers
// ──────────────────────────────────────────────────────────────────────────────

func TestTransferBetweenWarehouses_MovesStockAndWritesLedgerPair(t *testing.T) {
	uc, s := newFixture(t)

	res, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, whB, 20, 0))
	require.NoError(t, err)
	require.NotEmpty(t, res.ReferenceID)
	requireIntEqual(t, 20, res.QtyFullTransferred)
	requireIntEqual(t, 0, res.QtyEmptyTransferred)

	a := s.balance(whA, prodLPG)
	b := s.balance(whB, prodLPG)
	requireIntEqual(t, 80, a.QtyFull, "source full after")
	requireIntEqual(t, 50, a.QtyEmpty, "source empty untouched")
	requireIntEqual(t, 10, a.QtyReserved, "reservation untouched")
	requireIntEqual(t, 20, b.QtyFull, "destination credited")
	requireIntEqual(t, 0, b.QtyEmpty)

	require.Len(t, s.movements, 2, "exactly one debit and one credit row")
	out, in := s.movements[0], s.movements[1]
	assert.Equal(t, res.ReferenceID, out.ReferenceID)
	assert.Equal(t, res.ReferenceID, in.ReferenceID)
	assert.Equal(t, entity.ReferenceTypeTransfer, out.ReferenceType)
	assert.Equal(t, whA, out.LocationID)
	assert.Equal(t, whB, in.LocationID)
	requireIntEqual(t, -20, out.QtyFullDelta, "outbound leg is negative")
	requireIntEqual(t, 20, in.QtyFullDelta, "inbound leg is positive")
	assert.True(t, out.QtyFullDelta.Add(in.QtyFullDelta).IsZero(), "deltas cancel out")
	assert.Equal(t, actorID, out.CreatedBy)
}

func TestTransfer_ConservesTotals(t *testing.T) {
	uc, s := newFixture(t)
	totalBefore := s.balance(whA, prodLPG).QtyFull.Add(s.balance(whB, prodLPG).QtyFull)

	_, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, whB, 35, 10))
	require.NoError(t, err)

	a, b := s.balance(whA, prodLPG), s.balance(whB, prodLPG)
	assert.True(t, a.QtyFull.Add(b.QtyFull).Equal(totalBefore), "full units conserved")
	requireIntEqual(t, 50, a.QtyEmpty.Add(b.QtyEmpty), "empty units conserved")
}

func TestTransferWarehouseToTruck_ActiveTruck(t *testing.T) {
	uc, s := newFixture(t)
	s.locations[truckT].Active = true

	res, err := uc.TransferWarehouseToTruck(context.Background(), input(whA, truckT, 15, 5))
	require.NoError(t, err)

	tb := s.balance(truckT, prodLPG)
	requireIntEqual(t, 15, tb.QtyFull)
	requireIntEqual(t, 5, tb.QtyEmpty)

	pair, err := (&memMovementRepo{s}).ListByReference(context.Background(), res.ReferenceID)
	require.NoError(t, err)
	assert.Len(t, pair, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Rejections are no-ops
// ──────────────────────────────────────────────────────────────────────────────

func assertNoOp(t *testing.T, s *memStore, before entity.InventoryBalance) {
	t.Helper()
	after := s.balance(whA, prodLPG)
	assert.True(t, after.QtyFull.Equal(before.QtyFull), "source full unchanged")
	assert.True(t, after.QtyEmpty.Equal(before.QtyEmpty), "source empty unchanged")
	assert.True(t, after.QtyReserved.Equal(before.QtyReserved), "reservation unchanged")
	assert.Empty(t, s.movements, "no ledger rows on rejection")
}

func TestTransfer_InsufficientStock_IsNoOp(t *testing.T) {
	uc, s := newFixture(t)
	before := s.balance(whA, prodLPG)

	_, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, whB, 150, 0))
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Contains(t, err.Error(), "requested 150, available 100")
	assertNoOp(t, s, before)
}

func TestTransfer_ReservationViolation_IsNoOp(t *testing.T) {
	uc, s := newFixture(t)
	before := s.balance(whA, prodLPG)

	// 95 of 100 would leave 5, below the reserved 10.
	_, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, whB, 95, 0))
	require.ErrorIs(t, err, domain.ErrReservationViolation)
	assertNoOp(t, s, before)
}

func TestTransfer_NegativeQuantity_IsNoOp(t *testing.T) {
	uc, s := newFixture(t)
	before := s.balance(whA, prodLPG)

	_, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, whB, -5, 0))
	require.ErrorIs(t, err, domain.ErrNegativeQuantity)
	assertNoOp(t, s, before)
}

func TestTransfer_EmptyRequest_IsNoOp(t *testing.T) {
	uc, s := newFixture(t)
	before := s.balance(whA, prodLPG)

	_, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, whB, 0, 0))
	require.ErrorIs(t, err, domain.ErrEmptyRequest)
	assertNoOp(t, s, before)
}

func TestTransfer_SameLocation_IsNoOp(t *testing.T) {
	uc, s := newFixture(t)
	before := s.balance(whA, prodLPG)

	_, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, whA, 20, 0))
	require.ErrorIs(t, err, domain.ErrSameLocation)
	assertNoOp(t, s, before)
}

func TestTransfer_InactiveTruck_IsNoOp(t *testing.T) {
	uc, s := newFixture(t)
	before := s.balance(whA, prodLPG)

	_, err := uc.TransferWarehouseToTruck(context.Background(), input(whA, truckT, 15, 0))
	require.ErrorIs(t, err, domain.ErrInactiveDestination)
	assertNoOp(t, s, before)
}

func TestTransfer_UnknownLocation(t *testing.T) {
	uc, _ := newFixture(t)

	_, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, uuid.New().String(), 10, 0))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTransfer_UnknownProduct(t *testing.T) {
	uc, _ := newFixture(t)
	in := input(whA, whB, 10, 0)
	in.ProductID = uuid.New().String()

	_, err := uc.TransferBetweenWarehouses(context.Background(), in)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

// transfer_between_warehouses must not accept a truck destination.
func TestTransferBetweenWarehouses_RejectsTruckDestination(t *testing.T) {
	uc, s := newFixture(t)
	s.locations[truckT].Active = true

	_, err := uc.TransferBetweenWarehouses(context.Background(), input(whA, truckT, 10, 0))
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrency: two 60-unit requests against 100 available
// ──────────────────────────────────────────────────────────────────────────────

func TestTransfer_ConcurrentRequests_ExactlyOneWins(t *testing.T) {
	uc, s := newFixture(t)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.TransferBetweenWarehouses(context.Background(), input(whA, whB, 60, 0))
		}(i)
	}
	wg.Wait()

	var won, lost int
	for _, err := range errs {
		if err == nil {
			won++
		} else {
			require.ErrorIs(t, err, domain.ErrInsufficientStock)
			lost++
		}
	}
	assert.Equal(t, 1, won, "exactly one request succeeds")
	assert.Equal(t, 1, lost, "the loser fails with insufficient stock")

	requireIntEqual(t, 40, s.balance(whA, prodLPG).QtyFull, "final source balance")
	requireIntEqual(t, 60, s.balance(whB, prodLPG).QtyFull)
	assert.Len(t, s.movements, 2, "only the winner wrote ledger rows")
}

// ──────────────────────────────────────────────────────────────────────────────
// Dry-run validation
// ──────────────────────────────────────────────────────────────────────────────

func TestValidate_DryRun_DoesNotMutate(t *testing.T) {
	uc, s := newFixture(t)
	before := s.balance(whA, prodLPG)

	out, err := uc.Validate(context.Background(), input(whA, whB, 20, 0))
	require.NoError(t, err)
	assert.True(t, out.IsValid)
	assert.Empty(t, out.Errors)
	requireIntEqual(t, 100, out.SourceStock.QtyFull, "reports current source stock")
	assert.Contains(t, out.Warnings[len(out.Warnings)-1], "no balance record",
		"warns that the destination row does not exist yet")
	assertNoOp(t, s, before)
}

func TestValidate_DryRun_ReportsAllFailures(t *testing.T) {
	uc, _ := newFixture(t)

	out, err := uc.Validate(context.Background(), input(whA, whB, 150, 60))
	require.NoError(t, err, "a failed verdict is not a transport error")
	assert.False(t, out.IsValid)
	require.Len(t, out.Errors, 2, "full and empty shortfalls both reported")
}
