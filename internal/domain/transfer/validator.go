package transfer

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nadirsultanli/order-management-system-sub011/internal/domain"
	"github.com/nadirsultanli/order-management-system-sub011/internal/domain/entity"
)

// Request is the ephemeral input of a transfer: it either produces a committed
// balance change plus a ledger pair, or nothing at all.
type Request struct {
	FromLocationID string
	ToLocationID   string
	ProductID      string
	QtyFull        decimal.Decimal
	QtyEmpty       decimal.Decimal
}

// Failure codes, one per admissibility check.
const (
	CodeNegativeQuantity     = "NEGATIVE_QUANTITY"
	CodeEmptyRequest         = "EMPTY_REQUEST"
	CodeSameLocation         = "SAME_LOCATION"
	CodeInactiveDestination  = "INACTIVE_DESTINATION"
	CodeInsufficientStock    = "INSUFFICIENT_STOCK"
	CodeReservationViolation = "RESERVATION_VIOLATION"
)

// Failure is one violated admissibility check with a human-readable message.
type Failure struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Result is the verdict of Validate. When Valid, QtyFull/QtyEmpty are the
// amounts that would be moved.
type Result struct {
	Valid    bool
	Failures []Failure
	Warnings []string
	QtyFull  decimal.Decimal
	QtyEmpty decimal.Decimal
}

// Err returns nil when the result is valid, or the domain error of the first
// failure otherwise, wrapped with the failure message.
func (r Result) Err() error {
	if r.Valid || len(r.Failures) == 0 {
		return nil
	}
	f := r.Failures[0]
	return fmt.Errorf("%w: %s", sentinelFor(f.Code), f.Message)
}

func sentinelFor(code string) error {
	switch code {
	case CodeNegativeQuantity:
		return domain.ErrNegativeQuantity
	case CodeEmptyRequest:
		return domain.ErrEmptyRequest
	case CodeSameLocation:
		return domain.ErrSameLocation
	case CodeInactiveDestination:
		return domain.ErrInactiveDestination
	case CodeInsufficientStock:
		return domain.ErrInsufficientStock
	case CodeReservationViolation:
		return domain.ErrReservationViolation
	}
	return domain.ErrInvalidInput
}

// Validate decides whether the request is admissible against the current
// source balance and the destination location. Pure: it reads, never mutates.
// The checks run in a fixed order and every independent violation is reported.
//
// source must be the balance of (FromLocationID, ProductID); a missing row is
// represented by zero quantities. dest may be nil when the caller has not
// resolved the destination; the truck-active check is then skipped.
// The authoritative call happens under the executor's row locks; any earlier
// call is advisory only.
func Validate(req Request, source *entity.InventoryBalance, dest *entity.Location) Result {
	res := Result{QtyFull: req.QtyFull, QtyEmpty: req.QtyEmpty}

	negative := req.QtyFull.IsNegative() || req.QtyEmpty.IsNegative()
	if negative {
		res.fail(CodeNegativeQuantity, "quantities must not be negative")
	}
	if req.QtyFull.IsZero() && req.QtyEmpty.IsZero() {
		res.fail(CodeEmptyRequest, "at least one of qty_full, qty_empty must be greater than zero")
	}
	if req.FromLocationID == req.ToLocationID {
		res.fail(CodeSameLocation, "source and destination locations must differ")
	}
	if dest != nil && !dest.CanReceive() {
		res.fail(CodeInactiveDestination, fmt.Sprintf("truck %s is not active and cannot receive stock", dest.ID))
	}

	// Stock checks are meaningless for negative amounts. Sufficiency of both
	// unit types is judged before the reservation floor, so a shortfall is
	// always the primary failure.
	if !negative {
		fullShort := source.QtyFull.LessThan(req.QtyFull)
		if fullShort {
			res.fail(CodeInsufficientStock, fmt.Sprintf(
				"insufficient full stock: requested %s, available %s", req.QtyFull, source.QtyFull))
		}
		if source.QtyEmpty.LessThan(req.QtyEmpty) {
			res.fail(CodeInsufficientStock, fmt.Sprintf(
				"insufficient empty stock: requested %s, available %s", req.QtyEmpty, source.QtyEmpty))
		}
		if !fullShort {
			// Only the full-unit reservation floor is enforced; empty units
			// carry no reservation commitment.
			fullAfter := source.QtyFull.Sub(req.QtyFull)
			if fullAfter.LessThan(source.QtyReserved) {
				res.fail(CodeReservationViolation, fmt.Sprintf(
					"transfer would leave %s full units, below the reserved %s", fullAfter, source.QtyReserved))
			} else if fullAfter.Equal(source.QtyReserved) && source.QtyReserved.IsPositive() {
				res.warn(fmt.Sprintf("source is left exactly at its reserved quantity (%s full units)", source.QtyReserved))
			}
		}
	}

	res.Valid = len(res.Failures) == 0
	return res
}

func (r *Result) fail(code, message string) {
	r.Failures = append(r.Failures, Failure{Code: code, Message: message})
}

func (r *Result) warn(message string) {
	r.Warnings = append(r.Warnings, message)
}
