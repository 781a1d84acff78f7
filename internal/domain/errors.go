package domain

import "errors"

// Domain errors (no external dependencies).
//
// All of them except ErrConcurrencyConflict are deterministic for a given
// request and balance: retrying without changing the input will not help.
// ErrConcurrencyConflict means a balance row lock could not be acquired in
// time; the caller may retry.
var (
	ErrNotFound             = errors.New("resource not found")
	ErrNegativeQuantity     = errors.New("quantities must not be negative")
	ErrEmptyRequest         = errors.New("at least one quantity must be greater than zero")
	ErrSameLocation         = errors.New("source and destination must differ")
	ErrInactiveDestination  = errors.New("destination truck is not active")
	ErrInsufficientStock    = errors.New("insufficient stock")
	ErrReservationViolation = errors.New("transfer would break the reserved stock commitment")
	ErrConcurrencyConflict  = errors.New("balance is locked by a concurrent operation")
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicate            = errors.New("duplicate resource")
)
