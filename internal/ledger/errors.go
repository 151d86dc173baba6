// Package ledger holds the in-memory shipment draft builder and the typed
// errors every write operation reports. Nothing in this package touches the
// database — persistence failures are wrapped into StorageError by the
// service layer so callers can tell a bad request from a broken store.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ValidationError reports caller input that violates the domain contract
// (non-positive quantity or price, transfer to the same farmer, …).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// DuplicateError reports a uniqueness conflict: a product/farmer name that
// already exists, or a duplicate entry inside a shipment draft.
type DuplicateError struct {
	Msg string
}

func (e *DuplicateError) Error() string { return e.Msg }

// StateError reports an operation that is invalid in the draft's current
// state (no product selected, empty shipment).
type StateError struct {
	Msg string
}

func (e *StateError) Error() string { return e.Msg }

// NotFoundError reports a reference to a shipment, product or farmer that
// does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string { return e.Resource + " not found" }

// StorageError wraps a persistence failure during a write.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string { return "storage: " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// OverAllocationError is returned by AssignFarmer when the requested quantity
// would push a product's assigned total past its purchased quantity.
// Remaining is how much is still allocatable.
type OverAllocationError struct {
	Remaining decimal.Decimal
}

func (e *OverAllocationError) Error() string {
	return fmt.Sprintf("only %s left to allocate", e.Remaining.StringFixed(2))
}

// IncompleteAllocationError is returned by ValidateForCommit for the first
// product whose farmer allocations do not sum exactly to its quantity.
type IncompleteAllocationError struct {
	Product string
}

func (e *IncompleteAllocationError) Error() string {
	return e.Product + " not fully assigned"
}

var (
	ErrDuplicateProduct  = &DuplicateError{Msg: "product already added to shipment"}
	ErrDuplicateFarmer   = &DuplicateError{Msg: "farmer already assigned to this product"}
	ErrNoProductSelected = &StateError{Msg: "no product selected"}
	ErrEmptyShipment     = &StateError{Msg: "shipment has no products"}
	ErrSameFarmer        = &ValidationError{Msg: "cannot transfer to the same farmer"}
)
