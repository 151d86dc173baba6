package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Allocation is one farmer's share of a draft product entry.
type Allocation struct {
	FarmerID  uuid.UUID
	Quantity  decimal.Decimal
	UnitPrice decimal.Decimal
}

// TotalPaid is Quantity × UnitPrice, derived on demand.
func (a Allocation) TotalPaid() decimal.Decimal {
	return a.Quantity.Mul(a.UnitPrice)
}

// Entry is one product line of a draft shipment: how much was bought from the
// factory at what unit price, plus the farmer allocations carved out of it.
type Entry struct {
	ProductID   uuid.UUID
	ProductName string
	UnitPrice   decimal.Decimal
	Quantity    decimal.Decimal
	Allocations []Allocation
}

// Subtotal is UnitPrice × Quantity, derived on demand.
func (e Entry) Subtotal() decimal.Decimal {
	return e.UnitPrice.Mul(e.Quantity)
}

// Assigned sums the quantities already allocated to farmers.
func (e Entry) Assigned() decimal.Decimal {
	total := decimal.Zero
	for _, a := range e.Allocations {
		total = total.Add(a.Quantity)
	}
	return total
}

// Draft accumulates a candidate shipment in memory. It holds no connection to
// storage; an unsaved draft is simply dropped. The zero value is unusable —
// use NewDraft.
type Draft struct {
	entries []Entry
}

func NewDraft() *Draft {
	return &Draft{}
}

// AddProduct appends a product line. The price and quantity bounds the
// original enforced through spin-box ranges are checked here explicitly.
func (d *Draft) AddProduct(productID uuid.UUID, name string, unitPrice, quantity decimal.Decimal) error {
	if !unitPrice.IsPositive() {
		return &ValidationError{Msg: "unit price must be positive"}
	}
	if !quantity.IsPositive() {
		return &ValidationError{Msg: "quantity must be positive"}
	}
	for _, e := range d.entries {
		if e.ProductID == productID {
			return ErrDuplicateProduct
		}
	}
	d.entries = append(d.entries, Entry{
		ProductID:   productID,
		ProductName: name,
		UnitPrice:   unitPrice,
		Quantity:    quantity,
	})
	return nil
}

// AssignFarmer carves a farmer allocation out of the product entry at index.
// A farmer may appear at most once per product, and the assigned quantities
// may never exceed the product's purchased quantity.
func (d *Draft) AssignFarmer(index int, farmerID uuid.UUID, quantity, unitPrice decimal.Decimal) error {
	if index < 0 || index >= len(d.entries) {
		return ErrNoProductSelected
	}
	if !quantity.IsPositive() {
		return &ValidationError{Msg: "quantity must be positive"}
	}
	if !unitPrice.IsPositive() {
		return &ValidationError{Msg: "selling price must be positive"}
	}

	entry := &d.entries[index]
	for _, a := range entry.Allocations {
		if a.FarmerID == farmerID {
			return ErrDuplicateFarmer
		}
	}

	assigned := entry.Assigned()
	if assigned.Add(quantity).GreaterThan(entry.Quantity) {
		return &OverAllocationError{Remaining: entry.Quantity.Sub(assigned)}
	}

	entry.Allocations = append(entry.Allocations, Allocation{
		FarmerID:  farmerID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	})
	return nil
}

// PurchaseTotal sums every entry's subtotal. Recomputed on each call.
func (d *Draft) PurchaseTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range d.entries {
		total = total.Add(e.Subtotal())
	}
	return total
}

// SalesTotal sums every allocation's TotalPaid across all entries.
func (d *Draft) SalesTotal() decimal.Decimal {
	total := decimal.Zero
	for _, e := range d.entries {
		for _, a := range e.Allocations {
			total = total.Add(a.TotalPaid())
		}
	}
	return total
}

// ValidateForCommit checks that the draft is committable: at least one
// product, and every product fully assigned — exact equality, so an
// under-allocated product is rejected the same as an over-allocated one.
func (d *Draft) ValidateForCommit() error {
	if len(d.entries) == 0 {
		return ErrEmptyShipment
	}
	for _, e := range d.entries {
		if !e.Assigned().Equal(e.Quantity) {
			return &IncompleteAllocationError{Product: e.ProductName}
		}
	}
	return nil
}

// Entries returns the draft's product lines in insertion order.
func (d *Draft) Entries() []Entry {
	return d.entries
}

// Len reports the number of product lines.
func (d *Draft) Len() int {
	return len(d.entries)
}
