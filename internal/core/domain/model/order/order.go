package order

import (
	"errors"
	"slices"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/voucher"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrDiscountWithoutVoucher is returned by RestoreOrder for a stored
	// discount on an order that never used a voucher.
	ErrDiscountWithoutVoucher = errs.NewDomainRuleError("the order has a discount but no voucher was used")

	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewDraftOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewDraftOrder constructor")

	// ErrItemDoesNotBelongToOrder is the rule broken by RemoveItem and ChangeItem
	// when no line of the order has the item's product.
	ErrItemDoesNotBelongToOrder = errs.NewDomainRuleError("the item does not belong to the order")
)

// Order is the aggregate root of a sale. It owns its items and the reference
// to the applied voucher, and it is the only place where they change.
//
// Order follows these invariants after every mutation:
//   - total is the sum of item subtotals minus the discount, floored at zero
//   - the discount is non-zero only when a voucher was used
//   - there is at most one item per product
type Order struct {
	id          kernel.UUID
	customerID  kernel.UUID
	total       decimal.Decimal
	discount    decimal.Decimal
	voucherUsed bool
	voucher     *voucher.Voucher
	status      Status
	createdAt   time.Time

	// items keeps insertion order.
	items []*Item

	guard guard.ConstructorGuard
}

// State is the persisted shape of an order, used by RestoreOrder.
type State struct {
	ID          kernel.UUID
	CustomerID  kernel.UUID
	Total       decimal.Decimal
	Discount    decimal.Decimal
	VoucherUsed bool
	Voucher     *voucher.Voucher
	Status      Status
	CreatedAt   time.Time
	Items       []*Item
}

// NewDraftOrder creates an empty order in Draft status for the customer.
//
// Example:
//
//	o, err := order.NewDraftOrder(customerID)
//	if err != nil {
//	    return err
//	}
//	o.AddItem(order.NewItem(productID, "Notebook", 2, decimal.NewFromInt(100)))
func NewDraftOrder(customerID kernel.UUID) (*Order, error) {
	if err := customerID.Validate(); err != nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}

	return &Order{
		id:         kernel.NewUUID(),
		customerID: customerID,
		total:      decimal.Zero,
		discount:   decimal.Zero,
		status:     Draft,
		createdAt:  time.Now(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrder rebuilds an order from storage. Stored totals are taken as is;
// they are recomputed on the next mutation.
func RestoreOrder(s State) (*Order, error) {
	validateErrs := []error{
		s.ID.Validate(),
		s.CustomerID.Validate(),
		s.Status.Validate(),
	}
	if s.Voucher != nil {
		validateErrs = append(validateErrs, s.Voucher.Validate())
	}
	for _, item := range s.Items {
		if !item.IsValid() {
			validateErrs = append(validateErrs, errs.NewValueIsRequiredError("item"))
		}
	}
	if err := errors.Join(validateErrs...); err != nil {
		return nil, err
	}

	if !s.VoucherUsed && !s.Discount.IsZero() {
		return nil, ErrDiscountWithoutVoucher
	}

	o := &Order{
		id:          s.ID,
		customerID:  s.CustomerID,
		total:       s.Total,
		discount:    s.Discount,
		voucherUsed: s.VoucherUsed,
		voucher:     s.Voucher,
		status:      s.Status,
		createdAt:   s.CreatedAt,
		items:       make([]*Item, 0, len(s.Items)),
		guard:       guard.NewConstructorGuard(),
	}
	for _, item := range s.Items {
		if o.ExistingItem(item) {
			return nil, errs.NewDomainRuleError("the order has more than one item for the same product")
		}
		item.associateToOrder(o.id)
		o.items = append(o.items, item)
	}

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID { return o.id }

func (o *Order) CustomerID() kernel.UUID { return o.customerID }

func (o *Order) Total() decimal.Decimal { return o.total }

// Discount is the last computed discount. It may exceed the pre-discount
// total when a fixed amount voucher is larger than the order.
func (o *Order) Discount() decimal.Decimal { return o.discount }

func (o *Order) VoucherUsed() bool { return o.voucherUsed }

// Voucher returns the applied voucher, or nil.
func (o *Order) Voucher() *voucher.Voucher { return o.voucher }

func (o *Order) Status() Status { return o.status }

func (o *Order) CreatedAt() time.Time { return o.createdAt }

// Items returns the items in insertion order. The slice is a copy; the
// items can only be changed through the order.
func (o *Order) Items() []*Item {
	return slices.Clone(o.items)
}

func (o *Order) ItemCount() int { return len(o.items) }

// AddItem attaches item to the order. When a line for the same product
// already exists, the item's quantity is folded into that line, which keeps
// its position, and item itself is discarded. Invalid items are ignored.
func (o *Order) AddItem(item *Item) {
	if !item.IsValid() {
		return
	}

	item.associateToOrder(o.id)

	if i := o.indexOf(item.productID); i >= 0 {
		o.items[i].addUnits(item.quantity)
	} else {
		o.items = append(o.items, item)
	}

	o.calculateTotal()
}

// RemoveItem drops the line with item's product. Invalid items are ignored.
func (o *Order) RemoveItem(item *Item) error {
	if !item.IsValid() {
		return nil
	}

	i := o.indexOf(item.productID)
	if i < 0 {
		return ErrItemDoesNotBelongToOrder
	}

	o.items = slices.Delete(o.items, i, i+1)
	o.calculateTotal()
	return nil
}

// ChangeItem drops the line with item's product and appends item itself, so
// a changed line moves to the end of the order. Invalid items are ignored.
func (o *Order) ChangeItem(item *Item) error {
	if !item.IsValid() {
		return nil
	}

	item.associateToOrder(o.id)

	i := o.indexOf(item.productID)
	if i < 0 {
		return ErrItemDoesNotBelongToOrder
	}

	o.items = append(slices.Delete(o.items, i, i+1), item)
	o.calculateTotal()
	return nil
}

// ChangeUnits sets item's quantity and then replaces the matching line with it.
func (o *Order) ChangeUnits(item *Item, quantity int) error {
	if !item.IsValid() {
		return nil
	}

	item.setUnits(quantity)
	return o.ChangeItem(item)
}

// ExistingItem reports whether the order has a line for item's product.
func (o *Order) ExistingItem(item *Item) bool {
	return item.IsValid() && o.indexOf(item.productID) >= 0
}

// ApplyVoucher checks v against now and, when eligible, attaches it and
// recalculates the total. An ineligible voucher leaves the order untouched
// and is reported through the result, not as an error. The error is only
// returned when v was not constructed.
func (o *Order) ApplyVoucher(v *voucher.Voucher, now time.Time) (voucher.EligibilityResult, error) {
	if err := v.Validate(); err != nil {
		return voucher.EligibilityResult{}, err
	}

	result := v.CheckEligibility(now)
	if !result.IsValid() {
		return result, nil
	}

	o.voucher = v
	o.voucherUsed = true
	o.calculateTotal()

	return result, nil
}

// MakeDraft sets the status to Draft.
func (o *Order) MakeDraft() { o.status = Draft }

// Start sets the status to Initiated.
func (o *Order) Start() { o.status = Initiated }

// Finalize sets the status to Paid.
func (o *Order) Finalize() { o.status = Paid }

// Deliver sets the status to Delivered.
func (o *Order) Deliver() { o.status = Delivered }

// Cancel sets the status to Canceled.
func (o *Order) Cancel() { o.status = Canceled }

func (o *Order) indexOf(productID kernel.UUID) int {
	return slices.IndexFunc(o.items, func(i *Item) bool {
		return i.productID.IsEqual(productID)
	})
}

// calculateTotal sums the items and applies the voucher policy. The stored
// discount is the computed one even when the total is clamped to zero.
func (o *Order) calculateTotal() {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	o.total = total

	if !o.voucherUsed || o.voucher == nil {
		return
	}

	o.discount = o.voucher.Policy().Discount(total)

	value := total.Sub(o.discount)
	if value.IsNegative() {
		o.total = decimal.Zero
		return
	}
	o.total = value
}
