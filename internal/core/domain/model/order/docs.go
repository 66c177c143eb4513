// Package order implements the Order aggregate of the sales domain.
//
// The package includes:
//   - Order: the aggregate root that owns the items and the applied voucher
//   - Item: one product line with its quantity and unit price
//   - Status: the order lifecycle, from Draft to Delivered or Canceled
//
// Key business rules:
//   - items are unique by product; adding the same product again merges quantities
//   - the total is recalculated after every change to the items or the voucher
//   - a voucher is attached only when all of its eligibility rules pass
//   - removing or changing an item that is not in the order is a DomainRuleError
//   - items that are not valid are ignored by every command
package order
