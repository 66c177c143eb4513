// Package kernel holds the value objects shared by every model package of the
// sales domain. Today that is the UUID identifier used for orders, items,
// vouchers, products and customers.
//
// Values in this package are immutable and safe for concurrent use.
package kernel
