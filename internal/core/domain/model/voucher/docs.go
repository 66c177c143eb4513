// Package voucher models discount vouchers that can be applied to an order.
//
// The package includes:
//   - Voucher: an externally managed descriptor with expiry, activation,
//     usage flag and remaining-uses counter
//   - DiscountKind and DiscountPolicy: the Percentage and FixedAmount
//     strategies used to compute a discount from an order total
//   - EligibilityResult: the outcome of checking a voucher against the
//     current time, listing every rule that failed
//
// A voucher is never mutated by the order it is applied to; consuming a use
// is the responsibility of whoever issues vouchers.
package voucher
