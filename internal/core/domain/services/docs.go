// Package services holds domain operations that span more than one aggregate
// of the sales domain.
//
// OrderPlacement bridges the customer and catalog entities with the order
// aggregate: drafts are only opened for active customers and order lines are
// snapshots of active products.
package services
