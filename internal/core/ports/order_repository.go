// Package ports defines the repository and transaction contracts the
// application layer depends on. Adapters in internal/adapters implement them.
package ports

import (
	"context"
	"time"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their items and the reference to the applied voucher.
type OrderRepository interface {
	// Add persists a new order aggregate with its items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order header and replaces its stored items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	// Returns an errs.ObjectNotFoundError when it does not exist.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the surrounding
	// transaction ends. Commands that mutate an order load it this way so
	// concurrent commands on the same order run one after the other.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetDraftsCreatedBefore returns the orders still in Draft status that
	// were created before cutoff, locked for update.
	GetDraftsCreatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
