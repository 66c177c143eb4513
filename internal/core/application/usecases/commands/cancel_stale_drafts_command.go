package commands

import (
	"errors"
	"fmt"
	"time"

	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrCancelStaleDraftsCommandIsNotConstructed = errors.New(
	"CancelStaleDraftsCommand must be created via NewCancelStaleDraftsCommand constructor",
)

// CancelStaleDraftsCommand cancels every draft order older than a TTL.
// It is issued periodically by the stale draft job.
type CancelStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

func NewCancelStaleDraftsCommand(olderThan time.Duration) (CancelStaleDraftsCommand, error) {
	if olderThan <= 0 {
		return CancelStaleDraftsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"olderThan", fmt.Errorf("%s is not greater than 0", olderThan),
		)
	}

	return CancelStaleDraftsCommand{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleDraftsCommandIsNotConstructed)
}

func (c CancelStaleDraftsCommand) OlderThan() time.Duration { return c.olderThan }
