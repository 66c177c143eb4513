package commands

import (
	"errors"
	"fmt"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"
	"sales/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// Transition names one of the status setters of an order.
type Transition string

const (
	TransitionDraft    Transition = "draft"
	TransitionStart    Transition = "start"
	TransitionFinalize Transition = "finalize"
	TransitionDeliver  Transition = "deliver"
	TransitionCancel   Transition = "cancel"
)

func (t Transition) Validate() error {
	switch t {
	case TransitionDraft, TransitionStart, TransitionFinalize, TransitionDeliver, TransitionCancel:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("transition", fmt.Errorf("%q is not a valid transition", string(t)))
	}
}

// ChangeOrderStatusCommand moves an order through its lifecycle.
// Transitions are not guarded, so any transition is accepted from any status.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	transition Transition

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, transition Transition) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), transition.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID:    orderID,
		transition: transition,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }

func (c ChangeOrderStatusCommand) Transition() Transition { return c.transition }
