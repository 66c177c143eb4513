package commands

import (
	"errors"
	"strings"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/guard"
	"sales/internal/pkg/validation"
)

var ErrApplyVoucherCommandIsNotConstructed = errors.New(
	"ApplyVoucherCommand must be created via NewApplyVoucherCommand constructor",
)

// ApplyVoucherCommand applies the voucher identified by its code to an order.
//
// Example:
//
//	cmd, _ := NewApplyVoucherCommand(orderID, "PROMO-15-OFF")
//	result, err := handler.Handle(ctx, cmd)
//	if err == nil && !result.IsValid() {
//	    // show result.Reasons() to the customer
//	}
type ApplyVoucherCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	code    string

	guard guard.ConstructorGuard
}

// NewApplyVoucherCommand trims surrounding spaces from code.
func NewApplyVoucherCommand(orderID kernel.UUID, code string) (ApplyVoucherCommand, error) {
	code = strings.TrimSpace(code)

	if err := errors.Join(
		orderID.Validate(),
		validation.NotNullOrBlank(code, "Code"),
	); err != nil {
		return ApplyVoucherCommand{}, err
	}

	return ApplyVoucherCommand{
		orderID: orderID,
		code:    code,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyVoucherCommand) Validate() error {
	return c.guard.Validate(ErrApplyVoucherCommandIsNotConstructed)
}

func (c ApplyVoucherCommand) OrderID() kernel.UUID { return c.orderID }

func (c ApplyVoucherCommand) Code() string { return c.code }
