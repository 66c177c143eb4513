package commands

import (
	"context"
	"log/slog"
	"time"
)

// CancelStaleDraftsCommandHandler cancels the draft orders that were never
// checked out. All cancellations of one run share a transaction.
type CancelStaleDraftsCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
	logger     *slog.Logger
}

func NewCancelStaleDraftsCommandHandler(
	uowFactory OrderUoWFactory,
	now func() time.Time,
	logger *slog.Logger,
) CancelStaleDraftsCommandHandler {
	return CancelStaleDraftsCommandHandler{
		uowFactory: uowFactory,
		now:        now,
		logger:     logger.With("component", "CancelStaleDraftsCommandHandler"),
	}
}

// Handle returns how many orders were canceled.
func (h *CancelStaleDraftsCommandHandler) Handle(ctx context.Context, cmd CancelStaleDraftsCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().Add(-cmd.OlderThan())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	drafts, err := orderRepo.GetDraftsCreatedBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}

	for _, o := range drafts {
		o.Cancel()
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		h.logger.DebugContext(ctx, "draft order canceled", "orderID", o.ID().String(), "createdAt", o.CreatedAt())
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(drafts), nil
}
