package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/policy"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// UpdateStatus sets the dispatch status on behalf of an assignee or admin.
// Any non-draft target is accepted from any current status.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*domain.Dispatch, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Dispatch
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.lock(txCtx, input.DispatchID)
		if err != nil {
			return err
		}

		if !policy.CanUpdateStatus(user, d) {
			return fmt.Errorf("update status of %s: only an assignee or admin can update the status: %w", d.ID, domain.ErrForbidden)
		}
		if d.Status, err = domain.Transition(domain.OpUpdateStatus, d.Status, input.Status); err != nil {
			return err
		}

		if err := s.dispatches.Update(txCtx, d); err != nil {
			return fmt.Errorf("update dispatch: %w", err)
		}
		details := ptr(fmt.Sprintf("Status changed to %s", d.Status))
		if err := s.record(txCtx, domain.OpUpdateStatus, d.ID, user.ID, details); err != nil {
			return err
		}

		updated = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dispatch status updated",
		slog.Int64("user_id", user.ID),
		slog.String("dispatch_id", input.DispatchID.String()),
		slog.String("status", updated.Status.String()),
	)

	return updated, nil
}
