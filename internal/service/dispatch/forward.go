package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/policy"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// Forward adds one more assignee to an active dispatch. Forwarding to a user
// who is already assigned succeeds without writing history.
func (s *Service) Forward(ctx context.Context, input ForwardInput) (*domain.Dispatch, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var (
		result *domain.Dispatch
		added  bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.lock(txCtx, input.DispatchID)
		if err != nil {
			return err
		}

		if err := policy.CheckForward(user, d); err != nil {
			return fmt.Errorf("forward dispatch %s: %w", d.ID, err)
		}

		if d.HasAssignee(input.NewAssigneeID) {
			result = d
			return nil
		}

		added, err = s.dispatches.AddAssignee(txCtx, d.ID, input.NewAssigneeID)
		if err != nil {
			return fmt.Errorf("add assignee: %w", err)
		}
		if added {
			details := ptr(fmt.Sprintf("Forwarded to user %d", input.NewAssigneeID))
			if err := s.record(txCtx, domain.OpForward, d.ID, user.ID, details); err != nil {
				return err
			}
		}

		result, err = s.reload(txCtx, d.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if added {
		s.log.InfoContext(ctx, "dispatch forwarded",
			slog.Int64("user_id", user.ID),
			slog.String("dispatch_id", input.DispatchID.String()),
			slog.Int64("new_assignee_id", input.NewAssigneeID),
		)
	}

	return result, nil
}
