package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/policy"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// Delete removes a dispatch together with everything it owns.
func (s *Service) Delete(ctx context.Context, dispatchID uuid.UUID) error {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if dispatchID == uuid.Nil {
		return domain.NewValidationError("dispatch_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.lock(txCtx, dispatchID)
		if err != nil {
			return err
		}

		if !policy.CanDelete(user, d) {
			return fmt.Errorf("delete dispatch %s: %w", d.ID, domain.ErrForbidden)
		}

		if err := s.dispatches.Delete(txCtx, d.ID); err != nil {
			return fmt.Errorf("delete dispatch: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "dispatch deleted",
		slog.Int64("user_id", user.ID),
		slog.String("dispatch_id", dispatchID.String()),
	)

	return nil
}
