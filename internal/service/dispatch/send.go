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

// Send submits a draft for processing. Only the creator may send.
func (s *Service) Send(ctx context.Context, dispatchID uuid.UUID) (*domain.Dispatch, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if dispatchID == uuid.Nil {
		return nil, domain.NewValidationError("dispatch_id", "required")
	}

	var sent *domain.Dispatch
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.lock(txCtx, dispatchID)
		if err != nil {
			return err
		}

		if err := policy.CheckSend(user, d); err != nil {
			return fmt.Errorf("send dispatch %s: %w", d.ID, err)
		}
		if d.Status, err = domain.Transition(domain.OpSend, d.Status, ""); err != nil {
			return fmt.Errorf("send dispatch %s: %w", d.ID, err)
		}

		if err := s.dispatches.Update(txCtx, d); err != nil {
			return fmt.Errorf("update dispatch: %w", err)
		}
		if err := s.record(txCtx, domain.OpSend, d.ID, user.ID, nil); err != nil {
			return err
		}

		sent = d
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dispatch sent",
		slog.Int64("user_id", user.ID),
		slog.String("dispatch_id", dispatchID.String()),
	)

	return sent, nil
}
