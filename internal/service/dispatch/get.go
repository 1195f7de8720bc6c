package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/policy"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// Get returns a dispatch with its files, history and comments in
// chronological order, plus the caller's own shelves that hold it.
func (s *Service) Get(ctx context.Context, dispatchID uuid.UUID) (*domain.DispatchDetails, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if dispatchID == uuid.Nil {
		return nil, domain.NewValidationError("dispatch_id", "required")
	}

	var details *domain.DispatchDetails
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.dispatches.GetByID(txCtx, dispatchID)
		if err != nil {
			return fmt.Errorf("get dispatch: %w", err)
		}
		if !policy.CanViewDispatch(user, d) {
			return fmt.Errorf("get dispatch %s: %w", dispatchID, domain.ErrForbidden)
		}

		files, err := s.dispatches.ListFiles(txCtx, dispatchID)
		if err != nil {
			return fmt.Errorf("list files: %w", err)
		}
		history, err := s.history.ListByDispatch(txCtx, dispatchID)
		if err != nil {
			return fmt.Errorf("list history: %w", err)
		}
		comments, err := s.comments.ListByDispatch(txCtx, dispatchID)
		if err != nil {
			return fmt.Errorf("list comments: %w", err)
		}
		shelves, err := s.shelves.ListForDispatch(txCtx, user.ID, dispatchID)
		if err != nil {
			return fmt.Errorf("list shelves: %w", err)
		}

		details = &domain.DispatchDetails{
			Dispatch: *d,
			Files:    files,
			History:  history,
			Comments: comments,
			Shelves:  shelves,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return details, nil
}
