package shelf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/policy"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// AddDispatch files a dispatch the caller can see on one of their shelves.
// Filing an already filed dispatch succeeds.
func (s *Service) AddDispatch(ctx context.Context, shelfID, dispatchID uuid.UUID) error {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := validateMembership(shelfID, dispatchID); err != nil {
		return err
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := owned(txCtx, s.shelves.GetByID, user, shelfID); err != nil {
			return err
		}

		d, err := s.dispatches.GetByID(txCtx, dispatchID)
		if err != nil {
			return fmt.Errorf("get dispatch: %w", err)
		}
		if !policy.CanViewDispatch(user, d) {
			return fmt.Errorf("file dispatch %s: %w", dispatchID, domain.ErrForbidden)
		}

		if err := s.shelves.AddDispatch(txCtx, shelfID, dispatchID); err != nil {
			return fmt.Errorf("add dispatch to shelf: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "dispatch filed",
		slog.Int64("user_id", user.ID),
		slog.String("shelf_id", shelfID.String()),
		slog.String("dispatch_id", dispatchID.String()),
	)

	return nil
}

// RemoveDispatch unfiles a dispatch from one of the caller's shelves.
// Removing a dispatch that is not on the shelf succeeds.
func (s *Service) RemoveDispatch(ctx context.Context, shelfID, dispatchID uuid.UUID) error {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := validateMembership(shelfID, dispatchID); err != nil {
		return err
	}

	if _, err := owned(ctx, s.shelves.GetByID, user, shelfID); err != nil {
		return err
	}

	if err := s.shelves.RemoveDispatch(ctx, shelfID, dispatchID); err != nil {
		return fmt.Errorf("remove dispatch from shelf: %w", err)
	}

	s.log.InfoContext(ctx, "dispatch unfiled",
		slog.Int64("user_id", user.ID),
		slog.String("shelf_id", shelfID.String()),
		slog.String("dispatch_id", dispatchID.String()),
	)

	return nil
}

func validateMembership(shelfID, dispatchID uuid.UUID) error {
	var errs []domain.FieldError
	if shelfID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "shelf_id", Message: "required"})
	}
	if dispatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dispatch_id", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
