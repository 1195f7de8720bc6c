package shelf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// Delete removes a shelf that has no children. Dispatches filed on it are
// unfiled, not deleted.
func (s *Service) Delete(ctx context.Context, shelfID uuid.UUID) error {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if shelfID == uuid.Nil {
		return domain.NewValidationError("shelf_id", "required")
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if _, err := owned(txCtx, s.shelves.GetByIDForUpdate, user, shelfID); err != nil {
			return err
		}

		hasChildren, err := s.shelves.HasChildren(txCtx, shelfID)
		if err != nil {
			return fmt.Errorf("check children: %w", err)
		}
		if hasChildren {
			return fmt.Errorf("delete shelf %s: shelf has children: %w", shelfID, domain.ErrInvalidState)
		}

		if err := s.shelves.Delete(txCtx, shelfID); err != nil {
			return fmt.Errorf("delete shelf: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.log.InfoContext(ctx, "shelf deleted",
		slog.Int64("user_id", user.ID),
		slog.String("shelf_id", shelfID.String()),
	)

	return nil
}
