package shelf

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// Update renames a shelf and moves it under a new parent, or to the top
// level when ParentID is nil. Only a direct self-reference is rejected.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Shelf, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Shelf
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		shelf, err := owned(txCtx, s.shelves.GetByIDForUpdate, user, input.ShelfID)
		if err != nil {
			return err
		}

		if input.ParentID != nil {
			if _, err := owned(txCtx, s.shelves.GetByID, user, *input.ParentID); err != nil {
				return fmt.Errorf("parent: %w", err)
			}
		}

		shelf.Name = strings.TrimSpace(input.Name)
		shelf.ParentID = input.ParentID

		updated, err = s.shelves.Update(txCtx, *shelf)
		if err != nil {
			return fmt.Errorf("update shelf: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "shelf updated",
		slog.Int64("user_id", user.ID),
		slog.String("shelf_id", input.ShelfID.String()),
	)

	return updated, nil
}
