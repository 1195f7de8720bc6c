package shelf

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// Create adds a shelf for the authenticated user, optionally under one of
// their existing shelves.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Shelf, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var created *domain.Shelf
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if input.ParentID != nil {
			if _, err := owned(txCtx, s.shelves.GetByID, user, *input.ParentID); err != nil {
				return fmt.Errorf("parent: %w", err)
			}
		}

		var err error
		created, err = s.shelves.Create(txCtx, domain.Shelf{
			UserID:   user.ID,
			Name:     strings.TrimSpace(input.Name),
			ParentID: input.ParentID,
		})
		if err != nil {
			return fmt.Errorf("create shelf: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "shelf created",
		slog.Int64("user_id", user.ID),
		slog.String("shelf_id", created.ID.String()),
	)

	return created, nil
}
