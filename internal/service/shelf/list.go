package shelf

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// ListTopLevel returns the caller's parentless shelves with their
// descendants nested below them.
func (s *Service) ListTopLevel(ctx context.Context) ([]*domain.ShelfNode, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	shelves, err := s.shelves.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}

	return domain.BuildShelfForest(shelves), nil
}

// Get returns one of the caller's shelves with its nested children and the
// dispatches filed directly on it.
func (s *Service) Get(ctx context.Context, shelfID uuid.UUID) (*domain.ShelfDetails, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if shelfID == uuid.Nil {
		return nil, domain.NewValidationError("shelf_id", "required")
	}

	shelf, err := owned(ctx, s.shelves.GetByID, user, shelfID)
	if err != nil {
		return nil, err
	}

	all, err := s.shelves.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}

	dispatches, err := s.shelves.ListDispatches(ctx, shelfID)
	if err != nil {
		return nil, fmt.Errorf("list shelf dispatches: %w", err)
	}

	return &domain.ShelfDetails{
		ShelfNode:  domain.BuildShelfSubtree(*shelf, all),
		Dispatches: dispatches,
	}, nil
}
