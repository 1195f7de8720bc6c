package report

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/policy"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// ListDispatches returns the caller's dispatches matching input, with the
// total count before pagination.
func (s *Service) ListDispatches(ctx context.Context, input ListInput) (*domain.DispatchPage, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ShelfID != nil {
		shelf, err := s.shelves.GetByID(ctx, *input.ShelfID)
		if err != nil {
			return nil, fmt.Errorf("get shelf: %w", err)
		}
		if !policy.OwnsShelf(user, shelf) {
			return nil, fmt.Errorf("shelf %s: %w", shelf.ID, domain.ErrNotFound)
		}
	}

	return s.list(ctx, domain.DispatchFilter{
		Scope:   policy.DispatchScope(user, input.Direction, input.ShelfID),
		Status:  input.Status,
		Search:  input.Search,
		SortBy:  input.SortBy,
		SortDir: input.SortDir,
		Offset:  input.Offset,
		Limit:   input.Limit,
	})
}

// AdminListDispatches returns any dispatches matching input. Admins only.
func (s *Service) AdminListDispatches(ctx context.Context, input AdminListInput) (*domain.DispatchPage, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsAdmin {
		return nil, fmt.Errorf("admin list: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	return s.list(ctx, domain.DispatchFilter{
		Scope: domain.DispatchScope{
			CreatorID:  input.CreatorID,
			AssigneeID: input.AssigneeID,
		},
		Status:  input.Status,
		Search:  input.Search,
		SortBy:  input.SortBy,
		SortDir: input.SortDir,
		Offset:  input.Offset,
		Limit:   input.Limit,
	})
}

func (s *Service) list(ctx context.Context, f domain.DispatchFilter) (*domain.DispatchPage, error) {
	if f.SortBy == "" {
		f.SortBy = domain.SortByCreatedAt
	}
	if f.SortDir == "" {
		f.SortDir = domain.SortDesc
	}
	if f.Search != nil && *f.Search == "" {
		f.Search = nil
	}
	f.Limit = clampLimit(f.Limit, s.cfg.MaxPageSize, s.cfg.DefaultPageSize)

	items, total, err := s.dispatches.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list dispatches: %w", err)
	}

	return &domain.DispatchPage{Total: total, Items: items}, nil
}
