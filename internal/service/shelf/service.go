package shelf

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/policy"
)

type shelfRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shelf, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Shelf, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Shelf, error)
	HasChildren(ctx context.Context, id uuid.UUID) (bool, error)
	ListDispatches(ctx context.Context, shelfID uuid.UUID) ([]domain.Dispatch, error)
	Create(ctx context.Context, s domain.Shelf) (*domain.Shelf, error)
	Update(ctx context.Context, s domain.Shelf) (*domain.Shelf, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddDispatch(ctx context.Context, shelfID, dispatchID uuid.UUID) error
	RemoveDispatch(ctx context.Context, shelfID, dispatchID uuid.UUID) error
}

type dispatchReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dispatch, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service manages user-owned shelf trees and the dispatches filed on them.
type Service struct {
	shelves    shelfRepo
	dispatches dispatchReader
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new shelf service.
func NewService(
	log *slog.Logger,
	shelves shelfRepo,
	dispatches dispatchReader,
	tx txManager,
) *Service {
	return &Service{
		shelves:    shelves,
		dispatches: dispatches,
		tx:         tx,
		log:        log.With("service", "shelf"),
	}
}

// owned loads a shelf through load and hides it unless it belongs to u.
func owned(ctx context.Context, load func(context.Context, uuid.UUID) (*domain.Shelf, error), u domain.User, id uuid.UUID) (*domain.Shelf, error) {
	s, err := load(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shelf: %w", err)
	}
	if !policy.OwnsShelf(u, s) {
		return nil, fmt.Errorf("shelf %s: %w", id, domain.ErrNotFound)
	}
	return s, nil
}
