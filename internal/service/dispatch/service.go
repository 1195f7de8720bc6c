package dispatch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

type dispatchRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Dispatch, error)
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Dispatch, error)
	ListFiles(ctx context.Context, dispatchID uuid.UUID) ([]domain.DispatchFile, error)
	Create(ctx context.Context, d domain.Dispatch) (*domain.Dispatch, error)
	Update(ctx context.Context, d *domain.Dispatch) error
	ReplaceAssignees(ctx context.Context, dispatchID uuid.UUID, assigneeIDs []int64) error
	AddAssignee(ctx context.Context, dispatchID uuid.UUID, assigneeID int64) (bool, error)
	AddFiles(ctx context.Context, dispatchID uuid.UUID, files []domain.DispatchFile) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type historyRepo interface {
	Append(ctx context.Context, e domain.HistoryEntry) (domain.HistoryEntry, error)
	ListByDispatch(ctx context.Context, dispatchID uuid.UUID) ([]domain.HistoryEntry, error)
}

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListByDispatch(ctx context.Context, dispatchID uuid.UUID) ([]domain.Comment, error)
}

type shelfLister interface {
	ListForDispatch(ctx context.Context, userID int64, dispatchID uuid.UUID) ([]domain.Shelf, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service runs the dispatch lifecycle: every mutation locks the dispatch row,
// checks access, applies the transition and appends one history entry in a
// single transaction.
type Service struct {
	dispatches dispatchRepo
	history    historyRepo
	comments   commentRepo
	shelves    shelfLister
	tx         txManager
	log        *slog.Logger
}

// NewService creates a new dispatch service.
func NewService(
	log *slog.Logger,
	dispatches dispatchRepo,
	history historyRepo,
	comments commentRepo,
	shelves shelfLister,
	tx txManager,
) *Service {
	return &Service{
		dispatches: dispatches,
		history:    history,
		comments:   comments,
		shelves:    shelves,
		tx:         tx,
		log:        log.With("service", "dispatch"),
	}
}

// lock loads the dispatch with a row lock held until the transaction ends.
func (s *Service) lock(txCtx context.Context, id uuid.UUID) (*domain.Dispatch, error) {
	d, err := s.dispatches.GetByIDForUpdate(txCtx, id)
	if err != nil {
		return nil, fmt.Errorf("get dispatch: %w", err)
	}
	return d, nil
}

// record appends the history entry that op leaves on the dispatch.
func (s *Service) record(txCtx context.Context, op domain.Operation, dispatchID uuid.UUID, actorID int64, details *string) error {
	action, ok := domain.HistoryAction(op)
	if !ok {
		return nil
	}
	_, err := s.history.Append(txCtx, domain.HistoryEntry{
		DispatchID: dispatchID,
		Action:     action,
		Details:    details,
		ActorID:    actorID,
	})
	if err != nil {
		return fmt.Errorf("append history: %w", err)
	}
	return nil
}

// reload reads the dispatch back after a mutation so callers see the
// persisted assignee set.
func (s *Service) reload(txCtx context.Context, id uuid.UUID) (*domain.Dispatch, error) {
	d, err := s.dispatches.GetByID(txCtx, id)
	if err != nil {
		return nil, fmt.Errorf("reload dispatch: %w", err)
	}
	return d, nil
}

func ptr(s string) *string {
	return &s
}
