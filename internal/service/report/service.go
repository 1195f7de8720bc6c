package report

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/config"
	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

type dispatchQuerier interface {
	List(ctx context.Context, f domain.DispatchFilter) ([]domain.Dispatch, int, error)
	CountOutgoing(ctx context.Context, userID int64) (int, error)
	CountIncoming(ctx context.Context, userID int64) (int, error)
	ParticipantStatusCounts(ctx context.Context, userID int64) (domain.StatusCounts, error)
	StatusCounts(ctx context.Context) (domain.StatusCounts, error)
	TopCreators(ctx context.Context, limit int) ([]domain.UserActivity, error)
	TopAssignees(ctx context.Context, limit int) ([]domain.UserActivity, error)
}

type shelfReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shelf, error)
}

const maxTopN = 100

// Service answers dispatch listings and statistics. It never writes.
type Service struct {
	dispatches dispatchQuerier
	shelves    shelfReader
	cfg        config.DispatchConfig
	log        *slog.Logger
}

// NewService creates a new report service.
func NewService(
	log *slog.Logger,
	dispatches dispatchQuerier,
	shelves shelfReader,
	cfg config.DispatchConfig,
) *Service {
	return &Service{
		dispatches: dispatches,
		shelves:    shelves,
		cfg:        cfg,
		log:        log.With("service", "report"),
	}
}

// clampLimit returns def for non-positive values and caps at upper.
func clampLimit(limit, upper, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > upper {
		return upper
	}
	return limit
}
