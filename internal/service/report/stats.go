package report

import (
	"context"
	"fmt"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// MyStats counts the caller's incoming and outgoing dispatches and builds a
// status histogram over both.
func (s *Service) MyStats(ctx context.Context) (*domain.MyStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	incoming, err := s.dispatches.CountIncoming(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count incoming: %w", err)
	}
	outgoing, err := s.dispatches.CountOutgoing(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count outgoing: %w", err)
	}
	counts, err := s.dispatches.ParticipantStatusCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}

	return &domain.MyStats{
		Incoming:     incoming,
		Outgoing:     outgoing,
		StatusCounts: counts,
	}, nil
}

// SystemStats summarizes every dispatch. topN bounds the creator and
// assignee rankings; zero selects the configured default. Admins only.
func (s *Service) SystemStats(ctx context.Context, topN int) (*domain.SystemStats, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !user.IsAdmin {
		return nil, fmt.Errorf("system stats: %w", domain.ErrForbidden)
	}
	if topN < 0 {
		return nil, domain.NewValidationError("limit", "must be non-negative")
	}
	topN = clampLimit(topN, maxTopN, s.cfg.TopN)

	counts, err := s.dispatches.StatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	creators, err := s.dispatches.TopCreators(ctx, topN)
	if err != nil {
		return nil, fmt.Errorf("top creators: %w", err)
	}
	assignees, err := s.dispatches.TopAssignees(ctx, topN)
	if err != nil {
		return nil, fmt.Errorf("top assignees: %w", err)
	}

	return &domain.SystemStats{
		TotalDispatches: counts.Total(),
		StatusCounts:    counts,
		TopCreators:     creators,
		TopAssignees:    assignees,
	}, nil
}
