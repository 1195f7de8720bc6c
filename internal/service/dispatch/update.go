package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
	"github.com/heartmarshall/hpc-dispatch/internal/policy"
	"github.com/heartmarshall/hpc-dispatch/pkg/ctxutil"
)

// Update changes the fields present in input. A present assignee list
// replaces the current set wholesale.
func (s *Service) Update(ctx context.Context, input UpdateInput) (*domain.Dispatch, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Dispatch
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.lock(txCtx, input.DispatchID)
		if err != nil {
			return err
		}

		if !policy.CanModifyDispatch(user, d) {
			return fmt.Errorf("update dispatch %s: %w", d.ID, domain.ErrForbidden)
		}
		if input.AssigneeIDs != nil && !policy.CanChangeAssignees(user, d) {
			return fmt.Errorf("update dispatch %s: assignees can only change on drafts: %w", d.ID, domain.ErrForbidden)
		}

		if d.Status, err = domain.Transition(domain.OpUpdate, d.Status, ""); err != nil {
			return err
		}
		if input.Title != nil {
			d.Title = strings.TrimSpace(*input.Title)
		}
		if input.Content != nil {
			d.Content = *input.Content
		}

		if err := s.dispatches.Update(txCtx, d); err != nil {
			return fmt.Errorf("update dispatch: %w", err)
		}
		if input.AssigneeIDs != nil {
			if err := s.dispatches.ReplaceAssignees(txCtx, d.ID, domain.UniqueUserIDs(*input.AssigneeIDs)); err != nil {
				return fmt.Errorf("replace assignees: %w", err)
			}
		}

		if err := s.record(txCtx, domain.OpUpdate, d.ID, user.ID, nil); err != nil {
			return err
		}

		updated, err = s.reload(txCtx, d.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dispatch updated",
		slog.Int64("user_id", user.ID),
		slog.String("dispatch_id", updated.ID.String()),
		slog.Bool("assignees_replaced", input.AssigneeIDs != nil),
	)

	return updated, nil
}
