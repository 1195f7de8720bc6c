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

// Comment appends a comment from a participant of the dispatch.
func (s *Service) Comment(ctx context.Context, input CommentInput) (*domain.Comment, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	var comment domain.Comment
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.lock(txCtx, input.DispatchID)
		if err != nil {
			return err
		}

		if !policy.CanViewDispatch(user, d) {
			return fmt.Errorf("comment on %s: %w", d.ID, domain.ErrForbidden)
		}
		if _, err := domain.Transition(domain.OpComment, d.Status, ""); err != nil {
			return err
		}

		comment, err = s.comments.Create(txCtx, domain.Comment{
			DispatchID: d.ID,
			UserID:     user.ID,
			Content:    strings.TrimSpace(input.Content),
		})
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}

		return s.record(txCtx, domain.OpComment, d.ID, user.ID, nil)
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dispatch commented",
		slog.Int64("user_id", user.ID),
		slog.String("dispatch_id", input.DispatchID.String()),
		slog.String("comment_id", comment.ID.String()),
	)

	return &comment, nil
}
