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

// Create stores a new draft dispatch authored by the authenticated lecturer.
// Duplicate assignee ids are collapsed; file names come from the URLs.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Dispatch, error) {
	user, ok := ctxutil.UserFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !policy.CanCreateDispatch(user) {
		return nil, fmt.Errorf("create dispatch: only lecturers can author dispatches: %w", domain.ErrForbidden)
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	status, err := domain.Transition(domain.OpCreate, "", "")
	if err != nil {
		return nil, err
	}

	files := make([]domain.DispatchFile, 0, len(input.Files))
	for _, url := range input.Files {
		files = append(files, domain.NewDispatchFile(strings.TrimSpace(url)))
	}

	var created *domain.Dispatch
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, createErr := s.dispatches.Create(txCtx, domain.Dispatch{
			Title:       strings.TrimSpace(input.Title),
			Content:     input.Content,
			Status:      status,
			CreatorID:   user.ID,
			AssigneeIDs: domain.UniqueUserIDs(input.AssigneeIDs),
		})
		if createErr != nil {
			return fmt.Errorf("create dispatch: %w", createErr)
		}

		if filesErr := s.dispatches.AddFiles(txCtx, d.ID, files); filesErr != nil {
			return fmt.Errorf("add files: %w", filesErr)
		}

		if recErr := s.record(txCtx, domain.OpCreate, d.ID, user.ID, nil); recErr != nil {
			return recErr
		}

		created, createErr = s.reload(txCtx, d.ID)
		return createErr
	})
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "dispatch created",
		slog.Int64("user_id", user.ID),
		slog.String("dispatch_id", created.ID.String()),
		slog.Int("assignees", len(created.AssigneeIDs)),
		slog.Int("files", len(files)),
	)

	return created, nil
}
