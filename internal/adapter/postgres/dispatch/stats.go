package dispatch

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	postgres "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres"
	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

const countOutgoingSQL = `SELECT count(*) FROM dispatches WHERE creator_id = $1`

const countIncomingSQL = `SELECT count(*) FROM dispatch_assignees WHERE assignee_id = $1`

const participantStatusCountsSQL = `
SELECT d.status, count(*)
FROM dispatches d
WHERE d.creator_id = $1
   OR EXISTS (SELECT 1 FROM dispatch_assignees a WHERE a.dispatch_id = d.id AND a.assignee_id = $1)
GROUP BY d.status`

const statusCountsSQL = `SELECT status, count(*) FROM dispatches GROUP BY status`

const topCreatorsSQL = `
SELECT creator_id, count(*) AS n
FROM dispatches
GROUP BY creator_id
ORDER BY n DESC, creator_id
LIMIT $1`

const topAssigneesSQL = `
SELECT assignee_id, count(*) AS n
FROM dispatch_assignees
GROUP BY assignee_id
ORDER BY n DESC, assignee_id
LIMIT $1`

// CountOutgoing returns how many dispatches userID created.
func (r *Repo) CountOutgoing(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countOutgoingSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count outgoing dispatches: %w", err)
	}
	return n, nil
}

// CountIncoming returns how many dispatches userID is assigned to.
func (r *Repo) CountIncoming(ctx context.Context, userID int64) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, countIncomingSQL, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count incoming dispatches: %w", err)
	}
	return n, nil
}

// ParticipantStatusCounts returns a zero-filled histogram over the dispatches
// userID created or is assigned to. Each dispatch is counted once.
func (r *Repo) ParticipantStatusCounts(ctx context.Context, userID int64) (domain.StatusCounts, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, participantStatusCountsSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("participant status counts: %w", err)
	}
	return scanStatusCounts(rows)
}

// StatusCounts returns a zero-filled histogram over all dispatches.
func (r *Repo) StatusCounts(ctx context.Context) (domain.StatusCounts, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, statusCountsSQL)
	if err != nil {
		return nil, fmt.Errorf("status counts: %w", err)
	}
	return scanStatusCounts(rows)
}

// TopCreators returns up to limit users ordered by dispatches created,
// ties broken by ascending user id.
func (r *Repo) TopCreators(ctx context.Context, limit int) ([]domain.UserActivity, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, topCreatorsSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top creators: %w", err)
	}
	return scanActivity(rows)
}

// TopAssignees returns up to limit users ordered by dispatches assigned,
// ties broken by ascending user id.
func (r *Repo) TopAssignees(ctx context.Context, limit int) ([]domain.UserActivity, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, topAssigneesSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("top assignees: %w", err)
	}
	return scanActivity(rows)
}

func scanStatusCounts(rows pgx.Rows) (domain.StatusCounts, error) {
	defer rows.Close()

	counts := domain.NewStatusCounts()
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, fmt.Errorf("scan status count: %w", err)
		}
		counts[domain.DispatchStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan status counts: %w", err)
	}
	return counts, nil
}

func scanActivity(rows pgx.Rows) ([]domain.UserActivity, error) {
	defer rows.Close()

	result := make([]domain.UserActivity, 0)
	for rows.Next() {
		var a domain.UserActivity
		if err := rows.Scan(&a.UserID, &a.Count); err != nil {
			return nil, fmt.Errorf("scan user activity: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan user activity: %w", err)
	}
	return result, nil
}
