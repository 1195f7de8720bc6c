// Package history implements the dispatch history repository using PostgreSQL.
// Entries are append-only: there is no update or delete.
package history

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres"
	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// Repo provides dispatch history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const appendSQL = `
INSERT INTO dispatch_history (dispatch_id, action, details, actor_id)
VALUES ($1, $2, $3, $4)
RETURNING id, occurred_at`

const listByDispatchSQL = `
SELECT id, dispatch_id, action, details, occurred_at, actor_id
FROM dispatch_history
WHERE dispatch_id = $1
ORDER BY occurred_at, id`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append records a history entry and returns it with ID and timestamp set.
func (r *Repo) Append(ctx context.Context, e domain.HistoryEntry) (domain.HistoryEntry, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, appendSQL, e.DispatchID, string(e.Action), ptrStringToPgText(e.Details), e.ActorID).
		Scan(&e.ID, &e.Timestamp)
	if err != nil {
		return domain.HistoryEntry{}, postgres.MapError(err, "dispatch_history", e.DispatchID)
	}
	return e, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListByDispatch returns a dispatch's history in chronological order.
// Returns an empty slice (not nil) when there is none.
func (r *Repo) ListByDispatch(ctx context.Context, dispatchID uuid.UUID) ([]domain.HistoryEntry, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByDispatchSQL, dispatchID)
	if err != nil {
		return nil, fmt.Errorf("list dispatch history: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.HistoryEntry, 0)
	for rows.Next() {
		var (
			e       domain.HistoryEntry
			action  string
			details pgtype.Text
		)
		if err := rows.Scan(&e.ID, &e.DispatchID, &action, &details, &e.Timestamp, &e.ActorID); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		e.Action = domain.DispatchAction(action)
		if details.Valid {
			s := details.String
			e.Details = &s
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dispatch history: %w", err)
	}
	return entries, nil
}

func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}
