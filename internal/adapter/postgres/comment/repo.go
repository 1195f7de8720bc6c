// Package comment implements the dispatch comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres"
	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createSQL = `
INSERT INTO dispatch_comments (dispatch_id, user_id, content)
VALUES ($1, $2, $3)
RETURNING id, created_at`

const listByDispatchSQL = `
SELECT id, dispatch_id, user_id, content, created_at
FROM dispatch_comments
WHERE dispatch_id = $1
ORDER BY created_at, id`

// Create inserts a comment and returns it with ID and CreatedAt set.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, createSQL, c.DispatchID, c.UserID, c.Content).
		Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, "comment", c.DispatchID)
	}
	return c, nil
}

// ListByDispatch returns a dispatch's comments oldest first.
func (r *Repo) ListByDispatch(ctx context.Context, dispatchID uuid.UUID) ([]domain.Comment, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByDispatchSQL, dispatchID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.DispatchID, &c.UserID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}
