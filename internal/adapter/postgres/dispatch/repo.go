// Package dispatch implements the Dispatch repository using PostgreSQL.
// It owns the dispatches table and its assignee and file collections.
package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres"
	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// Repo provides dispatch persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new dispatch repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

// assigneesExpr aggregates a dispatch's assignee ids into a bigint[].
const assigneesExpr = `COALESCE((SELECT array_agg(a.assignee_id ORDER BY a.assignee_id)
        FROM dispatch_assignees a WHERE a.dispatch_id = d.id), '{}'::bigint[])`

const dispatchColumns = `d.id, d.title, d.content, d.status, d.created_at, d.creator_id, ` + assigneesExpr

const getByIDSQL = `SELECT ` + dispatchColumns + ` FROM dispatches d WHERE d.id = $1`

// lockByIDSQL locks the dispatch row for the rest of the transaction.
const lockByIDSQL = `SELECT id FROM dispatches WHERE id = $1 FOR UPDATE`

const insertSQL = `
INSERT INTO dispatches (title, content, status, creator_id)
VALUES ($1, $2, $3, $4)
RETURNING id, created_at`

const updateSQL = `
UPDATE dispatches SET title = $2, content = $3, status = $4
WHERE id = $1`

const deleteSQL = `DELETE FROM dispatches WHERE id = $1`

const deleteAssigneesSQL = `DELETE FROM dispatch_assignees WHERE dispatch_id = $1`

const insertAssigneesSQL = `
INSERT INTO dispatch_assignees (dispatch_id, assignee_id)
SELECT $1::uuid, unnest($2::bigint[])
ON CONFLICT DO NOTHING`

const insertFilesSQL = `
INSERT INTO dispatch_files (dispatch_id, file_url, filename)
SELECT $1::uuid, f.url, f.name
FROM unnest($2::text[], $3::text[]) AS f(url, name)`

const listFilesSQL = `
SELECT id, dispatch_id, file_url, filename
FROM dispatch_files
WHERE dispatch_id = $1
ORDER BY filename, id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a dispatch with its assignee ids.
// Returns domain.ErrNotFound if the dispatch does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Dispatch, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id)

	d, err := scanDispatch(row)
	if err != nil {
		return nil, postgres.MapError(err, "dispatch", id)
	}
	return d, nil
}

// GetByIDForUpdate locks the dispatch row and returns it.
// Must be called inside TxManager.RunInTx; the lock is held until commit.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Dispatch, error) {
	var locked uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, lockByIDSQL, id).Scan(&locked); err != nil {
		return nil, postgres.MapError(err, "dispatch", id)
	}
	return r.GetByID(ctx, id)
}

// ListFiles returns the files attached to a dispatch.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) ListFiles(ctx context.Context, dispatchID uuid.UUID) ([]domain.DispatchFile, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listFilesSQL, dispatchID)
	if err != nil {
		return nil, fmt.Errorf("list dispatch files: %w", err)
	}
	defer rows.Close()

	files := make([]domain.DispatchFile, 0)
	for rows.Next() {
		var f domain.DispatchFile
		if err := rows.Scan(&f.ID, &f.DispatchID, &f.FileURL, &f.Filename); err != nil {
			return nil, fmt.Errorf("scan dispatch file: %w", err)
		}
		files = append(files, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list dispatch files: %w", err)
	}
	return files, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a dispatch and its assignee links and returns the persisted dispatch.
func (r *Repo) Create(ctx context.Context, d domain.Dispatch) (*domain.Dispatch, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var (
		id        uuid.UUID
		createdAt time.Time
	)
	err := q.QueryRow(ctx, insertSQL, d.Title, d.Content, string(d.Status), d.CreatorID).Scan(&id, &createdAt)
	if err != nil {
		return nil, postgres.MapError(err, "dispatch", uuid.Nil)
	}

	if len(d.AssigneeIDs) > 0 {
		if _, err := q.Exec(ctx, insertAssigneesSQL, id, d.AssigneeIDs); err != nil {
			return nil, postgres.MapError(err, "dispatch", id)
		}
	}

	d.ID = id
	d.CreatedAt = createdAt
	return &d, nil
}

// Update persists title, content and status of an existing dispatch.
// Returns domain.ErrNotFound if the dispatch does not exist.
func (r *Repo) Update(ctx context.Context, d *domain.Dispatch) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, updateSQL, d.ID, d.Title, d.Content, string(d.Status))
	if err != nil {
		return postgres.MapError(err, "dispatch", d.ID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dispatch %s: %w", d.ID, domain.ErrNotFound)
	}
	return nil
}

// ReplaceAssignees swaps the whole assignee set of a dispatch.
func (r *Repo) ReplaceAssignees(ctx context.Context, dispatchID uuid.UUID, assigneeIDs []int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, deleteAssigneesSQL, dispatchID); err != nil {
		return postgres.MapError(err, "dispatch", dispatchID)
	}
	if len(assigneeIDs) == 0 {
		return nil
	}
	if _, err := q.Exec(ctx, insertAssigneesSQL, dispatchID, assigneeIDs); err != nil {
		return postgres.MapError(err, "dispatch", dispatchID)
	}
	return nil
}

// AddAssignee links one more assignee. Idempotent: reports false if the
// user was already assigned.
func (r *Repo) AddAssignee(ctx context.Context, dispatchID uuid.UUID, assigneeID int64) (bool, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertAssigneesSQL, dispatchID, []int64{assigneeID})
	if err != nil {
		return false, postgres.MapError(err, "dispatch", dispatchID)
	}
	return tag.RowsAffected() > 0, nil
}

// AddFiles attaches file references to a dispatch in one statement.
func (r *Repo) AddFiles(ctx context.Context, dispatchID uuid.UUID, files []domain.DispatchFile) error {
	if len(files) == 0 {
		return nil
	}

	urls := make([]string, len(files))
	names := make([]string, len(files))
	for i, f := range files {
		urls[i] = f.FileURL
		names[i] = f.Filename
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, insertFilesSQL, dispatchID, urls, names); err != nil {
		return postgres.MapError(err, "dispatch", dispatchID)
	}
	return nil
}

// Delete removes a dispatch. Files, history, comments, assignee and shelf
// links go with it through ON DELETE CASCADE.
// Returns domain.ErrNotFound if the dispatch does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, "dispatch", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("dispatch %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanDispatch(row pgx.Row) (*domain.Dispatch, error) {
	var (
		d      domain.Dispatch
		status string
	)
	if err := row.Scan(&d.ID, &d.Title, &d.Content, &status, &d.CreatedAt, &d.CreatorID, &d.AssigneeIDs); err != nil {
		return nil, err
	}
	d.Status = domain.DispatchStatus(status)
	return &d, nil
}

func scanDispatches(rows pgx.Rows) ([]domain.Dispatch, error) {
	defer rows.Close()

	result := make([]domain.Dispatch, 0)
	for rows.Next() {
		d, err := scanDispatch(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
