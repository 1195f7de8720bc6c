// Package shelf implements the Shelf repository using PostgreSQL.
// It provides CRUD for user-owned shelves and M2M dispatch membership
// via the dispatch_shelves join table.
package shelf

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres"
	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// Repo provides shelf persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new shelf repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL
// ---------------------------------------------------------------------------

const shelfColumns = `s.id, s.user_id, s.name, s.parent_id, s.created_at`

const getByIDSQL = `SELECT ` + shelfColumns + ` FROM shelves s WHERE s.id = $1`

const lockByIDSQL = getByIDSQL + ` FOR UPDATE`

const listByUserSQL = `
SELECT ` + shelfColumns + `
FROM shelves s
WHERE s.user_id = $1
ORDER BY s.created_at, s.id`

const listForDispatchSQL = `
SELECT ` + shelfColumns + `
FROM dispatch_shelves ds
JOIN shelves s ON s.id = ds.shelf_id
WHERE ds.dispatch_id = $1 AND s.user_id = $2
ORDER BY s.name, s.id`

const hasChildrenSQL = `SELECT EXISTS (SELECT 1 FROM shelves WHERE parent_id = $1)`

const createSQL = `
INSERT INTO shelves (user_id, name, parent_id)
VALUES ($1, $2, $3)
RETURNING id, user_id, name, parent_id, created_at`

const updateSQL = `
UPDATE shelves SET name = $2, parent_id = $3
WHERE id = $1
RETURNING id, user_id, name, parent_id, created_at`

const deleteSQL = `DELETE FROM shelves WHERE id = $1`

const addDispatchSQL = `
INSERT INTO dispatch_shelves (dispatch_id, shelf_id)
VALUES ($1, $2)
ON CONFLICT DO NOTHING`

const removeDispatchSQL = `DELETE FROM dispatch_shelves WHERE dispatch_id = $1 AND shelf_id = $2`

const listDispatchesSQL = `
SELECT d.id, d.title, d.content, d.status, d.created_at, d.creator_id,
       COALESCE((SELECT array_agg(a.assignee_id ORDER BY a.assignee_id)
                 FROM dispatch_assignees a WHERE a.dispatch_id = d.id), '{}'::bigint[])
FROM dispatch_shelves ds
JOIN dispatches d ON d.id = ds.dispatch_id
WHERE ds.shelf_id = $1
ORDER BY d.created_at DESC, d.id`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a shelf regardless of owner; callers apply the ownership rule.
// Returns domain.ErrNotFound if the shelf does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Shelf, error) {
	s, err := scanShelf(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "shelf", id)
	}
	return s, nil
}

// GetByIDForUpdate locks the shelf row and returns it.
// Must be called inside TxManager.RunInTx.
func (r *Repo) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*domain.Shelf, error) {
	s, err := scanShelf(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, lockByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "shelf", id)
	}
	return s, nil
}

// ListByUser returns every shelf owned by userID, oldest first.
// Returns an empty slice (not nil) when the user has none.
func (r *Repo) ListByUser(ctx context.Context, userID int64) ([]domain.Shelf, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}

	result, err := scanShelves(rows)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}
	return result, nil
}

// ListForDispatch returns userID's shelves that contain dispatchID.
func (r *Repo) ListForDispatch(ctx context.Context, userID int64, dispatchID uuid.UUID) ([]domain.Shelf, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listForDispatchSQL, dispatchID, userID)
	if err != nil {
		return nil, fmt.Errorf("list shelves for dispatch: %w", err)
	}

	result, err := scanShelves(rows)
	if err != nil {
		return nil, fmt.Errorf("list shelves for dispatch: %w", err)
	}
	return result, nil
}

// HasChildren reports whether any shelf names id as its parent.
func (r *Repo) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, hasChildrenSQL, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("shelf %s has children: %w", id, err)
	}
	return exists, nil
}

// ListDispatches returns the dispatches filed on a shelf, newest first.
func (r *Repo) ListDispatches(ctx context.Context, shelfID uuid.UUID) ([]domain.Dispatch, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, listDispatchesSQL, shelfID)
	if err != nil {
		return nil, fmt.Errorf("list shelf dispatches: %w", err)
	}
	defer rows.Close()

	result := make([]domain.Dispatch, 0)
	for rows.Next() {
		var (
			d      domain.Dispatch
			status string
		)
		if err := rows.Scan(&d.ID, &d.Title, &d.Content, &status, &d.CreatedAt, &d.CreatorID, &d.AssigneeIDs); err != nil {
			return nil, fmt.Errorf("scan shelf dispatch: %w", err)
		}
		d.Status = domain.DispatchStatus(status)
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list shelf dispatches: %w", err)
	}
	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new shelf and returns the persisted domain.Shelf.
// Returns domain.ErrNotFound if the parent does not exist.
func (r *Repo) Create(ctx context.Context, s domain.Shelf) (*domain.Shelf, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL, s.UserID, s.Name, uuidPtrToPgUUID(s.ParentID))

	created, err := scanShelf(row)
	if err != nil {
		return nil, postgres.MapError(err, "shelf", uuid.Nil)
	}
	return created, nil
}

// Update overwrites a shelf's name and parent.
// Returns domain.ErrValidation if the shelf would become its own parent.
func (r *Repo) Update(ctx context.Context, s domain.Shelf) (*domain.Shelf, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, updateSQL, s.ID, s.Name, uuidPtrToPgUUID(s.ParentID))

	updated, err := scanShelf(row)
	if err != nil {
		return nil, postgres.MapError(err, "shelf", s.ID)
	}
	return updated, nil
}

// Delete removes a shelf and its membership links.
// Returns domain.ErrInvalidState if the shelf still has children and
// domain.ErrNotFound if it does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		if postgres.PgErrorCode(err) == postgres.CodeForeignKeyViolation {
			return fmt.Errorf("shelf %s has children: %w", id, domain.ErrInvalidState)
		}
		return postgres.MapError(err, "shelf", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("shelf %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AddDispatch files a dispatch on a shelf. Idempotent.
func (r *Repo) AddDispatch(ctx context.Context, shelfID, dispatchID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, addDispatchSQL, dispatchID, shelfID); err != nil {
		return postgres.MapError(err, "shelf", shelfID)
	}
	return nil
}

// RemoveDispatch unfiles a dispatch. Removing a non-member is a no-op.
func (r *Repo) RemoveDispatch(ctx context.Context, shelfID, dispatchID uuid.UUID) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, removeDispatchSQL, dispatchID, shelfID); err != nil {
		return postgres.MapError(err, "shelf", shelfID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Scan helpers
// ---------------------------------------------------------------------------

func scanShelf(row pgx.Row) (*domain.Shelf, error) {
	var (
		s      domain.Shelf
		parent pgtype.UUID
	)
	if err := row.Scan(&s.ID, &s.UserID, &s.Name, &parent, &s.CreatedAt); err != nil {
		return nil, err
	}
	if parent.Valid {
		id := uuid.UUID(parent.Bytes)
		s.ParentID = &id
	}
	return &s, nil
}

func scanShelves(rows pgx.Rows) ([]domain.Shelf, error) {
	defer rows.Close()

	result := make([]domain.Shelf, 0)
	for rows.Next() {
		s, err := scanShelf(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func uuidPtrToPgUUID(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}
