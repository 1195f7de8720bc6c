package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// userSeq hands out user IDs that do not collide across tests sharing the container.
var userSeq atomic.Int64

func init() {
	userSeq.Store(time.Now().UnixNano() % 1_000_000_000 * 1000)
}

// NextUserID returns a fresh identity-provider user ID.
func NextUserID() int64 {
	return userSeq.Add(1)
}

// SeedDispatch inserts a dispatch with the given status, creator and assignees.
func SeedDispatch(t *testing.T, pool *pgxpool.Pool, status domain.DispatchStatus, creatorID int64, assigneeIDs ...int64) domain.Dispatch {
	t.Helper()
	ctx := context.Background()

	d := domain.Dispatch{
		ID:          uuid.New(),
		Title:       "Dispatch " + uuid.New().String()[:8],
		Content:     "seeded content",
		Status:      status,
		CreatedAt:   time.Now().UTC().Truncate(time.Microsecond),
		CreatorID:   creatorID,
		AssigneeIDs: assigneeIDs,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO dispatches (id, title, content, status, created_at, creator_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		d.ID, d.Title, d.Content, string(d.Status), d.CreatedAt, d.CreatorID,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDispatch insert dispatch: %v", err)
	}

	for _, a := range assigneeIDs {
		if _, err := pool.Exec(ctx,
			`INSERT INTO dispatch_assignees (dispatch_id, assignee_id) VALUES ($1, $2)`, d.ID, a,
		); err != nil {
			t.Fatalf("testhelper: SeedDispatch insert assignee: %v", err)
		}
	}

	return d
}

// SeedShelf inserts a shelf owned by userID, optionally under parent.
func SeedShelf(t *testing.T, pool *pgxpool.Pool, userID int64, name string, parent *uuid.UUID) domain.Shelf {
	t.Helper()

	s := domain.Shelf{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		ParentID:  parent,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO shelves (id, user_id, name, parent_id, created_at) VALUES ($1, $2, $3, $4, $5)`,
		s.ID, s.UserID, s.Name, s.ParentID, s.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedShelf: %v", err)
	}

	return s
}

// FileDispatch links a dispatch to a shelf.
func FileDispatch(t *testing.T, pool *pgxpool.Pool, shelfID, dispatchID uuid.UUID) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO dispatch_shelves (dispatch_id, shelf_id) VALUES ($1, $2)`, dispatchID, shelfID,
	)
	if err != nil {
		t.Fatalf("testhelper: FileDispatch: %v", err)
	}
}
