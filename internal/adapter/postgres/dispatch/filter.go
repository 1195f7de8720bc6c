package dispatch

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	postgres "github.com/heartmarshall/hpc-dispatch/internal/adapter/postgres"
	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

const (
	defaultLimit = 100
	maxLimit     = 500
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// normalize applies defaults and clamps values on a copy of f.
func normalize(f domain.DispatchFilter) domain.DispatchFilter {
	if !f.SortBy.IsValid() {
		f.SortBy = domain.SortByCreatedAt
	}
	if !f.SortDir.IsValid() {
		f.SortDir = domain.SortDesc
	}
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	return f
}

// sortColumn returns the SQL column for the filter's SortBy value.
func sortColumn(f domain.SortField) string {
	switch f {
	case domain.SortByTitle:
		return "d.title"
	case domain.SortByStatus:
		return "d.status"
	default:
		return "d.created_at"
	}
}

// conditions translates the scope and field filters into WHERE predicates.
func conditions(f domain.DispatchFilter) sq.And {
	where := sq.And{}

	s := f.Scope
	if s.CreatorID != nil {
		where = append(where, sq.Eq{"d.creator_id": *s.CreatorID})
	}
	if s.AssigneeID != nil {
		where = append(where, assignedTo(*s.AssigneeID))
	}
	if s.ParticipantID != nil {
		where = append(where, sq.Or{sq.Eq{"d.creator_id": *s.ParticipantID}, assignedTo(*s.ParticipantID)})
	}
	if s.ShelfID != nil {
		where = append(where, sq.Expr(
			"EXISTS (SELECT 1 FROM dispatch_shelves ds WHERE ds.dispatch_id = d.id AND ds.shelf_id = ?)", *s.ShelfID))
	}

	if f.Status != nil {
		where = append(where, sq.Eq{"d.status": string(*f.Status)})
	}
	if f.Search != nil && *f.Search != "" {
		// strpos keeps the match case-sensitive and free of LIKE wildcards.
		where = append(where, sq.Or{
			sq.Expr("strpos(d.title, ?) > 0", *f.Search),
			sq.Expr("strpos(d.content, ?) > 0", *f.Search),
		})
	}

	return where
}

func assignedTo(userID int64) sq.Sqlizer {
	return sq.Expr("EXISTS (SELECT 1 FROM dispatch_assignees a WHERE a.dispatch_id = d.id AND a.assignee_id = ?)", userID)
}

// List returns one page of dispatches matching f, and the number of matches
// before pagination. Zero or out-of-range paging values are clamped.
func (r *Repo) List(ctx context.Context, f domain.DispatchFilter) ([]domain.Dispatch, int, error) {
	f = normalize(f)
	where := conditions(f)
	q := postgres.QuerierFromCtx(ctx, r.pool)

	countSQL, countArgs, err := psql.Select("count(*)").From("dispatches d").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count dispatches: %w", postgres.MapInputError(err))
	}

	dir := "DESC"
	if f.SortDir == domain.SortAsc {
		dir = "ASC"
	}

	pageSQL, pageArgs, err := psql.Select(dispatchColumns).
		From("dispatches d").
		Where(where).
		OrderBy(sortColumn(f.SortBy)+" "+dir, "d.id "+dir).
		Offset(uint64(f.Offset)).
		Limit(uint64(f.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list query: %w", err)
	}

	rows, err := q.Query(ctx, pageSQL, pageArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list dispatches: %w", postgres.MapInputError(err))
	}

	items, err := scanDispatches(rows)
	if err != nil {
		return nil, 0, fmt.Errorf("list dispatches: %w", err)
	}

	return items, total, nil
}
