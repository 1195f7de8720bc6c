package report

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// ListInput holds the filters of a participant's dispatch listing.
// Empty values do not filter.
type ListInput struct {
	Status    *domain.DispatchStatus
	Direction domain.Direction
	Search    *string
	ShelfID   *uuid.UUID
	SortBy    domain.SortField
	SortDir   domain.SortDir
	Offset    int
	Limit     int
}

// Validate checks all fields and collects all errors.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if !i.Direction.IsValid() {
		errs = append(errs, domain.FieldError{Field: "direction", Message: "must be incoming or outgoing"})
	}
	if i.ShelfID != nil && *i.ShelfID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "shelf_id", Message: "invalid"})
	}
	errs = append(errs, validatePage(i.Status, i.Search, i.SortBy, i.SortDir, i.Offset, i.Limit)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AdminListInput holds the filters of the unscoped admin listing.
type AdminListInput struct {
	CreatorID  *int64
	AssigneeID *int64
	Status     *domain.DispatchStatus
	Search     *string
	SortBy     domain.SortField
	SortDir    domain.SortDir
	Offset     int
	Limit      int
}

// Validate checks all fields and collects all errors.
func (i AdminListInput) Validate() error {
	var errs []domain.FieldError

	if i.CreatorID != nil && *i.CreatorID <= 0 {
		errs = append(errs, domain.FieldError{Field: "creator_id", Message: "must be positive"})
	}
	if i.AssigneeID != nil && *i.AssigneeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "assignee_id", Message: "must be positive"})
	}
	errs = append(errs, validatePage(i.Status, i.Search, i.SortBy, i.SortDir, i.Offset, i.Limit)...)

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validatePage(status *domain.DispatchStatus, search *string, sortBy domain.SortField, sortDir domain.SortDir, offset, limit int) []domain.FieldError {
	var errs []domain.FieldError

	if status != nil && !status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}
	if search != nil {
		errs = append(errs, domain.CheckText("search", *search)...)
	}
	if sortBy != "" && !sortBy.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort_by", Message: "must be created_at, title or status"})
	}
	if sortDir != "" && !sortDir.IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort_dir", Message: "must be asc or desc"})
	}
	if offset < 0 {
		errs = append(errs, domain.FieldError{Field: "skip", Message: "must be non-negative"})
	}
	if limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	return errs
}
