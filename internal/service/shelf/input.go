package shelf

import (
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

const maxNameLength = 100

// CreateInput holds the parameters for creating a shelf.
type CreateInput struct {
	Name     string
	ParentID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateName(i.Name)...)
	if i.ParentID != nil && *i.ParentID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "parent_id", Message: "invalid"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for renaming or moving a shelf.
// Name and parent are both overwritten; a nil ParentID makes the shelf top-level.
type UpdateInput struct {
	ShelfID  uuid.UUID
	Name     string
	ParentID *uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ShelfID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "shelf_id", Message: "required"})
	}
	errs = append(errs, validateName(i.Name)...)
	if i.ParentID != nil {
		switch {
		case *i.ParentID == uuid.Nil:
			errs = append(errs, domain.FieldError{Field: "parent_id", Message: "invalid"})
		case *i.ParentID == i.ShelfID:
			errs = append(errs, domain.FieldError{Field: "parent_id", Message: "a shelf cannot be its own parent"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(name string) []domain.FieldError {
	n := strings.TrimSpace(name)
	if n == "" {
		return []domain.FieldError{{Field: "name", Message: "required"}}
	}
	if len(n) > maxNameLength {
		return []domain.FieldError{{Field: "name", Message: "max 100 characters"}}
	}
	return domain.CheckText("name", n)
}
