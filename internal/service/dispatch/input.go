package dispatch

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

const (
	maxTitleLength   = 255
	maxContentLength = 20000
	maxCommentLength = 5000
	maxFileURLLength = 2048
	maxAssignees     = 100
	maxFiles         = 50
)

// CreateInput holds the parameters for creating a dispatch.
type CreateInput struct {
	Title       string
	Content     string
	AssigneeIDs []int64
	Files       []string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	errs = append(errs, validateTitle(i.Title)...)
	errs = append(errs, validateContent(i.Content)...)
	errs = append(errs, validateAssignees(i.AssigneeIDs)...)

	if len(i.Files) > maxFiles {
		errs = append(errs, domain.FieldError{Field: "files", Message: fmt.Sprintf("max %d files", maxFiles)})
	}
	for idx, url := range i.Files {
		if strings.TrimSpace(url) == "" {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("files[%d]", idx), Message: "required"})
			continue
		}
		if len(url) > maxFileURLLength {
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("files[%d]", idx), Message: fmt.Sprintf("max %d characters", maxFileURLLength)})
		}
		errs = append(errs, domain.CheckText(fmt.Sprintf("files[%d]", idx), url)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the parameters for updating a dispatch.
// Nil fields are left unchanged.
type UpdateInput struct {
	DispatchID  uuid.UUID
	Title       *string
	Content     *string
	AssigneeIDs *[]int64
}

// Validate checks all fields and collects all errors.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.DispatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dispatch_id", Message: "required"})
	}
	if i.Title != nil {
		errs = append(errs, validateTitle(*i.Title)...)
	}
	if i.Content != nil {
		errs = append(errs, validateContent(*i.Content)...)
	}
	if i.AssigneeIDs != nil {
		errs = append(errs, validateAssignees(*i.AssigneeIDs)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStatusInput holds the parameters for a status update.
type UpdateStatusInput struct {
	DispatchID uuid.UUID
	Status     domain.DispatchStatus
}

// Validate checks all fields and collects all errors.
func (i UpdateStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.DispatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dispatch_id", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid value"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ForwardInput holds the parameters for forwarding a dispatch to one more assignee.
type ForwardInput struct {
	DispatchID    uuid.UUID
	NewAssigneeID int64
}

// Validate checks all fields and collects all errors.
func (i ForwardInput) Validate() error {
	var errs []domain.FieldError

	if i.DispatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dispatch_id", Message: "required"})
	}
	if i.NewAssigneeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "new_assignee_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// CommentInput holds the parameters for commenting on a dispatch.
type CommentInput struct {
	DispatchID uuid.UUID
	Content    string
}

// Validate checks all fields and collects all errors.
func (i CommentInput) Validate() error {
	var errs []domain.FieldError

	if i.DispatchID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "dispatch_id", Message: "required"})
	}
	content := strings.TrimSpace(i.Content)
	switch {
	case content == "":
		errs = append(errs, domain.FieldError{Field: "content", Message: "required"})
	case len(content) > maxCommentLength:
		errs = append(errs, domain.FieldError{Field: "content", Message: fmt.Sprintf("max %d characters", maxCommentLength)})
	default:
		errs = append(errs, domain.CheckText("content", content)...)
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateTitle(title string) []domain.FieldError {
	t := strings.TrimSpace(title)
	if t == "" {
		return []domain.FieldError{{Field: "title", Message: "required"}}
	}
	if len(t) > maxTitleLength {
		return []domain.FieldError{{Field: "title", Message: fmt.Sprintf("max %d characters", maxTitleLength)}}
	}
	return domain.CheckText("title", t)
}

func validateContent(content string) []domain.FieldError {
	if len(content) > maxContentLength {
		return []domain.FieldError{{Field: "content", Message: fmt.Sprintf("max %d characters", maxContentLength)}}
	}
	return domain.CheckText("content", content)
}

func validateAssignees(ids []int64) []domain.FieldError {
	if len(ids) == 0 {
		return []domain.FieldError{{Field: "assignee_ids", Message: "at least one assignee is required"}}
	}
	if len(ids) > maxAssignees {
		return []domain.FieldError{{Field: "assignee_ids", Message: fmt.Sprintf("max %d assignees", maxAssignees)}}
	}
	for _, id := range ids {
		if id <= 0 {
			return []domain.FieldError{{Field: "assignee_ids", Message: "ids must be positive"}}
		}
	}
	return nil
}
