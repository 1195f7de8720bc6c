package domain

import "github.com/google/uuid"

// DispatchScope restricts which dispatches a listing may see.
// Nil fields do not restrict. ParticipantID matches creator or assignee.
type DispatchScope struct {
	CreatorID     *int64
	AssigneeID    *int64
	ParticipantID *int64
	ShelfID       *uuid.UUID
}

// DispatchFilter contains filtering and pagination parameters for dispatch listings.
type DispatchFilter struct {
	Scope   DispatchScope
	Status  *DispatchStatus
	Search  *string
	SortBy  SortField
	SortDir SortDir
	Offset  int
	Limit   int
}

// DispatchPage is one page of a listing plus the total before pagination.
type DispatchPage struct {
	Total int
	Items []Dispatch
}
