// Package policy holds the access rules for dispatches and shelves.
// Every function is pure: it decides from the user and the entity's current
// state only and never touches storage.
package policy

import (
	"github.com/google/uuid"

	"github.com/heartmarshall/hpc-dispatch/internal/domain"
)

// CanCreateDispatch reports whether u may author dispatches.
func CanCreateDispatch(u domain.User) bool {
	return u.IsLecturer()
}

// CanViewDispatch reports whether u may read d and comment on it.
func CanViewDispatch(u domain.User, d *domain.Dispatch) bool {
	return u.IsAdmin || u.ID == d.CreatorID || d.HasAssignee(u.ID)
}

// CanModifyDispatch reports whether u may edit d.
// Creators lose edit rights once the dispatch leaves draft.
func CanModifyDispatch(u domain.User, d *domain.Dispatch) bool {
	return u.IsAdmin || (u.ID == d.CreatorID && d.Status == domain.DispatchStatusDraft)
}

// CanChangeAssignees reports whether u may replace d's assignee set.
func CanChangeAssignees(u domain.User, d *domain.Dispatch) bool {
	if !CanModifyDispatch(u, d) {
		return false
	}
	return u.IsAdmin || d.Status == domain.DispatchStatusDraft
}

// CanSend reports whether u may submit d for processing.
func CanSend(u domain.User, d *domain.Dispatch) bool {
	return IsCreator(u, d) && d.Status == domain.DispatchStatusDraft
}

// CheckSend returns nil when CanSend holds. Otherwise it returns
// domain.ErrForbidden for anyone but the creator, and the state error for a
// creator whose dispatch is no longer a draft.
func CheckSend(u domain.User, d *domain.Dispatch) error {
	if CanSend(u, d) {
		return nil
	}
	return denial(IsCreator(u, d), domain.OpSend, d)
}

// CanUpdateStatus reports whether u may set d's status.
func CanUpdateStatus(u domain.User, d *domain.Dispatch) bool {
	return IsHandler(u, d)
}

// CanForward reports whether u may add an assignee to d.
func CanForward(u domain.User, d *domain.Dispatch) bool {
	return IsHandler(u, d) && domain.IsForwardable(d.Status)
}

// CheckForward returns nil when CanForward holds. Otherwise it returns
// domain.ErrForbidden for non-handlers, and the state error for a handler
// of a draft or completed dispatch.
func CheckForward(u domain.User, d *domain.Dispatch) error {
	if CanForward(u, d) {
		return nil
	}
	return denial(IsHandler(u, d), domain.OpForward, d)
}

// denial explains a failed check. The role is judged before the status so a
// caller without the role never learns the status.
func denial(hasRole bool, op domain.Operation, d *domain.Dispatch) error {
	if !hasRole {
		return domain.ErrForbidden
	}
	if _, err := domain.Transition(op, d.Status, ""); err != nil {
		return err
	}
	return &domain.StateError{Op: op, Status: d.Status, Reason: "not allowed in this status"}
}

// CanDelete reports whether u may delete d.
func CanDelete(u domain.User, d *domain.Dispatch) bool {
	return CanModifyDispatch(u, d)
}

// IsCreator reports whether u authored d.
func IsCreator(u domain.User, d *domain.Dispatch) bool {
	return u.ID == d.CreatorID
}

// IsHandler reports whether u acts on d as an assignee or admin.
func IsHandler(u domain.User, d *domain.Dispatch) bool {
	return u.IsAdmin || d.HasAssignee(u.ID)
}

// OwnsShelf reports whether s belongs to u. A shelf that fails this check
// is reported to the caller as missing.
func OwnsShelf(u domain.User, s *domain.Shelf) bool {
	return s.UserID == u.ID
}

// DispatchScope returns the listing scope for u.
// Without a direction or shelf, u sees dispatches they created or are assigned to.
// A shelf scope replaces that participant scope with shelf membership.
func DispatchScope(u domain.User, dir domain.Direction, shelfID *uuid.UUID) domain.DispatchScope {
	id := u.ID
	var scope domain.DispatchScope

	switch dir {
	case domain.DirectionIncoming:
		scope.AssigneeID = &id
	case domain.DirectionOutgoing:
		scope.CreatorID = &id
	case domain.DirectionAny:
		if shelfID == nil {
			scope.ParticipantID = &id
		}
	}

	if shelfID != nil {
		sid := *shelfID
		scope.ShelfID = &sid
	}
	return scope
}
