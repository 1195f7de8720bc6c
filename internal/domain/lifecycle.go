package domain

import "fmt"

// Operation is a dispatch operation that may change its status or history.
type Operation string

const (
	OpCreate       Operation = "create"
	OpUpdate       Operation = "update"
	OpSend         Operation = "send"
	OpUpdateStatus Operation = "update_status"
	OpForward      Operation = "forward"
	OpComment      Operation = "comment"
	OpDelete       Operation = "delete"
)

func (o Operation) String() string { return string(o) }

// Transition returns the status a dispatch has after op is applied to a
// dispatch in status current. target is only consulted by OpUpdateStatus.
//
// OpUpdateStatus accepts any non-draft target regardless of current status.
// Whether it should follow the pending -> in_progress -> completed graph is
// an open product decision.
func Transition(op Operation, current, target DispatchStatus) (DispatchStatus, error) {
	switch op {
	case OpCreate:
		return DispatchStatusDraft, nil
	case OpUpdate, OpComment, OpDelete:
		return current, nil
	case OpSend:
		if current != DispatchStatusDraft {
			return current, &StateError{Op: op, Status: current, Reason: "only draft dispatches can be sent"}
		}
		return DispatchStatusPending, nil
	case OpUpdateStatus:
		if !IsStatusTarget(target) {
			return current, NewValidationError("status", fmt.Sprintf("cannot set status to %q", target))
		}
		return target, nil
	case OpForward:
		if !IsForwardable(current) {
			return current, &StateError{Op: op, Status: current, Reason: "dispatch cannot be forwarded"}
		}
		return current, nil
	}
	return current, fmt.Errorf("unknown dispatch operation %q", op)
}

// HistoryAction returns the history action recorded for op.
// The second result is false for operations that leave no history entry.
func HistoryAction(op Operation) (DispatchAction, bool) {
	switch op {
	case OpCreate:
		return DispatchActionCreated, true
	case OpUpdate:
		return DispatchActionModified, true
	case OpSend:
		return DispatchActionSent, true
	case OpUpdateStatus:
		return DispatchActionStatusUpdated, true
	case OpForward:
		return DispatchActionForwarded, true
	case OpComment:
		return DispatchActionCommented, true
	case OpDelete:
		return "", false
	}
	return "", false
}

// IsStatusTarget reports whether s may be requested through a status update.
func IsStatusTarget(s DispatchStatus) bool {
	switch s {
	case DispatchStatusPending, DispatchStatusInProgress, DispatchStatusCompleted, DispatchStatusRejected:
		return true
	case DispatchStatusDraft:
		return false
	}
	return false
}

// IsForwardable reports whether a dispatch in status s accepts new assignees
// through forwarding.
func IsForwardable(s DispatchStatus) bool {
	switch s {
	case DispatchStatusPending, DispatchStatusInProgress, DispatchStatusRejected:
		return true
	case DispatchStatusDraft, DispatchStatusCompleted:
		return false
	}
	return false
}
