package domain

// UserType classifies identities returned by the user service.
type UserType string

const (
	UserTypeLecturer UserType = "lecturer"
	UserTypeOther    UserType = "other"
)

func (t UserType) String() string { return string(t) }

func (t UserType) IsValid() bool {
	switch t {
	case UserTypeLecturer, UserTypeOther:
		return true
	}
	return false
}

// DispatchStatus is the lifecycle state of a dispatch.
type DispatchStatus string

const (
	DispatchStatusDraft      DispatchStatus = "draft"
	DispatchStatusPending    DispatchStatus = "pending"
	DispatchStatusInProgress DispatchStatus = "in_progress"
	DispatchStatusCompleted  DispatchStatus = "completed"
	DispatchStatusRejected   DispatchStatus = "rejected"
)

// AllDispatchStatuses lists every status in lifecycle order.
// Stats histograms are zero-filled over this list.
var AllDispatchStatuses = []DispatchStatus{
	DispatchStatusDraft,
	DispatchStatusPending,
	DispatchStatusInProgress,
	DispatchStatusCompleted,
	DispatchStatusRejected,
}

func (s DispatchStatus) String() string { return string(s) }

func (s DispatchStatus) IsValid() bool {
	switch s {
	case DispatchStatusDraft, DispatchStatusPending, DispatchStatusInProgress,
		DispatchStatusCompleted, DispatchStatusRejected:
		return true
	}
	return false
}

// DispatchAction is the kind of event recorded in a dispatch's history.
type DispatchAction string

const (
	DispatchActionCreated       DispatchAction = "created"
	DispatchActionModified      DispatchAction = "modified"
	DispatchActionSent          DispatchAction = "sent"
	DispatchActionStatusUpdated DispatchAction = "status_updated"
	DispatchActionCommented     DispatchAction = "commented"
	DispatchActionForwarded     DispatchAction = "forwarded"
)

func (a DispatchAction) String() string { return string(a) }

func (a DispatchAction) IsValid() bool {
	switch a {
	case DispatchActionCreated, DispatchActionModified, DispatchActionSent,
		DispatchActionStatusUpdated, DispatchActionCommented, DispatchActionForwarded:
		return true
	}
	return false
}

// Direction narrows a participant's dispatch listing.
type Direction string

const (
	DirectionAny      Direction = ""
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

func (d Direction) String() string { return string(d) }

func (d Direction) IsValid() bool {
	switch d {
	case DirectionAny, DirectionIncoming, DirectionOutgoing:
		return true
	}
	return false
}

// SortField is a dispatch column the listing can be ordered by.
type SortField string

const (
	SortByCreatedAt SortField = "created_at"
	SortByTitle     SortField = "title"
	SortByStatus    SortField = "status"
)

func (f SortField) String() string { return string(f) }

func (f SortField) IsValid() bool {
	switch f {
	case SortByCreatedAt, SortByTitle, SortByStatus:
		return true
	}
	return false
}

// SortDir is the ordering direction of a listing.
type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

func (d SortDir) String() string { return string(d) }

func (d SortDir) IsValid() bool {
	switch d {
	case SortAsc, SortDesc:
		return true
	}
	return false
}
