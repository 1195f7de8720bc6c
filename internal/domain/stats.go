package domain

// StatusCounts is a histogram of dispatches per status.
type StatusCounts map[DispatchStatus]int

// NewStatusCounts returns a histogram with every status present at zero.
func NewStatusCounts() StatusCounts {
	c := make(StatusCounts, len(AllDispatchStatuses))
	for _, s := range AllDispatchStatuses {
		c[s] = 0
	}
	return c
}

// Total sums all buckets.
func (c StatusCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}

// MyStats summarizes a user's own dispatch traffic.
type MyStats struct {
	Incoming     int
	Outgoing     int
	StatusCounts StatusCounts
}

// UserActivity is a dispatch count attributed to one user.
type UserActivity struct {
	UserID int64
	Count  int
}

// SystemStats summarizes all dispatches in the system.
type SystemStats struct {
	TotalDispatches int
	StatusCounts    StatusCounts
	TopCreators     []UserActivity
	TopAssignees    []UserActivity
}
