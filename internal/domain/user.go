package domain

// User is the caller as reported by the identity provider.
// It is never persisted by this service.
type User struct {
	ID       int64
	FullName string
	UserType UserType
	IsAdmin  bool
}

// IsLecturer reports whether the user may author dispatches.
func (u User) IsLecturer() bool {
	return u.UserType == UserTypeLecturer
}
