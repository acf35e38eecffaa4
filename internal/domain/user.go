package domain

import "time"

// UserRole enumerates account roles.
type UserRole string

const (
	RoleAdmin     UserRole = "admin"
	RoleRecruiter UserRole = "recruiter"
)

// ValidRole reports whether the role is a known value.
func ValidRole(role UserRole) bool {
	return role == RoleAdmin || role == RoleRecruiter
}

// User is the domain model for recruiters and administrators.
type User struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Principal identifies the authenticated caller for policy decisions.
type Principal struct {
	ID   int64
	Role UserRole
}

// Principal derives the policy identity of a user.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Role: u.Role}
}
