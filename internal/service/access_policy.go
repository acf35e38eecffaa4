package service

import "github.com/spec-kit/staffing-service/internal/domain"

// Access policy: pure decisions over provided facts, no side effects.
// Admins see and mutate everything; recruiters are confined to submissions
// they own.

// VisibleRecruiterID returns the recruiter id the principal's listing must
// be restricted to, or nil when the principal sees all submissions.
func VisibleRecruiterID(principal domain.Principal) *int64 {
	if principal.Role == domain.RoleAdmin {
		return nil
	}
	id := principal.ID
	return &id
}

// CanMutateSubmission reports whether the principal may update or delete a
// submission owned by ownerID. Callers must confirm the record exists first;
// existence failures take precedence over ownership failures.
func CanMutateSubmission(principal domain.Principal, ownerID int64) bool {
	if principal.Role == domain.RoleAdmin {
		return true
	}
	return principal.ID == ownerID
}
