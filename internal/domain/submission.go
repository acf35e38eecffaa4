package domain

import "time"

// SubmissionStatus enumerates pipeline states for submissions. Any status
// may transition to any other; no workflow graph is enforced.
type SubmissionStatus string

const (
	SubmissionStatusSubmitted    SubmissionStatus = "submitted"
	SubmissionStatusInterviewing SubmissionStatus = "interviewing"
	SubmissionStatusAccepted     SubmissionStatus = "accepted"
	SubmissionStatusRejected     SubmissionStatus = "rejected"
	SubmissionStatusWithdrawn    SubmissionStatus = "withdrawn"
)

// ValidSubmissionStatus reports whether the status is a known value.
func ValidSubmissionStatus(status SubmissionStatus) bool {
	switch status {
	case SubmissionStatusSubmitted, SubmissionStatusInterviewing,
		SubmissionStatusAccepted, SubmissionStatusRejected, SubmissionStatusWithdrawn:
		return true
	}
	return false
}

// Submission is the central transactional record: a consultant put forward
// to a company for a position by a recruiter. RecruiterID is set server-side
// at creation and never changes afterwards.
type Submission struct {
	ID             int64
	ConsultantID   int64
	CompanyID      int64
	RecruiterID    int64
	PositionTitle  string
	SubmissionDate time.Time
	Status         SubmissionStatus
	RateSubmitted  *float64
	Notes          *string
	InterviewDate  *time.Time
	Feedback       *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SubmissionDetail is a submission enriched with display names resolved
// from the referenced consultant, company and recruiter rows.
type SubmissionDetail struct {
	Submission
	ConsultantFirstName string
	ConsultantLastName  string
	CompanyName         string
	RecruiterFirstName  string
	RecruiterLastName   string
}

// SubmissionStats aggregates pipeline counts over a policy-filtered set.
// AverageRate is nil when no record carries a submitted rate.
type SubmissionStats struct {
	TotalSubmissions  int64    `json:"total_submissions"`
	SubmittedCount    int64    `json:"submitted_count"`
	InterviewingCount int64    `json:"interviewing_count"`
	AcceptedCount     int64    `json:"accepted_count"`
	RejectedCount     int64    `json:"rejected_count"`
	AverageRate       *float64 `json:"average_rate"`
}
