package events

import (
	"time"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventSubmissionCreated EventType = "submission_created"
	EventSubmissionUpdated EventType = "submission_updated"
	EventSubmissionDeleted EventType = "submission_deleted"
	EventConsultantRemoved EventType = "consultant_removed"
	EventCompanyRemoved    EventType = "company_removed"
)

// Actor identifies the user behind an event.
type Actor struct {
	UserID int64           `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Actor     Actor       `json:"actor"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// SubmissionCreatedPayload payload.
type SubmissionCreatedPayload struct {
	SubmissionID  int64                   `json:"submission_id"`
	ConsultantID  int64                   `json:"consultant_id"`
	CompanyID     int64                   `json:"company_id"`
	PositionTitle string                  `json:"position_title"`
	Status        domain.SubmissionStatus `json:"status"`
}

// SubmissionUpdatedPayload payload.
type SubmissionUpdatedPayload struct {
	SubmissionID int64                   `json:"submission_id"`
	OldStatus    domain.SubmissionStatus `json:"old_status"`
	NewStatus    domain.SubmissionStatus `json:"new_status"`
}

// SubmissionDeletedPayload payload.
type SubmissionDeletedPayload struct {
	SubmissionID int64 `json:"submission_id"`
}

// DirectoryRemovedPayload payload for consultant/company soft deletes.
type DirectoryRemovedPayload struct {
	RecordID int64 `json:"record_id"`
}
