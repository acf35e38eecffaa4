package dto

import (
	"time"

	"github.com/spec-kit/staffing-service/internal/domain"
)

const dateLayout = "2006-01-02"

// CreateSubmissionRequest payload. recruiter_id is never accepted from the
// caller; ownership comes from the authenticated principal.
type CreateSubmissionRequest struct {
	ConsultantID   int64    `json:"consultant_id"`
	CompanyID      int64    `json:"company_id"`
	PositionTitle  string   `json:"position_title"`
	SubmissionDate string   `json:"submission_date"`
	RateSubmitted  *float64 `json:"rate_submitted"`
	Notes          *string  `json:"notes"`
}

// UpdateSubmissionRequest payload; omitted fields stay unchanged.
type UpdateSubmissionRequest struct {
	ConsultantID   *int64                   `json:"consultant_id"`
	CompanyID      *int64                   `json:"company_id"`
	PositionTitle  *string                  `json:"position_title"`
	SubmissionDate *string                  `json:"submission_date"`
	Status         *domain.SubmissionStatus `json:"status"`
	RateSubmitted  *float64                 `json:"rate_submitted"`
	Notes          *string                  `json:"notes"`
	InterviewDate  *time.Time               `json:"interview_date"`
	Feedback       *string                  `json:"feedback"`
}

// SubmissionResponse is the public submission shape.
type SubmissionResponse struct {
	ID             int64                   `json:"id"`
	ConsultantID   int64                   `json:"consultant_id"`
	CompanyID      int64                   `json:"company_id"`
	RecruiterID    int64                   `json:"recruiter_id"`
	PositionTitle  string                  `json:"position_title"`
	SubmissionDate string                  `json:"submission_date"`
	Status         domain.SubmissionStatus `json:"status"`
	RateSubmitted  *float64                `json:"rate_submitted"`
	Notes          *string                 `json:"notes"`
	InterviewDate  *time.Time              `json:"interview_date"`
	Feedback       *string                 `json:"feedback"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// SubmissionDetailResponse adds the enrichment names.
type SubmissionDetailResponse struct {
	SubmissionResponse
	ConsultantFirstName string `json:"consultant_first_name"`
	ConsultantLastName  string `json:"consultant_last_name"`
	CompanyName         string `json:"company_name"`
	RecruiterFirstName  string `json:"recruiter_first_name"`
	RecruiterLastName   string `json:"recruiter_last_name"`
}

// NewSubmissionResponse maps a domain submission.
func NewSubmissionResponse(submission *domain.Submission) SubmissionResponse {
	return SubmissionResponse{
		ID:             submission.ID,
		ConsultantID:   submission.ConsultantID,
		CompanyID:      submission.CompanyID,
		RecruiterID:    submission.RecruiterID,
		PositionTitle:  submission.PositionTitle,
		SubmissionDate: submission.SubmissionDate.Format(dateLayout),
		Status:         submission.Status,
		RateSubmitted:  submission.RateSubmitted,
		Notes:          submission.Notes,
		InterviewDate:  submission.InterviewDate,
		Feedback:       submission.Feedback,
		CreatedAt:      submission.CreatedAt,
		UpdatedAt:      submission.UpdatedAt,
	}
}

// NewSubmissionDetailResponse maps an enriched submission.
func NewSubmissionDetailResponse(detail *domain.SubmissionDetail) SubmissionDetailResponse {
	return SubmissionDetailResponse{
		SubmissionResponse:  NewSubmissionResponse(&detail.Submission),
		ConsultantFirstName: detail.ConsultantFirstName,
		ConsultantLastName:  detail.ConsultantLastName,
		CompanyName:         detail.CompanyName,
		RecruiterFirstName:  detail.RecruiterFirstName,
		RecruiterLastName:   detail.RecruiterLastName,
	}
}
