package dto

import (
	"time"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// ConsultantRequest payload for create/update.
type ConsultantRequest struct {
	FirstName       string                     `json:"first_name"`
	LastName        string                     `json:"last_name"`
	Email           string                     `json:"email"`
	Phone           *string                    `json:"phone"`
	Skills          []string                   `json:"skills"`
	ExperienceYears *int                       `json:"experience_years"`
	RatePerHour     *float64                   `json:"rate_per_hour"`
	Availability    *domain.AvailabilityStatus `json:"availability_status"`
	Location        *string                    `json:"location"`
	Notes           *string                    `json:"notes"`
}

// ConsultantResponse is the public consultant shape.
type ConsultantResponse struct {
	ID              int64                     `json:"id"`
	FirstName       string                    `json:"first_name"`
	LastName        string                    `json:"last_name"`
	Email           string                    `json:"email"`
	Phone           *string                   `json:"phone"`
	Skills          []string                  `json:"skills"`
	ExperienceYears *int                      `json:"experience_years"`
	RatePerHour     *float64                  `json:"rate_per_hour"`
	Availability    domain.AvailabilityStatus `json:"availability_status"`
	Location        *string                   `json:"location"`
	Notes           *string                   `json:"notes"`
	IsActive        bool                      `json:"is_active"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

// NewConsultantResponse maps a domain consultant.
func NewConsultantResponse(consultant *domain.Consultant) ConsultantResponse {
	return ConsultantResponse{
		ID:              consultant.ID,
		FirstName:       consultant.FirstName,
		LastName:        consultant.LastName,
		Email:           consultant.Email,
		Phone:           consultant.Phone,
		Skills:          consultant.Skills,
		ExperienceYears: consultant.ExperienceYears,
		RatePerHour:     consultant.RatePerHour,
		Availability:    consultant.Availability,
		Location:        consultant.Location,
		Notes:           consultant.Notes,
		IsActive:        consultant.IsActive,
		CreatedAt:       consultant.CreatedAt,
		UpdatedAt:       consultant.UpdatedAt,
	}
}
