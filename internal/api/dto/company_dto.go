package dto

import (
	"time"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// CompanyRequest payload for create/update.
type CompanyRequest struct {
	Name         string  `json:"name"`
	Industry     *string `json:"industry"`
	Location     *string `json:"location"`
	Website      *string `json:"website"`
	ContactEmail *string `json:"contact_email"`
	ContactPhone *string `json:"contact_phone"`
	Notes        *string `json:"notes"`
}

// CompanyResponse is the public company shape.
type CompanyResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Industry     *string   `json:"industry"`
	Location     *string   `json:"location"`
	Website      *string   `json:"website"`
	ContactEmail *string   `json:"contact_email"`
	ContactPhone *string   `json:"contact_phone"`
	Notes        *string   `json:"notes"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NewCompanyResponse maps a domain company.
func NewCompanyResponse(company *domain.Company) CompanyResponse {
	return CompanyResponse{
		ID:           company.ID,
		Name:         company.Name,
		Industry:     company.Industry,
		Location:     company.Location,
		Website:      company.Website,
		ContactEmail: company.ContactEmail,
		ContactPhone: company.ContactPhone,
		Notes:        company.Notes,
		IsActive:     company.IsActive,
		CreatedAt:    company.CreatedAt,
		UpdatedAt:    company.UpdatedAt,
	}
}
