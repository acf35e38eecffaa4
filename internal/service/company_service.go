package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/events"
	"github.com/spec-kit/staffing-service/internal/repository"
	apperrors "github.com/spec-kit/staffing-service/pkg/util"
)

// CompanyService manages the client company directory.
type CompanyService struct {
	companies  repository.CompanyRepository
	dispatcher events.Dispatcher
}

// CompanyInput carries mutable company fields.
type CompanyInput struct {
	Name         string
	Industry     *string
	Location     *string
	Website      *string
	ContactEmail *string
	ContactPhone *string
	Notes        *string
}

// NewCompanyService constructs the service.
func NewCompanyService(companies repository.CompanyRepository, dispatcher events.Dispatcher) *CompanyService {
	return &CompanyService{companies: companies, dispatcher: dispatcher}
}

// List returns all active companies ordered by name.
func (s *CompanyService) List(ctx context.Context) ([]domain.Company, error) {
	companies, err := s.companies.ListActive(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return companies, nil
}

// Create adds a company to the directory.
func (s *CompanyService) Create(ctx context.Context, input CompanyInput) (*domain.Company, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, apperrors.NewValidationError("company name is required", nil)
	}
	company := &domain.Company{
		Name:         strings.TrimSpace(input.Name),
		Industry:     input.Industry,
		Location:     input.Location,
		Website:      input.Website,
		ContactEmail: input.ContactEmail,
		ContactPhone: input.ContactPhone,
		Notes:        input.Notes,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, apperrors.MapError(err)
	}
	return company, nil
}

// Update rewrites company fields; inactive companies cannot be edited.
func (s *CompanyService) Update(ctx context.Context, id int64, input CompanyInput) (*domain.Company, error) {
	company, err := s.companies.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	if strings.TrimSpace(input.Name) != "" {
		company.Name = strings.TrimSpace(input.Name)
	}
	if input.Industry != nil {
		company.Industry = input.Industry
	}
	if input.Location != nil {
		company.Location = input.Location
	}
	if input.Website != nil {
		company.Website = input.Website
	}
	if input.ContactEmail != nil {
		company.ContactEmail = input.ContactEmail
	}
	if input.ContactPhone != nil {
		company.ContactPhone = input.ContactPhone
	}
	if input.Notes != nil {
		company.Notes = input.Notes
	}

	if err := s.companies.Update(ctx, company); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("company", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return company, nil
}

// Remove marks the company inactive.
func (s *CompanyService) Remove(ctx context.Context, principal domain.Principal, id int64) error {
	if err := s.companies.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("company", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventCompanyRemoved,
		Actor:   actorFor(principal),
		Payload: events.DirectoryRemovedPayload{RecordID: id},
	})
	return nil
}

func (s *CompanyService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}
