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

// ConsultantService manages the consultant directory.
type ConsultantService struct {
	consultants repository.ConsultantRepository
	dispatcher  events.Dispatcher
}

// ConsultantInput carries mutable consultant fields.
type ConsultantInput struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           *string
	Skills          []string
	ExperienceYears *int
	RatePerHour     *float64
	Availability    *domain.AvailabilityStatus
	Location        *string
	Notes           *string
}

// NewConsultantService constructs the service.
func NewConsultantService(consultants repository.ConsultantRepository, dispatcher events.Dispatcher) *ConsultantService {
	return &ConsultantService{consultants: consultants, dispatcher: dispatcher}
}

// List returns all active consultants ordered by name.
func (s *ConsultantService) List(ctx context.Context) ([]domain.Consultant, error) {
	consultants, err := s.consultants.ListActive(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return consultants, nil
}

// Get fetches a single active consultant.
func (s *ConsultantService) Get(ctx context.Context, id int64) (*domain.Consultant, error) {
	consultant, err := s.consultants.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("consultant", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return consultant, nil
}

// Create adds a consultant to the directory.
func (s *ConsultantService) Create(ctx context.Context, input ConsultantInput) (*domain.Consultant, error) {
	if strings.TrimSpace(input.FirstName) == "" || strings.TrimSpace(input.LastName) == "" ||
		strings.TrimSpace(input.Email) == "" {
		return nil, apperrors.NewValidationError("first name, last name, and email are required", nil)
	}
	availability := domain.AvailabilityAvailable
	if input.Availability != nil {
		if !domain.ValidAvailability(*input.Availability) {
			return nil, apperrors.NewValidationError("unknown availability status", map[string]any{"availability_status": *input.Availability})
		}
		availability = *input.Availability
	}

	consultant := &domain.Consultant{
		FirstName:       strings.TrimSpace(input.FirstName),
		LastName:        strings.TrimSpace(input.LastName),
		Email:           strings.TrimSpace(input.Email),
		Phone:           input.Phone,
		Skills:          input.Skills,
		ExperienceYears: input.ExperienceYears,
		RatePerHour:     input.RatePerHour,
		Availability:    availability,
		Location:        input.Location,
		Notes:           input.Notes,
	}
	if consultant.Skills == nil {
		consultant.Skills = []string{}
	}
	if err := s.consultants.Create(ctx, consultant); err != nil {
		return nil, apperrors.MapError(err)
	}
	return consultant, nil
}

// Update rewrites consultant fields; inactive consultants cannot be edited.
func (s *ConsultantService) Update(ctx context.Context, id int64, input ConsultantInput) (*domain.Consultant, error) {
	consultant, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Availability != nil && !domain.ValidAvailability(*input.Availability) {
		return nil, apperrors.NewValidationError("unknown availability status", map[string]any{"availability_status": *input.Availability})
	}

	if strings.TrimSpace(input.FirstName) != "" {
		consultant.FirstName = strings.TrimSpace(input.FirstName)
	}
	if strings.TrimSpace(input.LastName) != "" {
		consultant.LastName = strings.TrimSpace(input.LastName)
	}
	if strings.TrimSpace(input.Email) != "" {
		consultant.Email = strings.TrimSpace(input.Email)
	}
	if input.Phone != nil {
		consultant.Phone = input.Phone
	}
	if input.Skills != nil {
		consultant.Skills = input.Skills
	}
	if input.ExperienceYears != nil {
		consultant.ExperienceYears = input.ExperienceYears
	}
	if input.RatePerHour != nil {
		consultant.RatePerHour = input.RatePerHour
	}
	if input.Availability != nil {
		consultant.Availability = *input.Availability
	}
	if input.Location != nil {
		consultant.Location = input.Location
	}
	if input.Notes != nil {
		consultant.Notes = input.Notes
	}

	if err := s.consultants.Update(ctx, consultant); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("consultant", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return consultant, nil
}

// Remove marks the consultant inactive. Historical submissions keep their
// reference.
func (s *ConsultantService) Remove(ctx context.Context, principal domain.Principal, id int64) error {
	if err := s.consultants.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("consultant", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	s.publish(ctx, events.Event{
		Type:    events.EventConsultantRemoved,
		Actor:   actorFor(principal),
		Payload: events.DirectoryRemovedPayload{RecordID: id},
	})
	return nil
}

func (s *ConsultantService) publish(ctx context.Context, event events.Event) {
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
