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

// SubmissionStatsCache keeps the stats aggregate per principal scope. The
// redis-backed implementation lives in internal/cache; every mutation must
// invalidate the owning recruiter's scope and the unscoped admin scope.
type SubmissionStatsCache interface {
	Get(ctx context.Context, recruiterID *int64) *domain.SubmissionStats
	Set(ctx context.Context, recruiterID *int64, stats *domain.SubmissionStats)
	Invalidate(ctx context.Context, recruiterID int64)
}

// SubmissionService coordinates submission workflows: policy-scoped reads,
// ownership-checked mutations and the stats aggregate.
type SubmissionService struct {
	submissions repository.SubmissionRepository
	statsCache  SubmissionStatsCache
	dispatcher  events.Dispatcher
}

// SubmissionDependencies bundles collaborators for the service.
type SubmissionDependencies struct {
	SubmissionRepo repository.SubmissionRepository
	StatsCache     SubmissionStatsCache
	Dispatcher     events.Dispatcher
}

// SubmissionListFilter describes caller-supplied listing filters.
type SubmissionListFilter struct {
	ConsultantID *int64
	CompanyID    *int64
	Status       *domain.SubmissionStatus
	StartDate    *time.Time
	EndDate      *time.Time
}

// SubmissionCreateInput describes creation payload. RecruiterID never
// appears here: ownership always comes from the authenticated principal.
type SubmissionCreateInput struct {
	ConsultantID   int64
	CompanyID      int64
	PositionTitle  string
	SubmissionDate *time.Time
	RateSubmitted  *float64
	Notes          *string
}

// SubmissionUpdateInput describes a partial update; nil fields are left
// unchanged.
type SubmissionUpdateInput struct {
	ConsultantID   *int64
	CompanyID      *int64
	PositionTitle  *string
	SubmissionDate *time.Time
	Status         *domain.SubmissionStatus
	RateSubmitted  *float64
	Notes          *string
	InterviewDate  *time.Time
	Feedback       *string
}

// NewSubmissionService constructs the service.
func NewSubmissionService(deps SubmissionDependencies) *SubmissionService {
	return &SubmissionService{
		submissions: deps.SubmissionRepo,
		statsCache:  deps.StatsCache,
		dispatcher:  deps.Dispatcher,
	}
}

// List returns enriched submissions visible to the principal, newest first.
// The visibility restriction is injected here and cannot be overridden by
// filter parameters.
func (s *SubmissionService) List(ctx context.Context, principal domain.Principal, filter SubmissionListFilter) ([]domain.SubmissionDetail, error) {
	if filter.Status != nil && !domain.ValidSubmissionStatus(*filter.Status) {
		return nil, apperrors.NewValidationError("unknown status filter", map[string]any{"status": *filter.Status})
	}
	repoFilter := repository.SubmissionFilter{
		RecruiterID:  VisibleRecruiterID(principal),
		ConsultantID: filter.ConsultantID,
		CompanyID:    filter.CompanyID,
		Status:       filter.Status,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
	}
	return s.submissions.ListWithFilter(ctx, repoFilter)
}

// Create records a new submission owned by the principal.
func (s *SubmissionService) Create(ctx context.Context, principal domain.Principal, input SubmissionCreateInput) (*domain.Submission, error) {
	if input.ConsultantID == 0 || input.CompanyID == 0 ||
		strings.TrimSpace(input.PositionTitle) == "" || input.SubmissionDate == nil {
		return nil, apperrors.NewValidationError(
			"consultant, company, position title, and submission date are required", nil)
	}

	submission := &domain.Submission{
		ConsultantID:   input.ConsultantID,
		CompanyID:      input.CompanyID,
		RecruiterID:    principal.ID,
		PositionTitle:  strings.TrimSpace(input.PositionTitle),
		SubmissionDate: *input.SubmissionDate,
		Status:         domain.SubmissionStatusSubmitted,
		RateSubmitted:  input.RateSubmitted,
		Notes:          input.Notes,
	}
	if err := s.submissions.Create(ctx, submission); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.invalidateStats(ctx, submission.RecruiterID)
	s.publishEvent(ctx, events.Event{
		Type:  events.EventSubmissionCreated,
		Actor: actorFor(principal),
		Payload: events.SubmissionCreatedPayload{
			SubmissionID:  submission.ID,
			ConsultantID:  submission.ConsultantID,
			CompanyID:     submission.CompanyID,
			PositionTitle: submission.PositionTitle,
			Status:        submission.Status,
		},
	})
	return submission, nil
}

// Update applies the supplied fields to a submission after the policy check.
// Existence is verified before ownership so a missing record reports
// Not-Found rather than Access-Denied.
func (s *SubmissionService) Update(ctx context.Context, principal domain.Principal, id int64, input SubmissionUpdateInput) (*domain.Submission, error) {
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("submission", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}
	if !CanMutateSubmission(principal, submission.RecruiterID) {
		return nil, apperrors.NewForbidden("access denied")
	}
	if input.Status != nil && !domain.ValidSubmissionStatus(*input.Status) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": *input.Status})
	}

	oldStatus := submission.Status
	applyUpdate(submission, input)

	if err := s.submissions.Update(ctx, submission); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("submission", map[string]any{"id": id})
		}
		return nil, apperrors.MapError(err)
	}

	s.invalidateStats(ctx, submission.RecruiterID)
	s.publishEvent(ctx, events.Event{
		Type:  events.EventSubmissionUpdated,
		Actor: actorFor(principal),
		Payload: events.SubmissionUpdatedPayload{
			SubmissionID: submission.ID,
			OldStatus:    oldStatus,
			NewStatus:    submission.Status,
		},
	})
	return submission, nil
}

// Delete permanently removes a submission after the policy check.
func (s *SubmissionService) Delete(ctx context.Context, principal domain.Principal, id int64) error {
	submission, err := s.submissions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("submission", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}
	if !CanMutateSubmission(principal, submission.RecruiterID) {
		return apperrors.NewForbidden("access denied")
	}

	if err := s.submissions.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("submission", map[string]any{"id": id})
		}
		return apperrors.MapError(err)
	}

	s.invalidateStats(ctx, submission.RecruiterID)
	s.publishEvent(ctx, events.Event{
		Type:    events.EventSubmissionDeleted,
		Actor:   actorFor(principal),
		Payload: events.SubmissionDeletedPayload{SubmissionID: id},
	})
	return nil
}

// Stats computes the aggregate over the principal's visible submissions,
// served from cache when fresh.
func (s *SubmissionService) Stats(ctx context.Context, principal domain.Principal) (*domain.SubmissionStats, error) {
	scope := VisibleRecruiterID(principal)
	if s.statsCache != nil {
		if cached := s.statsCache.Get(ctx, scope); cached != nil {
			return cached, nil
		}
	}
	stats, err := s.submissions.Stats(ctx, scope)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if s.statsCache != nil {
		s.statsCache.Set(ctx, scope, stats)
	}
	return stats, nil
}

func (s *SubmissionService) invalidateStats(ctx context.Context, recruiterID int64) {
	if s.statsCache != nil {
		s.statsCache.Invalidate(ctx, recruiterID)
	}
}

func applyUpdate(submission *domain.Submission, input SubmissionUpdateInput) {
	if input.ConsultantID != nil {
		submission.ConsultantID = *input.ConsultantID
	}
	if input.CompanyID != nil {
		submission.CompanyID = *input.CompanyID
	}
	if input.PositionTitle != nil {
		submission.PositionTitle = strings.TrimSpace(*input.PositionTitle)
	}
	if input.SubmissionDate != nil {
		submission.SubmissionDate = *input.SubmissionDate
	}
	if input.Status != nil {
		submission.Status = *input.Status
	}
	if input.RateSubmitted != nil {
		submission.RateSubmitted = input.RateSubmitted
	}
	if input.Notes != nil {
		submission.Notes = input.Notes
	}
	if input.InterviewDate != nil {
		submission.InterviewDate = input.InterviewDate
	}
	if input.Feedback != nil {
		submission.Feedback = input.Feedback
	}
}

func (s *SubmissionService) publishEvent(ctx context.Context, event events.Event) {
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

func actorFor(principal domain.Principal) events.Actor {
	return events.Actor{UserID: principal.ID, Role: principal.Role}
}
