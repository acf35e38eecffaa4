package service

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/staffing-service/internal/domain"
	"github.com/spec-kit/staffing-service/internal/repository"
	apperrors "github.com/spec-kit/staffing-service/pkg/util"
)

type fakeSubmissionRepo struct {
	mu     sync.Mutex
	nextID int64
	rows   map[int64]*domain.Submission
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{nextID: 1, rows: make(map[int64]*domain.Submission)}
}

func (r *fakeSubmissionRepo) Create(_ context.Context, submission *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	submission.ID = r.nextID
	r.nextID++
	now := time.Now()
	submission.CreatedAt = now
	submission.UpdatedAt = now
	clone := *submission
	r.rows[submission.ID] = &clone
	return nil
}

func (r *fakeSubmissionRepo) Update(_ context.Context, submission *domain.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[submission.ID]; !ok {
		return pgx.ErrNoRows
	}
	submission.UpdatedAt = time.Now()
	clone := *submission
	r.rows[submission.ID] = &clone
	return nil
}

func (r *fakeSubmissionRepo) GetByID(_ context.Context, id int64) (*domain.Submission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	row, ok := r.rows[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *row
	return &clone, nil
}

func (r *fakeSubmissionRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.rows, id)
	return nil
}

func (r *fakeSubmissionRepo) ListWithFilter(_ context.Context, filter repository.SubmissionFilter) ([]domain.SubmissionDetail, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []domain.SubmissionDetail
	for _, row := range r.rows {
		if filter.RecruiterID != nil && row.RecruiterID != *filter.RecruiterID {
			continue
		}
		if filter.ConsultantID != nil && row.ConsultantID != *filter.ConsultantID {
			continue
		}
		if filter.CompanyID != nil && row.CompanyID != *filter.CompanyID {
			continue
		}
		if filter.Status != nil && row.Status != *filter.Status {
			continue
		}
		if filter.StartDate != nil && row.SubmissionDate.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && row.SubmissionDate.After(*filter.EndDate) {
			continue
		}
		result = append(result, domain.SubmissionDetail{Submission: *row})
	}
	return result, nil
}

func (r *fakeSubmissionRepo) Stats(_ context.Context, recruiterID *int64) (*domain.SubmissionStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := &domain.SubmissionStats{}
	var rateSum float64
	var rateCount int64
	for _, row := range r.rows {
		if recruiterID != nil && row.RecruiterID != *recruiterID {
			continue
		}
		stats.TotalSubmissions++
		switch row.Status {
		case domain.SubmissionStatusSubmitted:
			stats.SubmittedCount++
		case domain.SubmissionStatusInterviewing:
			stats.InterviewingCount++
		case domain.SubmissionStatusAccepted:
			stats.AcceptedCount++
		case domain.SubmissionStatusRejected:
			stats.RejectedCount++
		}
		if row.RateSubmitted != nil {
			rateSum += *row.RateSubmitted
			rateCount++
		}
	}
	if rateCount > 0 {
		avg := rateSum / float64(rateCount)
		stats.AverageRate = &avg
	}
	return stats, nil
}

func newTestService(repo repository.SubmissionRepository) *SubmissionService {
	return NewSubmissionService(SubmissionDependencies{SubmissionRepo: repo})
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func statusCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	return apperrors.ToDomainError(err).HTTPStatus
}

func seedSubmission(t *testing.T, svc *SubmissionService, recruiterID int64) *domain.Submission {
	t.Helper()
	principal := domain.Principal{ID: recruiterID, Role: domain.RoleRecruiter}
	submission, err := svc.Create(context.Background(), principal, SubmissionCreateInput{
		ConsultantID:   1,
		CompanyID:      2,
		PositionTitle:  "Senior Engineer",
		SubmissionDate: datePtr(2024, time.March, 10),
	})
	if err != nil {
		t.Fatalf("seed submission: %v", err)
	}
	return submission
}

func TestCreateForcesRecruiterID(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	principal := domain.Principal{ID: 5, Role: domain.RoleRecruiter}

	submission, err := svc.Create(context.Background(), principal, SubmissionCreateInput{
		ConsultantID:   1,
		CompanyID:      2,
		PositionTitle:  "Data Engineer",
		SubmissionDate: datePtr(2024, time.January, 15),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if submission.RecruiterID != 5 {
		t.Fatalf("recruiter_id: want 5, got %d", submission.RecruiterID)
	}
	if submission.Status != domain.SubmissionStatusSubmitted {
		t.Fatalf("status default: want submitted, got %s", submission.Status)
	}
}

func TestCreateMissingRequiredFields(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	principal := domain.Principal{ID: 5, Role: domain.RoleRecruiter}

	_, err := svc.Create(context.Background(), principal, SubmissionCreateInput{
		ConsultantID:   1,
		CompanyID:      2,
		SubmissionDate: datePtr(2024, time.January, 15),
	})
	if code := statusCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", code)
	}
}

func TestRecruiterListExcludesForeignSubmissions(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	seedSubmission(t, svc, 5)
	seedSubmission(t, svc, 6)

	r1 := domain.Principal{ID: 5, Role: domain.RoleRecruiter}
	listed, err := svc.List(context.Background(), r1, SubmissionListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("want 1 visible submission, got %d", len(listed))
	}
	if listed[0].RecruiterID != 5 {
		t.Fatalf("leaked foreign submission owned by %d", listed[0].RecruiterID)
	}
}

func TestAdminListSeesAll(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	seedSubmission(t, svc, 5)
	seedSubmission(t, svc, 6)

	admin := domain.Principal{ID: 1, Role: domain.RoleAdmin}
	listed, err := svc.List(context.Background(), admin, SubmissionListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("want 2 submissions, got %d", len(listed))
	}
}

func TestStatusFilterExactMatch(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := newTestService(repo)
	first := seedSubmission(t, svc, 5)
	seedSubmission(t, svc, 5)

	admin := domain.Principal{ID: 1, Role: domain.RoleAdmin}
	accepted := domain.SubmissionStatusAccepted
	if _, err := svc.Update(context.Background(), admin, first.ID, SubmissionUpdateInput{Status: &accepted}); err != nil {
		t.Fatalf("update: %v", err)
	}

	listed, err := svc.List(context.Background(), admin, SubmissionListFilter{Status: &accepted})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("want 1 accepted submission, got %d", len(listed))
	}
	if listed[0].Status != domain.SubmissionStatusAccepted {
		t.Fatalf("want accepted, got %s", listed[0].Status)
	}
}

func TestUpdateForeignSubmissionForbidden(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	submission := seedSubmission(t, svc, 5)

	r2 := domain.Principal{ID: 6, Role: domain.RoleRecruiter}
	title := "Staff Engineer"
	_, err := svc.Update(context.Background(), r2, submission.ID, SubmissionUpdateInput{PositionTitle: &title})
	if code := statusCode(t, err); code != http.StatusForbidden {
		t.Fatalf("want 403, got %d", code)
	}

	admin := domain.Principal{ID: 1, Role: domain.RoleAdmin}
	updated, err := svc.Update(context.Background(), admin, submission.ID, SubmissionUpdateInput{PositionTitle: &title})
	if err != nil {
		t.Fatalf("admin update: %v", err)
	}
	if updated.PositionTitle != "Staff Engineer" {
		t.Fatalf("title not applied: %s", updated.PositionTitle)
	}
}

func TestUpdateMissingSubmissionNotFound(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	// Not-Found must win over Access-Denied when the record does not exist,
	// even for a recruiter who could not have owned it.
	r2 := domain.Principal{ID: 6, Role: domain.RoleRecruiter}
	title := "Anything"
	_, err := svc.Update(context.Background(), r2, 12345, SubmissionUpdateInput{PositionTitle: &title})
	if code := statusCode(t, err); code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", code)
	}
}

func TestPartialUpdatePreservesOmittedFields(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	owner := domain.Principal{ID: 5, Role: domain.RoleRecruiter}
	rate := 120.0
	notes := "initial notes"
	submission, err := svc.Create(context.Background(), owner, SubmissionCreateInput{
		ConsultantID:   1,
		CompanyID:      2,
		PositionTitle:  "Backend Engineer",
		SubmissionDate: datePtr(2024, time.February, 1),
		RateSubmitted:  &rate,
		Notes:          &notes,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	interviewing := domain.SubmissionStatusInterviewing
	updated, err := svc.Update(context.Background(), owner, submission.ID, SubmissionUpdateInput{Status: &interviewing})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.SubmissionStatusInterviewing {
		t.Fatalf("status not applied: %s", updated.Status)
	}
	if updated.RateSubmitted == nil || *updated.RateSubmitted != 120.0 {
		t.Fatal("rate_submitted changed by omitted field")
	}
	if updated.Notes == nil || *updated.Notes != "initial notes" {
		t.Fatal("notes changed by omitted field")
	}
	if updated.PositionTitle != "Backend Engineer" {
		t.Fatalf("position_title changed: %s", updated.PositionTitle)
	}
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	submission := seedSubmission(t, svc, 5)

	owner := domain.Principal{ID: 5, Role: domain.RoleRecruiter}
	bogus := domain.SubmissionStatus("ghosted")
	_, err := svc.Update(context.Background(), owner, submission.ID, SubmissionUpdateInput{Status: &bogus})
	if code := statusCode(t, err); code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", code)
	}
}

func TestDeleteOwnershipAndNotFound(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	submission := seedSubmission(t, svc, 5)

	r2 := domain.Principal{ID: 6, Role: domain.RoleRecruiter}
	if code := statusCode(t, svc.Delete(context.Background(), r2, submission.ID)); code != http.StatusForbidden {
		t.Fatalf("foreign delete: want 403, got %d", code)
	}

	owner := domain.Principal{ID: 5, Role: domain.RoleRecruiter}
	if err := svc.Delete(context.Background(), owner, submission.ID); err != nil {
		t.Fatalf("owner delete: %v", err)
	}
	if code := statusCode(t, svc.Delete(context.Background(), owner, submission.ID)); code != http.StatusNotFound {
		t.Fatalf("repeat delete: want 404, got %d", code)
	}
}

func TestStatsEmptySet(t *testing.T) {
	svc := newTestService(newFakeSubmissionRepo())
	recruiter := domain.Principal{ID: 5, Role: domain.RoleRecruiter}

	stats, err := svc.Stats(context.Background(), recruiter)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSubmissions != 0 || stats.SubmittedCount != 0 || stats.InterviewingCount != 0 ||
		stats.AcceptedCount != 0 || stats.RejectedCount != 0 {
		t.Fatalf("want all-zero counts, got %+v", stats)
	}
	if stats.AverageRate != nil {
		t.Fatalf("want nil average, got %f", *stats.AverageRate)
	}
}

func TestStatsScopedToRecruiter(t *testing.T) {
	repo := newFakeSubmissionRepo()
	svc := newTestService(repo)

	r1 := domain.Principal{ID: 5, Role: domain.RoleRecruiter}
	rate := 100.0
	if _, err := svc.Create(context.Background(), r1, SubmissionCreateInput{
		ConsultantID:   1,
		CompanyID:      2,
		PositionTitle:  "Engineer",
		SubmissionDate: datePtr(2024, time.March, 1),
		RateSubmitted:  &rate,
	}); err != nil {
		t.Fatalf("create: %v", err)
	}
	seedSubmission(t, svc, 6)

	stats, err := svc.Stats(context.Background(), r1)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSubmissions != 1 {
		t.Fatalf("recruiter stats leaked: total %d", stats.TotalSubmissions)
	}
	if stats.AverageRate == nil || *stats.AverageRate != 100.0 {
		t.Fatal("average rate not computed over owned set")
	}

	admin := domain.Principal{ID: 1, Role: domain.RoleAdmin}
	adminStats, err := svc.Stats(context.Background(), admin)
	if err != nil {
		t.Fatalf("admin stats: %v", err)
	}
	if adminStats.TotalSubmissions != 2 {
		t.Fatalf("admin stats: want 2, got %d", adminStats.TotalSubmissions)
	}
}

func TestStoreFailurePassesThroughOpaque(t *testing.T) {
	svc := newTestService(&failingSubmissionRepo{})
	admin := domain.Principal{ID: 1, Role: domain.RoleAdmin}
	_, err := svc.Stats(context.Background(), admin)
	de := apperrors.ToDomainError(err)
	if de == nil || de.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("want opaque 500, got %v", err)
	}
	if de.Message != "internal server error" {
		t.Fatalf("internal detail leaked: %q", de.Message)
	}
}

type failingSubmissionRepo struct{}

var errStore = errors.New("connection reset")

func (r *failingSubmissionRepo) Create(context.Context, *domain.Submission) error { return errStore }
func (r *failingSubmissionRepo) Update(context.Context, *domain.Submission) error { return errStore }
func (r *failingSubmissionRepo) GetByID(context.Context, int64) (*domain.Submission, error) {
	return nil, errStore
}
func (r *failingSubmissionRepo) Delete(context.Context, int64) error { return errStore }
func (r *failingSubmissionRepo) ListWithFilter(context.Context, repository.SubmissionFilter) ([]domain.SubmissionDetail, error) {
	return nil, errStore
}
func (r *failingSubmissionRepo) Stats(context.Context, *int64) (*domain.SubmissionStats, error) {
	return nil, errStore
}
