package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// SubmissionFilter captures optional listing criteria. All set fields are
// combined with AND. RecruiterID carries the access-policy visibility
// restriction and is never populated from client input.
type SubmissionFilter struct {
	RecruiterID  *int64
	ConsultantID *int64
	CompanyID    *int64
	Status       *domain.SubmissionStatus
	StartDate    *time.Time
	EndDate      *time.Time
}

// SubmissionRepository encapsulates submission persistence.
type SubmissionRepository interface {
	Create(ctx context.Context, submission *domain.Submission) error
	Update(ctx context.Context, submission *domain.Submission) error
	GetByID(ctx context.Context, id int64) (*domain.Submission, error)
	Delete(ctx context.Context, id int64) error
	ListWithFilter(ctx context.Context, filter SubmissionFilter) ([]domain.SubmissionDetail, error)
	Stats(ctx context.Context, recruiterID *int64) (*domain.SubmissionStats, error)
}

type submissionRepository struct {
	pool *pgxpool.Pool
}

// NewSubmissionRepository instantiates repository.
func NewSubmissionRepository(pool *pgxpool.Pool) SubmissionRepository {
	return &submissionRepository{pool: pool}
}

func (r *submissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	const query = `
        INSERT INTO submissions (consultant_id, company_id, recruiter_id, position_title,
            submission_date, status, rate_submitted, notes, interview_date, feedback)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		submission.ConsultantID,
		submission.CompanyID,
		submission.RecruiterID,
		submission.PositionTitle,
		submission.SubmissionDate,
		submission.Status,
		submission.RateSubmitted,
		submission.Notes,
		submission.InterviewDate,
		submission.Feedback,
	).Scan(&submission.ID, &submission.CreatedAt, &submission.UpdatedAt)
}

// Update rewrites every mutable column; recruiter_id is deliberately absent
// from the SET list so ownership can never change through this path.
func (r *submissionRepository) Update(ctx context.Context, submission *domain.Submission) error {
	const query = `
        UPDATE submissions SET consultant_id=$1, company_id=$2, position_title=$3,
            submission_date=$4, status=$5, rate_submitted=$6, notes=$7,
            interview_date=$8, feedback=$9, updated_at=NOW()
        WHERE id=$10
        RETURNING updated_at`
	return r.pool.QueryRow(ctx, query,
		submission.ConsultantID,
		submission.CompanyID,
		submission.PositionTitle,
		submission.SubmissionDate,
		submission.Status,
		submission.RateSubmitted,
		submission.Notes,
		submission.InterviewDate,
		submission.Feedback,
		submission.ID,
	).Scan(&submission.UpdatedAt)
}

func (r *submissionRepository) GetByID(ctx context.Context, id int64) (*domain.Submission, error) {
	const query = `
        SELECT id, consultant_id, company_id, recruiter_id, position_title, submission_date,
               status, rate_submitted, notes, interview_date, feedback, created_at, updated_at
        FROM submissions WHERE id=$1`
	var submission domain.Submission
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&submission.ID,
		&submission.ConsultantID,
		&submission.CompanyID,
		&submission.RecruiterID,
		&submission.PositionTitle,
		&submission.SubmissionDate,
		&submission.Status,
		&submission.RateSubmitted,
		&submission.Notes,
		&submission.InterviewDate,
		&submission.Feedback,
		&submission.CreatedAt,
		&submission.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &submission, nil
}

func (r *submissionRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM submissions WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *submissionRepository) ListWithFilter(ctx context.Context, filter SubmissionFilter) ([]domain.SubmissionDetail, error) {
	query, args := buildListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissionDetails(rows)
}

// buildListQuery composes the enriched listing query from the filter using
// positional binding for every dynamic predicate.
func buildListQuery(filter SubmissionFilter) (string, []any) {
	base := `SELECT s.id, s.consultant_id, s.company_id, s.recruiter_id, s.position_title,
                    s.submission_date, s.status, s.rate_submitted, s.notes, s.interview_date,
                    s.feedback, s.created_at, s.updated_at,
                    c.first_name, c.last_name, comp.name, u.first_name, u.last_name
             FROM submissions s
             JOIN consultants c ON s.consultant_id = c.id
             JOIN companies comp ON s.company_id = comp.id
             JOIN users u ON s.recruiter_id = u.id`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.RecruiterID != nil {
		args = append(args, *filter.RecruiterID)
		clauses = append(clauses, fmt.Sprintf("s.recruiter_id=$%d", len(args)))
	}
	if filter.ConsultantID != nil {
		args = append(args, *filter.ConsultantID)
		clauses = append(clauses, fmt.Sprintf("s.consultant_id=$%d", len(args)))
	}
	if filter.CompanyID != nil {
		args = append(args, *filter.CompanyID)
		clauses = append(clauses, fmt.Sprintf("s.company_id=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("s.status=$%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		clauses = append(clauses, fmt.Sprintf("s.submission_date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		clauses = append(clauses, fmt.Sprintf("s.submission_date <= $%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY s.submission_date DESC, s.id DESC`,
		base, strings.Join(clauses, " AND "))
	return query, args
}

func scanSubmissionDetails(rows pgx.Rows) ([]domain.SubmissionDetail, error) {
	var result []domain.SubmissionDetail
	for rows.Next() {
		var detail domain.SubmissionDetail
		if err := rows.Scan(
			&detail.ID,
			&detail.ConsultantID,
			&detail.CompanyID,
			&detail.RecruiterID,
			&detail.PositionTitle,
			&detail.SubmissionDate,
			&detail.Status,
			&detail.RateSubmitted,
			&detail.Notes,
			&detail.InterviewDate,
			&detail.Feedback,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.ConsultantFirstName,
			&detail.ConsultantLastName,
			&detail.CompanyName,
			&detail.RecruiterFirstName,
			&detail.RecruiterLastName,
		); err != nil {
			return nil, err
		}
		result = append(result, detail)
	}
	return result, rows.Err()
}

// Stats computes the aggregate over all submissions, or over a single
// recruiter's submissions when recruiterID is set. Withdrawn records count
// toward the total but carry no named counter. AVG skips NULL rates.
func (r *submissionRepository) Stats(ctx context.Context, recruiterID *int64) (*domain.SubmissionStats, error) {
	query := `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE status = 'submitted'),
               COUNT(*) FILTER (WHERE status = 'interviewing'),
               COUNT(*) FILTER (WHERE status = 'accepted'),
               COUNT(*) FILTER (WHERE status = 'rejected'),
               AVG(rate_submitted)
        FROM submissions`
	args := []any{}
	if recruiterID != nil {
		query += ` WHERE recruiter_id=$1`
		args = append(args, *recruiterID)
	}

	var stats domain.SubmissionStats
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&stats.TotalSubmissions,
		&stats.SubmittedCount,
		&stats.InterviewingCount,
		&stats.AcceptedCount,
		&stats.RejectedCount,
		&stats.AverageRate,
	); err != nil {
		return nil, err
	}
	return &stats, nil
}
