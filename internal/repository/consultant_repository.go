package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// ConsultantRepository encapsulates consultant persistence. Reads consider
// active rows only; removal flips is_active instead of deleting.
type ConsultantRepository interface {
	Create(ctx context.Context, consultant *domain.Consultant) error
	Update(ctx context.Context, consultant *domain.Consultant) error
	GetByID(ctx context.Context, id int64) (*domain.Consultant, error)
	ListActive(ctx context.Context) ([]domain.Consultant, error)
	SoftDelete(ctx context.Context, id int64) error
}

type consultantRepository struct {
	pool *pgxpool.Pool
}

// NewConsultantRepository instantiates repository.
func NewConsultantRepository(pool *pgxpool.Pool) ConsultantRepository {
	return &consultantRepository{pool: pool}
}

func (r *consultantRepository) Create(ctx context.Context, consultant *domain.Consultant) error {
	const query = `
        INSERT INTO consultants (first_name, last_name, email, phone, skills, experience_years,
            rate_per_hour, availability_status, location, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
        RETURNING id, is_active, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		consultant.FirstName,
		consultant.LastName,
		consultant.Email,
		consultant.Phone,
		consultant.Skills,
		consultant.ExperienceYears,
		consultant.RatePerHour,
		consultant.Availability,
		consultant.Location,
		consultant.Notes,
	).Scan(&consultant.ID, &consultant.IsActive, &consultant.CreatedAt, &consultant.UpdatedAt)
}

func (r *consultantRepository) Update(ctx context.Context, consultant *domain.Consultant) error {
	const query = `
        UPDATE consultants SET first_name=$1, last_name=$2, email=$3, phone=$4, skills=$5,
            experience_years=$6, rate_per_hour=$7, availability_status=$8, location=$9,
            notes=$10, updated_at=NOW()
        WHERE id=$11 AND is_active=TRUE`
	cmd, err := r.pool.Exec(ctx, query,
		consultant.FirstName,
		consultant.LastName,
		consultant.Email,
		consultant.Phone,
		consultant.Skills,
		consultant.ExperienceYears,
		consultant.RatePerHour,
		consultant.Availability,
		consultant.Location,
		consultant.Notes,
		consultant.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *consultantRepository) GetByID(ctx context.Context, id int64) (*domain.Consultant, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, skills, experience_years,
               rate_per_hour, availability_status, location, notes, is_active, created_at, updated_at
        FROM consultants WHERE id=$1 AND is_active=TRUE`
	var consultant domain.Consultant
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&consultant.ID,
		&consultant.FirstName,
		&consultant.LastName,
		&consultant.Email,
		&consultant.Phone,
		&consultant.Skills,
		&consultant.ExperienceYears,
		&consultant.RatePerHour,
		&consultant.Availability,
		&consultant.Location,
		&consultant.Notes,
		&consultant.IsActive,
		&consultant.CreatedAt,
		&consultant.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &consultant, nil
}

func (r *consultantRepository) ListActive(ctx context.Context) ([]domain.Consultant, error) {
	const query = `
        SELECT id, first_name, last_name, email, phone, skills, experience_years,
               rate_per_hour, availability_status, location, notes, is_active, created_at, updated_at
        FROM consultants WHERE is_active=TRUE
        ORDER BY first_name, last_name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Consultant
	for rows.Next() {
		var consultant domain.Consultant
		if err := rows.Scan(
			&consultant.ID,
			&consultant.FirstName,
			&consultant.LastName,
			&consultant.Email,
			&consultant.Phone,
			&consultant.Skills,
			&consultant.ExperienceYears,
			&consultant.RatePerHour,
			&consultant.Availability,
			&consultant.Location,
			&consultant.Notes,
			&consultant.IsActive,
			&consultant.CreatedAt,
			&consultant.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, consultant)
	}
	return result, rows.Err()
}

func (r *consultantRepository) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE consultants SET is_active=FALSE, updated_at=NOW() WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
