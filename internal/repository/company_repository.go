package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/staffing-service/internal/domain"
)

// CompanyRepository encapsulates company persistence.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	Update(ctx context.Context, company *domain.Company) error
	GetByID(ctx context.Context, id int64) (*domain.Company, error)
	ListActive(ctx context.Context) ([]domain.Company, error)
	SoftDelete(ctx context.Context, id int64) error
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository instantiates repository.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (name, industry, location, website, contact_email, contact_phone, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, is_active, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		company.Name,
		company.Industry,
		company.Location,
		company.Website,
		company.ContactEmail,
		company.ContactPhone,
		company.Notes,
	).Scan(&company.ID, &company.IsActive, &company.CreatedAt, &company.UpdatedAt)
}

func (r *companyRepository) Update(ctx context.Context, company *domain.Company) error {
	const query = `
        UPDATE companies SET name=$1, industry=$2, location=$3, website=$4,
            contact_email=$5, contact_phone=$6, notes=$7, updated_at=NOW()
        WHERE id=$8 AND is_active=TRUE`
	cmd, err := r.pool.Exec(ctx, query,
		company.Name,
		company.Industry,
		company.Location,
		company.Website,
		company.ContactEmail,
		company.ContactPhone,
		company.Notes,
		company.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *companyRepository) GetByID(ctx context.Context, id int64) (*domain.Company, error) {
	const query = `
        SELECT id, name, industry, location, website, contact_email, contact_phone, notes,
               is_active, created_at, updated_at
        FROM companies WHERE id=$1 AND is_active=TRUE`
	var company domain.Company
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&company.ID,
		&company.Name,
		&company.Industry,
		&company.Location,
		&company.Website,
		&company.ContactEmail,
		&company.ContactPhone,
		&company.Notes,
		&company.IsActive,
		&company.CreatedAt,
		&company.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *companyRepository) ListActive(ctx context.Context) ([]domain.Company, error) {
	const query = `
        SELECT id, name, industry, location, website, contact_email, contact_phone, notes,
               is_active, created_at, updated_at
        FROM companies WHERE is_active=TRUE
        ORDER BY name`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Company
	for rows.Next() {
		var company domain.Company
		if err := rows.Scan(
			&company.ID,
			&company.Name,
			&company.Industry,
			&company.Location,
			&company.Website,
			&company.ContactEmail,
			&company.ContactPhone,
			&company.Notes,
			&company.IsActive,
			&company.CreatedAt,
			&company.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, company)
	}
	return result, rows.Err()
}

func (r *companyRepository) SoftDelete(ctx context.Context, id int64) error {
	const query = `UPDATE companies SET is_active=FALSE, updated_at=NOW() WHERE id=$1`
	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
