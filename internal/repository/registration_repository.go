package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/registration-service/internal/domain"
)

// RegistrationFilter captures admin list parameters. At most one equality
// filter is set per request; nil fields are ignored.
type RegistrationFilter struct {
	PaymentStatus *domain.PaymentStatus
	College       *string
	Year          *domain.Year
}

// RegistrationRepository encapsulates registration persistence. Every listing
// operation returns records ordered by created_at descending; the admin view
// depends on that ordering.
type RegistrationRepository interface {
	Create(ctx context.Context, reg *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	List(ctx context.Context, filter RegistrationFilter) ([]domain.Registration, error)
	Search(ctx context.Context, query string) ([]domain.Registration, error)
	UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Registration, error)
	Delete(ctx context.Context, id string) (bool, error)
	Stats(ctx context.Context, feeAmount int) (*domain.RegistrationStats, error)
}

type registrationRepository struct {
	pool *pgxpool.Pool
}

// NewRegistrationRepository instantiates the Postgres-backed repository.
func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &registrationRepository{pool: pool}
}

const registrationColumns = `id, full_name, year, department, section, student_id, college,
               preferred_country, phone_number, committee, payment_status, payment_screenshot, created_at`

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	const query = `
        INSERT INTO registrations (full_name, year, department, section, student_id, college,
            preferred_country, phone_number, committee, payment_status, payment_screenshot)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		reg.FullName,
		reg.Year,
		reg.Department,
		reg.Section,
		reg.StudentID,
		reg.College,
		reg.PreferredCountry,
		reg.PhoneNumber,
		reg.Committee,
		reg.PaymentStatus,
		reg.PaymentScreenshot,
	).Scan(&reg.ID, &reg.CreatedAt)
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE id=$1`, registrationColumns)
	var reg domain.Registration
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&reg.ID,
		&reg.FullName,
		&reg.Year,
		&reg.Department,
		&reg.Section,
		&reg.StudentID,
		&reg.College,
		&reg.PreferredCountry,
		&reg.PhoneNumber,
		&reg.Committee,
		&reg.PaymentStatus,
		&reg.PaymentScreenshot,
		&reg.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) List(ctx context.Context, filter RegistrationFilter) ([]domain.Registration, error) {
	clauses := []string{"1=1"}
	args := []any{}

	if filter.PaymentStatus != nil {
		args = append(args, *filter.PaymentStatus)
		clauses = append(clauses, fmt.Sprintf("payment_status=$%d", len(args)))
	}
	if filter.College != nil {
		args = append(args, *filter.College)
		clauses = append(clauses, fmt.Sprintf("college=$%d", len(args)))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		clauses = append(clauses, fmt.Sprintf("year=$%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM registrations WHERE %s ORDER BY created_at DESC`,
		registrationColumns, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegistrations(rows)
}

func (r *registrationRepository) Search(ctx context.Context, query string) ([]domain.Registration, error) {
	pattern := "%" + strings.TrimSpace(query) + "%"
	sql := fmt.Sprintf(`
        SELECT %s FROM registrations
        WHERE full_name ILIKE $1 OR student_id ILIKE $1 OR phone_number ILIKE $1
        ORDER BY created_at DESC`, registrationColumns)

	rows, err := r.pool.Query(ctx, sql, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegistrations(rows)
}

func (r *registrationRepository) UpdatePaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (*domain.Registration, error) {
	query := fmt.Sprintf(`
        UPDATE registrations SET payment_status=$1 WHERE id=$2
        RETURNING %s`, registrationColumns)
	var reg domain.Registration
	if err := r.pool.QueryRow(ctx, query, status, id).Scan(
		&reg.ID,
		&reg.FullName,
		&reg.Year,
		&reg.Department,
		&reg.Section,
		&reg.StudentID,
		&reg.College,
		&reg.PreferredCountry,
		&reg.PhoneNumber,
		&reg.Committee,
		&reg.PaymentStatus,
		&reg.PaymentScreenshot,
		&reg.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &reg, nil
}

func (r *registrationRepository) Delete(ctx context.Context, id string) (bool, error) {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM registrations WHERE id=$1`, id)
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *registrationRepository) Stats(ctx context.Context, feeAmount int) (*domain.RegistrationStats, error) {
	const query = `
        SELECT COUNT(*),
               COUNT(*) FILTER (WHERE payment_status='pending'),
               COUNT(*) FILTER (WHERE payment_status='completed'),
               COUNT(*) FILTER (WHERE payment_status='failed')
        FROM registrations`
	var stats domain.RegistrationStats
	if err := r.pool.QueryRow(ctx, query).Scan(&stats.Total, &stats.Pending, &stats.Completed, &stats.Failed); err != nil {
		return nil, err
	}
	stats.Revenue = stats.Completed * feeAmount
	return &stats, nil
}

func scanRegistrations(rows pgx.Rows) ([]domain.Registration, error) {
	var result []domain.Registration
	for rows.Next() {
		var reg domain.Registration
		if err := rows.Scan(
			&reg.ID,
			&reg.FullName,
			&reg.Year,
			&reg.Department,
			&reg.Section,
			&reg.StudentID,
			&reg.College,
			&reg.PreferredCountry,
			&reg.PhoneNumber,
			&reg.Committee,
			&reg.PaymentStatus,
			&reg.PaymentScreenshot,
			&reg.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, reg)
	}
	return result, rows.Err()
}
