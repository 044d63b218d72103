package postgres

import (
	"context"
	"database/sql"
	"time"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/repository"
)

type staffRepository struct {
	db *sql.DB
}

func NewStaffRepository(db *sql.DB) repository.StaffRepository {
	return &staffRepository{db: db}
}

func (r *staffRepository) GetByID(ctx context.Context, id int32) (*domain.StaffAccount, error) {
	s := &domain.StaffAccount{}
	query := `SELECT id, name, email, role, created_on FROM staff_accounts WHERE id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Name, &s.Email, &s.Role, &createdOn)
	if err != nil {
		return nil, err
	}
	s.CreatedOn = createdOn.Format("2006-01-02")
	return s, nil
}

func (r *staffRepository) ListByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffAccount, error) {
	query := `SELECT id, name, email, role, created_on FROM staff_accounts WHERE role = $1`
	rows, err := r.db.QueryContext(ctx, query, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.StaffAccount
	for rows.Next() {
		var s domain.StaffAccount
		var createdOn time.Time
		if err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Role, &createdOn); err != nil {
			return nil, err
		}
		s.CreatedOn = createdOn.Format("2006-01-02")
		accounts = append(accounts, s)
	}
	return accounts, nil
}
