package postgres

import (
	"context"
	"database/sql"
	"time"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/repository"
)

type auditRepository struct {
	db *sql.DB
}

func NewAuditRepository(db *sql.DB) repository.AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, entry *domain.AuditEntry) error {
	query := `INSERT INTO audit_log (category, message, correlation_id, created_on)
	          VALUES ($1, $2, $3, $4) RETURNING id`
	now := time.Now().Format("2006-01-02")
	entry.CreatedOn = now
	return r.db.QueryRowContext(ctx, query, entry.Category, entry.Message, entry.CorrelationID, now).Scan(&entry.ID)
}

func (r *auditRepository) ListByCategory(ctx context.Context, category string, page, pageSize int32) ([]domain.AuditEntry, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, category, message, correlation_id, created_on FROM audit_log
	          WHERE category = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, category, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.AuditEntry
	for rows.Next() {
		var e domain.AuditEntry
		var createdOn time.Time
		if err := rows.Scan(&e.ID, &e.Category, &e.Message, &e.CorrelationID, &createdOn); err != nil {
			return nil, 0, err
		}
		e.CreatedOn = createdOn.Format("2006-01-02")
		entries = append(entries, e)
	}

	var count int32
	countQuery := `SELECT count(*) FROM audit_log WHERE category = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, category).Scan(&count); err != nil {
		return nil, 0, err
	}
	return entries, count, nil
}
