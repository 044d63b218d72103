package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/repository"
)

type ledgerRepository struct {
	db *sql.DB
}

func NewLedgerRepository(db *sql.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (member_id, amount, purpose, plan, reference, event_id, description, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	now := time.Now().Format("2006-01-02")
	entry.CreatedOn = now
	return r.db.QueryRowContext(ctx, query, entry.MemberID, entry.Amount, entry.Purpose,
		entry.Plan, entry.Reference, entry.EventID, entry.Description, now).Scan(&entry.ID)
}

func (r *ledgerRepository) GetByEventID(ctx context.Context, eventID string) (*domain.LedgerEntry, error) {
	e := &domain.LedgerEntry{}
	query := `SELECT id, member_id, amount, purpose, COALESCE(plan, ''), reference, event_id, COALESCE(description, ''), created_on
	          FROM ledger_entries WHERE event_id = $1`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, eventID).Scan(
		&e.ID, &e.MemberID, &e.Amount, &e.Purpose, &e.Plan, &e.Reference, &e.EventID, &e.Description, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	e.CreatedOn = createdOn.Format("2006-01-02")
	return e, nil
}

func (r *ledgerRepository) ListByMember(ctx context.Context, memberID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	offset := (page - 1) * pageSize
	query := `SELECT id, member_id, amount, purpose, COALESCE(plan, ''), reference, event_id, COALESCE(description, ''), created_on
	          FROM ledger_entries WHERE member_id = $1 ORDER BY created_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, memberID, pageSize, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		var createdOn time.Time
		if err := rows.Scan(&e.ID, &e.MemberID, &e.Amount, &e.Purpose, &e.Plan, &e.Reference, &e.EventID, &e.Description, &createdOn); err != nil {
			return nil, 0, err
		}
		e.CreatedOn = createdOn.Format("2006-01-02")
		entries = append(entries, e)
	}

	var count int32
	countQuery := `SELECT count(*) FROM ledger_entries WHERE member_id = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, memberID).Scan(&count); err != nil {
		return nil, 0, err
	}
	return entries, count, nil
}
