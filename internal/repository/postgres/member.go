package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/logger"
	"assochub-backend/internal/repository"
)

const memberColumns = `id, company_name, email, referee1_email, referee2_email,
	       referee1_decision, referee2_decision, verified, COALESCE(verified_rejection_reason, ''),
	       approved, COALESCE(approved_rejection_reason, ''), registration_stage, membership_id,
	       membership_status, COALESCE(membership_plan, ''), fee_status, created_on, updated_on`

type memberRepository struct {
	db *sql.DB
}

func NewMemberRepository(db *sql.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

func scanMember(row interface{ Scan(...any) error }) (*domain.Member, error) {
	m := &domain.Member{}
	var createdOn, updatedOn time.Time
	err := row.Scan(
		&m.ID, &m.CompanyName, &m.Email, &m.Referee1Email, &m.Referee2Email,
		&m.Referee1Decision, &m.Referee2Decision, &m.Verified, &m.VerifiedRejectionReason,
		&m.Approved, &m.ApprovedRejectionReason, &m.RegistrationStage, &m.MembershipID,
		&m.MembershipStatus, &m.MembershipPlan, &m.FeeStatus, &createdOn, &updatedOn,
	)
	if err != nil {
		return nil, err
	}
	m.CreatedOn = createdOn.Format("2006-01-02")
	m.UpdatedOn = updatedOn.Format("2006-01-02")
	return m, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return scanMember(r.db.QueryRowContext(ctx, query, id))
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE LOWER(email) = LOWER($1)`
	return scanMember(r.db.QueryRowContext(ctx, query, email))
}

func (r *memberRepository) SetRefereeDecision(ctx context.Context, memberID int32, slot repository.RefereeSlot, decision domain.RefereeDecision, advanceTo int32) (bool, error) {
	decisionCol := "referee1_decision"
	if slot == repository.RefereeSlot2 {
		decisionCol = "referee2_decision"
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	now := time.Now().Format("2006-01-02")
	setQuery := fmt.Sprintf(`UPDATE members SET %s = $1, updated_on = $2 WHERE id = $3`, decisionCol)
	if _, err := tx.ExecContext(ctx, setQuery, decision, now, memberID); err != nil {
		return false, err
	}

	// The stage advances at most once: the guard on the current stage makes
	// duplicate confirmations and racing referees resolve to a single advance.
	advanced := false
	if decision == domain.RefereeDecisionConfirmed {
		advanceQuery := `UPDATE members SET registration_stage = $1, updated_on = $2
		          WHERE id = $3
		            AND referee1_decision = 'CONFIRMED' AND referee2_decision = 'CONFIRMED'
		            AND registration_stage < $1`
		res, err := tx.ExecContext(ctx, advanceQuery, advanceTo, now, memberID)
		if err != nil {
			return false, err
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return false, err
		}
		advanced = rows == 1
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}
	return advanced, nil
}

func (r *memberRepository) SetVerified(ctx context.Context, memberID int32, advanceTo int32) error {
	query := `UPDATE members SET verified = true, verified_rejection_reason = NULL,
	          registration_stage = $1, updated_on = $2 WHERE id = $3`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, advanceTo, now, memberID)
	return err
}

func (r *memberRepository) SetVerificationRejected(ctx context.Context, memberID int32, reason string) error {
	query := `UPDATE members SET verified = false, verified_rejection_reason = $1, updated_on = $2 WHERE id = $3`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, reason, now, memberID)
	return err
}

func (r *memberRepository) Approve(ctx context.Context, memberID int32, membershipID string, stage int32) error {
	query := `UPDATE members SET approved = true, approved_rejection_reason = NULL,
	          membership_id = $1, membership_status = $2, registration_stage = $3, updated_on = $4
	          WHERE id = $5`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, membershipID, domain.MembershipStatusActive, stage, now, memberID)
	return err
}

func (r *memberRepository) SetApprovalRejected(ctx context.Context, memberID int32, reason string) error {
	query := `UPDATE members SET approved = false, approved_rejection_reason = $1, updated_on = $2 WHERE id = $3`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, reason, now, memberID)
	return err
}

func (r *memberRepository) SetMembershipFeePaid(ctx context.Context, memberID int32, plan string) error {
	query := `UPDATE members SET fee_status = $1, membership_plan = $2, updated_on = $3 WHERE id = $4`
	now := time.Now().Format("2006-01-02")
	_, err := r.db.ExecContext(ctx, query, domain.FeeStatusPaid, plan, now, memberID)
	return err
}

func (r *memberRepository) ListByStage(ctx context.Context, stage int32, page, pageSize int32) ([]domain.Member, int32, error) {
	logger.DatabaseCall("SELECT", "members", "stage", stage)

	offset := (page - 1) * pageSize
	query := `SELECT ` + memberColumns + ` FROM members WHERE registration_stage = $1
	          ORDER BY updated_on DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, stage, pageSize, offset)
	if err != nil {
		logger.DatabaseResult("SELECT", err, "stage", stage)
		return nil, 0, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			logger.DatabaseResult("SELECT", err, "stage", stage)
			return nil, 0, err
		}
		members = append(members, *m)
	}

	var count int32
	countQuery := `SELECT count(*) FROM members WHERE registration_stage = $1`
	if err := r.db.QueryRowContext(ctx, countQuery, stage).Scan(&count); err != nil {
		return nil, 0, err
	}

	logger.DatabaseResult("SELECT", nil, "stage", stage, "count", len(members))
	return members, count, nil
}

func (r *memberRepository) ListAwaitingReferees(ctx context.Context) ([]domain.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members
	          WHERE registration_stage < $1
	            AND (referee1_decision = 'PENDING' OR referee2_decision = 'PENDING')`
	rows, err := r.db.QueryContext(ctx, query, domain.StageAwaitingVerification)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		m, err := scanMember(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, *m)
	}
	return members, nil
}
