package repository

import (
	"context"

	"assochub-backend/internal/domain"
)

// RefereeSlot identifies which of the two nominated referees a decision
// applies to.
type RefereeSlot int

const (
	RefereeSlot1 RefereeSlot = 1
	RefereeSlot2 RefereeSlot = 2
)

type MemberRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)

	// SetRefereeDecision writes one referee slot and, when the decision is
	// CONFIRMED and the other slot is already CONFIRMED, advances the
	// registration stage to advanceTo in the same statement. The returned
	// flag reports whether this call advanced the stage, so duplicate
	// confirmations cannot re-trigger the both-confirmed transition.
	SetRefereeDecision(ctx context.Context, memberID int32, slot RefereeSlot, decision domain.RefereeDecision, advanceTo int32) (advanced bool, err error)

	SetVerified(ctx context.Context, memberID int32, advanceTo int32) error
	SetVerificationRejected(ctx context.Context, memberID int32, reason string) error

	// Approve sets the membership id, approved flag, active status and the
	// terminal stage in one update. A membership id collision surfaces as
	// the store's unique-violation error.
	Approve(ctx context.Context, memberID int32, membershipID string, stage int32) error
	SetApprovalRejected(ctx context.Context, memberID int32, reason string) error

	SetMembershipFeePaid(ctx context.Context, memberID int32, plan string) error

	ListByStage(ctx context.Context, stage int32, page, pageSize int32) ([]domain.Member, int32, error)
	ListAwaitingReferees(ctx context.Context) ([]domain.Member, error)
}

type StaffRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.StaffAccount, error)
	ListByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffAccount, error)
}

type LedgerRepository interface {
	CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error
	GetByEventID(ctx context.Context, eventID string) (*domain.LedgerEntry, error)
	ListByMember(ctx context.Context, memberID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error)
}

type AuditRepository interface {
	Create(ctx context.Context, entry *domain.AuditEntry) error
	ListByCategory(ctx context.Context, category string, page, pageSize int32) ([]domain.AuditEntry, int32, error)
}
