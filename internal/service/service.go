package service

import (
	"context"
	"errors"

	"assochub-backend/internal/domain"
)

var (
	// ErrNotFound covers applicant, referee and member lookups that resolve
	// to no record.
	ErrNotFound = errors.New("record not found")
	// ErrUnknownReferee is returned when the acting referee's email matches
	// neither of the applicant's nominated referees.
	ErrUnknownReferee = errors.New("referee is not nominated by this applicant")
	// ErrMissingReason is returned when a rejection arrives without a reason.
	ErrMissingReason = errors.New("rejection reason is required")
	// ErrRefereesPending is only returned when the optional referee guard is
	// enabled in configuration.
	ErrRefereesPending = errors.New("both referees must confirm before verification")
)

type RegistrationService interface {
	// RefereeDecide records one referee's confirm/reject for an applicant.
	RefereeDecide(ctx context.Context, applicantID, refereeID int32, confirm bool) error
	// VerifierDecide records a staff verification decision. A rejection
	// requires a reason.
	VerifierDecide(ctx context.Context, applicantID int32, verify bool, reason string) error
	// ApproverDecide records the final approval decision. Approval assigns a
	// membership id and activates the membership; rejection requires a reason.
	ApproverDecide(ctx context.Context, applicantID int32, approve bool, reason string) error
}

type PaymentService interface {
	// ConfirmPayment records a processor-confirmed payment: marks the
	// membership fee paid, stores the plan and writes a ledger entry.
	// A previously seen eventID is a no-op.
	ConfirmPayment(ctx context.Context, eventID, email, planName string, amountMinorUnits int64) error
}

type MemberService interface {
	GetMember(ctx context.Context, id int32) (*domain.Member, error)
	ListByStage(ctx context.Context, stage int32, page, pageSize int32) ([]domain.Member, int32, error)
	ListLedger(ctx context.Context, memberID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error)
}

type EmailService interface {
	SendApplicantStatus(ctx context.Context, email, companyName, status, detail string) error
	SendRefereeRejectionNotice(ctx context.Context, email, companyName, refereeEmail string) error
	SendStaffActionRequired(ctx context.Context, staffEmail, staffName, companyName, stage string) error
	SendMembershipWelcome(ctx context.Context, email, companyName, membershipID string) error
	SendRefereeReminder(ctx context.Context, refereeEmail, companyName string) error
	SendPaymentReceipt(ctx context.Context, email, companyName, planName string, amount int64) error
}
