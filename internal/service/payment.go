package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/logger"
	"assochub-backend/internal/repository"
)

type paymentService struct {
	memberRepo repository.MemberRepository
	ledgerRepo repository.LedgerRepository
	emailSvc   EmailService
}

func NewPaymentService(
	memberRepo repository.MemberRepository,
	ledgerRepo repository.LedgerRepository,
	emailSvc EmailService,
) PaymentService {
	return &paymentService{
		memberRepo: memberRepo,
		ledgerRepo: ledgerRepo,
		emailSvc:   emailSvc,
	}
}

func (s *paymentService) ConfirmPayment(ctx context.Context, eventID, email, planName string, amountMinorUnits int64) error {
	if eventID != "" {
		existing, err := s.ledgerRepo.GetByEventID(ctx, eventID)
		if err != nil {
			return fmt.Errorf("failed to check ledger for event %s: %w", eventID, err)
		}
		if existing != nil {
			logger.Info("Duplicate payment event ignored", "event_id", eventID, "ledger_id", existing.ID)
			return nil
		}
	}

	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("member %s: %w", email, ErrNotFound)
		}
		return fmt.Errorf("failed to look up member %s: %w", email, err)
	}

	// The processor reports amounts in minor units with two extra trailing
	// digits; the ledger stores the amount with those digits stripped.
	amount := amountMinorUnits / 100

	if err := s.memberRepo.SetMembershipFeePaid(ctx, member.ID, planName); err != nil {
		return fmt.Errorf("failed to mark membership fee paid for member %d: %w", member.ID, err)
	}

	entry := &domain.LedgerEntry{
		MemberID:    member.ID,
		Amount:      amount,
		Purpose:     domain.PaymentPurposeMembership,
		Plan:        planName,
		Reference:   uuid.NewString(),
		Description: fmt.Sprintf("Membership fee payment (%s plan)", planName),
	}
	if eventID != "" {
		entry.EventID = &eventID
	}
	if err := s.ledgerRepo.CreateEntry(ctx, entry); err != nil {
		return fmt.Errorf("failed to record ledger entry for member %d: %w", member.ID, err)
	}

	if err := s.emailSvc.SendPaymentReceipt(ctx, member.Email, member.CompanyName, planName, amount); err != nil {
		logger.ErrorContext(ctx, "Failed to send payment receipt",
			"member_id", member.ID, "stage", "payment", "error", err)
	}

	return nil
}
