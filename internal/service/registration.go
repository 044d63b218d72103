package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/logger"
	"assochub-backend/internal/repository"
)

type registrationService struct {
	memberRepo repository.MemberRepository
	staffRepo  repository.StaffRepository
	auditRepo  repository.AuditRepository
	emailSvc   EmailService

	requireRefereesBeforeVerify bool
}

func NewRegistrationService(
	memberRepo repository.MemberRepository,
	staffRepo repository.StaffRepository,
	auditRepo repository.AuditRepository,
	emailSvc EmailService,
	requireRefereesBeforeVerify bool,
) RegistrationService {
	return &registrationService{
		memberRepo:                  memberRepo,
		staffRepo:                   staffRepo,
		auditRepo:                   auditRepo,
		emailSvc:                    emailSvc,
		requireRefereesBeforeVerify: requireRefereesBeforeVerify,
	}
}

func (s *registrationService) RefereeDecide(ctx context.Context, applicantID, refereeID int32, confirm bool) error {
	applicant, err := s.memberRepo.GetByID(ctx, applicantID)
	if err != nil {
		return mapLookupErr(err, "applicant", applicantID)
	}

	referee, err := s.memberRepo.GetByID(ctx, refereeID)
	if err != nil {
		return mapLookupErr(err, "referee", refereeID)
	}

	var slot repository.RefereeSlot
	switch {
	case strings.EqualFold(referee.Email, applicant.Referee1Email):
		slot = repository.RefereeSlot1
	case strings.EqualFold(referee.Email, applicant.Referee2Email):
		slot = repository.RefereeSlot2
	default:
		return ErrUnknownReferee
	}

	decision := domain.RefereeDecisionConfirmed
	if !confirm {
		decision = domain.RefereeDecisionRejected
	}

	advanced, err := s.memberRepo.SetRefereeDecision(ctx, applicantID, slot, decision, domain.StageAwaitingVerification)
	if err != nil {
		return fmt.Errorf("failed to record referee decision for applicant %d: %w", applicantID, err)
	}

	if !confirm {
		if err := s.emailSvc.SendRefereeRejectionNotice(ctx, applicant.Email, applicant.CompanyName, referee.Email); err != nil {
			logger.ErrorContext(ctx, "Failed to send referee rejection notice",
				"applicant_id", applicantID, "stage", "referee", "error", err)
		}
		return nil
	}

	if advanced {
		s.notifyStaff(ctx, domain.StaffRoleVerifier, applicant, "verification")
		if err := s.emailSvc.SendApplicantStatus(ctx, applicant.Email, applicant.CompanyName,
			"REFEREES_CONFIRMED", "Both of your referees have confirmed your application."); err != nil {
			logger.ErrorContext(ctx, "Failed to send applicant status email",
				"applicant_id", applicantID, "stage", "referee", "error", err)
		}
		s.audit(ctx, domain.AuditCategoryRegistration,
			fmt.Sprintf("Both referees confirmed applicant %d (%s)", applicant.ID, applicant.CompanyName))
	}

	return nil
}

func (s *registrationService) VerifierDecide(ctx context.Context, applicantID int32, verify bool, reason string) error {
	if !verify && reason == "" {
		return ErrMissingReason
	}

	applicant, err := s.memberRepo.GetByID(ctx, applicantID)
	if err != nil {
		return mapLookupErr(err, "applicant", applicantID)
	}

	if s.requireRefereesBeforeVerify && !applicant.BothRefereesConfirmed() {
		return ErrRefereesPending
	}

	if !verify {
		if err := s.memberRepo.SetVerificationRejected(ctx, applicantID, reason); err != nil {
			return fmt.Errorf("failed to record verification rejection for applicant %d: %w", applicantID, err)
		}
		if err := s.emailSvc.SendApplicantStatus(ctx, applicant.Email, applicant.CompanyName, "VERIFICATION_REJECTED", reason); err != nil {
			logger.ErrorContext(ctx, "Failed to send applicant status email",
				"applicant_id", applicantID, "stage", "verification", "error", err)
		}
		return nil
	}

	if err := s.memberRepo.SetVerified(ctx, applicantID, domain.StageAwaitingApproval); err != nil {
		return fmt.Errorf("failed to record verification for applicant %d: %w", applicantID, err)
	}

	s.notifyStaff(ctx, domain.StaffRoleApprover, applicant, "approval")
	if err := s.emailSvc.SendApplicantStatus(ctx, applicant.Email, applicant.CompanyName,
		"VERIFIED", "Your application has been verified and is awaiting final approval."); err != nil {
		logger.ErrorContext(ctx, "Failed to send applicant status email",
			"applicant_id", applicantID, "stage", "verification", "error", err)
	}
	s.audit(ctx, domain.AuditCategoryVerification,
		fmt.Sprintf("Applicant %d (%s) verified", applicant.ID, applicant.CompanyName))

	return nil
}

func (s *registrationService) ApproverDecide(ctx context.Context, applicantID int32, approve bool, reason string) error {
	if !approve && reason == "" {
		return ErrMissingReason
	}

	applicant, err := s.memberRepo.GetByID(ctx, applicantID)
	if err != nil {
		return mapLookupErr(err, "applicant", applicantID)
	}

	if !approve {
		if err := s.memberRepo.SetApprovalRejected(ctx, applicantID, reason); err != nil {
			return fmt.Errorf("failed to record approval rejection for applicant %d: %w", applicantID, err)
		}
		if err := s.emailSvc.SendApplicantStatus(ctx, applicant.Email, applicant.CompanyName, "APPROVAL_REJECTED", reason); err != nil {
			logger.ErrorContext(ctx, "Failed to send applicant status email",
				"applicant_id", applicantID, "stage", "approval", "error", err)
		}
		return nil
	}

	// The id is seeded from the applicant email; uniqueness is enforced only
	// by the store's unique index, so a collision surfaces as a store error.
	membershipID := GenerateMembershipID(applicant.Email)
	if err := s.memberRepo.Approve(ctx, applicantID, membershipID, domain.StageApproved); err != nil {
		return fmt.Errorf("failed to approve applicant %d: %w", applicantID, err)
	}

	if err := s.emailSvc.SendMembershipWelcome(ctx, applicant.Email, applicant.CompanyName, membershipID); err != nil {
		logger.ErrorContext(ctx, "Failed to send membership welcome email",
			"applicant_id", applicantID, "stage", "approval", "error", err)
	}
	s.audit(ctx, domain.AuditCategoryApproval,
		fmt.Sprintf("Applicant %d (%s) approved with membership id %s", applicant.ID, applicant.CompanyName, membershipID))

	return nil
}

// notifyStaff emails every staff account holding the role. Delivery failures
// are logged and never affect the transition that triggered them.
func (s *registrationService) notifyStaff(ctx context.Context, role domain.StaffRole, applicant *domain.Member, stage string) {
	staff, err := s.staffRepo.ListByRole(ctx, role)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list staff for notification",
			"role", role, "applicant_id", applicant.ID, "stage", stage, "error", err)
		return
	}
	for _, acct := range staff {
		if err := s.emailSvc.SendStaffActionRequired(ctx, acct.Email, acct.Name, applicant.CompanyName, stage); err != nil {
			logger.ErrorContext(ctx, "Failed to send staff notification",
				"staff_id", acct.ID, "applicant_id", applicant.ID, "stage", stage, "error", err)
		}
	}
}

func (s *registrationService) audit(ctx context.Context, category, message string) {
	entry := &domain.AuditEntry{
		Category:      category,
		Message:       message,
		CorrelationID: uuid.NewString(),
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		logger.ErrorContext(ctx, "Failed to write audit entry", "category", category, "error", err)
	}
}

func mapLookupErr(err error, kind string, id int32) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %d: %w", kind, id, ErrNotFound)
	}
	return fmt.Errorf("failed to look up %s %d: %w", kind, id, err)
}
