package jobs

import (
	"context"
	"fmt"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/logger"
)

// SendRefereeReminders emails the referees who have not acted yet for every
// applicant still waiting on referee confirmation.
func (jr *JobRunner) SendRefereeReminders() {
	jr.runWithRecovery("send-referee-reminders", func() {
		ctx := context.Background()

		applicants, err := jr.memberRepo.ListAwaitingReferees(ctx)
		if err != nil {
			logger.Error("Failed to list applicants awaiting referees", "error", err)
			return
		}

		sent := 0
		for _, applicant := range applicants {
			if applicant.Referee1Decision == domain.RefereeDecisionPending {
				if err := jr.emailSvc.SendRefereeReminder(ctx, applicant.Referee1Email, applicant.CompanyName); err != nil {
					logger.Error("Failed to send referee reminder",
						"applicant_id", applicant.ID, "referee", applicant.Referee1Email, "error", err)
				} else {
					sent++
				}
			}
			if applicant.Referee2Decision == domain.RefereeDecisionPending {
				if err := jr.emailSvc.SendRefereeReminder(ctx, applicant.Referee2Email, applicant.CompanyName); err != nil {
					logger.Error("Failed to send referee reminder",
						"applicant_id", applicant.ID, "referee", applicant.Referee2Email, "error", err)
				} else {
					sent++
				}
			}
		}

		logger.Info("Referee reminders sent", "applicants", len(applicants), "reminders", sent)
	})
}

// SendVerificationDigest emails every verifier a summary of the pending
// verification queue, when it is not empty.
func (jr *JobRunner) SendVerificationDigest() {
	jr.runWithRecovery("send-verification-digest", func() {
		ctx := context.Background()

		pending, total, err := jr.memberRepo.ListByStage(ctx, domain.StageAwaitingVerification, 1, 50)
		if err != nil {
			logger.Error("Failed to list pending verifications", "error", err)
			return
		}
		if total == 0 {
			logger.Info("Verification queue empty, digest skipped")
			return
		}

		verifiers, err := jr.staffRepo.ListByRole(ctx, domain.StaffRoleVerifier)
		if err != nil {
			logger.Error("Failed to list verifiers", "error", err)
			return
		}

		summary := fmt.Sprintf("%d applicant(s) pending verification", total)
		for _, v := range verifiers {
			if err := jr.emailSvc.SendStaffActionRequired(ctx, v.Email, v.Name, summary, "verification"); err != nil {
				logger.Error("Failed to send verification digest", "staff_id", v.ID, "error", err)
			}
		}

		logger.Info("Verification digest sent", "pending", total, "listed", len(pending), "verifiers", len(verifiers))
	})
}
