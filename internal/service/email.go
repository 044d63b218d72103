package service

import (
	"context"
	"fmt"

	"assochub-backend/internal/logger"
)

// EmailSender is the transport an EmailService delivers through. Two
// implementations exist: SMTP (gomail) and SendGrid, chosen by configuration.
type EmailSender interface {
	Send(to, toName, subject, body string) error
}

type emailService struct {
	sender EmailSender
}

func NewEmailService(sender EmailSender) EmailService {
	return &emailService{sender: sender}
}

func (s *emailService) send(ctx context.Context, to, toName, subject, body string) error {
	logger.ExternalServiceCall("email", "send", "to", to, "subject", subject)
	err := s.sender.Send(to, toName, subject, body)
	logger.ExternalServiceResult("email", "send", err, "to", to)
	return err
}

func (s *emailService) SendApplicantStatus(ctx context.Context, email, companyName, status, detail string) error {
	subject := fmt.Sprintf("Membership Application Update - %s", companyName)
	body := fmt.Sprintf("Hello %s,\n\nYour membership application status is now: %s.", companyName, status)
	if detail != "" {
		body += fmt.Sprintf("\n\n%s", detail)
	}
	body += "\n\nBest regards,\nThe Membership Office"
	return s.send(ctx, email, companyName, subject, body)
}

func (s *emailService) SendRefereeRejectionNotice(ctx context.Context, email, companyName, refereeEmail string) error {
	subject := fmt.Sprintf("Referee Response - %s", companyName)
	body := fmt.Sprintf(
		"Hello %s,\n\nYour nominated referee (%s) has declined to confirm your membership application.\n\nBest regards,\nThe Membership Office",
		companyName, refereeEmail)
	return s.send(ctx, email, companyName, subject, body)
}

func (s *emailService) SendStaffActionRequired(ctx context.Context, staffEmail, staffName, companyName, stage string) error {
	subject := fmt.Sprintf("Applicant awaiting %s: %s", stage, companyName)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe applicant %s is awaiting %s. Please review the application in the back office.\n\nBest regards,\nThe Membership Office",
		staffName, companyName, stage)
	return s.send(ctx, staffEmail, staffName, subject, body)
}

func (s *emailService) SendMembershipWelcome(ctx context.Context, email, companyName, membershipID string) error {
	subject := "Welcome to the Association"
	body := fmt.Sprintf(
		"Hello %s,\n\nCongratulations! Your membership application has been approved.\n\nYour membership number is: %s\n\nBest regards,\nThe Membership Office",
		companyName, membershipID)
	return s.send(ctx, email, companyName, subject, body)
}

func (s *emailService) SendRefereeReminder(ctx context.Context, refereeEmail, companyName string) error {
	subject := fmt.Sprintf("Reminder: referee confirmation for %s", companyName)
	body := fmt.Sprintf(
		"Hello,\n\n%s has nominated you as a referee for their membership application and your confirmation is still pending. Please confirm or decline at your earliest convenience.\n\nBest regards,\nThe Membership Office",
		companyName)
	return s.send(ctx, refereeEmail, "", subject, body)
}

func (s *emailService) SendPaymentReceipt(ctx context.Context, email, companyName, planName string, amount int64) error {
	subject := "Membership Fee Payment Received"
	body := fmt.Sprintf(
		"Hello %s,\n\nWe have received your membership fee payment of %d for the %s plan.\n\nBest regards,\nThe Membership Office",
		companyName, amount, planName)
	return s.send(ctx, email, companyName, subject, body)
}
