package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/service"
)

func TestPaymentService_ConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("ChargeSuccessRecordsFeeAndLedger", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		ledgerRepo := new(MockLedgerRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewPaymentService(memberRepo, ledgerRepo, emailSvc)

		member := &domain.Member{ID: 7, CompanyName: "Acme Ltd", Email: "acme@x.com"}
		ledgerRepo.On("GetByEventID", ctx, "302212345").Return(nil, nil).Once()
		memberRepo.On("GetByEmail", ctx, "acme@x.com").Return(member, nil).Once()
		memberRepo.On("SetMembershipFeePaid", ctx, int32(7), "Gold").Return(nil).Once()
		ledgerRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.MemberID == 7 &&
				e.Amount == 5000 && // 500000 minor units from the processor
				e.Purpose == domain.PaymentPurposeMembership &&
				e.Plan == "Gold" &&
				e.Reference != "" &&
				e.EventID != nil && *e.EventID == "302212345"
		})).Return(nil).Once()
		emailSvc.On("SendPaymentReceipt", ctx, "acme@x.com", "Acme Ltd", "Gold", int64(5000)).Return(nil).Once()

		err := svc.ConfirmPayment(ctx, "302212345", "acme@x.com", "Gold", 500000)
		assert.NoError(t, err)

		memberRepo.AssertExpectations(t)
		ledgerRepo.AssertExpectations(t)
		emailSvc.AssertExpectations(t)
	})

	t.Run("DuplicateEventIsNoOp", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		ledgerRepo := new(MockLedgerRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewPaymentService(memberRepo, ledgerRepo, emailSvc)

		ledgerRepo.On("GetByEventID", ctx, "302212345").Return(&domain.LedgerEntry{ID: 1}, nil).Once()

		err := svc.ConfirmPayment(ctx, "302212345", "acme@x.com", "Gold", 500000)
		assert.NoError(t, err)

		memberRepo.AssertNotCalled(t, "GetByEmail", mock.Anything, mock.Anything)
		memberRepo.AssertNotCalled(t, "SetMembershipFeePaid", mock.Anything, mock.Anything, mock.Anything)
		ledgerRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		ledgerRepo := new(MockLedgerRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewPaymentService(memberRepo, ledgerRepo, emailSvc)

		ledgerRepo.On("GetByEventID", ctx, "42").Return(nil, nil).Once()
		memberRepo.On("GetByEmail", ctx, "nobody@x.com").Return(nil, sql.ErrNoRows).Once()

		err := svc.ConfirmPayment(ctx, "42", "nobody@x.com", "Gold", 500000)
		assert.ErrorIs(t, err, service.ErrNotFound)

		ledgerRepo.AssertNotCalled(t, "CreateEntry", mock.Anything, mock.Anything)
	})

	t.Run("EmptyEventIDSkipsDedupCheck", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		ledgerRepo := new(MockLedgerRepo)
		emailSvc := new(MockEmailService)
		svc := service.NewPaymentService(memberRepo, ledgerRepo, emailSvc)

		member := &domain.Member{ID: 7, CompanyName: "Acme Ltd", Email: "acme@x.com"}
		memberRepo.On("GetByEmail", ctx, "acme@x.com").Return(member, nil).Once()
		memberRepo.On("SetMembershipFeePaid", ctx, int32(7), "Silver").Return(nil).Once()
		ledgerRepo.On("CreateEntry", ctx, mock.MatchedBy(func(e *domain.LedgerEntry) bool {
			return e.EventID == nil && e.Amount == 250
		})).Return(nil).Once()
		emailSvc.On("SendPaymentReceipt", ctx, "acme@x.com", "Acme Ltd", "Silver", int64(250)).Return(nil).Once()

		err := svc.ConfirmPayment(ctx, "", "acme@x.com", "Silver", 25000)
		assert.NoError(t, err)

		ledgerRepo.AssertNotCalled(t, "GetByEventID", mock.Anything, mock.Anything)
	})
}
