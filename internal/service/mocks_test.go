package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/repository"
)

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) GetByID(ctx context.Context, id int32) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) SetRefereeDecision(ctx context.Context, memberID int32, slot repository.RefereeSlot, decision domain.RefereeDecision, advanceTo int32) (bool, error) {
	args := m.Called(ctx, memberID, slot, decision, advanceTo)
	return args.Bool(0), args.Error(1)
}
func (m *MockMemberRepo) SetVerified(ctx context.Context, memberID int32, advanceTo int32) error {
	args := m.Called(ctx, memberID, advanceTo)
	return args.Error(0)
}
func (m *MockMemberRepo) SetVerificationRejected(ctx context.Context, memberID int32, reason string) error {
	args := m.Called(ctx, memberID, reason)
	return args.Error(0)
}
func (m *MockMemberRepo) Approve(ctx context.Context, memberID int32, membershipID string, stage int32) error {
	args := m.Called(ctx, memberID, membershipID, stage)
	return args.Error(0)
}
func (m *MockMemberRepo) SetApprovalRejected(ctx context.Context, memberID int32, reason string) error {
	args := m.Called(ctx, memberID, reason)
	return args.Error(0)
}
func (m *MockMemberRepo) SetMembershipFeePaid(ctx context.Context, memberID int32, plan string) error {
	args := m.Called(ctx, memberID, plan)
	return args.Error(0)
}
func (m *MockMemberRepo) ListByStage(ctx context.Context, stage int32, page, pageSize int32) ([]domain.Member, int32, error) {
	args := m.Called(ctx, stage, page, pageSize)
	return args.Get(0).([]domain.Member), args.Get(1).(int32), args.Error(2)
}
func (m *MockMemberRepo) ListAwaitingReferees(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Member), args.Error(1)
}

// MockStaffRepo
type MockStaffRepo struct {
	mock.Mock
}

func (m *MockStaffRepo) GetByID(ctx context.Context, id int32) (*domain.StaffAccount, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StaffAccount), args.Error(1)
}
func (m *MockStaffRepo) ListByRole(ctx context.Context, role domain.StaffRole) ([]domain.StaffAccount, error) {
	args := m.Called(ctx, role)
	return args.Get(0).([]domain.StaffAccount), args.Error(1)
}

// MockLedgerRepo
type MockLedgerRepo struct {
	mock.Mock
}

func (m *MockLedgerRepo) CreateEntry(ctx context.Context, entry *domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockLedgerRepo) GetByEventID(ctx context.Context, eventID string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockLedgerRepo) ListByMember(ctx context.Context, memberID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	args := m.Called(ctx, memberID, page, pageSize)
	return args.Get(0).([]domain.LedgerEntry), args.Get(1).(int32), args.Error(2)
}

// MockAuditRepo
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Create(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditRepo) ListByCategory(ctx context.Context, category string, page, pageSize int32) ([]domain.AuditEntry, int32, error) {
	args := m.Called(ctx, category, page, pageSize)
	return args.Get(0).([]domain.AuditEntry), args.Get(1).(int32), args.Error(2)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendApplicantStatus(ctx context.Context, email, companyName, status, detail string) error {
	args := m.Called(ctx, email, companyName, status, detail)
	return args.Error(0)
}
func (m *MockEmailService) SendRefereeRejectionNotice(ctx context.Context, email, companyName, refereeEmail string) error {
	args := m.Called(ctx, email, companyName, refereeEmail)
	return args.Error(0)
}
func (m *MockEmailService) SendStaffActionRequired(ctx context.Context, staffEmail, staffName, companyName, stage string) error {
	args := m.Called(ctx, staffEmail, staffName, companyName, stage)
	return args.Error(0)
}
func (m *MockEmailService) SendMembershipWelcome(ctx context.Context, email, companyName, membershipID string) error {
	args := m.Called(ctx, email, companyName, membershipID)
	return args.Error(0)
}
func (m *MockEmailService) SendRefereeReminder(ctx context.Context, refereeEmail, companyName string) error {
	args := m.Called(ctx, refereeEmail, companyName)
	return args.Error(0)
}
func (m *MockEmailService) SendPaymentReceipt(ctx context.Context, email, companyName, planName string, amount int64) error {
	args := m.Called(ctx, email, companyName, planName, amount)
	return args.Error(0)
}
