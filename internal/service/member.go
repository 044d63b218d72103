package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"assochub-backend/internal/domain"
	"assochub-backend/internal/repository"
)

type memberService struct {
	memberRepo repository.MemberRepository
	ledgerRepo repository.LedgerRepository
}

func NewMemberService(memberRepo repository.MemberRepository, ledgerRepo repository.LedgerRepository) MemberService {
	return &memberService{memberRepo: memberRepo, ledgerRepo: ledgerRepo}
}

func (s *memberService) GetMember(ctx context.Context, id int32) (*domain.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("member %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return member, nil
}

func (s *memberService) ListByStage(ctx context.Context, stage int32, page, pageSize int32) ([]domain.Member, int32, error) {
	return s.memberRepo.ListByStage(ctx, stage, page, pageSize)
}

func (s *memberService) ListLedger(ctx context.Context, memberID int32, page, pageSize int32) ([]domain.LedgerEntry, int32, error) {
	return s.ledgerRepo.ListByMember(ctx, memberID, page, pageSize)
}
