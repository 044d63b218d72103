package postgres

import (
	"database/sql"

	"assochub-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.MemberRepository
	repository.StaffRepository
	repository.LedgerRepository
	repository.AuditRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:               db,
		MemberRepository: NewMemberRepository(db),
		StaffRepository:  NewStaffRepository(db),
		LedgerRepository: NewLedgerRepository(db),
		AuditRepository:  NewAuditRepository(db),
	}
}
