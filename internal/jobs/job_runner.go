package jobs

import (
	"assochub-backend/internal/config"
	"assochub-backend/internal/logger"
	"assochub-backend/internal/repository"
	"assochub-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs.
type JobRunner struct {
	memberRepo repository.MemberRepository
	staffRepo  repository.StaffRepository
	emailSvc   service.EmailService
	config     *config.Config
}

func NewJobRunner(
	memberRepo repository.MemberRepository,
	staffRepo repository.StaffRepository,
	emailSvc service.EmailService,
	cfg *config.Config,
) *JobRunner {
	return &JobRunner{
		memberRepo: memberRepo,
		staffRepo:  staffRepo,
		emailSvc:   emailSvc,
		config:     cfg,
	}
}

// Config returns the loaded configuration, for schedule lookups.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllDailyJobs runs every daily job once (for manual execution).
func (jr *JobRunner) RunAllDailyJobs() {
	jr.SendRefereeReminders()
	jr.SendVerificationDigest()
}
