package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"assochub-backend/internal/jobs"
	"assochub-backend/internal/logger"
)

// Scheduler manages cron job scheduling
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

// NewScheduler creates a new scheduler with the provided job runner
func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron: c,
		jobs: jobRunner,
	}

	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	cfg := s.jobs.Config().Scheduler

	_, err := s.cron.AddFunc(cfg.SendRefereeReminders, s.jobs.SendRefereeReminders)
	if err != nil {
		logger.Error("Failed to register SendRefereeReminders job", "error", err)
	}

	_, err = s.cron.AddFunc(cfg.SendVerificationDigest, s.jobs.SendVerificationDigest)
	if err != nil {
		logger.Error("Failed to register SendVerificationDigest job", "error", err)
	}
}

// Start begins running the scheduled jobs
func (s *Scheduler) Start() {
	logger.Info("Starting scheduler")
	s.cron.Start()
}

// Stop halts the scheduler and waits for running jobs to finish
func (s *Scheduler) Stop() {
	logger.Info("Stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}
