package main

import (
	"database/sql"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"

	"assochub-backend/internal/config"
	"assochub-backend/internal/jobs"
	"assochub-backend/internal/logger"
	"assochub-backend/internal/repository/postgres"
	"assochub-backend/internal/scheduler"
	"assochub-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit ('referee-reminders', 'verification-digest', 'all-daily')")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AssocHub Cronjob Runner...", "log_level", cfg.Log.Level)

	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	store := postgres.NewStore(db)

	var sender service.EmailSender
	switch cfg.Email.Provider {
	case "sendgrid":
		sender = service.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.From, cfg.Email.FromName)
	default:
		sender = service.NewSMTPSender(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser, cfg.Email.SMTPPassword, cfg.Email.From)
	}
	emailSvc := service.NewEmailService(sender)

	jobRunner := jobs.NewJobRunner(store.MemberRepository, store.StaffRepository, emailSvc, cfg)

	if *runOnce != "" {
		switch *runOnce {
		case "referee-reminders":
			jobRunner.SendRefereeReminders()
		case "verification-digest":
			jobRunner.SendVerificationDigest()
		case "all-daily":
			jobRunner.RunAllDailyJobs()
		default:
			log.Fatalf("Unknown job: %s", *runOnce)
		}
		return
	}

	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down cronjob runner")
}
