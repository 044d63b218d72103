package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "assochub-backend/internal/api/http"
	"assochub-backend/internal/config"
	"assochub-backend/internal/logger"
	"assochub-backend/internal/repository/postgres"
	"assochub-backend/internal/security"
	"assochub-backend/internal/service"
)

func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AssocHub Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("Email configuration", "provider", cfg.Email.Provider, "from", cfg.Email.From)

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

	// Repositories
	store := postgres.NewStore(db)

	// Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Email
	var sender service.EmailSender
	switch cfg.Email.Provider {
	case "sendgrid":
		logger.Info("Using SendGrid email provider")
		sender = service.NewSendGridSender(cfg.Email.SendGridAPIKey, cfg.Email.From, cfg.Email.FromName)
	default:
		logger.Info("Using SMTP email provider", "host", cfg.Email.SMTPHost, "port", cfg.Email.SMTPPort)
		sender = service.NewSMTPSender(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPUser, cfg.Email.SMTPPassword, cfg.Email.From)
	}
	emailSvc := service.NewEmailService(sender)

	// Services
	regSvc := service.NewRegistrationService(
		store.MemberRepository,
		store.StaffRepository,
		store.AuditRepository,
		emailSvc,
		cfg.Registration.RequireRefereesBeforeVerify,
	)
	paymentSvc := service.NewPaymentService(store.MemberRepository, store.LedgerRepository, emailSvc)
	memberSvc := service.NewMemberService(store.MemberRepository, store.LedgerRepository)

	// HTTP surface
	router := httpapi.NewRouter(httpapi.RouterDeps{
		Registration: httpapi.NewRegistrationHandler(regSvc),
		Members:      httpapi.NewMemberHandler(memberSvc),
		Webhook:      httpapi.NewWebhookHandler(cfg.Paystack.WebhookSecret, paymentSvc),
		TokenManager: tokenManager,
		DB:           db,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
