package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	_ "agencyhub/docs"
	"agencyhub/internal/async"
	"agencyhub/internal/config"
	"agencyhub/internal/email/noop"
	"agencyhub/internal/email/ses"
	"agencyhub/internal/handler"
	"agencyhub/internal/middleware"
	"agencyhub/internal/port"
	"agencyhub/internal/push/webpush"
	"agencyhub/internal/repository/postgres"
	"agencyhub/internal/router"
	"agencyhub/internal/service"
	s3storage "agencyhub/internal/storage/s3"
)

// @title AgencyHub API
// @version 1.0
// @description Agency management backend: invoices, notifications, messaging, projects, and client accounts.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; real deployments set environment variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	projectRepo := postgres.NewProjectRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	notifRepo := postgres.NewNotificationRepo(db)
	messageRepo := postgres.NewMessageRepo(db)
	contactRepo := postgres.NewContactRepo(db)
	feedbackRepo := postgres.NewFeedbackRepo(db)
	subRepo := postgres.NewPushSubscriptionRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize delivery channels
	var emailSender port.EmailSender
	if cfg.Email.Provider == "ses" {
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.AdminAddress, cfg.Email.FrontendURL)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	} else {
		emailSender = noop.NewNoopSender()
	}

	pushSender := webpush.NewWebpushSender(cfg.Push.VAPIDPublicKey, cfg.Push.VAPIDPrivateKey, cfg.Push.Subscriber, cfg.Push.TTLSecs)
	if !pushSender.Enabled() {
		log.Printf("WARNING: VAPID keys not configured; web push is disabled")
	}

	dispatcher := async.NewDispatcher(30 * time.Second)

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	userSvc := service.NewUserService(userRepo)
	notifSvc := service.NewNotificationService(notifRepo, userRepo, subRepo, pushSender, emailSender, dispatcher)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, projectRepo, userRepo, emailSender, notifSvc)
	messageSvc := service.NewMessageService(messageRepo, userRepo, notifSvc)
	projectSvc := service.NewProjectService(projectRepo, userRepo)
	contactSvc := service.NewContactService(contactRepo, emailSender, notifSvc)
	feedbackSvc := service.NewFeedbackService(feedbackRepo, projectRepo)
	pushSvc := service.NewPushService(subRepo, pushSender)
	uploadSvc := service.NewUploadService(s3Client, &cfg.S3)

	// Initialize handlers
	handlers := router.Handlers{
		Auth:         handler.NewAuthHandler(authSvc, userSvc),
		Invoice:      handler.NewInvoiceHandler(invoiceSvc),
		Notification: handler.NewNotificationHandler(notifSvc),
		Message:      handler.NewMessageHandler(messageSvc),
		Project:      handler.NewProjectHandler(projectSvc),
		Contact:      handler.NewContactHandler(contactSvc),
		Feedback:     handler.NewFeedbackHandler(feedbackSvc),
		Push:         handler.NewPushHandler(pushSvc),
		Upload:       handler.NewUploadHandler(uploadSvc),
		User:         handler.NewUserHandler(userSvc),
		Health:       handler.NewHealthHandler(db),
	}

	// Public write endpoints share a 5 requests/minute per-IP limit
	publicLimiter, err := middleware.NewIPRateLimiter("5-M")
	if err != nil {
		return fmt.Errorf("failed to build rate limiter: %w", err)
	}

	r := router.Setup(cfg, authSvc, handlers, publicLimiter)

	// Background jobs
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Jobs.OverdueSweepSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := invoiceSvc.MarkOverdue(ctx)
		if err != nil {
			log.Printf("WARNING: overdue invoice sweep failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("overdue sweep: %d invoices marked overdue", n)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule overdue sweep: %w", err)
	}
	if _, err := scheduler.AddFunc(cfg.Jobs.NotificationPurgeSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		n, err := notifSvc.PurgeExpired(ctx)
		if err != nil {
			log.Printf("WARNING: notification purge failed: %v", err)
			return
		}
		if n > 0 {
			log.Printf("notification purge: %d expired rows removed", n)
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule notification purge: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
