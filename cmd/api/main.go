package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sendsafe/sendsafe-api/docs"
	"github.com/sendsafe/sendsafe-api/internal/auth"
	"github.com/sendsafe/sendsafe-api/internal/config"
	"github.com/sendsafe/sendsafe-api/internal/database"
	"github.com/sendsafe/sendsafe-api/internal/generator"
	"github.com/sendsafe/sendsafe-api/internal/http/handler"
	"github.com/sendsafe/sendsafe-api/internal/http/middleware"
	"github.com/sendsafe/sendsafe-api/internal/http/router"
	"github.com/sendsafe/sendsafe-api/internal/jobs"
	"github.com/sendsafe/sendsafe-api/internal/logger"
	"github.com/sendsafe/sendsafe-api/internal/mailer"
	"github.com/sendsafe/sendsafe-api/internal/repository"
	"github.com/sendsafe/sendsafe-api/internal/service"
	"github.com/sendsafe/sendsafe-api/internal/storage"
	"go.uber.org/zap"
)

// @title SendSafe API
// @version 1.0
// @description Cold outreach API: contact import, AI personalization, review and sending

// @contact.name API Support
// @contact.email support@sendsafe.io

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token issued by the auth provider

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Basic configuration first, for logging setup
	basicCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&basicCfg.Logging, &basicCfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting application",
		zap.String("app", basicCfg.App.Name),
		zap.String("env", basicCfg.App.Environment),
		zap.Int("port", basicCfg.App.Port),
	)

	if host := os.Getenv("SWAGGER_HOST"); host != "" {
		docs.SwaggerInfo.Host = host
	} else {
		docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", basicCfg.App.Port)
	}

	// Outside development secrets come from Key Vault
	cfg, err := config.LoadWithSecrets(ctx, log)
	if err != nil {
		return fmt.Errorf("failed to load secrets: %w", err)
	}

	db, err := database.NewDatabase(&cfg.Database, log)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if cfg.App.Environment == "development" {
		if err := database.AutoMigrate(db); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	fileStorage, err := storage.NewStorage(&cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	log.Info("Storage initialized", zap.String("mode", cfg.Storage.Mode))

	transport, domains, err := mailer.New(&cfg.Mail, fileStorage, log)
	if err != nil {
		return fmt.Errorf("failed to initialize mailer: %w", err)
	}
	log.Info("Mailer initialized", zap.String("mode", cfg.Mail.Mode))

	genClient, err := generator.NewOllamaClient(generator.ClientConfigFrom(&cfg.Generator), nil, log)
	if err != nil {
		return fmt.Errorf("failed to create generator client: %w", err)
	}
	defer func() { _ = genClient.Close() }()

	gen, err := generator.NewService(genClient, log)
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	// Repositories
	contactRepo := repository.NewContactRepository(db)
	groupRepo := repository.NewGroupRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	emailRepo := repository.NewEmailRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	attemptRepo := repository.NewSendAttemptRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)

	// Services
	profileService := service.NewProfileService(profileRepo, &cfg.Plans, log)
	usageService := service.NewUsageService(profileService, emailRepo, contactRepo, &cfg.Plans, log)
	draftService := service.NewDraftService(draftRepo, cfg.Autosave.QuietPeriod(), log)
	contactService := service.NewContactService(contactRepo, groupRepo, usageService, gen, log)
	if cfg.Storage.ArchiveExports {
		contactService.WithExportArchive(fileStorage)
	}
	groupService := service.NewGroupService(groupRepo, contactRepo, log)
	templateService := service.NewTemplateService(templateRepo, contactRepo, log)
	generationService := service.NewGenerationService(contactRepo, emailRepo, draftRepo, profileService, usageService, gen, log)
	reviewService := service.NewReviewService(emailRepo, log)
	sendService := service.NewSendService(emailRepo, attemptRepo, profileService, usageService, transport, log)
	senderDomainService := service.NewSenderDomainService(profileRepo, profileService, domains, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, log)

	// Middleware
	authMiddleware := auth.NewMiddleware(&cfg.Auth, log)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit, log)

	rt := router.NewRouter(cfg, log, db, authMiddleware, rateLimiter, router.Handlers{
		Auth:         handler.NewAuthHandler(profileService, usageService, log),
		Contact:      handler.NewContactHandler(contactService, cfg.Storage.MaxUploadSizeMB, log),
		Group:        handler.NewGroupHandler(groupService, log),
		Draft:        handler.NewDraftHandler(draftService, log),
		Template:     handler.NewTemplateHandler(templateService, log),
		Email:        handler.NewEmailHandler(generationService, reviewService, sendService, log),
		Profile:      handler.NewProfileHandler(profileService, usageService, invoiceService, log),
		SenderDomain: handler.NewSenderDomainHandler(senderDomainService, log),
	})

	var scheduler *jobs.Scheduler
	if cfg.Jobs.Enabled {
		scheduler = jobs.NewScheduler(log)
		if err := jobs.RegisterSendAttemptCleanupJob(
			scheduler,
			attemptRepo,
			cfg.Jobs.SendAttemptRetention(),
			cfg.Jobs.SendAttemptCleanupCron,
			log,
		); err != nil {
			return fmt.Errorf("failed to register send attempt cleanup job: %w", err)
		}
		scheduler.Start()
	} else {
		log.Info("Background jobs disabled")
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      rt.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeoutDuration(),
		WriteTimeout: cfg.Server.WriteTimeoutDuration(),
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", zap.String("signal", sig.String()))

		if scheduler != nil {
			<-scheduler.Stop().Done()
			log.Info("Scheduler stopped")
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Failed to shutdown gracefully", zap.Error(err))
			if closeErr := srv.Close(); closeErr != nil {
				log.Error("Failed to close server", zap.Error(closeErr))
			}
		}

		// Pending autosaves are written before the database goes away
		draftService.FlushAll()
		log.Info("Pending drafts flushed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Info("Server stopped")
	return nil
}
