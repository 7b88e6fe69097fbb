package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	admissionapp "github.com/sis/backend/internal/application/admission"
	documentapp "github.com/sis/backend/internal/application/document"
	enrollmentapp "github.com/sis/backend/internal/application/enrollment"
	financeapp "github.com/sis/backend/internal/application/finance"
	identityapp "github.com/sis/backend/internal/application/identity"
	"github.com/sis/backend/internal/domain/numbering"
	"github.com/sis/backend/internal/infrastructure/auth"
	"github.com/sis/backend/internal/infrastructure/config"
	"github.com/sis/backend/internal/infrastructure/logger"
	"github.com/sis/backend/internal/infrastructure/mail"
	"github.com/sis/backend/internal/infrastructure/persistence"
	"github.com/sis/backend/internal/infrastructure/printing"
	"github.com/sis/backend/internal/infrastructure/sequence"
	"github.com/sis/backend/internal/infrastructure/storage"
	"github.com/sis/backend/internal/interfaces/http/handler"
	"github.com/sis/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting SIS backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	applicationRepo := persistence.NewGormApplicationRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	studentRepo := persistence.NewGormStudentRepository(db.DB)
	programRepo := persistence.NewGormProgramRepository(db.DB)
	courseRepo := persistence.NewGormCourseRepository(db.DB)
	enrollmentRepo := persistence.NewGormEnrollmentRepository(db.DB)
	invoiceRepo := persistence.NewGormInvoiceRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	feeStructureRepo := persistence.NewGormFeeStructureRepository(db.DB)

	// Student number sequencing. Redis gives an atomic counter; the
	// count-based fallback is only safe for single-instance deployments.
	var seq numbering.Sequence
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer func() {
			_ = redisClient.Close()
		}()
		seq = sequence.NewRedisSequence(redisClient)
		log.Info("Using redis sequence", zap.String("addr", cfg.Redis.Addr()))
	} else {
		seq = sequence.NewCountSequence(db.DB)
		log.Warn("Redis disabled, using count-based sequence")
	}

	// Document storage
	var docStorage documentapp.Storage
	if cfg.Storage.Bucket != "" {
		s3Storage, err := storage.NewS3DocumentStorage(&cfg.Storage, storage.WithLogger(log))
		if err != nil {
			log.Fatal("Failed to initialize document storage", zap.Error(err))
		}
		if err := s3Storage.EnsureBucket(context.Background()); err != nil {
			log.Fatal("Failed to ensure storage bucket", zap.Error(err))
		}
		docStorage = s3Storage
		log.Info("Document storage ready", zap.String("bucket", cfg.Storage.Bucket))
	} else {
		docStorage = storage.NewMemoryDocumentStorage()
		log.Warn("Storage bucket not configured, documents kept in memory only")
	}

	// PDF renderer
	renderer, err := printing.NewChromedpRenderer(&printing.ChromedpConfig{
		RemoteURL:     cfg.Printing.ChromeURL,
		RenderTimeout: cfg.Printing.RenderTimeout,
		NoSandbox:     cfg.App.Env != "development",
		Logger:        log,
	})
	if err != nil {
		log.Fatal("Failed to initialize PDF renderer", zap.Error(err))
	}
	defer renderer.Close()

	mailer, err := mail.NewSMTPMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal("Failed to initialize mailer", zap.Error(err))
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Application services
	admissionService := admissionapp.NewService(
		applicationRepo, userRepo, studentRepo, programRepo,
		feeStructureRepo, invoiceRepo, seq, renderer, docStorage, mailer, log,
	)
	paymentService := financeapp.NewPaymentService(
		invoiceRepo, paymentRepo, renderer, docStorage, mailer, log,
	)
	invoiceService := financeapp.NewInvoiceService(invoiceRepo, paymentRepo, log)
	enrollmentService := enrollmentapp.NewService(
		studentRepo, programRepo, courseRepo, enrollmentRepo,
		userRepo, invoiceRepo, mailer, log,
	)
	documentService := documentapp.NewService(
		invoiceRepo, paymentRepo, feeStructureRepo,
		studentRepo, programRepo, userRepo, renderer, log,
	)
	authService := identityapp.NewAuthService(userRepo, jwtService, log)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Application: handler.NewApplicationHandler(admissionService),
		Payment:     handler.NewPaymentHandler(paymentService),
		Invoice:     handler.NewInvoiceHandler(invoiceService),
		Document:    handler.NewDocumentHandler(documentService),
		Enrollment:  handler.NewEnrollmentHandler(enrollmentService),
		Program:     handler.NewProgramHandler(programRepo),
		Health:      handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
