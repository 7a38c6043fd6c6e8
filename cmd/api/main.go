package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/registration-service/internal/api/http"
	"github.com/spec-kit/registration-service/internal/api/http/handlers"
	"github.com/spec-kit/registration-service/internal/auth"
	"github.com/spec-kit/registration-service/internal/config"
	"github.com/spec-kit/registration-service/internal/events"
	"github.com/spec-kit/registration-service/internal/observability"
	"github.com/spec-kit/registration-service/internal/persistence"
	"github.com/spec-kit/registration-service/internal/repository"
	"github.com/spec-kit/registration-service/internal/service"
	"github.com/spec-kit/registration-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var registrationRepo repository.RegistrationRepository
	var gateRepo repository.GateRepository
	if pool := pg.PoolHandle(); pool != nil {
		registrationRepo = repository.NewRegistrationRepository(pool)
		gateRepo = repository.NewGateRepository(pool)
	} else {
		registrationRepo = repository.NewInMemoryRegistrationRepository()
		gateRepo = repository.NewInMemoryGateRepository()
	}

	var otpStore auth.OTPStore
	if redis.Client != nil {
		otpStore = auth.NewRedisOTPStore(redis.Client)
	} else {
		otpStore = auth.NewInMemoryOTPStore()
	}

	dispatcher := events.NewInMemoryDispatcher()
	metrics := observability.NewMetrics()

	registrationService := service.NewRegistrationService(service.RegistrationDependencies{
		RegistrationRepo: registrationRepo,
		GateRepo:         gateRepo,
		Dispatcher:       dispatcher,
		FeeAmount:        cfg.Registration.FeeAmount,
	})

	verifier := auth.NewStaticVerifier(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.PasswordHash, cfg.Auth.BcryptCost)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes)
	adminService := service.NewAdminService(service.AdminDependencies{
		Verifier:   verifier,
		Tokens:     tokens,
		OTPStore:   otpStore,
		OTPSender:  auth.NewLoggingOTPSender(logger),
		OTPTTL:     cfg.Auth.OTPTTL(),
		Username:   cfg.Admin.Username,
		AdminPhone: cfg.Admin.Phone,
	})

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, registrationService),
		Registrations: handlers.NewRegistrationsHandler(registrationService),
		Status:        handlers.NewStatusHandler(registrationService),
		Admin:         handlers.NewAdminHandler(adminService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
