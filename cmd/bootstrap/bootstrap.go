package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediconnect/config"
	deliveryHttp "mediconnect/internal/delivery/http"
	"mediconnect/internal/delivery/http/handler"
	"mediconnect/internal/delivery/http/middleware"
	"mediconnect/internal/infrastructure/cache"
	"mediconnect/internal/infrastructure/database"
	"mediconnect/internal/infrastructure/storage"
	"mediconnect/internal/repository"
	"mediconnect/internal/service"
	"mediconnect/internal/usecase"
	"mediconnect/pkg/jwt"
	"mediconnect/pkg/metrics"
	"mediconnect/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	Location    *time.Location
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Cron        *cron.Cron
}

// LoadConfig reads configuration, configures the logger and resolves the slot time zone
func LoadConfig() (*config.Config, *time.Location, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	setupLogger(cfg.App.LogLevel)

	loc, err := cfg.App.Location()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid APP_TIMEZONE %q: %w", cfg.App.Timezone, err)
	}

	logrus.Info("Configuration loaded successfully")
	return cfg, loc, nil
}

// New creates a new App instance with all dependencies initialized
func New(ctx context.Context, cfg *config.Config, loc *time.Location) (*App, error) {
	app := &App{
		Config:   cfg,
		Log:      logrus.StandardLogger(),
		Location: loc,
	}

	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis, app.Log)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	if err := app.initialize(ctx); err != nil {
		app.Close()
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logrus.SetLevel(lvl)
}

// initialize wires repositories, services, usecases and the HTTP server
func (app *App) initialize(ctx context.Context) error {
	cfg := app.Config
	log := app.Log
	db := app.DB

	collector := metrics.NewCollector()
	jwtService := jwt.NewJWTService(cfg.JWT)
	customValidator := validator.NewValidator()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	bookingRepo := repository.NewBookingRepository()
	auditLogRepo := repository.NewAuditLogRepository()
	sessionRepo := repository.NewBookingSessionRepository(app.RedisClient)
	tokenRepo := repository.NewTokenRepository(app.RedisClient)

	// Seed and load the shared doctor directory
	if cfg.Directory.SeedFile != "" {
		if _, err := database.SeedDoctors(ctx, db, doctorRepo, cfg.Directory.SeedFile); err != nil {
			return fmt.Errorf("failed to seed doctors: %w", err)
		}
	}

	directory := service.NewDoctorDirectory(db, log, doctorRepo, cfg.Booking.CurrencySymbol)
	if err := directory.Load(ctx); err != nil {
		return err
	}

	cronScheduler, err := newDirectoryRefresher(log, app.Location, cfg.Directory.RefreshCron, directory)
	if err != nil {
		return err
	}
	app.Cron = cronScheduler

	uploader, err := storage.NewImageUploader(cfg.Cloudinary)
	if err != nil {
		return err
	}

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	generator := service.NewSlotGenerator(cfg.Booking.UnavailableSlots, app.Location)
	notifier := service.NewLogNotifier(log, collector)
	submitter := newBookingSubmitter(cfg.Booking.Mode, db, log, bookingRepo, auditService, directory)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, cfg.Admin, tokenRepo, auditService, jwtService)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, auditService, directory, generator, uploader, time.Now)
	sessionUsecase := usecase.NewBookingSessionUsecase(log, sessionRepo, directory, generator, submitter, notifier, collector, cfg.Booking.SessionTTL, time.Now)
	bookingUsecase := usecase.NewBookingUsecase(db, log, bookingRepo, auditService, cfg.Booking.CurrencySymbol)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	sessionHandler := handler.NewBookingSessionHandler(sessionUsecase, customValidator)
	bookingHandler := handler.NewBookingHandler(bookingUsecase)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	siteHandler := handler.NewSiteHandler(cfg.Site)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, tokenRepo)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		sessionHandler,
		bookingHandler,
		auditLogHandler,
		siteHandler,
		authMiddleware,
		corsMiddleware,
		loggingMiddleware,
		collector,
	)

	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	if app.Cron != nil {
		app.Cron.Start()
	}

	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s, booking mode: %s", app.Config.App.Env, app.Config.Booking.Mode)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if app.Cron != nil {
		// wait for a running refresh, bounded by the shutdown timeout
		select {
		case <-app.Cron.Stop().Done():
		case <-ctx.Done():
		}
	}

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
