package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meditrack/config"
	deliveryHttp "meditrack/internal/delivery/http"
	"meditrack/internal/delivery/http/handler"
	"meditrack/internal/delivery/http/middleware"
	"meditrack/internal/infrastructure/cache"
	"meditrack/internal/infrastructure/database"
	"meditrack/internal/repository"
	"meditrack/internal/service"
	"meditrack/internal/usecase"
	"meditrack/pkg/idgen"
	"meditrack/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Reminder    *service.ReminderService
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	setupLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	if err := database.RunMigrations(db, cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	if err := app.initializeServer(); err != nil {
		return nil, err
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer wires repositories, usecases, services and the
// HTTP layer.
func (app *App) initializeServer() error {
	cfg := app.Config
	log := logrus.StandardLogger()

	customValidator := validator.NewValidator()

	// Repositories
	patientRepo := repository.NewPatientRepository(app.DB)
	doctorRepo := repository.NewDoctorRepository(app.DB)
	appointmentRepo := repository.NewAppointmentRepository(app.DB)
	billRepo := repository.NewBillRepository(app.DB)

	// ID allocation continues from whatever is already stored.
	idGen := idgen.New()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	maxPatient, err := patientRepo.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read max patient ID: %w", err)
	}
	maxDoctor, err := doctorRepo.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read max doctor ID: %w", err)
	}
	maxAppointment, err := appointmentRepo.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read max appointment ID: %w", err)
	}
	maxBill, err := billRepo.MaxID(ctx)
	if err != nil {
		return fmt.Errorf("failed to read max bill ID: %w", err)
	}
	idGen.Seed(maxPatient, maxDoctor, maxAppointment, maxBill)

	// Services
	notifier := service.NewAppointmentNotifier(log, app.RedisClient)
	exportService := service.NewExportService(log, patientRepo, doctorRepo, appointmentRepo)
	app.Reminder = service.NewReminderService(log, appointmentRepo)
	if cfg.Reminder.Schedule != "" {
		if err := app.Reminder.Start(cfg.Reminder.Schedule); err != nil {
			return fmt.Errorf("failed to start reminder job: %w", err)
		}
	}

	// Usecases
	patientUsecase := usecase.NewPatientUsecase(log, patientRepo, idGen)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, idGen)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, appointmentRepo, doctorRepo, billRepo, idGen, notifier)
	analyticsUsecase := usecase.NewAnalyticsUsecase(log, doctorRepo, appointmentRepo, billRepo)
	recommendationUsecase := usecase.NewRecommendationUsecase(log, doctorRepo, appointmentRepo)

	// Handlers
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsUsecase)
	recommendationHandler := handler.NewRecommendationHandler(recommendationUsecase, customValidator)
	exportHandler := handler.NewExportHandler(exportService)

	// Middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Router
	router := deliveryHttp.NewRouter(
		patientHandler,
		doctorHandler,
		appointmentHandler,
		analyticsHandler,
		recommendationHandler,
		exportHandler,
		loggingMiddleware,
		corsMiddleware,
	)

	app.Server = &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.App.Port),
		Handler: router.Setup(),
	}

	return nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
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

	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close stops the reminder job and closes all connections
func (app *App) Close() {
	if app.Reminder != nil {
		app.Reminder.Stop()
	}

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
