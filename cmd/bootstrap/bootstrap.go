package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"astro-admin-api/config"
	deliveryHttp "astro-admin-api/internal/delivery/http"
	"astro-admin-api/internal/delivery/http/handler"
	"astro-admin-api/internal/delivery/http/middleware"
	"astro-admin-api/internal/domain/entity"
	"astro-admin-api/internal/infrastructure/cache"
	"astro-admin-api/internal/infrastructure/database"
	"astro-admin-api/internal/repository"
	"astro-admin-api/internal/service"
	"astro-admin-api/internal/usecase"
	"astro-admin-api/pkg/jwt"
	"astro-admin-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config       *config.Config
	DB           *gorm.DB
	RedisClient  *redis.Client
	Server       *http.Server
	AuditService service.AuditService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedRoles(db); err != nil {
		return nil, fmt.Errorf("failed to seed roles: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, auditService := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.AuditService = auditService

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// seedRoles ensures the built-in roles exist before the first request.
func seedRoles(db *gorm.DB) error {
	for _, name := range []string{entity.RoleSuperAdmin, entity.RoleManager, entity.RoleAdmin} {
		role := entity.Role{Name: name}
		if err := db.Where("name = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	return nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, service.AuditService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	permissionRepo := repository.NewPermissionRepository()
	roleRepo := repository.NewRoleRepository()
	adminRepo := repository.NewAdminRepository()
	userRepo := repository.NewUserRepository()
	astrologerRepo := repository.NewAstrologerRepository()
	interviewRepo := repository.NewInterviewRepository()
	documentRepo := repository.NewAstrologerDocumentRepository()
	rejectionRepo := repository.NewRejectionHistoryRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, adminRepo, jwtService, redisClient, auditService)
	permissionUsecase := usecase.NewPermissionUsecase(db, log, permissionRepo, auditService)
	roleUsecase := usecase.NewRoleUsecase(db, log, roleRepo, permissionRepo, auditService)
	adminUsecase := usecase.NewAdminUsecase(db, log, adminRepo, roleRepo, auditService)
	userUsecase := usecase.NewUserUsecase(db, log, userRepo, auditService)
	astrologerUsecase := usecase.NewAstrologerUsecase(db, log, astrologerRepo, auditService)
	approvalUsecase := usecase.NewApprovalUsecase(db, log, astrologerRepo, interviewRepo, documentRepo, rejectionRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo, auditService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	permissionHandler := handler.NewPermissionHandler(permissionUsecase, customValidator)
	roleHandler := handler.NewRoleHandler(roleUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	astrologerHandler := handler.NewAstrologerHandler(astrologerUsecase, customValidator)
	approvalHandler := handler.NewApprovalHandler(approvalUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		permissionHandler,
		roleHandler,
		adminHandler,
		userHandler,
		astrologerHandler,
		approvalHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
		auditService,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, auditService
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Flush pending audit events before the DB goes away
	if app.AuditService != nil {
		app.AuditService.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
